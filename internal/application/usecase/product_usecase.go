package usecase

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gitcsdev/drcoffee-api/internal/application/dto"
	"github.com/gitcsdev/drcoffee-api/internal/domain"
	"github.com/gitcsdev/drcoffee-api/internal/domain/entity"
	"github.com/gitcsdev/drcoffee-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos del menú con sus colecciones
// (precios por tamaño, tags, sabores y opciones de personalización vinculadas).
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	optionRepo   repository.CustomizationOptionRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, optionRepo repository.CustomizationOptionRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, optionRepo: optionRepo}
}

// Create crea un producto. ProductCode es único; la categoría y las opciones
// referenciadas deben existir.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	code := strings.TrimSpace(in.ProductCode)
	if code == "" || strings.TrimSpace(in.NameEn) == "" {
		return nil, domain.ErrInvalidInput
	}
	taken, err := uc.repo.CodeExists(code, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrDuplicate
	}
	catExists, err := uc.categoryRepo.Exists(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if !catExists {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkOptions(in.CustomizationOptionIDs); err != nil {
		return nil, err
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	now := time.Now()
	product := &entity.Product{
		ProductCode:            code,
		NameEn:                 in.NameEn,
		NameAr:                 in.NameAr,
		ImageURL:               in.ImageURL,
		CategoryID:             in.CategoryID,
		CaffeineIndex:          in.CaffeineIndex,
		IsCustomizable:         in.IsCustomizable,
		IsActive:               isActive,
		Prices:                 toPriceEntities(in.Prices),
		Tags:                   in.Tags,
		Flavors:                in.Flavors,
		CustomizationOptionIDs: in.CustomizationOptionIDs,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto con colecciones cargadas. (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// GetByCode obtiene un producto por su código de negocio. Es la consulta del
// menú público: un producto desactivado se reporta como inexistente.
func (uc *ProductUseCase) GetByCode(productCode string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByCode(productCode)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// ListActive menú público: solo productos activos.
func (uc *ProductUseCase) ListActive() ([]*dto.ProductResponse, error) {
	products, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// ListAll catálogo completo (vista administrativa, incluye inactivos).
func (uc *ProductUseCase) ListAll() ([]*dto.ProductResponse, error) {
	products, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// ListByCategory productos de una categoría (vista administrativa, incluye inactivos).
func (uc *ProductUseCase) ListByCategory(categoryID int64) ([]*dto.ProductResponse, error) {
	products, err := uc.repo.ListByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// Update aplica los campos no nulos; las colecciones enviadas (no nulas) se
// reemplazan completas, nunca se mezclan con las existentes.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.NameEn != nil {
		if strings.TrimSpace(*in.NameEn) == "" {
			return nil, domain.ErrInvalidInput
		}
		product.NameEn = *in.NameEn
	}
	if in.NameAr != nil {
		product.NameAr = *in.NameAr
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if in.CategoryID != nil {
		catExists, err := uc.categoryRepo.Exists(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if !catExists {
			return nil, domain.ErrInvalidInput
		}
		product.CategoryID = *in.CategoryID
	}
	if in.CaffeineIndex != nil {
		product.CaffeineIndex = *in.CaffeineIndex
	}
	if in.IsCustomizable != nil {
		product.IsCustomizable = *in.IsCustomizable
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	replacePrices := in.Prices != nil
	if replacePrices {
		product.Prices = toPriceEntities(in.Prices)
	}
	replaceTags := in.Tags != nil
	if replaceTags {
		product.Tags = in.Tags
	}
	replaceFlavors := in.Flavors != nil
	if replaceFlavors {
		product.Flavors = in.Flavors
	}
	replaceOptions := in.CustomizationOptionIDs != nil
	if replaceOptions {
		if err := uc.checkOptions(in.CustomizationOptionIDs); err != nil {
			return nil, err
		}
		product.CustomizationOptionIDs = in.CustomizationOptionIDs
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product, replacePrices, replaceTags, replaceFlavors, replaceOptions); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// Delete borrado lógico idempotente, igual que categorías.
func (uc *ProductUseCase) Delete(id int64) error {
	found, err := uc.repo.SoftDelete(id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

// checkOptions verifica que cada opción de personalización referenciada exista.
func (uc *ProductUseCase) checkOptions(ids []int64) error {
	for _, id := range ids {
		ok, err := uc.optionRepo.Exists(id)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

func toPriceEntities(in []dto.ProductPriceRequest) []entity.ProductPrice {
	out := make([]entity.ProductPrice, 0, len(in))
	for _, p := range in {
		if p.Price.LessThan(decimal.Zero) {
			continue
		}
		out = append(out, entity.ProductPrice{Size: p.Size, Price: p.Price, IsActive: true})
	}
	return out
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	prices := make([]dto.ProductPriceResponse, 0, len(p.Prices))
	for _, pr := range p.Prices {
		prices = append(prices, dto.ProductPriceResponse{
			ProductPriceID: pr.ID,
			Size:           pr.Size,
			Price:          pr.Price,
			IsActive:       pr.IsActive,
		})
	}
	return &dto.ProductResponse{
		ProductID:              p.ID,
		ProductCode:            p.ProductCode,
		NameEn:                 p.NameEn,
		NameAr:                 p.NameAr,
		ImageURL:               p.ImageURL,
		CategoryID:             p.CategoryID,
		CategoryName:           p.CategoryName,
		CaffeineIndex:          p.CaffeineIndex,
		IsCustomizable:         p.IsCustomizable,
		IsActive:               p.IsActive,
		Prices:                 prices,
		Tags:                   p.Tags,
		Flavors:                p.Flavors,
		CustomizationOptionIDs: p.CustomizationOptionIDs,
		CreatedAt:              p.CreatedAt,
		UpdatedAt:              p.UpdatedAt,
	}
}

func toProductResponses(products []*entity.Product) []*dto.ProductResponse {
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}

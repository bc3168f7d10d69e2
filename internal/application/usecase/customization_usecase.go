package usecase

import (
	"strings"
	"time"

	"github.com/gitcsdev/drcoffee-api/internal/application/dto"
	"github.com/gitcsdev/drcoffee-api/internal/domain"
	"github.com/gitcsdev/drcoffee-api/internal/domain/entity"
	"github.com/gitcsdev/drcoffee-api/internal/domain/repository"
)

// CustomizationUseCase casos de uso CRUD para opciones de personalización
// (extras de bebida: leches, shots, jarabes). El borrado aquí es físico, no
// lógico: la opción desaparece del catálogo pero los pedidos ya creados
// conservan su precio congelado en customization_total.
type CustomizationUseCase struct {
	repo repository.CustomizationOptionRepository
}

// NewCustomizationUseCase construye el caso de uso.
func NewCustomizationUseCase(repo repository.CustomizationOptionRepository) *CustomizationUseCase {
	return &CustomizationUseCase{repo: repo}
}

// Create crea una opción. OptionCode es único.
func (uc *CustomizationUseCase) Create(in dto.CreateCustomizationOptionRequest) (*dto.CustomizationOptionResponse, error) {
	code := strings.TrimSpace(in.OptionCode)
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
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	now := time.Now()
	option := &entity.CustomizationOption{
		OptionCode:   code,
		NameEn:       in.NameEn,
		NameAr:       in.NameAr,
		Price:        in.Price,
		IsActive:     isActive,
		DisplayOrder: in.DisplayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(option); err != nil {
		return nil, err
	}
	return toCustomizationResponse(option), nil
}

// GetByID obtiene una opción. (nil, nil) si no existe.
func (uc *CustomizationUseCase) GetByID(id int64) (*dto.CustomizationOptionResponse, error) {
	option, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if option == nil {
		return nil, nil
	}
	return toCustomizationResponse(option), nil
}

// List todas las opciones ordenadas por display_order.
func (uc *CustomizationUseCase) List() ([]*dto.CustomizationOptionResponse, error) {
	options, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomizationOptionResponse, 0, len(options))
	for _, o := range options {
		out = append(out, toCustomizationResponse(o))
	}
	return out, nil
}

// ListActive solo las opciones activas, para el catálogo público.
func (uc *CustomizationUseCase) ListActive() ([]*dto.CustomizationOptionResponse, error) {
	options, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomizationOptionResponse, 0, len(options))
	for _, o := range options {
		out = append(out, toCustomizationResponse(o))
	}
	return out, nil
}

// Update aplica solo los campos no nulos; cambiar el código re-verifica unicidad.
func (uc *CustomizationUseCase) Update(id int64, in dto.UpdateCustomizationOptionRequest) (*dto.CustomizationOptionResponse, error) {
	option, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if option == nil {
		return nil, nil
	}
	if in.OptionCode != nil {
		code := strings.TrimSpace(*in.OptionCode)
		if code == "" {
			return nil, domain.ErrInvalidInput
		}
		taken, err := uc.repo.CodeExists(code, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrDuplicate
		}
		option.OptionCode = code
	}
	if in.NameEn != nil {
		option.NameEn = *in.NameEn
	}
	if in.NameAr != nil {
		option.NameAr = *in.NameAr
	}
	if in.Price != nil {
		option.Price = *in.Price
	}
	if in.IsActive != nil {
		option.IsActive = *in.IsActive
	}
	if in.DisplayOrder != nil {
		option.DisplayOrder = *in.DisplayOrder
	}
	option.UpdatedAt = time.Now()
	if err := uc.repo.Update(option); err != nil {
		return nil, err
	}
	return toCustomizationResponse(option), nil
}

// Delete borrado físico. No es idempotente: repetirlo devuelve ErrNotFound.
func (uc *CustomizationUseCase) Delete(id int64) error {
	found, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

func toCustomizationResponse(o *entity.CustomizationOption) *dto.CustomizationOptionResponse {
	return &dto.CustomizationOptionResponse{
		CustomizationOptionID: o.ID,
		OptionCode:            o.OptionCode,
		NameEn:                o.NameEn,
		NameAr:                o.NameAr,
		Price:                 o.Price,
		IsActive:              o.IsActive,
		DisplayOrder:          o.DisplayOrder,
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
	}
}

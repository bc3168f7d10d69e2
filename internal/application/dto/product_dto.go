package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductPriceRequest precio por tamaño en altas/actualizaciones.
type ProductPriceRequest struct {
	Size  string          `json:"size" validate:"required"`
	Price decimal.Decimal `json:"price"`
}

// CreateProductRequest entrada para crear un producto con sus colecciones.
type CreateProductRequest struct {
	ProductCode            string                `json:"productCode" validate:"required,min=1,max=50"`
	NameEn                 string                `json:"nameEn" validate:"required,min=1,max=200"`
	NameAr                 string                `json:"nameAr" validate:"required,min=1,max=200"`
	ImageURL               string                `json:"imageUrl"`
	CategoryID             int64                 `json:"categoryId" validate:"required"`
	CaffeineIndex          int                   `json:"caffeineIndex"`
	IsCustomizable         bool                  `json:"isCustomizable"`
	IsActive               *bool                 `json:"isActive"`
	Prices                 []ProductPriceRequest `json:"prices"`
	Tags                   []string              `json:"tags"`
	Flavors                []string              `json:"flavors"`
	CustomizationOptionIDs []int64               `json:"customizationOptionIds"`
}

// UpdateProductRequest entrada parcial; las colecciones no nulas se reemplazan completas.
type UpdateProductRequest struct {
	NameEn                 *string               `json:"nameEn" validate:"omitempty,min=1,max=200"`
	NameAr                 *string               `json:"nameAr" validate:"omitempty,min=1,max=200"`
	ImageURL               *string               `json:"imageUrl"`
	CategoryID             *int64                `json:"categoryId"`
	CaffeineIndex          *int                  `json:"caffeineIndex"`
	IsCustomizable         *bool                 `json:"isCustomizable"`
	IsActive               *bool                 `json:"isActive"`
	Prices                 []ProductPriceRequest `json:"prices"`
	Tags                   []string              `json:"tags"`
	Flavors                []string              `json:"flavors"`
	CustomizationOptionIDs []int64               `json:"customizationOptionIds"`
}

// ProductPriceResponse precio por tamaño en respuestas.
type ProductPriceResponse struct {
	ProductPriceID int64           `json:"productPriceId"`
	Size           string          `json:"size"`
	Price          decimal.Decimal `json:"price"`
	IsActive       bool            `json:"isActive"`
}

// ProductResponse salida de un producto con colecciones cargadas.
type ProductResponse struct {
	ProductID              int64                  `json:"productId"`
	ProductCode            string                 `json:"productCode"`
	NameEn                 string                 `json:"nameEn"`
	NameAr                 string                 `json:"nameAr"`
	ImageURL               string                 `json:"imageUrl,omitempty"`
	CategoryID             int64                  `json:"categoryId"`
	CategoryName           string                 `json:"categoryName"`
	CaffeineIndex          int                    `json:"caffeineIndex"`
	IsCustomizable         bool                   `json:"isCustomizable"`
	IsActive               bool                   `json:"isActive"`
	Prices                 []ProductPriceResponse `json:"prices"`
	Tags                   []string               `json:"tags"`
	Flavors                []string               `json:"flavors"`
	CustomizationOptionIDs []int64                `json:"customizationOptionIds"`
	CreatedAt              time.Time              `json:"createdAt"`
	UpdatedAt              time.Time              `json:"updatedAt"`
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomizationOptionRequest entrada para crear una opción de personalización.
type CreateCustomizationOptionRequest struct {
	OptionCode   string          `json:"optionCode" validate:"required,min=1,max=100"`
	NameEn       string          `json:"nameEn" validate:"required,min=1,max=200"`
	NameAr       string          `json:"nameAr" validate:"required,min=1,max=200"`
	Price        decimal.Decimal `json:"price"`
	IsActive     *bool           `json:"isActive"`
	DisplayOrder int             `json:"displayOrder"`
}

// UpdateCustomizationOptionRequest entrada parcial.
type UpdateCustomizationOptionRequest struct {
	OptionCode   *string          `json:"optionCode" validate:"omitempty,min=1,max=100"`
	NameEn       *string          `json:"nameEn"`
	NameAr       *string          `json:"nameAr"`
	Price        *decimal.Decimal `json:"price"`
	IsActive     *bool            `json:"isActive"`
	DisplayOrder *int             `json:"displayOrder"`
}

// CustomizationOptionResponse salida de una opción de personalización.
type CustomizationOptionResponse struct {
	CustomizationOptionID int64           `json:"customizationOptionId"`
	OptionCode            string          `json:"optionCode"`
	NameEn                string          `json:"nameEn"`
	NameAr                string          `json:"nameAr"`
	Price                 decimal.Decimal `json:"price"`
	IsActive              bool            `json:"isActive"`
	DisplayOrder          int             `json:"displayOrder"`
	CreatedAt             time.Time       `json:"createdAt"`
	UpdatedAt             time.Time       `json:"updatedAt"`
}

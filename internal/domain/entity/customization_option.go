package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomizationOption extra aplicable a productos personalizables
// (sirope extra, leche de almendras, ...). Código único; borrado físico.
type CustomizationOption struct {
	ID           int64
	OptionCode   string // único, ej. "extra_syrup"
	NameEn       string
	NameAr       string
	Price        decimal.Decimal
	IsActive     bool
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del menú con nombre bilingüe (EN/AR) y código único.
// Precios, tags, sabores y opciones de personalización son colecciones hijas
// que se reemplazan completas al actualizar. Borrado lógico vía IsActive.
type Product struct {
	ID             int64
	ProductCode    string // único, ej. "iced_mocha"
	NameEn         string
	NameAr         string
	ImageURL       string
	CategoryID     int64
	CategoryName   string // denormalizado al leer, no se persiste aquí
	CaffeineIndex  int    // 0 (sin cafeína) a 7
	IsCustomizable bool
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Prices                 []ProductPrice
	Tags                   []string // "Hot", "Cold"
	Flavors                []string
	CustomizationOptionIDs []int64
}

// ProductPrice precio por tamaño ("small", "medium", "large", "with_cream", ...).
type ProductPrice struct {
	ID       int64
	Size     string
	Price    decimal.Decimal
	IsActive bool
}

// PriceForSize busca el precio activo para un tamaño. Devuelve nil si no existe.
func (p *Product) PriceForSize(size string) *ProductPrice {
	for i := range p.Prices {
		if p.Prices[i].Size == size && p.Prices[i].IsActive {
			return &p.Prices[i]
		}
	}
	return nil
}

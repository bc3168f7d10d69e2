package entity

import "time"

// Category categoría del menú (Iced Coffee, Hot Coffee, ...). Nombre único.
// El borrado es lógico: IsActive pasa a false y el registro se conserva.
type Category struct {
	ID           int64
	Name         string
	DisplayOrder int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// ProductCount productos activos asociados; lo calcula el repositorio al leer.
	ProductCount int
}

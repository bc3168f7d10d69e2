package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=100"`
	DisplayOrder int    `json:"displayOrder"`
}

// UpdateCategoryRequest entrada parcial: solo los campos no nulos se aplican.
type UpdateCategoryRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=100"`
	DisplayOrder *int    `json:"displayOrder"`
	IsActive     *bool   `json:"isActive"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	CategoryID   int64     `json:"categoryId"`
	Name         string    `json:"name"`
	DisplayOrder int       `json:"displayOrder"`
	IsActive     bool      `json:"isActive"`
	ProductCount int       `json:"productCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

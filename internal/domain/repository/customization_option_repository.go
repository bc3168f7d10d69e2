package repository

import "github.com/gitcsdev/drcoffee-api/internal/domain/entity"

// CustomizationOptionRepository puerto de persistencia para CustomizationOption (DIP).
// A diferencia de categorías y productos, el borrado aquí es físico.
type CustomizationOptionRepository interface {
	Create(option *entity.CustomizationOption) error
	GetByID(id int64) (*entity.CustomizationOption, error)
	ListAll() ([]*entity.CustomizationOption, error)
	// ListActive opciones visibles para el cliente (menú público).
	ListActive() ([]*entity.CustomizationOption, error)
	Update(option *entity.CustomizationOption) error
	Delete(id int64) (bool, error)

	Exists(id int64) (bool, error)
	CodeExists(optionCode string, excludeID int64) (bool, error)
}

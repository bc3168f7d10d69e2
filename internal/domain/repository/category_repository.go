package repository

import "github.com/gitcsdev/drcoffee-api/internal/domain/entity"

// CategoryRepository puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id int64) (*entity.Category, error)
	ListAll() ([]*entity.Category, error)
	Update(category *entity.Category) error

	// SoftDelete marca la categoría como inactiva. Devuelve false si el id no existe;
	// repetir sobre una ya inactiva sigue siendo éxito (idempotente).
	SoftDelete(id int64) (bool, error)

	Exists(id int64) (bool, error)
	// NameExists verifica unicidad de nombre; excludeID > 0 ignora esa fila
	// (para permitir actualizar una categoría conservando su propio nombre).
	NameExists(name string, excludeID int64) (bool, error)
}

package repository

import "github.com/gitcsdev/drcoffee-api/internal/domain/entity"

// ProductRepository puerto de persistencia para Product y sus colecciones hijas (DIP).
type ProductRepository interface {
	// Create inserta el producto con precios, tags, sabores y vínculos de
	// personalización. Asigna ID al entity.
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	GetByCode(productCode string) (*entity.Product, error)
	// ListActive productos activos con colecciones cargadas (menú público).
	ListActive() ([]*entity.Product, error)
	// ListAll todos los productos, activos o no (administración).
	ListAll() ([]*entity.Product, error)
	ListByCategory(categoryID int64) ([]*entity.Product, error)
	// Update actualiza campos base; las colecciones hijas no nulas se reemplazan completas.
	Update(product *entity.Product, replacePrices, replaceTags, replaceFlavors, replaceOptions bool) error

	// SoftDelete marca el producto como inactivo. false si el id no existe.
	SoftDelete(id int64) (bool, error)

	Exists(id int64) (bool, error)
	CodeExists(productCode string, excludeID int64) (bool, error)

	// Any indica si hay al menos un producto, activo o no (guarda de siembra).
	Any() (bool, error)
}

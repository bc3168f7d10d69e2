package repository

import "github.com/gitcsdev/drcoffee-api/internal/domain/entity"

// UserRepository puerto de persistencia para identidades y sus roles (DIP).
// Los métodos de lectura devuelven (nil, nil) cuando no hay registro.
type UserRepository interface {
	Create(user *entity.User) error
	FindByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	UpdatePassword(userID, passwordHash string) error

	// RolesOf roles asignados a la identidad, sin duplicados.
	RolesOf(userID string) ([]string, error)
	AddRole(userID, role string) error
	HasRole(userID, role string) (bool, error)

	// EnsureRole crea el rol si no existe (siembra idempotente).
	EnsureRole(name string) error
}

package entity

import (
	"strings"
	"time"
)

// Roles válidos. Conjunto fijo sembrado al arranque; no hay creación dinámica de roles.
const (
	RoleAdmin   = "Admin"
	RoleManager = "Manager"
)

// User representa una identidad administrativa del sistema.
// Los roles viven en la tabla user_roles (muchos a muchos) y se consultan aparte.
type User struct {
	ID             string
	Email          string // único
	PasswordHash   string // bcrypt, nunca plano después de persistir
	FirstName      string
	LastName       string
	EmailConfirmed bool
	LockoutEnd     *time.Time // nil o en el pasado = no bloqueado
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DisplayName nombre y apellido recortados, como va en el claim "name".
func (u *User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// IsLockedOut indica si la cuenta está bloqueada en el instante dado.
func (u *User) IsLockedOut(now time.Time) bool {
	return u.LockoutEnd != nil && u.LockoutEnd.After(now)
}

package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")

	// Sub-resultados del login. Los tres se presentan al cliente como el mismo
	// 401 genérico para no permitir enumeración de cuentas; la distinción solo
	// queda en los logs del servidor.
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrAccountLocked      = errors.New("cuenta bloqueada")
	ErrSignInNotAllowed   = errors.New("inicio de sesión no permitido")
)

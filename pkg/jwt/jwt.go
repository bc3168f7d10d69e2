package jwt

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTTL vigencia fija del token. No hay refresh token: la única renovación es volver a hacer login.
const TokenTTL = 24 * time.Hour

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Roles lleva un claim por rol asignado para que el middleware RBAC pueda
// autorizar sin consultar la DB (copia al momento de emisión; puede quedar
// desactualizado hasta que expire el token).
type Claims struct {
	jwt.RegisteredClaims
	Email string   `json:"email"`
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
}

// Issuer emite y valida tokens firmados con un secreto simétrico compartido (HMAC-SHA256).
type Issuer struct {
	secret   []byte
	issuer   string
	audience string
}

// NewIssuer valida la configuración JWT. Secret, issuer y audience vacíos son un
// error fatal de arranque: el proceso no debe servir peticiones sin ellos.
func NewIssuer(secret, issuer, audience string) (*Issuer, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret no configurado")
	}
	if issuer == "" {
		return nil, fmt.Errorf("jwt: issuer no configurado")
	}
	if audience == "" {
		return nil, fmt.Errorf("jwt: audience no configurado")
	}
	return &Issuer{secret: []byte(secret), issuer: issuer, audience: audience}, nil
}

// Generate emite un token firmado para la identidad verificada. Incluye sub, email,
// name (nombre y apellido recortados), un jti aleatorio por emisión y un claim por
// rol. Expira exactamente en TokenTTL. Devuelve el token y el instante de expiración.
func (i *Issuer) Generate(userID, email, name string, roles []string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(TokenTTL)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Audience:  jwt.ClaimStrings{i.audience},
			Subject:   userID,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Email: email,
		Name:  strings.TrimSpace(name),
		Roles: roles,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("firmar token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse valida firma (solo HMAC), issuer, audience y vigencia, y devuelve los claims.
// Retorna error si el token es inválido, expirado o firmado con otro secreto.
func (i *Issuer) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithIssuer(i.issuer), jwt.WithAudience(i.audience))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}

package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/gitcsdev/drcoffee-api/internal/application/dto"
	"github.com/gitcsdev/drcoffee-api/internal/domain"
	"github.com/gitcsdev/drcoffee-api/internal/domain/repository"
	"github.com/gitcsdev/drcoffee-api/pkg/jwt"
	"github.com/gitcsdev/drcoffee-api/pkg/logger"
)

// UseCase caso de uso de autenticación: login con emisión de JWT.
// Todas las fallas de login se presentan al cliente como el mismo 401
// genérico; la causa real (cuenta inexistente, bloqueada, no confirmada,
// password incorrecto) solo se distingue en los logs.
type UseCase struct {
	userRepo repository.UserRepository
	issuer   *jwt.Issuer
	log      *logger.Logger
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, issuer *jwt.Issuer, log *logger.Logger) *UseCase {
	return &UseCase{userRepo: userRepo, issuer: issuer, log: log}
}

// Login verifica las credenciales y emite un token de 24 horas con los roles
// de la identidad. Los errores de dominio devueltos distinguen la causa para
// logging, pero el handler los colapsa en un único 401.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.log.Warn().Str("email", in.Email).Msg("login fallido: usuario no encontrado")
		return nil, domain.ErrInvalidCredentials
	}
	if user.IsLockedOut(time.Now()) {
		uc.log.Warn().Str("user_id", user.ID).Msg("login fallido: cuenta bloqueada")
		return nil, domain.ErrAccountLocked
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		uc.log.Warn().Str("user_id", user.ID).Msg("login fallido: password incorrecto")
		return nil, domain.ErrInvalidCredentials
	}
	if !user.EmailConfirmed {
		uc.log.Warn().Str("user_id", user.ID).Msg("login fallido: email sin confirmar")
		return nil, domain.ErrSignInNotAllowed
	}

	roles, err := uc.userRepo.RolesOf(user.ID)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := uc.issuer.Generate(user.ID, user.Email, user.DisplayName(), roles)
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("user_id", user.ID).Strs("roles", roles).Msg("login exitoso")
	return &dto.AuthResponse{
		Token:     token,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Roles:     roles,
		ExpiresAt: expiresAt,
	}, nil
}

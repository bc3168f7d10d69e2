package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gitcsdev/drcoffee-api/internal/application/auth"
	"github.com/gitcsdev/drcoffee-api/internal/application/dto"
	"github.com/gitcsdev/drcoffee-api/internal/domain"
	"github.com/gitcsdev/drcoffee-api/internal/domain/entity"
	"github.com/gitcsdev/drcoffee-api/pkg/jwt"
	"github.com/gitcsdev/drcoffee-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del repositorio de usuarios
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User // key: email
	roles map[string][]string     // key: user id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users: make(map[string]*entity.User),
		roles: make(map[string][]string),
	}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.users[u.Email] = u
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.users[email], nil
}

func (r *fakeUserRepo) UpdatePassword(userID, hash string) error {
	for _, u := range r.users {
		if u.ID == userID {
			u.PasswordHash = hash
		}
	}
	return nil
}

func (r *fakeUserRepo) RolesOf(userID string) ([]string, error) {
	return r.roles[userID], nil
}

func (r *fakeUserRepo) AddRole(userID, role string) error {
	r.roles[userID] = append(r.roles[userID], role)
	return nil
}

func (r *fakeUserRepo) HasRole(userID, role string) (bool, error) {
	for _, rl := range r.roles[userID] {
		if rl == role {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) EnsureRole(name string) error { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testIssuer   = "drcoffee-api-test"
	testAudience = "drcoffee-clients-test"
)

func buildUseCase(t *testing.T) (*auth.UseCase, *fakeUserRepo, *jwt.Issuer) {
	t.Helper()
	issuer, err := jwt.NewIssuer(testSecret, testIssuer, testAudience)
	require.NoError(t, err)
	repo := newFakeUserRepo()
	return auth.NewUseCase(repo, issuer, logger.Nop()), repo, issuer
}

// seedUser crea un usuario confirmado con password hasheado y los roles dados.
func seedUser(t *testing.T, repo *fakeUserRepo, email, password string, roles ...string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	u := &entity.User{
		ID:             "00000000-0000-0000-0000-000000000001",
		Email:          email,
		PasswordHash:   string(hash),
		FirstName:      "Dr",
		LastName:       "Coffee",
		EmailConfirmed: true,
	}
	require.NoError(t, repo.Create(u))
	for _, role := range roles {
		require.NoError(t, repo.AddRole(u.ID, role))
	}
	return u
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas_EmiteToken(t *testing.T) {
	uc, repo, issuer := buildUseCase(t)
	seedUser(t, repo, "admin@drcoffee.com", "Admin@123", entity.RoleAdmin)

	resp, err := uc.Login(dto.LoginRequest{Email: "admin@drcoffee.com", Password: "Admin@123"})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin@drcoffee.com", resp.Email)
	assert.Equal(t, "Dr", resp.FirstName)
	assert.Equal(t, "Coffee", resp.LastName)
	assert.ElementsMatch(t, []string{entity.RoleAdmin}, resp.Roles)
	assert.WithinDuration(t, time.Now().Add(jwt.TokenTTL), resp.ExpiresAt, 5*time.Second,
		"la expiración debe ser emisión + 24h")

	// El token emitido debe ser verificable y llevar los claims de la identidad.
	claims, err := issuer.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@drcoffee.com", claims.Email)
	assert.Equal(t, "Dr Coffee", claims.Name)
	assert.ElementsMatch(t, []string{entity.RoleAdmin}, claims.Roles)
}

func TestLogin_UsuarioInexistente_CredencialesInvalidas(t *testing.T) {
	uc, _, _ := buildUseCase(t)

	resp, err := uc.Login(dto.LoginRequest{Email: "nadie@drcoffee.com", Password: "loquesea"})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials,
		"cuenta inexistente debe producir el mismo error que password incorrecto")
}

func TestLogin_PasswordIncorrecto_CredencialesInvalidas(t *testing.T) {
	uc, repo, _ := buildUseCase(t)
	seedUser(t, repo, "admin@drcoffee.com", "Admin@123", entity.RoleAdmin)

	resp, err := uc.Login(dto.LoginRequest{Email: "admin@drcoffee.com", Password: "otra-cosa"})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_CuentaBloqueada_RetornaAccountLocked(t *testing.T) {
	uc, repo, _ := buildUseCase(t)
	u := seedUser(t, repo, "admin@drcoffee.com", "Admin@123", entity.RoleAdmin)
	lockUntil := time.Now().Add(1 * time.Hour)
	u.LockoutEnd = &lockUntil

	resp, err := uc.Login(dto.LoginRequest{Email: "admin@drcoffee.com", Password: "Admin@123"})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrAccountLocked)
}

func TestLogin_BloqueoVencido_PermiteLogin(t *testing.T) {
	uc, repo, _ := buildUseCase(t)
	u := seedUser(t, repo, "admin@drcoffee.com", "Admin@123", entity.RoleAdmin)
	past := time.Now().Add(-1 * time.Hour)
	u.LockoutEnd = &past

	resp, err := uc.Login(dto.LoginRequest{Email: "admin@drcoffee.com", Password: "Admin@123"})
	require.NoError(t, err, "un lockout en el pasado ya no bloquea")
	assert.NotNil(t, resp)
}

func TestLogin_EmailSinConfirmar_NoPermitido(t *testing.T) {
	uc, repo, _ := buildUseCase(t)
	u := seedUser(t, repo, "manager@drcoffee.com", "Manager@123", entity.RoleManager)
	u.EmailConfirmed = false

	resp, err := uc.Login(dto.LoginRequest{Email: "manager@drcoffee.com", Password: "Manager@123"})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrSignInNotAllowed)
}

func TestLogin_MultiRol_TokenLlevaTodosLosRoles(t *testing.T) {
	uc, repo, issuer := buildUseCase(t)
	seedUser(t, repo, "admin@drcoffee.com", "Admin@123", entity.RoleAdmin, entity.RoleManager)

	resp, err := uc.Login(dto.LoginRequest{Email: "admin@drcoffee.com", Password: "Admin@123"})
	require.NoError(t, err)

	claims, err := issuer.Parse(resp.Token)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{entity.RoleAdmin, entity.RoleManager}, claims.Roles)
}

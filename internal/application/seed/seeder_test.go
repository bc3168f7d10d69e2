package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gitcsdev/drcoffee-api/internal/application/seed"
	"github.com/gitcsdev/drcoffee-api/internal/domain/entity"
	"github.com/gitcsdev/drcoffee-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	users map[string]*entity.User
	roles map[string][]string
	known map[string]bool
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}, roles: map[string][]string{}, known: map[string]bool{}}
}

func (r *memUserRepo) Create(u *entity.User) error { r.users[u.Email] = u; return nil }
func (r *memUserRepo) FindByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (r *memUserRepo) FindByEmail(email string) (*entity.User, error) { return r.users[email], nil }
func (r *memUserRepo) UpdatePassword(id, hash string) error {
	for _, u := range r.users {
		if u.ID == id {
			u.PasswordHash = hash
		}
	}
	return nil
}
func (r *memUserRepo) RolesOf(id string) ([]string, error) { return r.roles[id], nil }
func (r *memUserRepo) AddRole(id, role string) error {
	r.roles[id] = append(r.roles[id], role)
	return nil
}
func (r *memUserRepo) HasRole(id, role string) (bool, error) {
	for _, rl := range r.roles[id] {
		if rl == role {
			return true, nil
		}
	}
	return false, nil
}
func (r *memUserRepo) EnsureRole(name string) error { r.known[name] = true; return nil }

type memCategoryRepo struct {
	nextID int64
	rows   []*entity.Category
}

func (r *memCategoryRepo) Create(c *entity.Category) error {
	r.nextID++
	c.ID = r.nextID
	r.rows = append(r.rows, c)
	return nil
}
func (r *memCategoryRepo) GetByID(int64) (*entity.Category, error)  { return nil, nil }
func (r *memCategoryRepo) ListAll() ([]*entity.Category, error)     { return r.rows, nil }
func (r *memCategoryRepo) Update(*entity.Category) error            { return nil }
func (r *memCategoryRepo) SoftDelete(int64) (bool, error)           { return false, nil }
func (r *memCategoryRepo) Exists(int64) (bool, error)               { return true, nil }
func (r *memCategoryRepo) NameExists(string, int64) (bool, error)   { return false, nil }

type memProductRepo struct {
	nextID int64
	rows   []*entity.Product
}

func (r *memProductRepo) Create(p *entity.Product) error {
	r.nextID++
	p.ID = r.nextID
	r.rows = append(r.rows, p)
	return nil
}
func (r *memProductRepo) GetByID(int64) (*entity.Product, error)        { return nil, nil }
func (r *memProductRepo) GetByCode(string) (*entity.Product, error)     { return nil, nil }
func (r *memProductRepo) ListActive() ([]*entity.Product, error)        { return r.rows, nil }
func (r *memProductRepo) ListAll() ([]*entity.Product, error)           { return r.rows, nil }
func (r *memProductRepo) ListByCategory(int64) ([]*entity.Product, error) { return nil, nil }
func (r *memProductRepo) Update(*entity.Product, bool, bool, bool, bool) error { return nil }
func (r *memProductRepo) SoftDelete(int64) (bool, error)                { return false, nil }
func (r *memProductRepo) Exists(int64) (bool, error)                    { return true, nil }
func (r *memProductRepo) CodeExists(string, int64) (bool, error)        { return false, nil }
func (r *memProductRepo) Any() (bool, error)                            { return len(r.rows) > 0, nil }

type memOptionRepo struct {
	nextID int64
	rows   []*entity.CustomizationOption
}

func (r *memOptionRepo) Create(o *entity.CustomizationOption) error {
	r.nextID++
	o.ID = r.nextID
	r.rows = append(r.rows, o)
	return nil
}
func (r *memOptionRepo) GetByID(int64) (*entity.CustomizationOption, error) { return nil, nil }
func (r *memOptionRepo) ListAll() ([]*entity.CustomizationOption, error)    { return r.rows, nil }
func (r *memOptionRepo) ListActive() ([]*entity.CustomizationOption, error) { return r.rows, nil }
func (r *memOptionRepo) Update(*entity.CustomizationOption) error           { return nil }
func (r *memOptionRepo) Delete(int64) (bool, error)                         { return false, nil }
func (r *memOptionRepo) Exists(int64) (bool, error)                         { return true, nil }
func (r *memOptionRepo) CodeExists(string, int64) (bool, error)             { return false, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func testCreds() seed.Credentials {
	return seed.Credentials{
		AdminEmail:      "admin@drcoffee.com",
		AdminPassword:   "Admin@123",
		ManagerEmail:    "manager@drcoffee.com",
		ManagerPassword: "Manager@123",
	}
}

func TestSeeder_PrimeraEjecucion_SiembraTodo(t *testing.T) {
	users := newMemUserRepo()
	categories := &memCategoryRepo{}
	products := &memProductRepo{}
	options := &memOptionRepo{}

	s := seed.NewSeeder(users, categories, products, options, testCreds(), logger.Nop())
	require.NoError(t, s.Run())

	assert.True(t, users.known[entity.RoleAdmin])
	assert.True(t, users.known[entity.RoleManager])

	admin, err := users.FindByEmail("admin@drcoffee.com")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.True(t, admin.EmailConfirmed)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("Admin@123")))
	hasAdmin, _ := users.HasRole(admin.ID, entity.RoleAdmin)
	assert.True(t, hasAdmin)

	manager, err := users.FindByEmail("manager@drcoffee.com")
	require.NoError(t, err)
	require.NotNil(t, manager)
	hasManager, _ := users.HasRole(manager.ID, entity.RoleManager)
	assert.True(t, hasManager)

	assert.Len(t, categories.rows, 13)
	assert.Len(t, options.rows, 5)
	assert.NotEmpty(t, products.rows)
}

func TestSeeder_SegundaEjecucion_NoDuplica(t *testing.T) {
	users := newMemUserRepo()
	categories := &memCategoryRepo{}
	products := &memProductRepo{}
	options := &memOptionRepo{}

	s := seed.NewSeeder(users, categories, products, options, testCreds(), logger.Nop())
	require.NoError(t, s.Run())

	nCategories := len(categories.rows)
	nProducts := len(products.rows)
	nOptions := len(options.rows)
	admin, _ := users.FindByEmail("admin@drcoffee.com")
	adminRolesBefore := len(users.roles[admin.ID])

	require.NoError(t, s.Run())

	assert.Len(t, categories.rows, nCategories)
	assert.Len(t, products.rows, nProducts)
	assert.Len(t, options.rows, nOptions)
	assert.Len(t, users.roles[admin.ID], adminRolesBefore, "el rol no se re-agrega")
}

// La password del admin vuelve a la configurada en cada arranque; la del
// manager se respeta.
func TestSeeder_PasswordAdmin_SeRestablece(t *testing.T) {
	users := newMemUserRepo()
	s := seed.NewSeeder(users, &memCategoryRepo{}, &memProductRepo{}, &memOptionRepo{}, testCreds(), logger.Nop())
	require.NoError(t, s.Run())

	admin, _ := users.FindByEmail("admin@drcoffee.com")
	manager, _ := users.FindByEmail("manager@drcoffee.com")
	otherHash, err := bcrypt.GenerateFromPassword([]byte("Cambiada@999"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, users.UpdatePassword(admin.ID, string(otherHash)))
	require.NoError(t, users.UpdatePassword(manager.ID, string(otherHash)))

	require.NoError(t, s.Run())

	admin, _ = users.FindByEmail("admin@drcoffee.com")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("Admin@123")),
		"la password del admin vuelve a la configurada")

	manager, _ = users.FindByEmail("manager@drcoffee.com")
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(manager.PasswordHash), []byte("Manager@123")),
		"la password del manager no se toca")
}

package seed

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/gitcsdev/drcoffee-api/internal/domain/entity"
	"github.com/gitcsdev/drcoffee-api/internal/domain/repository"
	"github.com/gitcsdev/drcoffee-api/pkg/logger"
)

// Credentials cuentas administrativas a garantizar en el arranque.
type Credentials struct {
	AdminEmail      string
	AdminPassword   string
	ManagerEmail    string
	ManagerPassword string
}

// Seeder rutina de inicialización idempotente: roles, cuentas administrativas
// y datos del menú. Se ejecuta en cada arranque; repetirla no duplica nada.
type Seeder struct {
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	optionRepo   repository.CustomizationOptionRepository
	creds        Credentials
	log          *logger.Logger
}

// NewSeeder construye la rutina de siembra.
func NewSeeder(
	userRepo repository.UserRepository,
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	optionRepo repository.CustomizationOptionRepository,
	creds Credentials,
	log *logger.Logger,
) *Seeder {
	return &Seeder{
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		optionRepo:   optionRepo,
		creds:        creds,
		log:          log,
	}
}

// Run ejecuta la siembra completa: roles fijos, cuentas y menú.
func (s *Seeder) Run() error {
	if err := s.seedRoles(); err != nil {
		return fmt.Errorf("sembrar roles: %w", err)
	}
	if err := s.seedUsers(); err != nil {
		return fmt.Errorf("sembrar usuarios: %w", err)
	}
	if err := s.seedMenu(); err != nil {
		return fmt.Errorf("sembrar menú: %w", err)
	}
	return nil
}

// seedRoles garantiza el conjunto fijo de roles. No hay creación dinámica.
func (s *Seeder) seedRoles() error {
	for _, role := range []string{entity.RoleAdmin, entity.RoleManager} {
		if err := s.userRepo.EnsureRole(role); err != nil {
			return err
		}
	}
	return nil
}

// seedUsers garantiza las cuentas administrativas. La password del admin se
// restablece en cada arranque a la configurada; la del manager solo se fija
// al crearla.
func (s *Seeder) seedUsers() error {
	if err := s.ensureUser(s.creds.AdminEmail, s.creds.AdminPassword, "Admin", "User", entity.RoleAdmin, true); err != nil {
		return err
	}
	return s.ensureUser(s.creds.ManagerEmail, s.creds.ManagerPassword, "Manager", "User", entity.RoleManager, false)
}

func (s *Seeder) ensureUser(email, password, firstName, lastName, role string, resetPassword bool) error {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		now := time.Now()
		user = &entity.User{
			ID:             uuid.New().String(),
			Email:          email,
			PasswordHash:   string(hash),
			FirstName:      firstName,
			LastName:       lastName,
			EmailConfirmed: true,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := s.userRepo.Create(user); err != nil {
			return err
		}
		s.log.Info().Str("email", email).Str("role", role).Msg("cuenta administrativa creada")
	} else if resetPassword {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if err := s.userRepo.UpdatePassword(user.ID, string(hash)); err != nil {
			return err
		}
		s.log.Info().Str("email", email).Msg("password administrativa restablecida")
	}

	hasRole, err := s.userRepo.HasRole(user.ID, role)
	if err != nil {
		return err
	}
	if !hasRole {
		if err := s.userRepo.AddRole(user.ID, role); err != nil {
			return err
		}
	}
	return nil
}

// seedMenu carga categorías, opciones de personalización y productos la
// primera vez. Si ya hay productos no toca nada: el menú es editable en
// producción y re-sembrar pisaría cambios.
func (s *Seeder) seedMenu() error {
	any, err := s.productRepo.Any()
	if err != nil {
		return err
	}
	if any {
		s.log.Debug().Msg("menú ya sembrado, se omite")
		return nil
	}

	now := time.Now()
	categoryIDs := make(map[string]int64, len(menuCategories))
	for _, mc := range menuCategories {
		category := &entity.Category{
			Name:         mc.Name,
			DisplayOrder: mc.DisplayOrder,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.categoryRepo.Create(category); err != nil {
			return err
		}
		categoryIDs[mc.Name] = category.ID
	}

	for _, mo := range menuOptions {
		option := &entity.CustomizationOption{
			OptionCode:   mo.Code,
			NameEn:       mo.NameEn,
			NameAr:       mo.NameAr,
			Price:        decimal.NewFromInt(mo.Price),
			IsActive:     true,
			DisplayOrder: mo.DisplayOrder,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.optionRepo.Create(option); err != nil {
			return err
		}
	}

	for _, mp := range menuProducts {
		categoryID, ok := categoryIDs[mp.Category]
		if !ok {
			return fmt.Errorf("producto %s referencia categoría desconocida %q", mp.Code, mp.Category)
		}
		prices := make([]entity.ProductPrice, 0, len(mp.Prices))
		for _, p := range mp.Prices {
			prices = append(prices, entity.ProductPrice{
				Size:     p.Size,
				Price:    decimal.NewFromInt(p.Amount),
				IsActive: true,
			})
		}
		product := &entity.Product{
			ProductCode:    mp.Code,
			NameEn:         mp.NameEn,
			NameAr:         mp.NameAr,
			CategoryID:     categoryID,
			CaffeineIndex:  mp.Caffeine,
			IsCustomizable: mp.Customizable,
			IsActive:       true,
			Prices:         prices,
			Tags:           mp.Tags,
			Flavors:        mp.Flavors,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := s.productRepo.Create(product); err != nil {
			return err
		}
	}

	s.log.Info().
		Int("categorias", len(menuCategories)).
		Int("productos", len(menuProducts)).
		Int("opciones", len(menuOptions)).
		Msg("menú inicial sembrado")
	return nil
}

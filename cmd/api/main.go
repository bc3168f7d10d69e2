package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gitcsdev/drcoffee-api/internal/application/auth"
	"github.com/gitcsdev/drcoffee-api/internal/application/seed"
	"github.com/gitcsdev/drcoffee-api/internal/application/usecase"
	infrapdf "github.com/gitcsdev/drcoffee-api/internal/infrastructure/pdf"
	"github.com/gitcsdev/drcoffee-api/internal/infrastructure/postgres"
	httpRouter "github.com/gitcsdev/drcoffee-api/internal/interfaces/http"
	"github.com/gitcsdev/drcoffee-api/pkg/config"
	"github.com/gitcsdev/drcoffee-api/pkg/jwt"
	"github.com/gitcsdev/drcoffee-api/pkg/logger"
)

// @title           Dr.Coffee Admin API
// @version         1.0
// @description     API administrativa de la tienda Dr.Coffee: menú, personalizaciones y pedidos.
// @BasePath        /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	issuer, err := jwt.NewIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración JWT")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	optionRepo := postgres.NewCustomizationOptionRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Siembra idempotente: roles, cuentas administrativas y menú inicial.
	seeder := seed.NewSeeder(userRepo, categoryRepo, productRepo, optionRepo, seed.Credentials{
		AdminEmail:      cfg.Seed.AdminEmail,
		AdminPassword:   cfg.Seed.AdminPassword,
		ManagerEmail:    cfg.Seed.ManagerEmail,
		ManagerPassword: cfg.Seed.ManagerPassword,
	}, log)
	if err := seeder.Run(); err != nil {
		log.Fatal().Err(err).Msg("siembra inicial")
	}

	authUC := auth.NewUseCase(userRepo, issuer, log)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, optionRepo)
	customizationUC := usecase.NewCustomizationUseCase(optionRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, optionRepo, txRunner, log)
	receiptUC := usecase.NewReceiptUseCase(orderRepo, infrapdf.NewMarotoReceiptGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Dr.Coffee Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		CategoryUC:      categoryUC,
		ProductUC:       productUC,
		CustomizationUC: customizationUC,
		OrderUC:         orderUC,
		ReceiptUC:       receiptUC,
		Issuer:          issuer,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

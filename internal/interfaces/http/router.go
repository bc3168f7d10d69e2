package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gitcsdev/drcoffee-api/internal/application/auth"
	"github.com/gitcsdev/drcoffee-api/internal/application/usecase"
	"github.com/gitcsdev/drcoffee-api/internal/domain/entity"
	"github.com/gitcsdev/drcoffee-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.UseCase
	CategoryUC      *usecase.CategoryUseCase
	ProductUC       *usecase.ProductUseCase
	CustomizationUC *usecase.CustomizationUseCase
	OrderUC         *usecase.OrderUseCase
	ReceiptUC       *usecase.ReceiptUseCase
	Issuer          *jwt.Issuer
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Menú público: el cliente de la tienda navega sin token.
	productHandler := NewProductHandler(deps.ProductUC)
	api.Get("/products", productHandler.ListActive)
	api.Get("/products/by-code/:productCode", productHandler.GetByCode)

	customizationHandler := NewCustomizationHandler(deps.CustomizationUC)
	api.Get("/customization-options", customizationHandler.ListActive)

	// Pedidos: la creación es pública (checkout del cliente).
	orderHandler := NewOrderHandler(deps.OrderUC, deps.ReceiptUC)
	api.Post("/orders", orderHandler.Create)

	// Rutas administrativas (requieren Bearer Token con rol Admin o Manager)
	admin := api.Group("/admin", AuthMiddleware(deps.Issuer), RequireRole(entity.RoleAdmin, entity.RoleManager))

	// Categories (admin)
	categories := admin.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)
	categories.Get("/:categoryId/products", productHandler.ListByCategory)

	// Products (admin)
	products := admin.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Customization options (admin)
	options := admin.Group("/customization-options")
	options.Post("/", customizationHandler.Create)
	options.Get("/", customizationHandler.List)
	options.Get("/:id", customizationHandler.GetByID)
	options.Put("/:id", customizationHandler.Update)
	options.Delete("/:id", customizationHandler.Delete)

	// Orders (admin). Las rutas con segmento fijo van antes que /:id.
	orders := admin.Group("/orders")
	orders.Get("/", orderHandler.List)
	orders.Get("/number/:orderNumber", orderHandler.GetByNumber)
	orders.Get("/status/:status", orderHandler.ListByStatus)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id/status", orderHandler.UpdateStatus)
	orders.Get("/:id/receipt", orderHandler.Receipt)
}

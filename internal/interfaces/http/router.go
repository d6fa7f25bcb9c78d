package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcamargo/inventario-backend/internal/application/auth"
	"github.com/jcamargo/inventario-backend/internal/application/stock"
	"github.com/jcamargo/inventario-backend/internal/application/usecase"
	"github.com/jcamargo/inventario-backend/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	StockSvc   *stock.Service
	History    *stock.History
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Lecturas para cualquier usuario
// autenticado; escrituras de catálogo y stock para admin/bodeguero;
// borrados y valor total solo admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Post("/validate", authHandler.Validate)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	writers := RequireRole(entity.RoleAdmin, entity.RoleBodeguero)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Products + stock (protegido)
	productHandler := NewProductHandler(deps.ProductUC, deps.StockSvc, deps.History)
	products := protected.Group("/products")
	products.Get("/", productHandler.List)
	products.Post("/", writers, productHandler.Create)
	// Las rutas fijas van antes que /:id para que Fiber no las capture como parámetro.
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/inventory-value", adminOnly, productHandler.InventoryValue)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", writers, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)
	products.Patch("/:id/stock", writers, productHandler.SetStock)
	products.Post("/:id/movements", writers, productHandler.RegisterMovement)
	products.Get("/:id/movements", productHandler.ListMovements)

	// Categories (protegido)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories := protected.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Post("/", writers, categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", writers, categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Historial global (protegido)
	movementHandler := NewMovementHandler(deps.History)
	protected.Get("/movements", movementHandler.List)
}

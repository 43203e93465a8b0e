package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/Inventario-ledger/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LedgerUC   *inventory.LedgerUseCase
	ReportUC   *inventory.ReportUseCase
	ProductUC  *usecase.ProductUseCase
	LocationUC *usecase.LocationUseCase
	CategoryUC *usecase.CategoryUseCase
	SupplierUC *usecase.SupplierUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Libro de inventario y reportes
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.LedgerUC, deps.ReportUC)
	invGroup.Post("/transactions", inventoryHandler.RecordTransaction)
	invGroup.Get("/transactions", inventoryHandler.History)
	invGroup.Post("/transfers", inventoryHandler.RecordTransfer)
	invGroup.Get("/levels", inventoryHandler.Levels)
	invGroup.Get("/levels/:product_id/:location_id", inventoryHandler.GetQuantity)
	invGroup.Put("/levels/:product_id/:location_id", inventoryHandler.Recount)
	invGroup.Get("/low-stock", inventoryHandler.LowStock)
	invGroup.Get("/transaction-types", inventoryHandler.TransactionTypes)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Locations
	locations := api.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Put("/:id", locationHandler.Update)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
}

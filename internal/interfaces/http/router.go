package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/garment-pos/internal/application/analytics"
	"github.com/tu-usuario/garment-pos/internal/application/checkout"
	"github.com/tu-usuario/garment-pos/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	SaleUC    *usecase.SaleUseCase
	StatsUC   *analytics.StatsUseCase
	Checkout  *checkout.Session
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Put("/:id/stock", productHandler.AdjustStock)
	products.Delete("/:id", productHandler.Delete)

	// Caja (sesión única del proceso)
	co := api.Group("/checkout")
	checkoutHandler := NewCheckoutHandler(deps.Checkout)
	co.Get("/cart", checkoutHandler.GetCart)
	co.Post("/cart/items", checkoutHandler.AddItem)
	co.Put("/cart/items/:productID", checkoutHandler.UpdateItem)
	co.Delete("/cart/items/:productID", checkoutHandler.RemoveItem)
	co.Post("/begin", checkoutHandler.Begin)
	co.Post("/cancel", checkoutHandler.Cancel)
	co.Post("/complete", checkoutHandler.Complete)

	// Historial de ventas
	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id/items", saleHandler.Items)

	// Tablero
	dashboardHandler := NewDashboardHandler(deps.StatsUC, deps.ProductUC)
	api.Get("/dashboard", dashboardHandler.Summary)
}

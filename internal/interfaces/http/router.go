package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/jhoicas/Boutique-api/internal/application/auth"
	"github.com/jhoicas/Boutique-api/internal/application/dto"
	"github.com/jhoicas/Boutique-api/internal/application/inventory"
	"github.com/jhoicas/Boutique-api/internal/application/sales"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	InventoryUC *inventory.UseCase
	SalesUC     *sales.UseCase
	ReceiptUC   *sales.ReceiptUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público, con rate limit contra fuerza bruta)
	authGroup := api.Group("/auth", limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code: "TOO_MANY_REQUESTS", Message: "demasiados intentos, espera un minuto",
			})
		},
	}))
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Inventory (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Post("/pieces", inventoryHandler.CreatePiece)
	invGroup.Get("/pieces", inventoryHandler.ListPieces)
	invGroup.Put("/pieces/:id/quantity", inventoryHandler.SetQuantity)
	invGroup.Put("/pieces/:id/price", inventoryHandler.SetPrice)
	invGroup.Delete("/pieces/:id", inventoryHandler.DeletePiece)
	invGroup.Get("/tree", inventoryHandler.CategoryTree)

	// Sales (protegido)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SalesUC, deps.ReceiptUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Post("/:id/pieces", saleHandler.AddPiece)
	salesGroup.Post("/:id/confirm-payment", saleHandler.ConfirmPayment)
	salesGroup.Put("/:id/shipping-value", saleHandler.SetShippingValue)
	salesGroup.Post("/:id/confirm-shipping-payment", saleHandler.ConfirmShippingPayment)
	salesGroup.Post("/:id/confirm-shipping-date", saleHandler.ConfirmShippingDate)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest apertura de una venta para un cliente.
type CreateSaleRequest struct {
	ClientName string `json:"client_name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}

// AddPieceRequest reserva de cantidad de una pieza contra la venta.
type AddPieceRequest struct {
	PieceID  string `json:"piece_id"`
	Quantity int    `json:"quantity"`
}

// SetShippingValueRequest registro manual del costo de envío.
type SetShippingValueRequest struct {
	ShippingValue decimal.Decimal `json:"shipping_value"`
}

// SaleLineResponse línea de la venta.
type SaleLineResponse struct {
	PieceID     string          `json:"piece_id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse venta con derivados y, en el detalle, sus líneas.
type SaleResponse struct {
	ID            string             `json:"id"`
	ClientName    string             `json:"client_name"`
	Phone         string             `json:"phone,omitempty"`
	Address       string             `json:"address,omitempty"`
	Status        string             `json:"status"`
	ShippingValue *decimal.Decimal   `json:"shipping_value,omitempty"`
	TotalPieces   int                `json:"total_pieces"`
	TotalValue    decimal.Decimal    `json:"total_value"`
	Lines         []SaleLineResponse `json:"lines,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// SaleListResponse página de ventas, más recientes primero.
type SaleListResponse struct {
	Sales []SaleResponse `json:"sales"`
	Page  PageResponse   `json:"page"`
}

// ListSalesQuery filtros del listado de ventas.
type ListSalesQuery struct {
	// Status admite varios valores separados por coma.
	Status string `query:"status"`
	PageRequest
}

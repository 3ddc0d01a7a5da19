package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta de un usuario a un cliente final.
// Status solo avanza (ver domain/sale); ShippingValue es nil hasta que el
// usuario lo registra manualmente.
type Sale struct {
	ID            string
	UserID        string
	ClientName    string
	Phone         string
	Address       string
	Status        string // ver sale.Status*
	ShippingValue *decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SalePiece es la reserva de N unidades de una pieza contra una venta
// (única por par venta+pieza; en re-adiciones la cantidad solo se incrementa).
type SalePiece struct {
	SaleID    string
	PieceID   string
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

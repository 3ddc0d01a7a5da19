package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Boutique-api/internal/domain/entity"
)

// SaleWithTotals venta con sus campos derivados para listados y detalle:
// TotalPieces = suma de cantidades; TotalValue = suma de cantidad × precio.
type SaleWithTotals struct {
	entity.Sale
	TotalPieces int
	TotalValue  decimal.Decimal
}

// SaleLine línea de venta con los datos de la pieza necesarios para mostrarla.
type SaleLine struct {
	PieceID     string
	Description string
	Quantity    int
	Price       decimal.Decimal
}

// SaleRepository puerto de persistencia de ventas y sus líneas.
// Todo acceso está acotado por (saleID, userID): una venta ajena se comporta
// igual que una inexistente.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByIDAndUser(ctx context.Context, saleID, userID string) (*entity.Sale, error)
	// GetForUpdate bloquea la fila de la venta (SELECT FOR UPDATE) dentro de una tx,
	// para que las transiciones de estado se serialicen por venta.
	GetForUpdate(ctx context.Context, saleID, userID string) (*entity.Sale, error)
	UpdateStatus(ctx context.Context, saleID, status string) error
	SetShippingValue(ctx context.Context, saleID string, value decimal.Decimal) error

	// UpsertLine crea la línea (venta, pieza) o incrementa su cantidad si ya existe.
	UpsertLine(ctx context.Context, line *entity.SalePiece) error
	// CountLines cuenta las líneas de la venta.
	CountLines(ctx context.Context, saleID string) (int, error)
	ListLines(ctx context.Context, saleID string) ([]SaleLine, error)

	// ListByUser pagina las ventas del usuario, más recientes primero, filtradas
	// por estados (vacío = todos). total refleja el conjunto filtrado.
	ListByUser(ctx context.Context, userID string, statuses []string, limit, offset int) (sales []*SaleWithTotals, total int, err error)
	GetWithTotals(ctx context.Context, saleID, userID string) (*SaleWithTotals, error)
}

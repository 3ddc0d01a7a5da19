package sales

import (
	"context"

	"github.com/jhoicas/Boutique-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Toda operación que toque stock y estado a la
// vez corre completa dentro de una sola transacción: o ambos efectos quedan,
// o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		salesRepo repository.SaleRepository,
		piecesRepo repository.PieceRepository,
	) error) error
}

// ReceiptGenerator genera el recibo de una venta en PDF.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, sale *repository.SaleWithTotals, lines []repository.SaleLine) ([]byte, error)
}

package sales

import (
	"context"
	"fmt"

	"github.com/jhoicas/Boutique-api/internal/domain"
	"github.com/jhoicas/Boutique-api/internal/domain/repository"
)

// ReceiptUseCase genera el recibo PDF de una venta.
type ReceiptUseCase struct {
	sales     repository.SaleRepository
	generator ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(salesRepo repository.SaleRepository, generator ReceiptGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{sales: salesRepo, generator: generator}
}

// Generate devuelve los bytes del PDF del recibo de la venta del usuario.
func (uc *ReceiptUseCase) Generate(ctx context.Context, userID, saleID string) ([]byte, error) {
	s, err := uc.sales.GetWithTotals(ctx, saleID, userID)
	if err != nil {
		return nil, fmt.Errorf("consultar venta: %w", err)
	}
	if s == nil {
		return nil, domain.ErrSaleNotFound
	}
	lines, err := uc.sales.ListLines(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("listar líneas: %w", err)
	}
	pdf, err := uc.generator.GenerateReceipt(ctx, s, lines)
	if err != nil {
		return nil, fmt.Errorf("generar recibo: %w", err)
	}
	return pdf, nil
}

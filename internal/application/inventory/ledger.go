package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/Boutique-api/internal/domain"
	"github.com/jhoicas/Boutique-api/internal/domain/repository"
)

// Reserve descuenta quantity unidades del stock de la pieza, bloqueando la
// fila (SELECT FOR UPDATE) antes de verificar y escribir. Debe invocarse con
// un PieceRepository atado a la transacción del caller: el bloqueo de fila es
// lo que impide que dos reservas concurrentes que caben por separado pero no
// juntas tengan éxito ambas.
// Devuelve la cantidad restante tras la reserva.
func Reserve(ctx context.Context, pieces repository.PieceRepository, pieceID string, quantity int) (int, error) {
	if quantity <= 0 {
		return 0, domain.ErrInvalidQty
	}
	piece, err := pieces.GetForUpdate(ctx, pieceID)
	if err != nil {
		return 0, fmt.Errorf("bloquear pieza: %w", err)
	}
	if piece == nil {
		return 0, domain.ErrPieceNotFound
	}
	if piece.Quantity < quantity {
		return 0, &domain.InsufficientStockError{
			PieceID:   pieceID,
			Available: piece.Quantity,
			Requested: quantity,
		}
	}
	remaining := piece.Quantity - quantity
	if err := pieces.SetQuantity(ctx, pieceID, remaining); err != nil {
		return 0, fmt.Errorf("descontar stock: %w", err)
	}
	return remaining, nil
}

// Release devuelve quantity unidades al stock de la pieza (operación de
// compensación). Hoy ningún flujo de negocio la invoca: no existe quitar
// una línea ni cancelar una venta; queda disponible para ese futuro.
func Release(ctx context.Context, pieces repository.PieceRepository, pieceID string, quantity int) error {
	if quantity <= 0 {
		return domain.ErrInvalidQty
	}
	piece, err := pieces.GetByID(ctx, pieceID)
	if err != nil {
		return fmt.Errorf("consultar pieza: %w", err)
	}
	if piece == nil {
		return domain.ErrPieceNotFound
	}
	if err := pieces.AddQuantity(ctx, pieceID, quantity); err != nil {
		return fmt.Errorf("devolver stock: %w", err)
	}
	return nil
}

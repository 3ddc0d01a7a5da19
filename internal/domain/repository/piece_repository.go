package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Boutique-api/internal/domain/entity"
)

// PieceFilter criterios de búsqueda de piezas por niveles de la ruta y texto.
// Search se compara sin acentos ni mayúsculas contra la descripción.
type PieceFilter struct {
	CategoryID    string
	SubcategoryID string
	GenderID      string
	Search        string
}

// PieceRepository puerto de persistencia de piezas. Las mutaciones de cantidad
// ligadas a ventas pasan por GetForUpdate dentro de una transacción; nunca por
// un read-modify-write en dos pasos fuera de ella.
type PieceRepository interface {
	Create(ctx context.Context, piece *entity.Piece) error
	GetByID(ctx context.Context, id string) (*entity.Piece, error)
	// GetByIDAndUser devuelve nil si no existe o pertenece a otro usuario.
	GetByIDAndUser(ctx context.Context, id, userID string) (*entity.Piece, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE). Solo válido dentro de una tx.
	GetForUpdate(ctx context.Context, id string) (*entity.Piece, error)
	// SetQuantity fija la cantidad (ajuste administrativo, >= 0).
	SetQuantity(ctx context.Context, id string, quantity int) error
	// AddQuantity suma delta a la cantidad (liberación de stock; delta > 0).
	AddQuantity(ctx context.Context, id string, delta int) error
	SetPrice(ctx context.Context, id string, price decimal.Decimal) error
	ListByUser(ctx context.Context, userID string, filter PieceFilter) ([]*entity.Piece, error)
	// Delete devuelve ErrPieceNotFound si no existe o es de otro usuario.
	Delete(ctx context.Context, id, userID string) error
}

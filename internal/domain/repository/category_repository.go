package repository

import (
	"context"

	"github.com/jhoicas/Boutique-api/internal/domain/entity"
)

// CategoryRepository puerto de lectura del árbol de categorías (y escritura
// solo para el seeding). Devuelve nil sin error cuando el registro no existe.
type CategoryRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	// HasChildren indica si la categoría tiene subdivisiones.
	HasChildren(ctx context.Context, id string) (bool, error)
	// List devuelve el árbol completo ordenado por nivel y nombre.
	List(ctx context.Context) ([]*entity.Category, error)
	// CreateMany inserta ignorando duplicados (seeding idempotente).
	CreateMany(ctx context.Context, categories []*entity.Category) error
	// MarkLeaves marca is_leaf en toda categoría sin hijas; devuelve filas afectadas.
	MarkLeaves(ctx context.Context) (int64, error)
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Boutique-api/internal/domain/entity"
	"github.com/jhoicas/Boutique-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación de CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// GetByID obtiene una categoría por ID; nil sin error si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	query := `
		SELECT id, name, COALESCE(parent_id, ''), level, is_leaf, created_at
		FROM categories WHERE id = $1`
	var c entity.Category
	err := r.q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.ParentID, &c.Level, &c.IsLeaf, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// HasChildren indica si la categoría tiene subdivisiones.
func (r *CategoryRepo) HasChildren(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM categories WHERE parent_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("has children: %w", err)
	}
	return exists, nil
}

// List devuelve el árbol completo ordenado por nivel y nombre.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	query := `
		SELECT id, name, COALESCE(parent_id, ''), level, is_leaf, created_at
		FROM categories ORDER BY level, name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.ParentID, &c.Level, &c.IsLeaf, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// CreateMany inserta categorías ignorando duplicados (seeding idempotente).
func (r *CategoryRepo) CreateMany(ctx context.Context, categories []*entity.Category) error {
	query := `
		INSERT INTO categories (id, name, parent_id, level, is_leaf, created_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, now())
		ON CONFLICT (id) DO NOTHING`
	for _, c := range categories {
		if _, err := r.q.Exec(ctx, query, c.ID, c.Name, c.ParentID, c.Level, c.IsLeaf); err != nil {
			return fmt.Errorf("insert category %s: %w", c.ID, err)
		}
	}
	return nil
}

// MarkLeaves marca is_leaf en toda categoría sin hijas.
func (r *CategoryRepo) MarkLeaves(ctx context.Context) (int64, error) {
	query := `
		UPDATE categories SET is_leaf = TRUE
		WHERE is_leaf = FALSE
		  AND NOT EXISTS (SELECT 1 FROM categories c WHERE c.parent_id = categories.id)`
	tag, err := r.q.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("mark leaves: %w", err)
	}
	return tag.RowsAffected(), nil
}

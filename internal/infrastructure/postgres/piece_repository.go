package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Boutique-api/internal/domain"
	"github.com/jhoicas/Boutique-api/internal/domain/entity"
	"github.com/jhoicas/Boutique-api/internal/domain/repository"
	"github.com/jhoicas/Boutique-api/pkg/textutil"
)

var _ repository.PieceRepository = (*PieceRepo)(nil)

// PieceRepo implementación de PieceRepository sobre PostgreSQL (usable con pool o tx).
type PieceRepo struct {
	q Querier
}

// NewPieceRepository construye el adaptador de piezas. Pasar pool o tx (Querier).
func NewPieceRepository(q Querier) *PieceRepo {
	return &PieceRepo{q: q}
}

const pieceColumns = `id, user_id, description, quantity, price,
	category_id, COALESCE(subcategory_id, ''), COALESCE(gender_id, ''), category_path,
	created_at, updated_at`

func scanPiece(row pgx.Row) (*entity.Piece, error) {
	var p entity.Piece
	err := row.Scan(
		&p.ID, &p.UserID, &p.Description, &p.Quantity, &p.Price,
		&p.CategoryID, &p.SubcategoryID, &p.GenderID, &p.CategoryPath,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Create persiste una nueva pieza. description_search guarda la descripción
// normalizada (minúsculas, sin acentos) para la búsqueda por texto.
func (r *PieceRepo) Create(ctx context.Context, piece *entity.Piece) error {
	query := `
		INSERT INTO pieces (id, user_id, description, description_search, quantity, price,
			category_id, subcategory_id, gender_id, category_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		piece.ID, piece.UserID, piece.Description, textutil.Fold(piece.Description),
		piece.Quantity, piece.Price,
		piece.CategoryID, piece.SubcategoryID, piece.GenderID, piece.CategoryPath,
		piece.CreatedAt, piece.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert piece: %w", err)
	}
	return nil
}

// GetByID obtiene una pieza por ID; nil sin error si no existe.
func (r *PieceRepo) GetByID(ctx context.Context, id string) (*entity.Piece, error) {
	query := `SELECT ` + pieceColumns + ` FROM pieces WHERE id = $1`
	p, err := scanPiece(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get piece: %w", err)
	}
	return p, nil
}

// GetByIDAndUser obtiene la pieza solo si pertenece al usuario.
func (r *PieceRepo) GetByIDAndUser(ctx context.Context, id, userID string) (*entity.Piece, error) {
	query := `SELECT ` + pieceColumns + ` FROM pieces WHERE id = $1 AND user_id = $2`
	p, err := scanPiece(r.q.QueryRow(ctx, query, id, userID))
	if err != nil {
		return nil, fmt.Errorf("get piece by user: %w", err)
	}
	return p, nil
}

// GetForUpdate obtiene la pieza y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene sentido con un Querier atado a una transacción.
func (r *PieceRepo) GetForUpdate(ctx context.Context, id string) (*entity.Piece, error) {
	query := `SELECT ` + pieceColumns + ` FROM pieces WHERE id = $1 FOR UPDATE`
	p, err := scanPiece(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get piece for update: %w", err)
	}
	return p, nil
}

// SetQuantity fija la cantidad absoluta.
func (r *PieceRepo) SetQuantity(ctx context.Context, id string, quantity int) error {
	query := `UPDATE pieces SET quantity = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, quantity)
	if err != nil {
		return fmt.Errorf("set quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPieceNotFound
	}
	return nil
}

// AddQuantity suma delta a la cantidad.
func (r *PieceRepo) AddQuantity(ctx context.Context, id string, delta int) error {
	query := `UPDATE pieces SET quantity = quantity + $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, delta)
	if err != nil {
		return fmt.Errorf("add quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPieceNotFound
	}
	return nil
}

// SetPrice actualiza el precio de venta.
func (r *PieceRepo) SetPrice(ctx context.Context, id string, price decimal.Decimal) error {
	query := `UPDATE pieces SET price = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, price)
	if err != nil {
		return fmt.Errorf("set price: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPieceNotFound
	}
	return nil
}

// ListByUser lista las piezas del usuario aplicando los filtros, más recientes primero.
// filter.Search debe venir ya normalizado (textutil.Fold).
func (r *PieceRepo) ListByUser(ctx context.Context, userID string, filter repository.PieceFilter) ([]*entity.Piece, error) {
	query := `SELECT ` + pieceColumns + ` FROM pieces WHERE user_id = $1`
	args := []any{userID}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		query += fmt.Sprintf(" AND category_id = $%d", len(args))
	}
	if filter.SubcategoryID != "" {
		args = append(args, filter.SubcategoryID)
		query += fmt.Sprintf(" AND subcategory_id = $%d", len(args))
	}
	if filter.GenderID != "" {
		args = append(args, filter.GenderID)
		query += fmt.Sprintf(" AND gender_id = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND description_search LIKE $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pieces: %w", err)
	}
	defer rows.Close()

	var out []*entity.Piece
	for rows.Next() {
		var p entity.Piece
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Description, &p.Quantity, &p.Price,
			&p.CategoryID, &p.SubcategoryID, &p.GenderID, &p.CategoryPath,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan piece: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// Delete elimina la pieza del usuario. ErrPieceInUse si tiene líneas de venta.
func (r *PieceRepo) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM pieces WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrPieceInUse
		}
		return fmt.Errorf("delete piece: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPieceNotFound
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Boutique-api/internal/domain/entity"
	"github.com/jhoicas/Boutique-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, user_id, client_name, COALESCE(phone, ''), COALESCE(address, ''),
	status, shipping_value, created_at, updated_at`

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(
		&s.ID, &s.UserID, &s.ClientName, &s.Phone, &s.Address,
		&s.Status, &s.ShippingValue, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// Create persiste una nueva venta.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, user_id, client_name, phone, address, status, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.UserID, sale.ClientName, sale.Phone, sale.Address,
		sale.Status, sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByIDAndUser obtiene la venta solo si pertenece al usuario; nil si no.
func (r *SaleRepo) GetByIDAndUser(ctx context.Context, saleID, userID string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1 AND user_id = $2`
	s, err := scanSale(r.q.QueryRow(ctx, query, saleID, userID))
	if err != nil {
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// GetForUpdate obtiene la venta y bloquea su fila (SELECT FOR UPDATE), de modo
// que las transiciones concurrentes sobre la misma venta se serialicen.
func (r *SaleRepo) GetForUpdate(ctx context.Context, saleID, userID string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1 AND user_id = $2 FOR UPDATE`
	s, err := scanSale(r.q.QueryRow(ctx, query, saleID, userID))
	if err != nil {
		return nil, fmt.Errorf("get sale for update: %w", err)
	}
	return s, nil
}

// UpdateStatus escribe el nuevo estado.
func (r *SaleRepo) UpdateStatus(ctx context.Context, saleID, status string) error {
	query := `UPDATE sales SET status = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(ctx, query, saleID, status)
	if err != nil {
		return fmt.Errorf("update sale status: %w", err)
	}
	return nil
}

// SetShippingValue registra el costo de envío.
func (r *SaleRepo) SetShippingValue(ctx context.Context, saleID string, value decimal.Decimal) error {
	query := `UPDATE sales SET shipping_value = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(ctx, query, saleID, value)
	if err != nil {
		return fmt.Errorf("set shipping value: %w", err)
	}
	return nil
}

// UpsertLine crea la línea (venta, pieza) o incrementa su cantidad si ya existe.
func (r *SaleRepo) UpsertLine(ctx context.Context, line *entity.SalePiece) error {
	query := `
		INSERT INTO sale_pieces (sale_id, piece_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (sale_id, piece_id)
		DO UPDATE SET quantity = sale_pieces.quantity + EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query, line.SaleID, line.PieceID, line.Quantity, line.CreatedAt, line.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert sale line: %w", err)
	}
	return nil
}

// CountLines cuenta las líneas de la venta.
func (r *SaleRepo) CountLines(ctx context.Context, saleID string) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM sale_pieces WHERE sale_id = $1`, saleID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count sale lines: %w", err)
	}
	return count, nil
}

// ListLines devuelve las líneas con descripción y precio de la pieza.
func (r *SaleRepo) ListLines(ctx context.Context, saleID string) ([]repository.SaleLine, error) {
	query := `
		SELECT sp.piece_id, p.description, sp.quantity, p.price
		FROM sale_pieces sp
		JOIN pieces p ON p.id = sp.piece_id
		WHERE sp.sale_id = $1
		ORDER BY sp.created_at`
	rows, err := r.q.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale lines: %w", err)
	}
	defer rows.Close()

	var out []repository.SaleLine
	for rows.Next() {
		var l repository.SaleLine
		if err := rows.Scan(&l.PieceID, &l.Description, &l.Quantity, &l.Price); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

const saleTotalsQuery = `
	SELECT s.id, s.user_id, s.client_name, COALESCE(s.phone, ''), COALESCE(s.address, ''),
		s.status, s.shipping_value, s.created_at, s.updated_at,
		COALESCE(SUM(sp.quantity), 0)::int AS total_pieces,
		COALESCE(SUM(sp.quantity * p.price), 0) AS total_value
	FROM sales s
	LEFT JOIN sale_pieces sp ON sp.sale_id = s.id
	LEFT JOIN pieces p ON p.id = sp.piece_id`

func scanSaleWithTotals(row pgx.Row) (*repository.SaleWithTotals, error) {
	var s repository.SaleWithTotals
	err := row.Scan(
		&s.ID, &s.UserID, &s.ClientName, &s.Phone, &s.Address,
		&s.Status, &s.ShippingValue, &s.CreatedAt, &s.UpdatedAt,
		&s.TotalPieces, &s.TotalValue,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// ListByUser pagina las ventas del usuario con totales derivados, más
// recientes primero. statuses vacío lista todas.
func (r *SaleRepo) ListByUser(ctx context.Context, userID string, statuses []string, limit, offset int) ([]*repository.SaleWithTotals, int, error) {
	where := ` WHERE s.user_id = $1`
	countArgs := []any{userID}
	if len(statuses) > 0 {
		where += ` AND s.status = ANY($2)`
		countArgs = append(countArgs, statuses)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM sales s` + where
	if err := r.q.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sales: %w", err)
	}

	args := append(append([]any{}, countArgs...), limit, offset)
	query := fmt.Sprintf(`%s%s
		GROUP BY s.id
		ORDER BY s.created_at DESC
		LIMIT $%d OFFSET $%d`, saleTotalsQuery, where, len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var out []*repository.SaleWithTotals
	for rows.Next() {
		var s repository.SaleWithTotals
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.ClientName, &s.Phone, &s.Address,
			&s.Status, &s.ShippingValue, &s.CreatedAt, &s.UpdatedAt,
			&s.TotalPieces, &s.TotalValue,
		); err != nil {
			return nil, 0, fmt.Errorf("scan sale: %w", err)
		}
		out = append(out, &s)
	}
	return out, total, rows.Err()
}

// GetWithTotals obtiene la venta del usuario con sus totales; nil si no existe
// o es ajena.
func (r *SaleRepo) GetWithTotals(ctx context.Context, saleID, userID string) (*repository.SaleWithTotals, error) {
	query := saleTotalsQuery + `
		WHERE s.id = $1 AND s.user_id = $2
		GROUP BY s.id`
	s, err := scanSaleWithTotals(r.q.QueryRow(ctx, query, saleID, userID))
	if err != nil {
		return nil, fmt.Errorf("get sale with totals: %w", err)
	}
	return s, nil
}

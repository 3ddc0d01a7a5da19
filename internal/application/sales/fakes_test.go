package sales_test

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Boutique-api/internal/domain"
	"github.com/jhoicas/Boutique-api/internal/domain/entity"
	"github.com/jhoicas/Boutique-api/internal/domain/repository"
)

// memStore almacén en memoria compartido por los repos fake.
// txMu serializa las "transacciones" completas (el equivalente del bloqueo de
// fila de PostgreSQL en estos tests); mu protege cada acceso individual.
type memStore struct {
	mu   sync.Mutex
	txMu sync.Mutex

	users  map[string]*entity.User
	pieces map[string]*entity.Piece
	sales  map[string]*entity.Sale
	lines  map[string]map[string]*entity.SalePiece // saleID -> pieceID
	order  []string                                // IDs de venta en orden de creación
}

func newMemStore() *memStore {
	return &memStore{
		users:  make(map[string]*entity.User),
		pieces: make(map[string]*entity.Piece),
		sales:  make(map[string]*entity.Sale),
		lines:  make(map[string]map[string]*entity.SalePiece),
	}
}

func (s *memStore) addUser(u *entity.User)   { s.users[u.ID] = u }
func (s *memStore) addPiece(p *entity.Piece) { s.pieces[p.ID] = p }

// ── fakeTxRunner ──────────────────────────────────────────────────────────────

type fakeTxRunner struct{ store *memStore }

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.SaleRepository, repository.PieceRepository) error) error {
	r.store.txMu.Lock()
	defer r.store.txMu.Unlock()
	return fn(&fakeSaleRepo{store: r.store}, &fakePieceRepo{store: r.store})
}

// ── fakeUserRepo ──────────────────────────────────────────────────────────────

type fakeUserRepo struct{ store *memStore }

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.users[id], nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

// ── fakePieceRepo ─────────────────────────────────────────────────────────────

type fakePieceRepo struct{ store *memStore }

func (r *fakePieceRepo) Create(_ context.Context, p *entity.Piece) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.pieces[p.ID] = p
	return nil
}

func (r *fakePieceRepo) GetByID(_ context.Context, id string) (*entity.Piece, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p := r.store.pieces[id]
	if p == nil {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePieceRepo) GetByIDAndUser(_ context.Context, id, userID string) (*entity.Piece, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p := r.store.pieces[id]
	if p == nil || p.UserID != userID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePieceRepo) GetForUpdate(ctx context.Context, id string) (*entity.Piece, error) {
	// El bloqueo real lo da txMu en fakeTxRunner.
	return r.GetByID(ctx, id)
}

func (r *fakePieceRepo) SetQuantity(_ context.Context, id string, quantity int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if p := r.store.pieces[id]; p != nil {
		p.Quantity = quantity
	}
	return nil
}

func (r *fakePieceRepo) AddQuantity(_ context.Context, id string, delta int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if p := r.store.pieces[id]; p != nil {
		p.Quantity += delta
	}
	return nil
}

func (r *fakePieceRepo) SetPrice(_ context.Context, id string, price decimal.Decimal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if p := r.store.pieces[id]; p != nil {
		p.Price = price
	}
	return nil
}

func (r *fakePieceRepo) ListByUser(_ context.Context, userID string, _ repository.PieceFilter) ([]*entity.Piece, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Piece
	for _, p := range r.store.pieces {
		if p.UserID == userID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakePieceRepo) Delete(_ context.Context, id, userID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p := r.store.pieces[id]
	if p == nil || p.UserID != userID {
		return domain.ErrPieceNotFound
	}
	delete(r.store.pieces, id)
	return nil
}

// ── fakeSaleRepo ──────────────────────────────────────────────────────────────

type fakeSaleRepo struct{ store *memStore }

func (r *fakeSaleRepo) Create(_ context.Context, s *entity.Sale) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.sales[s.ID] = s
	r.store.order = append(r.store.order, s.ID)
	return nil
}

func (r *fakeSaleRepo) GetByIDAndUser(_ context.Context, saleID, userID string) (*entity.Sale, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	s := r.store.sales[saleID]
	if s == nil || s.UserID != userID {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSaleRepo) GetForUpdate(ctx context.Context, saleID, userID string) (*entity.Sale, error) {
	return r.GetByIDAndUser(ctx, saleID, userID)
}

func (r *fakeSaleRepo) UpdateStatus(_ context.Context, saleID, status string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if s := r.store.sales[saleID]; s != nil {
		s.Status = status
	}
	return nil
}

func (r *fakeSaleRepo) SetShippingValue(_ context.Context, saleID string, value decimal.Decimal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if s := r.store.sales[saleID]; s != nil {
		v := value
		s.ShippingValue = &v
	}
	return nil
}

func (r *fakeSaleRepo) UpsertLine(_ context.Context, line *entity.SalePiece) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	byPiece := r.store.lines[line.SaleID]
	if byPiece == nil {
		byPiece = make(map[string]*entity.SalePiece)
		r.store.lines[line.SaleID] = byPiece
	}
	if existing, ok := byPiece[line.PieceID]; ok {
		existing.Quantity += line.Quantity
		return nil
	}
	cp := *line
	byPiece[line.PieceID] = &cp
	return nil
}

func (r *fakeSaleRepo) CountLines(_ context.Context, saleID string) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return len(r.store.lines[saleID]), nil
}

func (r *fakeSaleRepo) ListLines(_ context.Context, saleID string) ([]repository.SaleLine, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []repository.SaleLine
	for pieceID, line := range r.store.lines[saleID] {
		sl := repository.SaleLine{PieceID: pieceID, Quantity: line.Quantity, Price: decimal.Zero}
		if p := r.store.pieces[pieceID]; p != nil {
			sl.Description = p.Description
			sl.Price = p.Price
		}
		out = append(out, sl)
	}
	return out, nil
}

func (r *fakeSaleRepo) withTotalsLocked(s *entity.Sale) *repository.SaleWithTotals {
	out := &repository.SaleWithTotals{Sale: *s, TotalValue: decimal.Zero}
	for pieceID, line := range r.store.lines[s.ID] {
		out.TotalPieces += line.Quantity
		if p := r.store.pieces[pieceID]; p != nil {
			out.TotalValue = out.TotalValue.Add(p.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}
	}
	return out
}

func (r *fakeSaleRepo) ListByUser(_ context.Context, userID string, statuses []string, limit, offset int) ([]*repository.SaleWithTotals, int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	match := func(status string) bool {
		if len(statuses) == 0 {
			return true
		}
		for _, st := range statuses {
			if st == status {
				return true
			}
		}
		return false
	}
	// Más recientes primero: orden de creación invertido.
	var filtered []*repository.SaleWithTotals
	for i := len(r.store.order) - 1; i >= 0; i-- {
		s := r.store.sales[r.store.order[i]]
		if s.UserID == userID && match(s.Status) {
			filtered = append(filtered, r.withTotalsLocked(s))
		}
	}
	total := len(filtered)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return filtered[offset:end], total, nil
}

func (r *fakeSaleRepo) GetWithTotals(_ context.Context, saleID, userID string) (*repository.SaleWithTotals, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	s := r.store.sales[saleID]
	if s == nil || s.UserID != userID {
		return nil, nil
	}
	return r.withTotalsLocked(s), nil
}

package inventory_test

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Boutique-api/internal/domain"
	"github.com/jhoicas/Boutique-api/internal/domain/entity"
	"github.com/jhoicas/Boutique-api/internal/domain/repository"
)

// fakeCategoryRepo árbol de categorías en memoria.
type fakeCategoryRepo struct {
	byID map[string]*entity.Category
}

func newFakeCategoryRepo(cats ...*entity.Category) *fakeCategoryRepo {
	r := &fakeCategoryRepo{byID: make(map[string]*entity.Category)}
	for _, c := range cats {
		r.byID[c.ID] = c
	}
	return r
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	return r.byID[id], nil
}

func (r *fakeCategoryRepo) HasChildren(_ context.Context, id string) (bool, error) {
	for _, c := range r.byID {
		if c.ParentID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level < out[j].Level
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *fakeCategoryRepo) CreateMany(_ context.Context, cats []*entity.Category) error {
	for _, c := range cats {
		if _, ok := r.byID[c.ID]; !ok {
			r.byID[c.ID] = c
		}
	}
	return nil
}

func (r *fakeCategoryRepo) MarkLeaves(_ context.Context) (int64, error) { return 0, nil }

// fakePieceRepo piezas en memoria con orden de inserción estable.
type fakePieceRepo struct {
	byID  map[string]*entity.Piece
	order []string
}

func newFakePieceRepo() *fakePieceRepo {
	return &fakePieceRepo{byID: make(map[string]*entity.Piece)}
}

func (r *fakePieceRepo) Create(_ context.Context, piece *entity.Piece) error {
	cp := *piece
	r.byID[piece.ID] = &cp
	r.order = append(r.order, piece.ID)
	return nil
}

func (r *fakePieceRepo) GetByID(_ context.Context, id string) (*entity.Piece, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePieceRepo) GetByIDAndUser(_ context.Context, id, userID string) (*entity.Piece, error) {
	p, ok := r.byID[id]
	if !ok || p.UserID != userID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePieceRepo) GetForUpdate(ctx context.Context, id string) (*entity.Piece, error) {
	return r.GetByID(ctx, id)
}

func (r *fakePieceRepo) SetQuantity(_ context.Context, id string, quantity int) error {
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrPieceNotFound
	}
	p.Quantity = quantity
	return nil
}

func (r *fakePieceRepo) AddQuantity(_ context.Context, id string, delta int) error {
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrPieceNotFound
	}
	p.Quantity += delta
	return nil
}

func (r *fakePieceRepo) SetPrice(_ context.Context, id string, price decimal.Decimal) error {
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrPieceNotFound
	}
	p.Price = price
	return nil
}

func (r *fakePieceRepo) ListByUser(_ context.Context, userID string, filter repository.PieceFilter) ([]*entity.Piece, error) {
	var out []*entity.Piece
	for _, id := range r.order {
		p := r.byID[id]
		if p.UserID != userID {
			continue
		}
		if filter.CategoryID != "" && p.CategoryID != filter.CategoryID {
			continue
		}
		if filter.SubcategoryID != "" && p.SubcategoryID != filter.SubcategoryID {
			continue
		}
		if filter.GenderID != "" && p.GenderID != filter.GenderID {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(p.Description), filter.Search) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakePieceRepo) Delete(_ context.Context, id, userID string) error {
	p, ok := r.byID[id]
	if !ok || p.UserID != userID {
		return domain.ErrPieceNotFound
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Boutique-api/internal/application/catalog"
	"github.com/jhoicas/Boutique-api/internal/domain"
	"github.com/jhoicas/Boutique-api/internal/domain/entity"
)

// fakeCategoryRepo árbol de categorías en memoria para los tests del validador.
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

// Árbol de prueba:
//
//	camisas ── camisetas ── femenina (hoja)
//	calzas  ── jeans (sin hijas, sin marca de hoja)
func testTree() *fakeCategoryRepo {
	return newFakeCategoryRepo(
		&entity.Category{ID: "camisas", Name: "Camisas", Level: 1},
		&entity.Category{ID: "camisetas", Name: "Camisetas", ParentID: "camisas", Level: 2},
		&entity.Category{ID: "femenina", Name: "Femenina", ParentID: "camisetas", Level: 3, IsLeaf: true},
		&entity.Category{ID: "calzas", Name: "Calças", Level: 1},
		&entity.Category{ID: "jeans", Name: "Jeans", ParentID: "calzas", Level: 2},
	)
}

func TestValidatePath(t *testing.T) {
	v := catalog.NewValidator(testTree())
	ctx := context.Background()

	cases := []struct {
		name    string
		path    []string
		wantErr error
	}{
		{"ruta completa hasta hoja", []string{"camisas", "camisetas", "femenina"}, nil},
		{"termina en nodo sin hijas aunque no esté marcado hoja", []string{"calzas", "jeans"}, nil},
		{"vacía", nil, domain.ErrEmptyPath},
		{"categoría inexistente", []string{"camisas", "no-existe"}, domain.ErrCategoryNotFound},
		{"cadena rota: jeans no es hija de camisas", []string{"camisas", "jeans"}, domain.ErrBrokenHierarchy},
		{"termina en nodo intermedio", []string{"camisas", "camisetas"}, domain.ErrNotPlaceable},
		{"raíz con hijas", []string{"camisas"}, domain.ErrNotPlaceable},
		{"más de tres niveles", []string{"camisas", "camisetas", "femenina", "extra"}, domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.ValidatePath(ctx, tc.path)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

// Validar dos veces la misma ruta da el mismo resultado y no toca el árbol.
func TestValidatePath_Idempotente(t *testing.T) {
	repo := testTree()
	v := catalog.NewValidator(repo)
	ctx := context.Background()

	before := len(repo.byID)
	require.NoError(t, v.ValidatePath(ctx, []string{"camisas", "camisetas", "femenina"}))
	require.NoError(t, v.ValidatePath(ctx, []string{"camisas", "camisetas", "femenina"}))

	err1 := v.ValidatePath(ctx, []string{"camisas", "jeans"})
	err2 := v.ValidatePath(ctx, []string{"camisas", "jeans"})
	assert.ErrorIs(t, err1, domain.ErrBrokenHierarchy)
	assert.ErrorIs(t, err2, domain.ErrBrokenHierarchy)

	assert.Equal(t, before, len(repo.byID), "el validador no muta el árbol")
}

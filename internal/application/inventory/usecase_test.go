package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Boutique-api/internal/application/catalog"
	"github.com/jhoicas/Boutique-api/internal/application/dto"
	"github.com/jhoicas/Boutique-api/internal/application/inventory"
	"github.com/jhoicas/Boutique-api/internal/domain"
	"github.com/jhoicas/Boutique-api/internal/domain/entity"
)

const (
	userAna  = "user-ana"
	userOtro = "user-otro"
)

// Árbol de prueba:
//
//	camisas ── camisetas ── femenina (hoja)
//	vestido ── femdir (hoja directa de nivel 2)
func testCategories() *fakeCategoryRepo {
	return newFakeCategoryRepo(
		&entity.Category{ID: "camisas", Name: "Camisas", Level: 1},
		&entity.Category{ID: "camisetas", Name: "Camisetas", ParentID: "camisas", Level: 2},
		&entity.Category{ID: "femenina", Name: "Femenina", ParentID: "camisetas", Level: 3, IsLeaf: true},
		&entity.Category{ID: "vestido", Name: "Vestido", Level: 1},
		&entity.Category{ID: "femdir", Name: "Femenina", ParentID: "vestido", Level: 2, IsLeaf: true},
	)
}

func newTestUseCase() (*inventory.UseCase, *fakePieceRepo) {
	cats := testCategories()
	pieces := newFakePieceRepo()
	uc := inventory.NewUseCase(catalog.NewValidator(cats), cats, pieces)
	return uc, pieces
}

func TestCreatePiece(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	price := decimal.NewFromInt(120)
	piece, err := uc.CreatePiece(ctx, userAna, dto.CreatePieceRequest{
		CategoryPath: []string{"camisas", "camisetas", "femenina"},
		Description:  "  Camiseta blanca  ",
		Quantity:     5,
		Price:        &price,
	})
	require.NoError(t, err)

	assert.Equal(t, "Camiseta blanca", piece.Description, "la descripción se guarda sin espacios")
	assert.Equal(t, 5, piece.Quantity)
	assert.True(t, price.Equal(piece.Price))
	assert.Equal(t, []string{"camisas", "camisetas", "femenina"}, piece.CategoryPath)
}

func TestCreatePiece_Defaults(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	piece, err := uc.CreatePiece(ctx, userAna, dto.CreatePieceRequest{
		CategoryPath: []string{"vestido", "femdir"},
		Description:  "Vestido rojo",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, piece.Quantity, "cantidad por defecto 1")
	assert.True(t, piece.Price.IsZero(), "precio por defecto 0")
}

func TestCreatePiece_Validaciones(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	cases := []struct {
		name    string
		in      dto.CreatePieceRequest
		wantErr error
	}{
		{
			"descripción vacía",
			dto.CreatePieceRequest{CategoryPath: []string{"vestido", "femdir"}, Description: "   "},
			domain.ErrInvalidInput,
		},
		{
			"cantidad negativa",
			dto.CreatePieceRequest{CategoryPath: []string{"vestido", "femdir"}, Description: "x", Quantity: -1},
			domain.ErrInvalidQty,
		},
		{
			"ruta vacía",
			dto.CreatePieceRequest{Description: "x"},
			domain.ErrEmptyPath,
		},
		{
			"ruta a nodo intermedio",
			dto.CreatePieceRequest{CategoryPath: []string{"camisas", "camisetas"}, Description: "x"},
			domain.ErrNotPlaceable,
		},
		{
			"categoría inexistente",
			dto.CreatePieceRequest{CategoryPath: []string{"no-existe"}, Description: "x"},
			domain.ErrCategoryNotFound,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.CreatePiece(ctx, userAna, tc.in)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	neg := decimal.NewFromInt(-1)
	_, err := uc.CreatePiece(ctx, userAna, dto.CreatePieceRequest{
		CategoryPath: []string{"vestido", "femdir"}, Description: "x", Price: &neg,
	})
	assert.ErrorIs(t, err, domain.ErrNegativeValue, "precio negativo se rechaza")
}

func TestListPieces_Filtros(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	mustCreate := func(userID, desc string, path []string) {
		t.Helper()
		_, err := uc.CreatePiece(ctx, userID, dto.CreatePieceRequest{CategoryPath: path, Description: desc})
		require.NoError(t, err)
	}
	mustCreate(userAna, "camiseta blanca", []string{"camisas", "camisetas", "femenina"})
	mustCreate(userAna, "vestido rojo", []string{"vestido", "femdir"})
	mustCreate(userOtro, "camiseta ajena", []string{"camisas", "camisetas", "femenina"})

	all, err := uc.ListPieces(ctx, userAna, dto.FilterPiecesQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 2, "solo piezas propias")

	byCat, err := uc.ListPieces(ctx, userAna, dto.FilterPiecesQuery{CategoryID: "camisas"})
	require.NoError(t, err)
	require.Len(t, byCat, 1)
	assert.Equal(t, "camiseta blanca", byCat[0].Description)

	bySearch, err := uc.ListPieces(ctx, userAna, dto.FilterPiecesQuery{Search: "ROJO"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1, "la búsqueda ignora mayúsculas")
	assert.Equal(t, "vestido rojo", bySearch[0].Description)
}

func TestSetQuantityYPrecio_PropiedadComoNoEncontrada(t *testing.T) {
	uc, repo := newTestUseCase()
	ctx := context.Background()

	piece, err := uc.CreatePiece(ctx, userAna, dto.CreatePieceRequest{
		CategoryPath: []string{"vestido", "femdir"}, Description: "vestido", Quantity: 3,
	})
	require.NoError(t, err)

	require.NoError(t, uc.SetQuantity(ctx, userAna, piece.ID, 0))
	stored, _ := repo.GetByID(ctx, piece.ID)
	assert.Equal(t, 0, stored.Quantity, "cero es un ajuste válido")

	assert.ErrorIs(t, uc.SetQuantity(ctx, userAna, piece.ID, -1), domain.ErrNegativeValue)
	assert.ErrorIs(t, uc.SetQuantity(ctx, userOtro, piece.ID, 5), domain.ErrPieceNotFound,
		"pieza ajena se reporta como no encontrada")

	require.NoError(t, uc.SetPrice(ctx, userAna, piece.ID, decimal.NewFromInt(80)))
	assert.ErrorIs(t, uc.SetPrice(ctx, userOtro, piece.ID, decimal.NewFromInt(80)), domain.ErrPieceNotFound)
	assert.ErrorIs(t, uc.SetPrice(ctx, userAna, piece.ID, decimal.NewFromInt(-80)), domain.ErrNegativeValue)
}

func TestDeletePiece(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	piece, err := uc.CreatePiece(ctx, userAna, dto.CreatePieceRequest{
		CategoryPath: []string{"vestido", "femdir"}, Description: "vestido",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.DeletePiece(ctx, userOtro, piece.ID), domain.ErrPieceNotFound)
	require.NoError(t, uc.DeletePiece(ctx, userAna, piece.ID))

	all, err := uc.ListPieces(ctx, userAna, dto.FilterPiecesQuery{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCategoryTree(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	piece, err := uc.CreatePiece(ctx, userAna, dto.CreatePieceRequest{
		CategoryPath: []string{"camisas", "camisetas", "femenina"},
		Description:  "camiseta blanca",
		Quantity:     4,
	})
	require.NoError(t, err)

	roots, err := uc.CategoryTree(ctx, userAna)
	require.NoError(t, err)
	require.Len(t, roots, 2, "dos raíces: camisas y vestido")

	var camisas *dto.TreeNode
	for _, r := range roots {
		if r.ID == "camisas" {
			camisas = r
		}
	}
	require.NotNil(t, camisas)
	require.Len(t, camisas.Children, 1)
	camisetas := camisas.Children[0]
	require.Len(t, camisetas.Children, 1)
	femenina := camisetas.Children[0]

	require.Len(t, femenina.Children, 1, "la pieza cuelga del nivel más profundo de su ruta")
	leaf := femenina.Children[0]
	assert.Equal(t, piece.ID, leaf.ID)
	assert.Equal(t, "camiseta blanca", leaf.Name)
	require.NotNil(t, leaf.Quantity)
	assert.Equal(t, 4, *leaf.Quantity)
	assert.Nil(t, camisetas.Quantity, "los nodos de categoría no llevan cantidad")
}

// ── Ledger ────────────────────────────────────────────────────────────────────

func TestReserve(t *testing.T) {
	_, repo := newTestUseCase()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Piece{ID: "p1", UserID: userAna, Description: "x", Quantity: 10}))

	remaining, err := inventory.Reserve(ctx, repo, "p1", 4)
	require.NoError(t, err)
	assert.Equal(t, 6, remaining)

	remaining, err = inventory.Reserve(ctx, repo, "p1", 6)
	require.NoError(t, err)
	assert.Equal(t, 0, remaining, "reservar hasta cero exacto es válido")

	_, err = inventory.Reserve(ctx, repo, "p1", 1)
	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 0, insufficient.Available)
	assert.Equal(t, 1, insufficient.Requested)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	_, err = inventory.Reserve(ctx, repo, "p1", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidQty)
	_, err = inventory.Reserve(ctx, repo, "no-existe", 1)
	assert.ErrorIs(t, err, domain.ErrPieceNotFound)
}

func TestRelease(t *testing.T) {
	_, repo := newTestUseCase()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Piece{ID: "p1", UserID: userAna, Description: "x", Quantity: 2}))

	require.NoError(t, inventory.Release(ctx, repo, "p1", 3))
	p, _ := repo.GetByID(ctx, "p1")
	assert.Equal(t, 5, p.Quantity)

	assert.ErrorIs(t, inventory.Release(ctx, repo, "p1", 0), domain.ErrInvalidQty)
	assert.ErrorIs(t, inventory.Release(ctx, repo, "no-existe", 1), domain.ErrPieceNotFound)
}

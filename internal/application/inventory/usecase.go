// Package inventory contiene los casos de uso del inventario de piezas:
// alta validada contra el árbol de categorías, listados, ajustes
// administrativos y el ledger de stock (ledger.go).
package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Boutique-api/internal/application/catalog"
	"github.com/jhoicas/Boutique-api/internal/application/dto"
	"github.com/jhoicas/Boutique-api/internal/domain"
	"github.com/jhoicas/Boutique-api/internal/domain/entity"
	"github.com/jhoicas/Boutique-api/internal/domain/repository"
	"github.com/jhoicas/Boutique-api/pkg/textutil"
)

// UseCase casos de uso de inventario.
type UseCase struct {
	validator  *catalog.Validator
	categories repository.CategoryRepository
	pieces     repository.PieceRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(validator *catalog.Validator, categories repository.CategoryRepository, pieces repository.PieceRepository) *UseCase {
	return &UseCase{validator: validator, categories: categories, pieces: pieces}
}

// CreatePiece valida la ruta de categorías y persiste la pieza.
// Cantidad por defecto 1; precio por defecto 0.
func (uc *UseCase) CreatePiece(ctx context.Context, userID string, in dto.CreatePieceRequest) (*dto.PieceResponse, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, fmt.Errorf("%w: la descripción es obligatoria", domain.ErrInvalidInput)
	}
	quantity := in.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, domain.ErrInvalidQty
	}
	price := decimal.Zero
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrNegativeValue
		}
		price = *in.Price
	}

	if err := uc.validator.ValidatePath(ctx, in.CategoryPath); err != nil {
		return nil, err
	}

	now := time.Now()
	piece := &entity.Piece{
		ID:           uuid.New().String(),
		UserID:       userID,
		Description:  description,
		Quantity:     quantity,
		Price:        price,
		CategoryID:   in.CategoryPath[0],
		CategoryPath: strings.Join(in.CategoryPath, "/"),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if len(in.CategoryPath) > 1 {
		piece.SubcategoryID = in.CategoryPath[1]
	}
	if len(in.CategoryPath) > 2 {
		piece.GenderID = in.CategoryPath[2]
	}

	if err := uc.pieces.Create(ctx, piece); err != nil {
		return nil, fmt.Errorf("crear pieza: %w", err)
	}
	return toPieceResponse(piece), nil
}

// ListPieces filtra las piezas del usuario por niveles de la ruta y texto.
// La búsqueda por texto es insensible a mayúsculas y acentos.
func (uc *UseCase) ListPieces(ctx context.Context, userID string, q dto.FilterPiecesQuery) ([]dto.PieceResponse, error) {
	filter := repository.PieceFilter{
		CategoryID:    q.CategoryID,
		SubcategoryID: q.SubcategoryID,
		GenderID:      q.GenderID,
		Search:        textutil.Fold(strings.TrimSpace(q.Search)),
	}
	pieces, err := uc.pieces.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("listar piezas: %w", err)
	}
	out := make([]dto.PieceResponse, 0, len(pieces))
	for _, p := range pieces {
		out = append(out, *toPieceResponse(p))
	}
	return out, nil
}

// SetQuantity ajuste administrativo de cantidad. No pasa por el ledger:
// fija el valor absoluto (>= 0) sin relación con ninguna venta.
func (uc *UseCase) SetQuantity(ctx context.Context, userID, pieceID string, quantity int) error {
	if quantity < 0 {
		return domain.ErrNegativeValue
	}
	piece, err := uc.pieces.GetByIDAndUser(ctx, pieceID, userID)
	if err != nil {
		return fmt.Errorf("consultar pieza: %w", err)
	}
	if piece == nil {
		return domain.ErrPieceNotFound
	}
	return uc.pieces.SetQuantity(ctx, pieceID, quantity)
}

// SetPrice actualiza el precio de venta (>= 0).
func (uc *UseCase) SetPrice(ctx context.Context, userID, pieceID string, price decimal.Decimal) error {
	if price.IsNegative() {
		return domain.ErrNegativeValue
	}
	piece, err := uc.pieces.GetByIDAndUser(ctx, pieceID, userID)
	if err != nil {
		return fmt.Errorf("consultar pieza: %w", err)
	}
	if piece == nil {
		return domain.ErrPieceNotFound
	}
	return uc.pieces.SetPrice(ctx, pieceID, price)
}

// DeletePiece elimina una pieza del usuario (operación administrativa).
func (uc *UseCase) DeletePiece(ctx context.Context, userID, pieceID string) error {
	return uc.pieces.Delete(ctx, pieceID, userID)
}

// CategoryTree arma el árbol completo de categorías con las piezas del usuario
// colgando del nodo donde fueron archivadas.
func (uc *UseCase) CategoryTree(ctx context.Context, userID string) ([]*dto.TreeNode, error) {
	categories, err := uc.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar categorías: %w", err)
	}
	pieces, err := uc.pieces.ListByUser(ctx, userID, repository.PieceFilter{})
	if err != nil {
		return nil, fmt.Errorf("listar piezas: %w", err)
	}

	nodes := make(map[string]*dto.TreeNode, len(categories))
	var roots []*dto.TreeNode
	for _, c := range categories {
		nodes[c.ID] = &dto.TreeNode{ID: c.ID, Name: c.Name}
	}
	for _, c := range categories {
		node := nodes[c.ID]
		if c.ParentID == "" {
			roots = append(roots, node)
			continue
		}
		if parent, ok := nodes[c.ParentID]; ok {
			parent.Children = append(parent.Children, node)
		}
	}
	for _, p := range pieces {
		// La pieza cuelga del nivel más profundo de su ruta.
		leafID := p.CategoryID
		if p.SubcategoryID != "" {
			leafID = p.SubcategoryID
		}
		if p.GenderID != "" {
			leafID = p.GenderID
		}
		if leaf, ok := nodes[leafID]; ok {
			qty := p.Quantity
			leaf.Children = append(leaf.Children, &dto.TreeNode{
				ID:       p.ID,
				Name:     p.Description,
				Quantity: &qty,
			})
		}
	}
	return roots, nil
}

func toPieceResponse(p *entity.Piece) *dto.PieceResponse {
	return &dto.PieceResponse{
		ID:           p.ID,
		Description:  p.Description,
		Quantity:     p.Quantity,
		Price:        p.Price,
		CategoryPath: p.PathIDs(),
		CreatedAt:    p.CreatedAt,
	}
}

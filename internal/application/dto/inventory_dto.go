package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePieceRequest alta de una pieza bajo una ruta de categorías validada.
// Quantity por defecto 1; Price por defecto 0.
type CreatePieceRequest struct {
	CategoryPath []string         `json:"category_path"`
	Description  string           `json:"description"`
	Quantity     int              `json:"quantity"`
	Price        *decimal.Decimal `json:"price"`
}

// PieceResponse pieza del inventario.
type PieceResponse struct {
	ID           string          `json:"id"`
	Description  string          `json:"description"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	CategoryPath []string        `json:"category_path"`
	CreatedAt    time.Time       `json:"created_at"`
}

// FilterPiecesQuery filtros del listado de piezas.
type FilterPiecesQuery struct {
	CategoryID    string `query:"category_id"`
	SubcategoryID string `query:"subcategory_id"`
	GenderID      string `query:"gender_id"`
	Search        string `query:"search"`
}

// SetQuantityRequest ajuste administrativo de cantidad (>= 0).
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SetPriceRequest actualización de precio (>= 0).
type SetPriceRequest struct {
	Price decimal.Decimal `json:"price"`
}

// TreeNode nodo del árbol de categorías; las piezas del usuario cuelgan como
// hojas (Quantity != nil) del nodo donde fueron archivadas.
type TreeNode struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Quantity *int        `json:"quantity,omitempty"`
	Children []*TreeNode `json:"children,omitempty"`
}

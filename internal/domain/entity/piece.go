package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Piece representa una prenda del inventario del usuario.
// Quantity nunca es negativa: solo la muta el ledger de stock (reserva/liberación
// bajo transacción) o el ajuste administrativo de cantidad.
// CategoryPath guarda la ruta realmente usada al crearla (1 a 3 IDs, separados por /).
type Piece struct {
	ID            string
	UserID        string
	Description   string
	Quantity      int
	Price         decimal.Decimal // precio de venta, >= 0 (0 por defecto)
	CategoryID    string          // nivel 1
	SubcategoryID string          // nivel 2, vacío si la ruta termina antes
	GenderID      string          // nivel 3, vacío si la ruta termina antes
	CategoryPath  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PathIDs devuelve la ruta como slice ordenado de IDs no vacíos.
func (p *Piece) PathIDs() []string {
	ids := []string{p.CategoryID}
	if p.SubcategoryID != "" {
		ids = append(ids, p.SubcategoryID)
	}
	if p.GenderID != "" {
		ids = append(ids, p.GenderID)
	}
	return ids
}

package entity

import "time"

// Category representa un nodo del árbol de categorías de ropa (hasta 3 niveles:
// categoría, subcategoría, género). El árbol se siembra una vez (cmd/seed) y es
// de solo lectura en runtime.
type Category struct {
	ID        string
	Name      string
	ParentID  string // vacío si es raíz
	Level     int    // 1..3, raíz = 1
	IsLeaf    bool   // marcada explícitamente como no subdividible
	CreatedAt time.Time
}

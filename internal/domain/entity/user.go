package entity

import "time"

// User cuenta de la comerciante dueña del inventario y sus ventas.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

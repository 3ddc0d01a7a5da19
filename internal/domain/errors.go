package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
// El transporte HTTP los mapea a 400/404/409/500 según su familia.
var (
	// Validación (400): la petición no puede tener éxito sin modificarse.
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrEmptyPath     = errors.New("ruta de categorías vacía")
	ErrInvalidQty    = errors.New("la cantidad debe ser mayor que cero")
	ErrNegativeValue = errors.New("el valor no puede ser negativo")
	ErrWeakPassword  = errors.New("la contraseña no cumple los requisitos mínimos")

	// No encontrado (404). Venta/pieza de otro usuario se reporta igual que
	// inexistente para no filtrar existencia.
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrUserNotFound     = errors.New("usuario no encontrado")
	ErrPieceNotFound    = errors.New("pieza no encontrada")
	ErrSaleNotFound     = errors.New("venta no encontrada")
	ErrCategoryNotFound = errors.New("categoría no encontrada")

	// Conflicto (409): regla de negocio violada dado el estado actual.
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrBrokenHierarchy    = errors.New("la ruta de categorías no forma una cadena padre-hijo")
	ErrNotPlaceable       = errors.New("la categoría final tiene subdivisiones y no admite piezas")
	ErrSaleClosed         = errors.New("la venta ya está cerrada")
	ErrSaleWithoutPieces  = errors.New("la venta no tiene piezas")
	ErrInvalidTransition  = errors.New("transición de estado inválida para el estado actual")
	ErrShippingValueUnset = errors.New("la venta no tiene valor de envío definido")
	ErrPieceInUse         = errors.New("la pieza tiene ventas asociadas")

	// No autorizado / acceso.
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
)

// InsufficientStockError detalla un rechazo de reserva: cuánto había disponible
// y cuánto se pidió. Unwrap permite errors.Is(err, ErrInsufficientStock).
type InsufficientStockError struct {
	PieceID   string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para pieza %s: disponible %d, solicitado %d",
		e.PieceID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// IsValidation indica si el error pertenece a la familia de validación (HTTP 400).
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrEmptyPath) ||
		errors.Is(err, ErrInvalidQty) ||
		errors.Is(err, ErrNegativeValue) ||
		errors.Is(err, ErrWeakPassword)
}

// IsNotFound indica si el error pertenece a la familia not-found (HTTP 404).
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrPieceNotFound) ||
		errors.Is(err, ErrSaleNotFound) ||
		errors.Is(err, ErrCategoryNotFound)
}

// IsConflict indica si el error pertenece a la familia de conflicto (HTTP 409).
func IsConflict(err error) bool {
	return errors.Is(err, ErrEmailAlreadyExists) ||
		errors.Is(err, ErrInsufficientStock) ||
		errors.Is(err, ErrBrokenHierarchy) ||
		errors.Is(err, ErrNotPlaceable) ||
		errors.Is(err, ErrSaleClosed) ||
		errors.Is(err, ErrSaleWithoutPieces) ||
		errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, ErrShippingValueUnset) ||
		errors.Is(err, ErrPieceInUse)
}

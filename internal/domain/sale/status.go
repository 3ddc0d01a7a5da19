// Package sale contiene las reglas puras del ciclo de vida de una venta.
// La cadena de estados es estrictamente hacia adelante, sin saltos ni retrocesos:
//
//	open-no-pieces → open-awaiting-payment → calculate-shipping →
//	shipping-awaiting-payment → shipping-date-pending → closed
package sale

// Estados de una venta, en orden de avance.
const (
	StatusOpenNoPieces            = "open-no-pieces"
	StatusOpenAwaitingPayment     = "open-awaiting-payment"
	StatusCalculateShipping       = "calculate-shipping"
	StatusShippingAwaitingPayment = "shipping-awaiting-payment"
	StatusShippingDatePending     = "shipping-date-pending"
	StatusClosed                  = "closed"
)

// sequence define el orden total de la cadena.
var sequence = []string{
	StatusOpenNoPieces,
	StatusOpenAwaitingPayment,
	StatusCalculateShipping,
	StatusShippingAwaitingPayment,
	StatusShippingDatePending,
	StatusClosed,
}

// AllStatuses devuelve la cadena completa en orden (copia).
func AllStatuses() []string {
	out := make([]string, len(sequence))
	copy(out, sequence)
	return out
}

// IsValid indica si s es uno de los estados conocidos.
func IsValid(s string) bool {
	return rank(s) >= 0
}

// IsClosed indica si la venta está en el estado terminal.
func IsClosed(s string) bool { return s == StatusClosed }

// Next devuelve el estado siguiente en la cadena. ok es false si s es
// terminal o desconocido.
func Next(s string) (next string, ok bool) {
	i := rank(s)
	if i < 0 || i == len(sequence)-1 {
		return "", false
	}
	return sequence[i+1], true
}

// CanTransition valida un paso from→to: solo el inmediato siguiente es legal.
// Cualquier retroceso o salto queda rechazado.
func CanTransition(from, to string) bool {
	next, ok := Next(from)
	return ok && next == to
}

func rank(s string) int {
	for i, st := range sequence {
		if st == s {
			return i
		}
	}
	return -1
}

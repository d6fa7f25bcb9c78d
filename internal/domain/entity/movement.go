package entity

import "time"

// Tipos de movimiento del historial de stock. La dirección va en el tipo,
// nunca en el signo: Quantity siempre se guarda positiva.
const (
	MovementInbound            = "INBOUND"             // entrada de stock (compra, ingreso inicial)
	MovementOutbound           = "OUTBOUND"            // salida de stock (venta, retiro)
	MovementPositiveAdjustment = "POSITIVE_ADJUSTMENT" // ajuste absoluto que suma
	MovementNegativeAdjustment = "NEGATIVE_ADJUSTMENT" // ajuste absoluto que resta
)

// ValidMovementKind indica si kind es uno de los tipos conocidos.
func ValidMovementKind(kind string) bool {
	switch kind {
	case MovementInbound, MovementOutbound, MovementPositiveAdjustment, MovementNegativeAdjustment:
		return true
	}
	return false
}

// MovementEntry es una fila del historial de movimientos: registro inmutable,
// solo-append. Corregir un movimiento erróneo se modela con un movimiento
// compensatorio de tipo opuesto, nunca editando el historial.
type MovementEntry struct {
	ID        string
	ProductID string
	UserID    string // actor que originó el movimiento
	Kind      string
	Quantity  int64 // magnitud, siempre > 0
	CreatedAt time.Time
}

// MovementRecord es una entrada del historial con su producto y actor
// embebidos (join en la consulta) para los listados paginados.
type MovementRecord struct {
	MovementEntry
	ProductSKU  string
	ProductName string
	Username    string
	UserName    string
}

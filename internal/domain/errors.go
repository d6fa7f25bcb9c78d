package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). Los handlers HTTP los
// traducen a códigos de estado con errors.Is / errors.As.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInvalidQuantity    = errors.New("cantidad inválida")
	ErrInactiveProduct    = errors.New("producto inactivo")
	ErrCategoryInUse      = errors.New("la categoría tiene productos activos asociados")
	ErrVersionConflict    = errors.New("conflicto de versión: el registro fue modificado por otra operación")
	ErrInvalidLedgerEntry = errors.New("movimiento inválido para el historial")
)

// InsufficientStockError indica que una salida (OUT) excede el stock actual.
// Lleva las cantidades para que el caller construya un mensaje preciso.
type InsufficientStockError struct {
	Current   int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: disponible %d, solicitado %d", e.Current, e.Requested)
}

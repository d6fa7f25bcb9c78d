package entity

import "time"

// Category representa una categoría de productos. Referencia normalizada:
// los productos apuntan por CategoryID, sin campo de texto paralelo.
type Category struct {
	ID          string
	Name        string // único (sin distinguir mayúsculas ni acentos)
	Description string
	Active      bool // soft delete
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

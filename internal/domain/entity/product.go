package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// CurrentQuantity solo se modifica vía el servicio de ajuste de stock (nunca
// desde el CRUD de catálogo); Version es el token de concurrencia optimista
// que se compara e incrementa en cada escritura.
type Product struct {
	ID              string
	SKU             string // código único
	Name            string
	Description     string
	CategoryID      string
	Price           decimal.Decimal // precio unitario
	InitialQuantity int64           // se fija una sola vez, al crear
	CurrentQuantity int64           // invariante: >= 0
	Active          bool            // soft delete
	Version         int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasStock indica si el producto tiene al menos una unidad disponible.
func (p *Product) HasStock() bool {
	return p.CurrentQuantity > 0
}

// HasEnoughStock indica si hay stock suficiente para una salida de qty unidades.
func (p *Product) HasEnoughStock(qty int64) bool {
	return p.CurrentQuantity >= qty
}

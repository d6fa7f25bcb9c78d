package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products. La cantidad inicial se
// fija aquí una única vez; después el stock solo cambia vía movimientos.
type CreateProductRequest struct {
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	CategoryID      string          `json:"category_id"`
	Price           decimal.Decimal `json:"price"`
	InitialQuantity int64           `json:"initial_quantity"`
}

// UpdateProductRequest body para PUT /api/products/:id. Campos opcionales;
// la cantidad no se toca desde aquí (se maneja vía stock).
type UpdateProductRequest struct {
	SKU         *string          `json:"sku,omitempty"`
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	CategoryID  *string          `json:"category_id,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
}

// SetStockRequest body para PATCH /api/products/:id/stock (cantidad absoluta).
type SetStockRequest struct {
	Quantity int64 `json:"quantity"`
}

// RegisterMovementRequest body para POST /api/products/:id/movements.
// Kind: INBOUND o OUTBOUND; la cantidad es la magnitud, siempre positiva.
type RegisterMovementRequest struct {
	Kind     string `json:"kind"`
	Quantity int64  `json:"quantity"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID              string          `json:"id"`
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	CategoryID      string          `json:"category_id"`
	Price           decimal.Decimal `json:"price"`
	InitialQuantity int64           `json:"initial_quantity"`
	CurrentQuantity int64           `json:"current_quantity"`
	Active          bool            `json:"active"`
	Version         int64           `json:"version"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// InventoryValueResponse valor total del inventario activo.
type InventoryValueResponse struct {
	Total decimal.Decimal `json:"total"`
}

package dto

import "time"

// MovementResponse salida de una entrada del historial.
type MovementResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	UserID    string    `json:"user_id"`
	Kind      string    `json:"kind"`
	Quantity  int64     `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// MovementRecordResponse entrada del historial global con producto y actor
// embebidos para mostrar sin consultas adicionales.
type MovementRecordResponse struct {
	MovementResponse
	ProductSKU  string `json:"product_sku"`
	ProductName string `json:"product_name"`
	Username    string `json:"username"`
	UserName    string `json:"user_name,omitempty"`
}

// MovementListResponse listado paginado del historial.
type MovementListResponse struct {
	Items []MovementRecordResponse `json:"items"`
	Page  PageResponse             `json:"page"`
}

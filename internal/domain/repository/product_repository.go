package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jcamargo/inventario-backend/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// UpdateQuantity es la única vía de escritura de CurrentQuantity: compara el
// token de versión y devuelve domain.ErrVersionConflict si está obsoleto.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdateQuantity(ctx context.Context, id string, quantity, expectedVersion int64) error
	SetActive(ctx context.Context, id string, active bool) error
	ListActive(ctx context.Context, limit, offset int) ([]*entity.Product, int64, error)
	ListLowStock(ctx context.Context, threshold int64) ([]*entity.Product, error)
	TotalInventoryValue(ctx context.Context) (decimal.Decimal, error)
}

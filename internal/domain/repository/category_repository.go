package repository

import (
	"context"

	"github.com/jcamargo/inventario-backend/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category.
// Las búsquedas por nombre usan el nombre normalizado (minúsculas, sin
// acentos) para que la unicidad no dependa de mayúsculas ni tildes.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	GetByNormalizedName(ctx context.Context, normalized string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	SetActive(ctx context.Context, id string, active bool) error
	ListActive(ctx context.Context, limit, offset int) ([]*entity.Category, int64, error)
	HasActiveProducts(ctx context.Context, id string) (bool, error)
}

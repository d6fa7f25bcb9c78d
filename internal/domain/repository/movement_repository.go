package repository

import (
	"context"

	"github.com/jcamargo/inventario-backend/internal/domain/entity"
)

// MovementRepository define el puerto del historial de movimientos.
// Solo-append: no existe Update ni Delete sobre este puerto, a propósito.
// Create rechaza con domain.ErrInvalidLedgerEntry cantidades no positivas o
// referencias a productos inexistentes.
type MovementRepository interface {
	Create(ctx context.Context, entry *entity.MovementEntry) error
	ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.MovementEntry, error)
	ListPage(ctx context.Context, limit, offset int) ([]*entity.MovementRecord, int64, error)
}

package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jcamargo/inventario-backend/internal/domain"
	"github.com/jcamargo/inventario-backend/internal/domain/entity"
	"github.com/jcamargo/inventario-backend/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del historial de movimientos sobre PostgreSQL
// (usable con pool o tx). La tabla es solo-append: este adaptador no expone
// UPDATE ni DELETE.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta una entrada del historial. Cantidades no positivas, tipos
// desconocidos o referencias colgantes son violaciones de invariante del
// historial: fallan con ErrInvalidLedgerEntry, nunca se descartan en silencio.
func (r *MovementRepo) Create(ctx context.Context, entry *entity.MovementEntry) error {
	if entry.Quantity <= 0 || !entity.ValidMovementKind(entry.Kind) || entry.ProductID == "" || entry.UserID == "" {
		return domain.ErrInvalidLedgerEntry
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, product_id, user_id, kind, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		entry.ID, entry.ProductID, entry.UserID, entry.Kind, entry.Quantity, entry.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidLedgerEntry
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListByProduct lista los movimientos de un producto, el más reciente primero.
func (r *MovementRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.MovementEntry, error) {
	query := `
		SELECT id, product_id, user_id, kind, quantity, created_at
		FROM movements WHERE product_id = $1
		ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements by product: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementEntry
	for rows.Next() {
		var m entity.MovementEntry
		if err := rows.Scan(&m.ID, &m.ProductID, &m.UserID, &m.Kind, &m.Quantity, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ListPage lista una página del historial global, el más reciente primero,
// con producto y actor resueltos en el mismo query (join; evita N+1).
func (r *MovementRepo) ListPage(ctx context.Context, limit, offset int) ([]*entity.MovementRecord, int64, error) {
	var total int64
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM movements`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movements: %w", err)
	}
	query := `
		SELECT m.id, m.product_id, m.user_id, m.kind, m.quantity, m.created_at,
		       p.sku, p.name, u.username, u.name
		FROM movements m
		JOIN products p ON p.id = m.product_id
		JOIN users u ON u.id = m.user_id
		ORDER BY m.created_at DESC, m.id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementRecord
	for rows.Next() {
		var rec entity.MovementRecord
		if err := rows.Scan(
			&rec.ID, &rec.ProductID, &rec.UserID, &rec.Kind, &rec.Quantity, &rec.CreatedAt,
			&rec.ProductSKU, &rec.ProductName, &rec.Username, &rec.UserName,
		); err != nil {
			return nil, 0, fmt.Errorf("scan movement record: %w", err)
		}
		list = append(list, &rec)
	}
	return list, total, rows.Err()
}

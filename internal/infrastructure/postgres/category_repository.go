package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcamargo/inventario-backend/internal/domain"
	"github.com/jcamargo/inventario-backend/internal/domain/entity"
	"github.com/jcamargo/inventario-backend/internal/domain/repository"
	"github.com/jcamargo/inventario-backend/pkg/normalize"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const categoryColumns = `id, name, name_normalized, description, active, created_at, updated_at`

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL
// (usable con pool o tx). La columna name_normalized lleva un índice único.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una categoría nueva.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO categories (` + categoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		category.ID, category.Name, normalize.Name(category.Name),
		category.Description, category.Active, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID. Devuelve (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	return scanCategory(r.q.QueryRow(ctx, query, id), "get category")
}

// GetByNormalizedName obtiene una categoría por su nombre canónico.
// Devuelve (nil, nil) si no existe.
func (r *CategoryRepo) GetByNormalizedName(ctx context.Context, normalized string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE name_normalized = $1`
	return scanCategory(r.q.QueryRow(ctx, query, normalized), "get category by name")
}

// Update actualiza nombre, descripción y flag activo.
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	query := `
		UPDATE categories
		SET name = $2, name_normalized = $3, description = $4, active = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		category.ID, category.Name, normalize.Name(category.Name),
		category.Description, category.Active, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetActive cambia el flag activo (soft delete / reactivación).
func (r *CategoryRepo) SetActive(ctx context.Context, id string, active bool) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE categories SET active = $2, updated_at = now() WHERE id = $1`,
		id, active,
	)
	if err != nil {
		return fmt.Errorf("set category active: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListActive lista categorías activas ordenadas por nombre, con el total.
func (r *CategoryRepo) ListActive(ctx context.Context, limit, offset int) ([]*entity.Category, int64, error) {
	var total int64
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM categories WHERE active`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}
	query := `
		SELECT ` + categoryColumns + `
		FROM categories WHERE active
		ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		var normalized string
		if err := rows.Scan(&c.ID, &c.Name, &normalized, &c.Description, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, total, rows.Err()
}

// HasActiveProducts indica si algún producto activo referencia la categoría.
func (r *CategoryRepo) HasActiveProducts(ctx context.Context, id string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM products WHERE category_id = $1 AND active)`
	if err := r.q.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("category has active products: %w", err)
	}
	return exists, nil
}

func scanCategory(row pgx.Row, op string) (*entity.Category, error) {
	var c entity.Category
	var normalized string
	err := row.Scan(&c.ID, &c.Name, &normalized, &c.Description, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

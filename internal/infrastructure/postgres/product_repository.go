package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jcamargo/inventario-backend/internal/domain"
	"github.com/jcamargo/inventario-backend/internal/domain/entity"
	"github.com/jcamargo/inventario-backend/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, sku, name, description, category_id, price, initial_qty, current_qty, active, version, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
// Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.SKU, product.Name, product.Description, product.CategoryID,
		product.Price, product.InitialQuantity, product.CurrentQuantity,
		product.Active, product.Version, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get product")
}

// GetBySKU obtiene un producto por SKU. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, sku), "get product by sku")
}

// Update actualiza campos de catálogo e incrementa el token de versión.
// No toca current_qty: esa columna se escribe solo vía UpdateQuantity.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET sku = $2, name = $3, description = $4, category_id = $5, price = $6,
		    version = version + 1, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		product.ID, product.SKU, product.Name, product.Description,
		product.CategoryID, product.Price, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	product.Version++
	return nil
}

// UpdateQuantity escribe la cantidad actual con guard de versión
// (compare-and-swap): si la versión leída ya no coincide, ninguna fila
// se afecta y se devuelve ErrVersionConflict en lugar de pisar la escritura.
func (r *ProductRepo) UpdateQuantity(ctx context.Context, id string, quantity, expectedVersion int64) error {
	query := `
		UPDATE products
		SET current_qty = $2, version = version + 1, updated_at = now()
		WHERE id = $1 AND version = $3`
	cmd, err := r.q.Exec(ctx, query, id, quantity, expectedVersion)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		existing, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		return domain.ErrVersionConflict
	}
	return nil
}

// SetActive cambia el flag activo (soft delete / reactivación).
func (r *ProductRepo) SetActive(ctx context.Context, id string, active bool) error {
	query := `
		UPDATE products
		SET active = $2, version = version + 1, updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, id, active)
	if err != nil {
		return fmt.Errorf("set product active: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListActive lista productos activos, el más reciente primero, con el total
// para la paginación.
func (r *ProductRepo) ListActive(ctx context.Context, limit, offset int) ([]*entity.Product, int64, error) {
	var total int64
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM products WHERE active`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE active
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	list, err := scanProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListLowStock lista productos activos con stock en o por debajo del umbral,
// el más escaso primero.
func (r *ProductRepo) ListLowStock(ctx context.Context, threshold int64) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE active AND current_qty <= $1
		ORDER BY current_qty ASC, name ASC`
	rows, err := r.q.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// TotalInventoryValue suma precio * cantidad actual de los productos activos.
func (r *ProductRepo) TotalInventoryValue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `SELECT COALESCE(sum(price * current_qty), 0) FROM products WHERE active`
	if err := r.q.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("total inventory value: %w", err)
	}
	return total, nil
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.CategoryID, &p.Price,
		&p.InitialQuantity, &p.CurrentQuantity, &p.Active, &p.Version,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.SKU, &p.Name, &p.Description, &p.CategoryID, &p.Price,
			&p.InitialQuantity, &p.CurrentQuantity, &p.Active, &p.Version,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

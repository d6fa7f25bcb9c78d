package usecase_test

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jcamargo/inventario-backend/internal/domain"
	"github.com/jcamargo/inventario-backend/internal/domain/entity"
	"github.com/jcamargo/inventario-backend/internal/domain/repository"
	"github.com/jcamargo/inventario-backend/pkg/normalize"
)

// Fakes en memoria con la misma semántica que los repositorios de postgres:
// copias al leer y escribir, versión que avanza en cada escritura del
// producto, unicidad por nombre normalizado en categorías.

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		r.products[p.ID] = &cp
	}
	return r
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// Update replica el repositorio real: escribe el catálogo, avanza la versión
// y nunca toca la cantidad almacenada.
func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.products[product.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cp := *product
	cp.CurrentQuantity = stored.CurrentQuantity
	cp.Version = stored.Version + 1
	r.products[product.ID] = &cp
	product.Version = cp.Version
	return nil
}

func (r *fakeProductRepo) UpdateQuantity(_ context.Context, id string, quantity, expectedVersion int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Version != expectedVersion {
		return domain.ErrVersionConflict
	}
	p.CurrentQuantity = quantity
	p.Version++
	return nil
}

func (r *fakeProductRepo) SetActive(_ context.Context, id string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Active = active
	return nil
}

func (r *fakeProductRepo) ListActive(_ context.Context, limit, offset int) ([]*entity.Product, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var actives []*entity.Product
	for _, p := range r.products {
		if p.Active {
			cp := *p
			actives = append(actives, &cp)
		}
	}
	total := int64(len(actives))
	if offset >= len(actives) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(actives) {
		end = len(actives)
	}
	return actives[offset:end], total, nil
}

func (r *fakeProductRepo) ListLowStock(_ context.Context, threshold int64) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Product
	for _, p := range r.products {
		if p.Active && p.CurrentQuantity <= threshold {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) TotalInventoryValue(_ context.Context) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := decimal.Zero
	for _, p := range r.products {
		if p.Active {
			total = total.Add(p.Price.Mul(decimal.NewFromInt(p.CurrentQuantity)))
		}
	}
	return total, nil
}

func (r *fakeProductRepo) stored(id string) entity.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	return *r.products[id]
}

func (r *fakeProductRepo) countActiveInCategory(categoryID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, p := range r.products {
		if p.Active && p.CategoryID == categoryID {
			n++
		}
	}
	return n
}

type fakeCategoryRepo struct {
	mu         sync.Mutex
	categories map[string]*entity.Category
	// products permite responder HasActiveProducts; puede ser nil.
	products *fakeProductRepo
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	r := &fakeCategoryRepo{categories: make(map[string]*entity.Category)}
	for _, c := range categories {
		cp := *c
		r.categories[c.ID] = &cp
	}
	return r
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if normalize.Name(c.Name) == normalize.Name(category.Name) {
			return domain.ErrDuplicate
		}
	}
	cp := *category
	r.categories[category.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) GetByNormalizedName(_ context.Context, normalized string) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if normalize.Name(c.Name) == normalized {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[category.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *category
	r.categories[category.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) SetActive(_ context.Context, id string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Active = active
	return nil
}

func (r *fakeCategoryRepo) ListActive(_ context.Context, limit, offset int) ([]*entity.Category, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var actives []*entity.Category
	for _, c := range r.categories {
		if c.Active {
			cp := *c
			actives = append(actives, &cp)
		}
	}
	total := int64(len(actives))
	if offset >= len(actives) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(actives) {
		end = len(actives)
	}
	return actives[offset:end], total, nil
}

func (r *fakeCategoryRepo) HasActiveProducts(_ context.Context, id string) (bool, error) {
	if r.products == nil {
		return false, nil
	}
	return r.products.countActiveInCategory(id) > 0, nil
}

type fakeMovementRepo struct {
	mu      sync.Mutex
	entries []*entity.MovementEntry
}

func (r *fakeMovementRepo) Create(_ context.Context, entry *entity.MovementEntry) error {
	if entry.Quantity <= 0 || !entity.ValidMovementKind(entry.Kind) || entry.ProductID == "" || entry.UserID == "" {
		return domain.ErrInvalidLedgerEntry
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *entry
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *fakeMovementRepo) ListByProduct(_ context.Context, productID string, _, _ int) ([]*entity.MovementEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.MovementEntry
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].ProductID == productID {
			out = append(out, r.entries[i])
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) ListPage(_ context.Context, _, _ int) ([]*entity.MovementRecord, int64, error) {
	return nil, int64(len(r.entries)), nil
}

func (r *fakeMovementRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *fakeMovementRepo) last() entity.MovementEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return *r.entries[len(r.entries)-1]
}

type fakeTxRunner struct {
	productRepo  *fakeProductRepo
	movementRepo *fakeMovementRepo
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) error) error {
	return fn(t.productRepo, t.movementRepo)
}

package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcamargo/inventario-backend/internal/application/dto"
	"github.com/jcamargo/inventario-backend/internal/application/stock"
	"github.com/jcamargo/inventario-backend/internal/domain"
	"github.com/jcamargo/inventario-backend/internal/domain/entity"
	"github.com/jcamargo/inventario-backend/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. La cantidad actual nunca
// se modifica desde aquí: solo vía el servicio de stock. El borrado es soft
// (active = false); los productos no se eliminan físicamente.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	txRunner     stock.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, txRunner stock.TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, txRunner: txRunner}
}

// Create crea un producto con current = initial y, si la cantidad inicial es
// positiva, registra en la misma transacción la entrada INBOUND que la
// explica: el historial es un rastro fiel desde t=0.
func (uc *ProductUseCase) Create(ctx context.Context, actorID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validateProductFields(in.SKU, in.Name, in.Price); err != nil {
		return nil, err
	}
	if in.InitialQuantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if actorID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetBySKU(ctx, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	product := &entity.Product{
		ID:              uuid.New().String(),
		SKU:             in.SKU,
		Name:            in.Name,
		Description:     in.Description,
		CategoryID:      in.CategoryID,
		Price:           in.Price,
		InitialQuantity: in.InitialQuantity,
		CurrentQuantity: in.InitialQuantity,
		Active:          true,
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	entry := stock.InitialEntry(product, actorID, now)

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		if entry == nil {
			return nil
		}
		return movementRepo.Create(ctx, entry)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza campos de catálogo (sku, nombre, descripción, precio,
// categoría). No toca cantidades ni el flag activo.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.SKU != nil && *in.SKU != product.SKU {
		other, err := uc.repo.GetBySKU(ctx, *in.SKU)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != product.ID {
			return nil, domain.ErrDuplicate
		}
		product.SKU = *in.SKU
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.CategoryID != nil && *in.CategoryID != product.CategoryID {
		if err := uc.checkCategory(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *in.CategoryID
	}
	if err := validateProductFields(product.SKU, product.Name, product.Price); err != nil {
		return nil, err
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete marca el producto como inactivo (soft delete).
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SetActive(ctx, id, false)
}

// List lista productos activos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.Normalize()
	list, total, err := uc.repo.ListActive(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// LowStock lista los productos activos con cantidad <= threshold.
func (uc *ProductUseCase) LowStock(ctx context.Context, threshold int64) ([]dto.ProductResponse, error) {
	if threshold < 0 {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListLowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// InventoryValue calcula la suma de precio * cantidad actual de los
// productos activos.
func (uc *ProductUseCase) InventoryValue(ctx context.Context) (*dto.InventoryValueResponse, error) {
	total, err := uc.repo.TotalInventoryValue(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.InventoryValueResponse{Total: total}, nil
}

func (uc *ProductUseCase) checkCategory(ctx context.Context, categoryID string) error {
	if categoryID == "" {
		return domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if category == nil || !category.Active {
		return domain.ErrNotFound
	}
	return nil
}

func validateProductFields(sku, name string, price decimal.Decimal) error {
	if strings.TrimSpace(sku) == "" || strings.TrimSpace(name) == "" {
		return domain.ErrInvalidInput
	}
	if len(name) < 2 || len(name) > 100 || len(sku) > 100 {
		return domain.ErrInvalidInput
	}
	if !price.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:              p.ID,
		SKU:             p.SKU,
		Name:            p.Name,
		Description:     p.Description,
		CategoryID:      p.CategoryID,
		Price:           p.Price,
		InitialQuantity: p.InitialQuantity,
		CurrentQuantity: p.CurrentQuantity,
		Active:          p.Active,
		Version:         p.Version,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

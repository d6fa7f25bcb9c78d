package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcamargo/inventario-backend/internal/application/dto"
	"github.com/jcamargo/inventario-backend/internal/application/usecase"
	"github.com/jcamargo/inventario-backend/internal/domain"
	"github.com/jcamargo/inventario-backend/internal/domain/entity"
)

const testActorID = "22222222-2222-2222-2222-222222222222"

func strPtr(s string) *string                  { return &s }
func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func activeCategory(id, name string) *entity.Category {
	return &entity.Category{ID: id, Name: name, Active: true}
}

func newProductUseCase(categories []*entity.Category, products ...*entity.Product) (*usecase.ProductUseCase, *fakeProductRepo, *fakeMovementRepo) {
	productRepo := newFakeProductRepo(products...)
	categoryRepo := newFakeCategoryRepo(categories...)
	movementRepo := &fakeMovementRepo{}
	runner := &fakeTxRunner{productRepo: productRepo, movementRepo: movementRepo}
	return usecase.NewProductUseCase(productRepo, categoryRepo, runner), productRepo, movementRepo
}

func createRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		SKU:             "SKU-100",
		Name:            "Martillo de uña",
		Description:     "Mango de madera",
		CategoryID:      "cat-1",
		Price:           decimal.NewFromFloat(15.50),
		InitialQuantity: 12,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_CantidadInicialGeneraEntradaInbound(t *testing.T) {
	uc, productRepo, movementRepo := newProductUseCase([]*entity.Category{activeCategory("cat-1", "Herramientas")})

	resp, err := uc.Create(context.Background(), testActorID, createRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(12), resp.InitialQuantity)
	assert.Equal(t, int64(12), resp.CurrentQuantity, "current arranca igual que initial")
	assert.Equal(t, int64(1), resp.Version)
	assert.True(t, resp.Active)

	stored, err := productRepo.GetBySKU(context.Background(), "SKU-100")
	require.NoError(t, err)
	require.NotNil(t, stored)

	require.Equal(t, 1, movementRepo.count(), "la cantidad inicial queda explicada por una entrada")
	entry := movementRepo.last()
	assert.Equal(t, entity.MovementInbound, entry.Kind)
	assert.Equal(t, int64(12), entry.Quantity)
	assert.Equal(t, resp.ID, entry.ProductID)
	assert.Equal(t, testActorID, entry.UserID)
}

func TestProductCreate_CantidadInicialCero_SinEntrada(t *testing.T) {
	uc, _, movementRepo := newProductUseCase([]*entity.Category{activeCategory("cat-1", "Herramientas")})

	in := createRequest()
	in.InitialQuantity = 0
	resp, err := uc.Create(context.Background(), testActorID, in)
	require.NoError(t, err)

	assert.Equal(t, int64(0), resp.CurrentQuantity)
	assert.Equal(t, 0, movementRepo.count(), "cantidad inicial cero no deja entrada")
}

func TestProductCreate_CantidadInicialNegativa_Rechazada(t *testing.T) {
	uc, _, _ := newProductUseCase([]*entity.Category{activeCategory("cat-1", "Herramientas")})

	in := createRequest()
	in.InitialQuantity = -1
	_, err := uc.Create(context.Background(), testActorID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestProductCreate_SKUDuplicado_Rechazado(t *testing.T) {
	uc, _, movementRepo := newProductUseCase([]*entity.Category{activeCategory("cat-1", "Herramientas")})

	_, err := uc.Create(context.Background(), testActorID, createRequest())
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), testActorID, createRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, 1, movementRepo.count(), "el duplicado no debe escribir nada")
}

func TestProductCreate_CategoriaInactivaOInexistente_Rechazada(t *testing.T) {
	inactive := activeCategory("cat-2", "Descontinuados")
	inactive.Active = false
	uc, _, _ := newProductUseCase([]*entity.Category{inactive})

	in := createRequest()
	in.CategoryID = "cat-2"
	_, err := uc.Create(context.Background(), testActorID, in)
	assert.ErrorIs(t, err, domain.ErrNotFound, "categoría inactiva no sirve para productos nuevos")

	in.CategoryID = "no-existe"
	_, err = uc.Create(context.Background(), testActorID, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductCreate_CamposInvalidos_Rechazados(t *testing.T) {
	uc, _, _ := newProductUseCase([]*entity.Category{activeCategory("cat-1", "Herramientas")})

	cases := []struct {
		name   string
		mutate func(*dto.CreateProductRequest)
	}{
		{"sku vacío", func(in *dto.CreateProductRequest) { in.SKU = "  " }},
		{"nombre vacío", func(in *dto.CreateProductRequest) { in.Name = "" }},
		{"nombre muy corto", func(in *dto.CreateProductRequest) { in.Name = "X" }},
		{"precio cero", func(in *dto.CreateProductRequest) { in.Price = decimal.Zero }},
		{"precio negativo", func(in *dto.CreateProductRequest) { in.Price = decimal.NewFromInt(-5) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := createRequest()
			tc.mutate(&in)
			_, err := uc.Create(context.Background(), testActorID, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestProductCreate_SinActor_Rechazado(t *testing.T) {
	uc, _, _ := newProductUseCase([]*entity.Category{activeCategory("cat-1", "Herramientas")})

	_, err := uc.Create(context.Background(), "", createRequest())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUpdate_SoloCatalogo_NoTocaCantidad(t *testing.T) {
	uc, productRepo, movementRepo := newProductUseCase([]*entity.Category{activeCategory("cat-1", "Herramientas")})
	resp, err := uc.Create(context.Background(), testActorID, createRequest())
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), resp.ID, dto.UpdateProductRequest{
		Name:  strPtr("Martillo de carpintero"),
		Price: decPtr(decimal.NewFromFloat(18.90)),
	})
	require.NoError(t, err)

	assert.Equal(t, "Martillo de carpintero", updated.Name)
	assert.Equal(t, int64(12), updated.CurrentQuantity,
		"la edición de catálogo nunca toca la cantidad")

	stored := productRepo.stored(resp.ID)
	assert.Equal(t, int64(12), stored.CurrentQuantity)
	assert.Equal(t, int64(2), stored.Version, "la edición de catálogo también avanza la versión")
	assert.Equal(t, 1, movementRepo.count(), "editar catálogo no agrega movimientos")
}

func TestProductUpdate_SKUDeOtroProducto_Rechazado(t *testing.T) {
	uc, _, _ := newProductUseCase([]*entity.Category{activeCategory("cat-1", "Herramientas")})
	first, err := uc.Create(context.Background(), testActorID, createRequest())
	require.NoError(t, err)

	second := createRequest()
	second.SKU = "SKU-200"
	resp2, err := uc.Create(context.Background(), testActorID, second)
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), resp2.ID, dto.UpdateProductRequest{SKU: strPtr(first.SKU)})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductUpdate_Inexistente_RetornaNotFound(t *testing.T) {
	uc, _, _ := newProductUseCase([]*entity.Category{activeCategory("cat-1", "Herramientas")})

	_, err := uc.Update(context.Background(), "no-existe", dto.UpdateProductRequest{Name: strPtr("Nuevo")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete_EsSoft(t *testing.T) {
	uc, productRepo, _ := newProductUseCase([]*entity.Category{activeCategory("cat-1", "Herramientas")})
	resp, err := uc.Create(context.Background(), testActorID, createRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), resp.ID))

	stored := productRepo.stored(resp.ID)
	assert.False(t, stored.Active, "delete marca inactivo")
	assert.Equal(t, int64(12), stored.CurrentQuantity,
		"el soft delete conserva la fila y su cantidad")
}

func TestProductLowStock_UmbralNegativo_Rechazado(t *testing.T) {
	uc, _, _ := newProductUseCase(nil)

	_, err := uc.LowStock(context.Background(), -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

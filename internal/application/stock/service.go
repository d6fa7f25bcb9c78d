package stock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jcamargo/inventario-backend/internal/domain"
	"github.com/jcamargo/inventario-backend/internal/domain/entity"
	"github.com/jcamargo/inventario-backend/internal/domain/repository"
)

// Service es la única autoridad para mutar Product.CurrentQuantity. Cada
// mutación exitosa queda explicada por exactamente una entrada del historial,
// escrita en la misma transacción que la actualización del producto. La
// escritura compara el token de versión leído: si otro llamador ganó la
// carrera, la operación falla con domain.ErrVersionConflict y el caller puede
// releer y reintentar (el servicio no reintenta por su cuenta).
type Service struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewService construye el servicio de ajuste de stock.
func NewService(txRunner TxRunner, productRepo repository.ProductRepository) *Service {
	return &Service{txRunner: txRunner, productRepo: productRepo}
}

// SetQuantity fija la cantidad absoluta de un producto. La diferencia contra
// la cantidad actual se registra como AJUSTE positivo o negativo; si la
// diferencia es cero no se escribe nada (un movimiento nulo no es información).
func (s *Service) SetQuantity(ctx context.Context, productID string, target int64, actorID string) (*entity.Product, error) {
	if target < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if actorID == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if !product.Active {
		return nil, domain.ErrInactiveProduct
	}

	delta := target - product.CurrentQuantity
	if delta == 0 {
		return product, nil
	}
	kind := entity.MovementPositiveAdjustment
	magnitude := delta
	if delta < 0 {
		kind = entity.MovementNegativeAdjustment
		magnitude = -delta
	}

	if err := s.applyChange(ctx, product, target, kind, magnitude, actorID); err != nil {
		return nil, err
	}
	return product, nil
}

// RegisterMovement registra una entrada (INBOUND) o salida (OUTBOUND) con la
// magnitud dada. Para OUTBOUND exige stock suficiente; drenar hasta
// exactamente cero es válido.
func (s *Service) RegisterMovement(ctx context.Context, productID, kind string, quantity int64, actorID string) (*entity.Product, error) {
	if kind != entity.MovementInbound && kind != entity.MovementOutbound {
		return nil, domain.ErrInvalidInput
	}
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if actorID == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if !product.Active {
		return nil, domain.ErrInactiveProduct
	}

	var target int64
	switch kind {
	case entity.MovementInbound:
		target = product.CurrentQuantity + quantity
	case entity.MovementOutbound:
		if !product.HasEnoughStock(quantity) {
			return nil, &domain.InsufficientStockError{
				Current:   product.CurrentQuantity,
				Requested: quantity,
			}
		}
		target = product.CurrentQuantity - quantity
	}

	if err := s.applyChange(ctx, product, target, kind, quantity, actorID); err != nil {
		return nil, err
	}
	return product, nil
}

// applyChange escribe la nueva cantidad (verificando la versión leída) y
// agrega la entrada al historial, en una sola transacción. La verificación de
// stock hecha antes sigue valiendo dentro de la tx: si la fila cambió desde
// la lectura, el guard de versión corta con ErrVersionConflict en vez de
// pisar la escritura ajena.
func (s *Service) applyChange(ctx context.Context, product *entity.Product, target int64, kind string, magnitude int64, actorID string) error {
	now := time.Now()
	err := s.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		if err := productRepo.UpdateQuantity(ctx, product.ID, target, product.Version); err != nil {
			return err
		}
		entry := &entity.MovementEntry{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			UserID:    actorID,
			Kind:      kind,
			Quantity:  magnitude,
			CreatedAt: now,
		}
		return movementRepo.Create(ctx, entry)
	})
	if err != nil {
		return err
	}
	product.CurrentQuantity = target
	product.Version++
	product.UpdatedAt = now
	return nil
}

// InitialEntry arma la entrada INBOUND que explica la cantidad inicial de un
// producto recién creado. Devuelve nil si la cantidad inicial es cero: el
// historial solo admite cantidades positivas.
func InitialEntry(product *entity.Product, actorID string, now time.Time) *entity.MovementEntry {
	if product.InitialQuantity <= 0 {
		return nil
	}
	return &entity.MovementEntry{
		ID:        uuid.New().String(),
		ProductID: product.ID,
		UserID:    actorID,
		Kind:      entity.MovementInbound,
		Quantity:  product.InitialQuantity,
		CreatedAt: now,
	}
}

// History expone las consultas de solo lectura sobre el historial.
type History struct {
	movementRepo repository.MovementRepository
}

// NewHistory construye el lector del historial.
func NewHistory(movementRepo repository.MovementRepository) *History {
	return &History{movementRepo: movementRepo}
}

// ListByProduct devuelve los movimientos de un producto, el más reciente primero.
func (h *History) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.MovementEntry, error) {
	return h.movementRepo.ListByProduct(ctx, productID, limit, offset)
}

// ListPage devuelve una página del historial global con producto y actor
// embebidos (un solo query con join; evita N+1 aguas abajo).
func (h *History) ListPage(ctx context.Context, limit, offset int) ([]*entity.MovementRecord, int64, error) {
	return h.movementRepo.ListPage(ctx, limit, offset)
}

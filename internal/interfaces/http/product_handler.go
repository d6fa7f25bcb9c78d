package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcamargo/inventario-backend/internal/application/dto"
	"github.com/jcamargo/inventario-backend/internal/application/stock"
	"github.com/jcamargo/inventario-backend/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para Product (protegido).
// Los cambios de cantidad van por el servicio de stock, nunca por Update.
type ProductHandler struct {
	uc       *usecase.ProductUseCase
	stockSvc *stock.Service
	history  *stock.History
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, stockSvc *stock.Service, history *stock.History) *ProductHandler {
	return &ProductHandler{uc: uc, stockSvc: stockSvc, history: history}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	observeProductCreated()
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos activos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto (catálogo; nunca cantidades)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto (soft delete)
// @Tags         products
// @Security     Bearer
// @Param        id  path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetStock godoc
// @Summary      Fijar cantidad absoluta de stock
// @Description  Registra la diferencia como ajuste positivo o negativo en el
//               historial; fijar la cantidad actual es un no-op sin registro.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.SetStockRequest  true  "Cantidad objetivo (>= 0)"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [patch]
func (h *ProductHandler) SetStock(c *fiber.Ctx) error {
	var in dto.SetStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.stockSvc.SetQuantity(c.Context(), c.Params("id"), in.Quantity, GetUserID(c))
	if err != nil {
		observeStockRejected()
		return respondError(c, err)
	}
	observeStockAdjusted()
	return c.JSON(toProductResponse(product))
}

// RegisterMovement godoc
// @Summary      Registrar entrada o salida de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.RegisterMovementRequest  true  "kind (INBOUND|OUTBOUND) y quantity (> 0)"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.StockErrorResponse
// @Router       /api/products/{id}/movements [post]
func (h *ProductHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.stockSvc.RegisterMovement(c.Context(), c.Params("id"), in.Kind, in.Quantity, GetUserID(c))
	if err != nil {
		observeStockRejected()
		return respondError(c, err)
	}
	observeStockAdjusted()
	return c.JSON(toProductResponse(product))
}

// ListMovements godoc
// @Summary      Historial de movimientos de un producto (más reciente primero)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del producto"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/products/{id}/movements [get]
func (h *ProductHandler) ListMovements(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.Normalize()
	list, err := h.history.ListByProduct(c.Context(), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementResponse{
			ID:        m.ID,
			ProductID: m.ProductID,
			UserID:    m.UserID,
			Kind:      m.Kind,
			Quantity:  m.Quantity,
			CreatedAt: m.CreatedAt,
		})
	}
	return c.JSON(items)
}

// LowStock godoc
// @Summary      Productos activos con stock en o por debajo del umbral
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        threshold  query  int  false  "Umbral"  default(5)
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products/low-stock [get]
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	threshold := int64(c.QueryInt("threshold", 5))
	items, err := h.uc.LowStock(c.Context(), threshold)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// InventoryValue godoc
// @Summary      Valor total del inventario activo
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryValueResponse
// @Router       /api/products/inventory-value [get]
func (h *ProductHandler) InventoryValue(c *fiber.Ctx) error {
	out, err := h.uc.InventoryValue(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

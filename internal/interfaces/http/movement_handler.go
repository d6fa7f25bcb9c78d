package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcamargo/inventario-backend/internal/application/dto"
	"github.com/jcamargo/inventario-backend/internal/application/stock"
)

// MovementHandler expone el historial global de movimientos (protegido).
type MovementHandler struct {
	history *stock.History
}

// NewMovementHandler construye el handler.
func NewMovementHandler(history *stock.History) *MovementHandler {
	return &MovementHandler{history: history}
}

// List godoc
// @Summary      Historial global de movimientos
// @Description  Página del historial, el más reciente primero, con producto y
//               actor embebidos en cada entrada.
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.Normalize()
	list, total, err := h.history.ListPage(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.MovementRecordResponse, 0, len(list))
	for _, rec := range list {
		items = append(items, dto.MovementRecordResponse{
			MovementResponse: dto.MovementResponse{
				ID:        rec.ID,
				ProductID: rec.ProductID,
				UserID:    rec.UserID,
				Kind:      rec.Kind,
				Quantity:  rec.Quantity,
				CreatedAt: rec.CreatedAt,
			},
			ProductSKU:  rec.ProductSKU,
			ProductName: rec.ProductName,
			Username:    rec.Username,
			UserName:    rec.UserName,
		})
	}
	return c.JSON(dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	})
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/garment-pos/internal/application/analytics"
	"github.com/tu-usuario/garment-pos/internal/application/dto"
	"github.com/tu-usuario/garment-pos/internal/application/usecase"
)

// DashboardHandler resumen del día y de la semana móvil más alertas de stock.
type DashboardHandler struct {
	statsUC   *analytics.StatsUseCase
	productUC *usecase.ProductUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(statsUC *analytics.StatsUseCase, productUC *usecase.ProductUseCase) *DashboardHandler {
	return &DashboardHandler{statsUC: statsUC, productUC: productUC}
}

// Summary godoc
// @Summary      Resumen del tablero: hoy, últimos 7 días y bajo stock
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	today, weekly, err := h.statsUC.Summary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	lowStock, err := h.productUC.LowStock(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DashboardSummaryDTO{
		Today:    today,
		Weekly:   weekly,
		LowStock: lowStock,
	})
}

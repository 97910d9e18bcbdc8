package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/garment-pos/internal/application/usecase"
)

// SaleHandler lecturas del historial de ventas.
type SaleHandler struct {
	uc *usecase.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *usecase.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// List godoc
// @Summary      Listar ventas (descendente por fecha)
// @Tags         sales
// @Produce      json
// @Success      200  {object}  dto.SaleListResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Items godoc
// @Summary      Líneas históricas de una venta
// @Tags         sales
// @Produce      json
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {array}  dto.SaleItemResponse
// @Router       /api/sales/{id}/items [get]
func (h *SaleHandler) Items(c *fiber.Ctx) error {
	out, err := h.uc.ItemsBySale(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/garment-pos/internal/application/dto"
	"github.com/tu-usuario/garment-pos/internal/domain"
)

// respondError mapea errores de dominio a códigos HTTP. Los mensajes de los
// sentinels y de los errores de persistencia se devuelven tal cual: el
// operador de la caja debe ver la causa, no un error genérico.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	code := "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrEmptyCart):
		status, code = fiber.StatusBadRequest, "EMPTY_CART"
	case errors.Is(err, domain.ErrMissingPhone):
		status, code = fiber.StatusBadRequest, "MISSING_PHONE"
	case errors.Is(err, domain.ErrNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrDuplicate):
		status, code = fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrOutOfStock):
		status, code = fiber.StatusConflict, "OUT_OF_STOCK"
	case errors.Is(err, domain.ErrStockExceeded):
		status, code = fiber.StatusConflict, "STOCK_EXCEEDED"
	case errors.Is(err, domain.ErrCheckoutBusy):
		status, code = fiber.StatusConflict, "CHECKOUT_BUSY"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

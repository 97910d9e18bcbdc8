package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/garment-pos/internal/application/checkout"
	"github.com/tu-usuario/garment-pos/internal/application/dto"
)

// CheckoutHandler expone la sesión de caja (carrito + cierre de venta).
// La sesión es única por proceso: una terminal, un carrito.
type CheckoutHandler struct {
	session *checkout.Session
}

// NewCheckoutHandler construye el handler.
func NewCheckoutHandler(session *checkout.Session) *CheckoutHandler {
	return &CheckoutHandler{session: session}
}

// GetCart godoc
// @Summary      Estado actual del carrito
// @Tags         checkout
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/checkout/cart [get]
func (h *CheckoutHandler) GetCart(c *fiber.Ctx) error {
	return c.JSON(h.session.Cart())
}

// AddItem godoc
// @Summary      Agregar una unidad de un producto al carrito
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "Producto a agregar"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/checkout/cart/items [post]
func (h *CheckoutHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil || in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "product_id es requerido"})
	}
	out, err := h.session.AddProduct(c.Context(), in.ProductID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateItem godoc
// @Summary      Reemplazar la cantidad de una línea (<= 0 la quita)
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        productID  path  string  true  "ID del producto"
// @Param        body       body  dto.UpdateCartItemRequest  true  "Nueva cantidad"
// @Success      200        {object}  dto.CartResponse
// @Failure      409        {object}  dto.ErrorResponse
// @Router       /api/checkout/cart/items/{productID} [put]
func (h *CheckoutHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.session.UpdateQuantity(c.Params("productID"), in.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem godoc
// @Summary      Quitar una línea del carrito
// @Tags         checkout
// @Produce      json
// @Param        productID  path  string  true  "ID del producto"
// @Success      200        {object}  dto.CartResponse
// @Router       /api/checkout/cart/items/{productID} [delete]
func (h *CheckoutHandler) RemoveItem(c *fiber.Ctx) error {
	out, err := h.session.RemoveProduct(c.Params("productID"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Begin godoc
// @Summary      Pasar a espera de pago (carrito no vacío)
// @Tags         checkout
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/checkout/begin [post]
func (h *CheckoutHandler) Begin(c *fiber.Ctx) error {
	if err := h.session.BeginPayment(); err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.session.Cart())
}

// Cancel godoc
// @Summary      Cancelar el cobro; carrito y stock quedan intactos
// @Tags         checkout
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/checkout/cancel [post]
func (h *CheckoutHandler) Cancel(c *fiber.Ctx) error {
	if err := h.session.Cancel(); err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.session.Cart())
}

// Complete godoc
// @Summary      Cerrar la venta: persistir cabecera, líneas y descontar stock
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CompleteSaleRequest  true  "Notificación opcional por WhatsApp"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/checkout/complete [post]
func (h *CheckoutHandler) Complete(c *fiber.Ctx) error {
	var in dto.CompleteSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.session.Complete(c.Context(), in.NotifyWhatsApp, in.CustomerPhone)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

package dto

import "github.com/shopspring/decimal"

// AddCartItemRequest agrega una unidad del producto al carrito.
type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// UpdateCartItemRequest reemplaza la cantidad de una línea del carrito.
// Cantidad <= 0 equivale a quitar la línea.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CompleteSaleRequest cierra la venta en espera de pago.
// Si NotifyWhatsApp es true, CustomerPhone es obligatorio.
type CompleteSaleRequest struct {
	NotifyWhatsApp bool   `json:"notify_whatsapp"`
	CustomerPhone  string `json:"customer_phone"`
}

// CartItemResponse línea del carrito con el snapshot de precio usado.
type CartItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// CartResponse estado actual del carrito y de la sesión de caja.
type CartResponse struct {
	State string             `json:"state"`
	Items []CartItemResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

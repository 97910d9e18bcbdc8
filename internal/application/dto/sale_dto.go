package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemResponse línea de venta (valores snapshot al momento de la venta).
type SaleItemResponse struct {
	ID          string          `json:"id,omitempty"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse cabecera de venta con sus líneas (si se cargaron).
type SaleResponse struct {
	ID            string             `json:"id"`
	SaleDate      time.Time          `json:"sale_date"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	TotalCost     decimal.Decimal    `json:"total_cost"`
	Profit        decimal.Decimal    `json:"profit"`
	CustomerPhone string             `json:"customer_phone,omitempty"`
	Items         []SaleItemResponse `json:"items,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

// SaleListResponse listado de ventas, descendente por fecha.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
}

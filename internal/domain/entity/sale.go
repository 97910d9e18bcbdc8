package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale cabecera de una venta completada. Inmutable una vez persistida.
// Profit = TotalAmount - TotalCost se fija al construir la venta; nunca se
// recalcula después.
type Sale struct {
	ID            string
	SaleDate      time.Time
	TotalAmount   decimal.Decimal // suma de subtotales de línea
	TotalCost     decimal.Decimal // suma de costos de línea
	Profit        decimal.Decimal
	CustomerPhone string // vacío si la venta no se notificó
	InvoiceURL    string // reservado, sin uso actual
	CreatedAt     time.Time
}

// SaleItem línea de venta. Los campos de producto son snapshots al momento de
// la venta: editar el producto después no altera el histórico.
type SaleItem struct {
	ID          string
	SaleID      string
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal // snapshot de SellingPrice
	UnitCost    decimal.Decimal // snapshot de PurchasePrice
	Subtotal    decimal.Decimal // UnitPrice × Quantity
	CreatedAt   time.Time
}

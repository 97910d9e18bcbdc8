package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa una prenda del catálogo de la tienda.
// StockQuantity nunca baja de 0: la caja lo descuenta por venta (procedimiento
// atómico update_stock) y los ajustes manuales lo reemplazan.
type Product struct {
	ID                string
	Name              string
	SKU               string // código legible del producto, único por tienda
	Category          string
	Size              string
	Color             string
	PurchasePrice     decimal.Decimal // costo de compra
	SellingPrice      decimal.Decimal // precio de venta
	StockQuantity     int
	LowStockThreshold int // en o por debajo de este valor el producto se marca para reposición
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsLowStock indica si el producto está en o por debajo de su umbral de reposición.
func (p *Product) IsLowStock() bool {
	return p.StockQuantity <= p.LowStockThreshold
}

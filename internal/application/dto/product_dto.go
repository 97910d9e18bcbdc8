package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name              string          `json:"name" validate:"required,min=1,max=200"`
	SKU               string          `json:"sku" validate:"required,min=1,max=100"`
	Category          string          `json:"category"`
	Size              string          `json:"size"`
	Color             string          `json:"color"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	SellingPrice      decimal.Decimal `json:"selling_price"`
	StockQuantity     int             `json:"stock_quantity"`
	LowStockThreshold int             `json:"low_stock_threshold"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
// El stock no se edita por aquí: usar PUT /products/{id}/stock.
type UpdateProductRequest struct {
	Name              *string          `json:"name" validate:"omitempty,min=1,max=200"`
	SKU               *string          `json:"sku"`
	Category          *string          `json:"category"`
	Size              *string          `json:"size"`
	Color             *string          `json:"color"`
	PurchasePrice     *decimal.Decimal `json:"purchase_price"`
	SellingPrice      *decimal.Decimal `json:"selling_price"`
	LowStockThreshold *int             `json:"low_stock_threshold"`
}

// AdjustStockRequest entrada para el ajuste manual de stock.
type AdjustStockRequest struct {
	StockQuantity int `json:"stock_quantity" validate:"min=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	SKU               string          `json:"sku"`
	Category          string          `json:"category"`
	Size              string          `json:"size"`
	Color             string          `json:"color"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	SellingPrice      decimal.Decimal `json:"selling_price"`
	StockQuantity     int             `json:"stock_quantity"`
	LowStockThreshold int             `json:"low_stock_threshold"`
	LowStock          bool            `json:"low_stock"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ProductListResponse lista de productos, ascendente por nombre.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}

package checkout

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/garment-pos/internal/domain"
	"github.com/tu-usuario/garment-pos/internal/domain/entity"
)

// CartItem línea del carrito: snapshot del producto + cantidad (entero >= 1).
// El snapshot se carga al agregar la línea y no se refresca en cada edición;
// los topes de stock se validan contra ese valor (ventana de carrera asumida
// para una caja única).
type CartItem struct {
	Product  entity.Product
	Quantity int
}

// Cart carrito en memoria de la sesión de caja. Nunca se persiste; se descarta
// al completar la venta o reiniciar la sesión. No es seguro para uso
// concurrente: la Session lo serializa con su mutex.
type Cart struct {
	items []CartItem // orden de inserción
}

// NewCart construye un carrito vacío.
func NewCart() *Cart {
	return &Cart{}
}

// Add agrega una unidad del producto. Rechaza con ErrOutOfStock si el producto
// no tiene stock, y con ErrStockExceeded si la línea ya alcanzó el stock
// disponible del snapshot.
func (c *Cart) Add(product entity.Product) error {
	if product.StockQuantity <= 0 {
		return domain.ErrOutOfStock
	}
	for i := range c.items {
		if c.items[i].Product.ID == product.ID {
			if c.items[i].Quantity+1 > c.items[i].Product.StockQuantity {
				return domain.ErrStockExceeded
			}
			c.items[i].Quantity++
			return nil
		}
	}
	c.items = append(c.items, CartItem{Product: product, Quantity: 1})
	return nil
}

// UpdateQuantity reemplaza la cantidad de la línea. Cantidad <= 0 quita la
// línea; cantidad mayor al stock del snapshot rechaza con ErrStockExceeded y
// deja el carrito sin cambios. Si el producto no está en el carrito, no hace nada.
func (c *Cart) UpdateQuantity(productID string, quantity int) error {
	for i := range c.items {
		if c.items[i].Product.ID != productID {
			continue
		}
		if quantity <= 0 {
			c.Remove(productID)
			return nil
		}
		if quantity > c.items[i].Product.StockQuantity {
			return domain.ErrStockExceeded
		}
		c.items[i].Quantity = quantity
		return nil
	}
	return nil
}

// Remove quita la línea del producto; no hace nada si no está.
func (c *Cart) Remove(productID string) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Total suma SellingPrice × cantidad de las líneas actuales. Se recalcula en
// cada llamada: el carrito muta directamente y no se cachea nada.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.Product.SellingPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// Cost suma PurchasePrice × cantidad de las líneas actuales.
func (c *Cart) Cost() decimal.Decimal {
	cost := decimal.Zero
	for _, it := range c.items {
		cost = cost.Add(it.Product.PurchasePrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return cost
}

// Items devuelve una copia de las líneas actuales.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len cantidad de líneas del carrito.
func (c *Cart) Len() int {
	return len(c.items)
}

// IsEmpty indica si el carrito no tiene líneas.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Clear descarta todas las líneas.
func (c *Cart) Clear() {
	c.items = nil
}

package checkout

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/garment-pos/internal/domain/entity"
)

// CustomerNotifier puerta de salida hacia el canal externo de mensajería
// (WhatsApp). La entrega es fire-and-forget: un error aquí nunca afecta el
// resultado de la venta ni se reintenta.
type CustomerNotifier interface {
	NotifySale(phone, saleID string, items []*entity.SaleItem, total decimal.Decimal) error
}

// Package whatsapp implementa la notificación al cliente como deep link de
// WhatsApp (wa.me). La caja no envía el mensaje por sí misma: genera el enlace
// y lo entrega para que la terminal lo abra en la aplicación externa.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/garment-pos/internal/application/checkout"
	"github.com/tu-usuario/garment-pos/internal/domain/entity"
)

var _ checkout.CustomerNotifier = (*Notifier)(nil)

// Notifier construye el mensaje de factura en texto y el enlace wa.me.
type Notifier struct {
	log zerolog.Logger
}

// NewNotifier construye el notificador.
func NewNotifier(log zerolog.Logger) *Notifier {
	return &Notifier{log: log.With().Str("component", "whatsapp").Logger()}
}

// NotifySale arma el mensaje de la venta y registra el deep link generado.
// Entrega fire-and-forget: el resultado nunca condiciona la venta.
func (n *Notifier) NotifySale(phone, saleID string, items []*entity.SaleItem, total decimal.Decimal) error {
	link, err := BuildLink(phone, saleID, items, total)
	if err != nil {
		return err
	}
	n.log.Info().
		Str("sale_id", saleID).
		Str("link", link).
		Msg("enlace de WhatsApp generado para la venta")
	return nil
}

// BuildLink genera el deep link https://wa.me/<dígitos>?text=<mensaje>.
func BuildLink(phone, saleID string, items []*entity.SaleItem, total decimal.Decimal) (string, error) {
	digits := cleanPhone(phone)
	if digits == "" {
		return "", fmt.Errorf("número de teléfono sin dígitos: %q", phone)
	}
	message := buildMessage(saleID, items, total)
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(message), nil
}

// buildMessage arma el texto de la factura: número corto, líneas y total.
func buildMessage(saleID string, items []*entity.SaleItem, total decimal.Decimal) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*INVOICE #%s*\n\n", shortID(saleID))
	b.WriteString("*Items:*\n")
	for _, item := range items {
		fmt.Fprintf(&b, "• %s\n", item.ProductName)
		fmt.Fprintf(&b, "  Qty: %d × ₹%s\n", item.Quantity, item.UnitPrice.StringFixed(2))
		fmt.Fprintf(&b, "  Amount: ₹%s\n\n", item.Subtotal.StringFixed(2))
	}
	fmt.Fprintf(&b, "*Total: ₹%s*\n\n", total.StringFixed(2))
	b.WriteString("Thank you for shopping with us!")
	return b.String()
}

// shortID devuelve los primeros 8 caracteres del ID en mayúsculas, como número
// de factura legible.
func shortID(saleID string) string {
	id := saleID
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}

// cleanPhone deja solo los dígitos del número.
func cleanPhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

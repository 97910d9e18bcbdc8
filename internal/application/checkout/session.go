package checkout

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/garment-pos/internal/application/dto"
	"github.com/tu-usuario/garment-pos/internal/domain"
	"github.com/tu-usuario/garment-pos/internal/domain/entity"
	"github.com/tu-usuario/garment-pos/internal/domain/repository"
)

// State estado de la sesión de caja.
type State string

// Estados de la sesión: IDLE/REVIEWING según el carrito, AWAITING_PAYMENT tras
// iniciar el cobro, COMMITTING mientras se persiste la venta, FAILED si el
// commit falló (el carrito se conserva para reintentar).
const (
	StateIdle            State = "IDLE"
	StateReviewing       State = "REVIEWING"
	StateAwaitingPayment State = "AWAITING_PAYMENT"
	StateCommitting      State = "COMMITTING"
	StateFailed          State = "FAILED"
)

// Session flujo de caja de una única terminal: un carrito activo, un cobro a
// la vez. El mutex más la bandera COMMITTING reproducen el bloqueo del botón
// de cobro: un segundo Complete concurrente recibe ErrCheckoutBusy en lugar de
// crear una segunda venta del mismo carrito.
type Session struct {
	mu    sync.Mutex
	state State
	cart  *Cart

	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	notifier    CustomerNotifier
	log         zerolog.Logger

	// phonePrefix prefijo telefónico por defecto (ej. "+91"); un número igual
	// al prefijo cuenta como vacío al validar la notificación.
	phonePrefix string
}

// NewSession construye la sesión de caja.
func NewSession(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	notifier CustomerNotifier,
	log zerolog.Logger,
	phonePrefix string,
) *Session {
	return &Session{
		state:       StateIdle,
		cart:        NewCart(),
		productRepo: productRepo,
		saleRepo:    saleRepo,
		notifier:    notifier,
		log:         log.With().Str("component", "checkout").Logger(),
		phonePrefix: phonePrefix,
	}
}

// State devuelve el estado actual de la sesión.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Cart devuelve el estado del carrito como DTO.
func (s *Session) Cart() *dto.CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartResponse()
}

// AddProduct carga el producto y agrega una unidad al carrito. El producto
// cargado queda como snapshot de la línea: precios y tope de stock se toman de
// ese momento.
func (s *Session) AddProduct(ctx context.Context, productID string) (*dto.CartResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureEditable(); err != nil {
		return nil, err
	}
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := s.cart.Add(*product); err != nil {
		return nil, err
	}
	s.syncCartState()
	return s.cartResponse(), nil
}

// UpdateQuantity reemplaza la cantidad de una línea (<= 0 la quita).
func (s *Session) UpdateQuantity(productID string, quantity int) (*dto.CartResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureEditable(); err != nil {
		return nil, err
	}
	if err := s.cart.UpdateQuantity(productID, quantity); err != nil {
		return nil, err
	}
	s.syncCartState()
	return s.cartResponse(), nil
}

// RemoveProduct quita la línea del producto.
func (s *Session) RemoveProduct(productID string) (*dto.CartResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureEditable(); err != nil {
		return nil, err
	}
	s.cart.Remove(productID)
	s.syncCartState()
	return s.cartResponse(), nil
}

// BeginPayment pasa a AWAITING_PAYMENT. Rechaza con ErrEmptyCart si el carrito
// está vacío; en ese caso el estado no cambia.
func (s *Session) BeginPayment() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateCommitting {
		return domain.ErrCheckoutBusy
	}
	if s.cart.IsEmpty() {
		return domain.ErrEmptyCart
	}
	s.state = StateAwaitingPayment
	return nil
}

// Cancel abandona el cobro y vuelve a IDLE/REVIEWING. El carrito y el stock
// quedan intactos.
func (s *Session) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateCommitting {
		return domain.ErrCheckoutBusy
	}
	s.syncCartState()
	return nil
}

// Complete convierte el carrito en una venta persistida: cabecera, líneas y
// descuento de stock por línea (ruta atómica con respaldo no atómico). En caso
// de éxito limpia el carrito; en caso de error lo conserva para reintentar y
// devuelve el error original sin envolver.
//
// No hay rollback compensatorio: si falla la inserción de líneas, la cabecera
// ya escrita queda en el backend (limitación documentada de este diseño de
// caja única, no un bug silencioso).
func (s *Session) Complete(ctx context.Context, notify bool, phone string) (*dto.SaleResponse, error) {
	s.mu.Lock()
	if s.state == StateCommitting {
		s.mu.Unlock()
		return nil, domain.ErrCheckoutBusy
	}
	if s.state != StateAwaitingPayment && s.state != StateFailed {
		s.mu.Unlock()
		return nil, domain.ErrInvalidInput
	}
	if notify && s.emptyPhone(phone) {
		// Rechazo antes de cualquier persistencia; el estado no cambia.
		s.mu.Unlock()
		return nil, domain.ErrMissingPhone
	}
	lines := s.cart.Items()
	s.state = StateCommitting
	s.mu.Unlock()

	sale, items, err := s.commit(ctx, lines, notify, phone)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		// Carrito intacto: la misma venta se puede reintentar.
		s.state = StateFailed
		return nil, err
	}
	s.cart.Clear()
	s.state = StateIdle
	return toSaleResponse(sale, items), nil
}

// commit ejecuta la secuencia de cierre (totales, cabecera, líneas, stock,
// notificación). Se invoca con la sesión ya marcada COMMITTING; no es
// re-entrante.
func (s *Session) commit(ctx context.Context, lines []CartItem, notify bool, phone string) (*entity.Sale, []*entity.SaleItem, error) {
	now := time.Now()

	// (a) Totales desde las líneas del carrito; el profit se fija aquí y no se
	// recalcula nunca más.
	totalAmount := decimal.Zero
	totalCost := decimal.Zero
	for _, line := range lines {
		qty := decimal.NewFromInt(int64(line.Quantity))
		totalAmount = totalAmount.Add(line.Product.SellingPrice.Mul(qty))
		totalCost = totalCost.Add(line.Product.PurchasePrice.Mul(qty))
	}

	customerPhone := ""
	if notify {
		customerPhone = phone
	}

	// (b) Cabecera de la venta.
	sale := &entity.Sale{
		SaleDate:      now,
		TotalAmount:   totalAmount,
		TotalCost:     totalCost,
		Profit:        totalAmount.Sub(totalCost),
		CustomerPhone: customerPhone,
	}
	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, nil, err
	}

	// (c) Líneas con snapshot de nombre, precio y costo del producto.
	items := make([]*entity.SaleItem, 0, len(lines))
	for _, line := range lines {
		qty := decimal.NewFromInt(int64(line.Quantity))
		items = append(items, &entity.SaleItem{
			SaleID:      sale.ID,
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   line.Product.SellingPrice,
			UnitCost:    line.Product.PurchasePrice,
			Subtotal:    line.Product.SellingPrice.Mul(qty),
		})
	}

	// (d) Todas las líneas en un solo batch.
	if err := s.saleRepo.CreateItems(ctx, sale.ID, items); err != nil {
		return nil, nil, err
	}

	// (e) Descuento de stock por línea: primero la ruta atómica (update_stock);
	// si falla, respaldo leer-y-escribir. Un fallo del respaldo no aborta la
	// venta ya persistida: se registra en el log y el stock puede quedar
	// desfasado (comportamiento heredado, documentado).
	for _, item := range items {
		if err := s.productRepo.DecrementStock(ctx, item.ProductID, item.Quantity); err == nil {
			continue
		} else {
			s.log.Warn().Err(err).
				Str("product_id", item.ProductID).
				Int("quantity", item.Quantity).
				Msg("descuento atómico de stock falló, usando ruta de respaldo")
		}
		stock, err := s.productRepo.GetStock(ctx, item.ProductID)
		if err != nil {
			s.log.Error().Err(err).
				Str("product_id", item.ProductID).
				Msg("respaldo de stock: lectura falló, stock sin descontar")
			continue
		}
		if err := s.productRepo.SetStock(ctx, item.ProductID, stock-item.Quantity); err != nil {
			s.log.Error().Err(err).
				Str("product_id", item.ProductID).
				Msg("respaldo de stock: escritura falló, stock sin descontar")
		}
	}

	// (f) Notificación al cliente: nunca escala ni se reintenta.
	if notify {
		if err := s.notifier.NotifySale(phone, sale.ID, items, totalAmount); err != nil {
			s.log.Error().Err(err).
				Str("sale_id", sale.ID).
				Msg("notificación al cliente falló; la venta queda completada")
		}
	}

	return sale, items, nil
}

// ensureEditable rechaza ediciones del carrito mientras hay un cobro iniciado
// o en proceso.
func (s *Session) ensureEditable() error {
	if s.state == StateCommitting || s.state == StateAwaitingPayment {
		return domain.ErrCheckoutBusy
	}
	return nil
}

// syncCartState recalcula IDLE/REVIEWING según el contenido del carrito.
func (s *Session) syncCartState() {
	if s.cart.IsEmpty() {
		s.state = StateIdle
		return
	}
	s.state = StateReviewing
}

// emptyPhone considera vacío un número ausente o igual al prefijo por defecto.
func (s *Session) emptyPhone(phone string) bool {
	trimmed := strings.TrimSpace(phone)
	return trimmed == "" || trimmed == s.phonePrefix
}

func (s *Session) cartResponse() *dto.CartResponse {
	items := make([]dto.CartItemResponse, 0, s.cart.Len())
	for _, it := range s.cart.Items() {
		qty := decimal.NewFromInt(int64(it.Quantity))
		items = append(items, dto.CartItemResponse{
			ProductID:   it.Product.ID,
			ProductName: it.Product.Name,
			SKU:         it.Product.SKU,
			Quantity:    it.Quantity,
			UnitPrice:   it.Product.SellingPrice,
			Subtotal:    it.Product.SellingPrice.Mul(qty),
		})
	}
	return &dto.CartResponse{
		State: string(s.state),
		Items: items,
		Total: s.cart.Total(),
	}
}

func toSaleResponse(sale *entity.Sale, items []*entity.SaleItem) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            sale.ID,
		SaleDate:      sale.SaleDate,
		TotalAmount:   sale.TotalAmount,
		TotalCost:     sale.TotalCost,
		Profit:        sale.Profit,
		CustomerPhone: sale.CustomerPhone,
		CreatedAt:     sale.CreatedAt,
		Items:         make([]dto.SaleItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			UnitCost:    it.UnitCost,
			Subtotal:    it.Subtotal,
		})
	}
	return resp
}

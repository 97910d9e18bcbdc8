package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/garment-pos/internal/domain/entity"
	"github.com/tu-usuario/garment-pos/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta. El adaptador asigna ID y CreatedAt;
// la venta es inmutable después de esto.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	sale.CreatedAt = time.Now()

	query := `
		INSERT INTO sales (id, sale_date, total_amount, total_cost, profit, customer_phone, invoice_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.SaleDate, sale.TotalAmount, sale.TotalCost, sale.Profit,
		sale.CustomerPhone, sale.InvoiceURL, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItems persiste todas las líneas de la venta en un solo batch request.
func (r *SaleRepo) CreateItems(ctx context.Context, saleID string, items []*entity.SaleItem) error {
	if len(items) == 0 {
		return nil
	}
	now := time.Now()
	query := `
		INSERT INTO sale_items (id, sale_id, product_id, product_name, quantity, unit_price, unit_cost, subtotal, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	batch := &pgx.Batch{}
	for _, item := range items {
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		item.SaleID = saleID
		item.CreatedAt = now
		batch.Queue(query,
			item.ID, item.SaleID, item.ProductID, item.ProductName,
			item.Quantity, item.UnitPrice, item.UnitCost, item.Subtotal, item.CreatedAt,
		)
	}

	results := r.q.SendBatch(ctx, batch)
	defer results.Close()
	for range items {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("insert sale items: %w", err)
		}
	}
	return nil
}

// List devuelve todas las ventas, descendente por fecha de venta.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	query := `
		SELECT id, sale_date, total_amount, total_cost, profit, customer_phone, invoice_url, created_at
		FROM sales ORDER BY sale_date DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.SaleDate, &s.TotalAmount, &s.TotalCost, &s.Profit,
			&s.CustomerPhone, &s.InvoiceURL, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ListItemsBySale devuelve las líneas de una venta en orden de inserción.
func (r *SaleRepo) ListItemsBySale(ctx context.Context, saleID string) ([]*entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, product_id, product_name, quantity, unit_price, unit_cost, subtotal, created_at
		FROM sale_items WHERE sale_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.ProductName,
			&it.Quantity, &it.UnitPrice, &it.UnitCost, &it.Subtotal, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

package repository

import (
	"context"

	"github.com/tu-usuario/garment-pos/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale y SaleItem.
type SaleRepository interface {
	// Create persiste la cabecera; el adaptador asigna ID y CreatedAt.
	Create(ctx context.Context, sale *entity.Sale) error
	// CreateItems persiste todas las líneas de la venta en un solo batch.
	CreateItems(ctx context.Context, saleID string, items []*entity.SaleItem) error
	// List devuelve todas las ventas, descendente por fecha de venta.
	List(ctx context.Context) ([]*entity.Sale, error)
	// ListItemsBySale devuelve las líneas de una venta.
	ListItemsBySale(ctx context.Context, saleID string) ([]*entity.SaleItem, error)
}

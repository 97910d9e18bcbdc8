package repository

import (
	"context"

	"github.com/tu-usuario/garment-pos/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// El backend remoto asigna ID y timestamps en Create.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error) // ascendente por nombre
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error

	// GetStock / SetStock son la ruta de respaldo (read-modify-write, no atómica)
	// y el ajuste manual de stock.
	GetStock(ctx context.Context, id string) (int, error)
	SetStock(ctx context.Context, id string, quantity int) error

	// DecrementStock descuenta stock vía el procedimiento almacenado update_stock.
	// Todo-o-nada del lado del backend; el stock nunca queda negativo.
	DecrementStock(ctx context.Context, id string, quantity int) error
}

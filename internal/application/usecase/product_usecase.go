package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/garment-pos/internal/application/dto"
	"github.com/tu-usuario/garment-pos/internal/domain"
	"github.com/tu-usuario/garment-pos/internal/domain/entity"
	"github.com/tu-usuario/garment-pos/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD del catálogo más el detector de bajo stock.
// El stock solo cambia por ajuste manual (AdjustStock) o por venta (checkout);
// editar precio o nombre nunca toca ventas históricas: las líneas de venta son
// snapshots.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. SKU y nombre son obligatorios; precios y cantidades
// no pueden ser negativos.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PurchasePrice.LessThan(decimal.Zero) || in.SellingPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.StockQuantity < 0 || in.LowStockThreshold < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetBySKU(ctx, in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	product := &entity.Product{
		Name:              in.Name,
		SKU:               in.SKU,
		Category:          in.Category,
		Size:              in.Size,
		Color:             in.Color,
		PurchasePrice:     in.PurchasePrice,
		SellingPrice:      in.SellingPrice,
		StockQuantity:     in.StockQuantity,
		LowStockThreshold: in.LowStockThreshold,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista el catálogo completo, ascendente por nombre.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items}, nil
}

// Update actualiza campos del producto (parcial). El stock no se toca por aquí.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.SKU != nil {
		product.SKU = *in.SKU
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Size != nil {
		product.Size = *in.Size
	}
	if in.Color != nil {
		product.Color = *in.Color
	}
	if in.PurchasePrice != nil {
		if in.PurchasePrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.PurchasePrice = *in.PurchasePrice
	}
	if in.SellingPrice != nil {
		if in.SellingPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.SellingPrice = *in.SellingPrice
	}
	if in.LowStockThreshold != nil {
		if *in.LowStockThreshold < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.LowStockThreshold = *in.LowStockThreshold
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// AdjustStock reemplaza el stock de un producto (ajuste manual de bodega).
func (uc *ProductUseCase) AdjustStock(ctx context.Context, id string, quantity int) (*dto.ProductResponse, error) {
	if quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if err := uc.repo.SetStock(ctx, id, quantity); err != nil {
		return nil, err
	}
	product.StockQuantity = quantity
	product.UpdatedAt = time.Now()
	return toProductResponse(product), nil
}

// LowStock filtra los productos con StockQuantity <= LowStockThreshold.
// Lectura puntual sin histéresis: dos llamadas sin mutación intermedia
// devuelven lo mismo.
func (uc *ProductUseCase) LowStock(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0)
	for _, p := range list {
		if p.IsLowStock() {
			out = append(out, *toProductResponse(p))
		}
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		SKU:               p.SKU,
		Category:          p.Category,
		Size:              p.Size,
		Color:             p.Color,
		PurchasePrice:     p.PurchasePrice,
		SellingPrice:      p.SellingPrice,
		StockQuantity:     p.StockQuantity,
		LowStockThreshold: p.LowStockThreshold,
		LowStock:          p.IsLowStock(),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

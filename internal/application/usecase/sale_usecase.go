package usecase

import (
	"context"

	"github.com/tu-usuario/garment-pos/internal/application/dto"
	"github.com/tu-usuario/garment-pos/internal/domain"
	"github.com/tu-usuario/garment-pos/internal/domain/entity"
	"github.com/tu-usuario/garment-pos/internal/domain/repository"
)

// SaleUseCase lecturas del historial de ventas. Las ventas se crean únicamente
// desde el flujo de caja (checkout.Session); aquí no hay escrituras.
type SaleUseCase struct {
	repo repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{repo: repo}
}

// List devuelve todas las ventas, descendente por fecha.
func (uc *SaleUseCase) List(ctx context.Context) (*dto.SaleListResponse, error) {
	sales, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, *toSaleHeaderResponse(s))
	}
	return &dto.SaleListResponse{Items: items}, nil
}

// ItemsBySale devuelve las líneas históricas de una venta.
func (uc *SaleUseCase) ItemsBySale(ctx context.Context, saleID string) ([]dto.SaleItemResponse, error) {
	if saleID == "" {
		return nil, domain.ErrInvalidInput
	}
	items, err := uc.repo.ListItemsBySale(ctx, saleID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.SaleItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			UnitCost:    it.UnitCost,
			Subtotal:    it.Subtotal,
		})
	}
	return out, nil
}

func toSaleHeaderResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:            s.ID,
		SaleDate:      s.SaleDate,
		TotalAmount:   s.TotalAmount,
		TotalCost:     s.TotalCost,
		Profit:        s.Profit,
		CustomerPhone: s.CustomerPhone,
		CreatedAt:     s.CreatedAt,
	}
}

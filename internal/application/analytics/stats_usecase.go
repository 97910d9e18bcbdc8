// Package analytics agrega las métricas de ventas del tablero de la tienda.
package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/garment-pos/internal/application/dto"
	"github.com/tu-usuario/garment-pos/internal/domain/entity"
	"github.com/tu-usuario/garment-pos/internal/domain/repository"
)

// StatsUseCase deriva las métricas de hoy y de los últimos 7 días a partir del
// listado completo de ventas. Se recalcula bajo demanda en cada llamada; no
// hay mantenimiento incremental ni caché.
//
// "Hoy" = ventas con SaleDate desde la medianoche local.
// "Semanal" = ventana móvil de 7 días hacia atrás desde ahora (no semana
// calendario).
type StatsUseCase struct {
	saleRepo repository.SaleRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(saleRepo repository.SaleRepository) *StatsUseCase {
	return &StatsUseCase{saleRepo: saleRepo}
}

// Summary devuelve conteo, ingresos y ganancia de hoy y de la semana móvil.
func (uc *StatsUseCase) Summary(ctx context.Context) (todayStats, weeklyStats dto.PeriodStatsDTO, err error) {
	sales, err := uc.saleRepo.List(ctx)
	if err != nil {
		return dto.PeriodStatsDTO{}, dto.PeriodStatsDTO{}, err
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := now.AddDate(0, 0, -7)

	return aggregate(sales, todayStart), aggregate(sales, weekStart), nil
}

// aggregate suma las ventas con SaleDate en o después de from.
func aggregate(sales []*entity.Sale, from time.Time) dto.PeriodStatsDTO {
	stats := dto.PeriodStatsDTO{
		TotalRevenue: decimal.Zero,
		TotalProfit:  decimal.Zero,
	}
	for _, s := range sales {
		if s.SaleDate.Before(from) {
			continue
		}
		stats.TotalSales++
		stats.TotalRevenue = stats.TotalRevenue.Add(s.TotalAmount)
		stats.TotalProfit = stats.TotalProfit.Add(s.Profit)
	}
	return stats
}

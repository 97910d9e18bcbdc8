package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/garment-pos/internal/application/analytics"
	"github.com/tu-usuario/garment-pos/internal/domain/entity"
)

// fakeSaleLister implementa repository.SaleRepository con una lista fija.
type fakeSaleLister struct {
	sales []*entity.Sale
	err   error
}

func (r *fakeSaleLister) Create(_ context.Context, _ *entity.Sale) error { return nil }
func (r *fakeSaleLister) CreateItems(_ context.Context, _ string, _ []*entity.SaleItem) error {
	return nil
}
func (r *fakeSaleLister) List(_ context.Context) ([]*entity.Sale, error) {
	return r.sales, r.err
}
func (r *fakeSaleLister) ListItemsBySale(_ context.Context, _ string) ([]*entity.SaleItem, error) {
	return nil, nil
}

func saleAt(date time.Time, amount, profit int64) *entity.Sale {
	return &entity.Sale{
		SaleDate:    date,
		TotalAmount: decimal.NewFromInt(amount),
		TotalCost:   decimal.NewFromInt(amount - profit),
		Profit:      decimal.NewFromInt(profit),
	}
}

func TestStatsUseCase_Summary_SeparaHoyDeLaSemana(t *testing.T) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	repo := &fakeSaleLister{sales: []*entity.Sale{
		// Hoy: cuenta en ambos períodos.
		saleAt(todayStart.Add(time.Hour), 100, 40),
		// Hace 3 días: solo semanal.
		saleAt(now.AddDate(0, 0, -3), 200, 80),
		// Hace 10 días: fuera de ambas ventanas.
		saleAt(now.AddDate(0, 0, -10), 999, 500),
	}}
	uc := analytics.NewStatsUseCase(repo)

	today, weekly, err := uc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, today.TotalSales)
	assert.True(t, today.TotalRevenue.Equal(decimal.NewFromInt(100)))
	assert.True(t, today.TotalProfit.Equal(decimal.NewFromInt(40)))

	assert.Equal(t, 2, weekly.TotalSales, "la semana incluye las ventas de hoy")
	assert.True(t, weekly.TotalRevenue.Equal(decimal.NewFromInt(300)))
	assert.True(t, weekly.TotalProfit.Equal(decimal.NewFromInt(120)))
}

// La venta de ayer a las 23:59 no es de "hoy" aunque tenga menos de 24 horas.
func TestStatsUseCase_Summary_HoyEsDesdeMedianocheNoUltimas24Horas(t *testing.T) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	repo := &fakeSaleLister{sales: []*entity.Sale{
		saleAt(todayStart.Add(-time.Minute), 100, 40),
	}}
	uc := analytics.NewStatsUseCase(repo)

	today, weekly, err := uc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, today.TotalSales)
	assert.Equal(t, 1, weekly.TotalSales)
}

func TestStatsUseCase_Summary_SinVentasDevuelveCeros(t *testing.T) {
	uc := analytics.NewStatsUseCase(&fakeSaleLister{})

	today, weekly, err := uc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, today.TotalSales)
	assert.True(t, today.TotalRevenue.Equal(decimal.Zero))
	assert.True(t, today.TotalProfit.Equal(decimal.Zero))
	assert.Equal(t, 0, weekly.TotalSales)
}

func TestStatsUseCase_Summary_PropagaElErrorDelRepositorio(t *testing.T) {
	uc := analytics.NewStatsUseCase(&fakeSaleLister{err: context.DeadlineExceeded})

	_, _, err := uc.Summary(context.Background())

	assert.Error(t, err)
}

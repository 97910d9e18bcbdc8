package dto

import "github.com/shopspring/decimal"

// PeriodStatsDTO métricas de ventas de un período.
type PeriodStatsDTO struct {
	TotalSales   int             `json:"total_sales"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalProfit  decimal.Decimal `json:"total_profit"`
}

// DashboardSummaryDTO resumen para el tablero: hoy, últimos 7 días y productos
// bajos de stock.
type DashboardSummaryDTO struct {
	Today    PeriodStatsDTO    `json:"today"`
	Weekly   PeriodStatsDTO    `json:"weekly"`
	LowStock []ProductResponse `json:"low_stock"`
}

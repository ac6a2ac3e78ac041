package dto

import "github.com/shopspring/decimal"

// DashboardQuery filtros de consulta tal como llegan por query string.
// AttractionID admite el centinela "all" (equivalente a vacío).
type DashboardQuery struct {
	StartDate    string `query:"startDate"`
	EndDate      string `query:"endDate"`
	AttractionID string `query:"attractionId"`
}

// DashboardRowDTO fila del dashboard: hecho + nombre de la atracción +
// tasa de conversión derivada.
type DashboardRowDTO struct {
	ID               string          `json:"id"`
	Date             string          `json:"date"` // YYYY-MM-DD
	AttractionName   string          `json:"attractionName"`
	AttractionID     string          `json:"attractionId"`
	QrcodesDelivered int64           `json:"qrcodesDelivered"`
	SalesMade        int64           `json:"salesMade"`
	ConversionRate   decimal.Decimal `json:"conversionRate"`
}

// SummaryDTO agregados del período. AvgConversionRate sale de las sumas
// agregadas (totalSales*100/totalQrcodes), no del promedio de tasas por fila.
type SummaryDTO struct {
	TotalDays         int64           `json:"totalDays"`
	TotalQrcodes      int64           `json:"totalQrcodes"`
	TotalSales        int64           `json:"totalSales"`
	AvgConversionRate decimal.Decimal `json:"avgConversionRate"`
}

// PeriodDTO período efectivo de un reporte, para mostrar en el encabezado.
type PeriodDTO struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

package repository

import (
	"context"
	"time"
)

// DashboardFilter filtros conjuntivos para listado y agregación.
// Un campo en su valor cero significa "sin filtro".
type DashboardFilter struct {
	StartDate    time.Time // date >= StartDate
	EndDate      time.Time // date <= EndDate
	AttractionID string    // attraction_id = AttractionID
}

// DashboardRow fila del listado: hecho unido a su dimensión.
type DashboardRow struct {
	ID               string
	Date             time.Time
	AttractionName   string
	AttractionID     string
	QrcodesDelivered int64
	SalesMade        int64
}

// SummaryResult agregados crudos del período. TotalDays es el conteo plano
// de filas coincidentes, no de fechas distintas.
type SummaryResult struct {
	TotalDays    int64
	TotalQrcodes int64
	TotalSales   int64
}

// DashboardRepository consultas de solo lectura para el dashboard.
type DashboardRepository interface {
	// ListRows devuelve las filas filtradas, ordenadas por fecha descendente
	// y nombre de atracción ascendente.
	ListRows(ctx context.Context, filter DashboardFilter) ([]DashboardRow, error)
	// Summarize agrega conteos y sumas sobre las filas filtradas (sin join).
	Summarize(ctx context.Context, filter DashboardFilter) (SummaryResult, error)
}

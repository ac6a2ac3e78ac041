package postgres

import (
	"context"
	"fmt"

	"github.com/vyoo/qr-dashboard-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para el listado y el resumen.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador de consultas del dashboard.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// ListRows une el hecho con su dimensión y aplica los filtros conjuntivos.
// Orden: fecha descendente, nombre de atracción ascendente.
func (r *DashboardRepo) ListRows(ctx context.Context, filter repository.DashboardFilter) ([]repository.DashboardRow, error) {
	p := dashboardPredicates(filter, "d")
	query := `
	SELECT
	    d.id,
	    d.date,
	    a.name AS attraction_name,
	    d.attraction_id,
	    d.qrcodes_delivered,
	    d.sales_made
	FROM daily_data d
	JOIN attractions a ON a.id = d.attraction_id` +
		p.where() +
		` ORDER BY d.date DESC, a.name`

	rows, err := r.q.Query(ctx, query, p.args...)
	if err != nil {
		return nil, fmt.Errorf("dashboard.ListRows: %w", err)
	}
	defer rows.Close()

	var results []repository.DashboardRow
	for rows.Next() {
		var row repository.DashboardRow
		if err := rows.Scan(
			&row.ID,
			&row.Date,
			&row.AttractionName,
			&row.AttractionID,
			&row.QrcodesDelivered,
			&row.SalesMade,
		); err != nil {
			return nil, fmt.Errorf("dashboard.ListRows scan: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dashboard.ListRows rows: %w", err)
	}
	if results == nil {
		results = []repository.DashboardRow{}
	}
	return results, nil
}

// Summarize agrega el período filtrado sin join: conteo plano de filas y
// sumas de los dos contadores. COALESCE devuelve cero en períodos vacíos.
func (r *DashboardRepo) Summarize(ctx context.Context, filter repository.DashboardFilter) (repository.SummaryResult, error) {
	p := dashboardPredicates(filter, "d")
	query := `
	SELECT
	    COUNT(*)                        AS total_days,
	    COALESCE(SUM(d.qrcodes_delivered), 0) AS total_qrcodes,
	    COALESCE(SUM(d.sales_made), 0)        AS total_sales
	FROM daily_data d` + p.where()

	var res repository.SummaryResult
	err := r.q.QueryRow(ctx, query, p.args...).Scan(
		&res.TotalDays, &res.TotalQrcodes, &res.TotalSales,
	)
	if err != nil {
		return repository.SummaryResult{}, fmt.Errorf("dashboard.Summarize: %w", err)
	}
	return res, nil
}

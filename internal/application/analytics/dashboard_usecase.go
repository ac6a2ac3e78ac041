// Package analytics contiene los casos de uso de consulta del dashboard:
// listado filtrado, resumen agregado y exportación del reporte en PDF.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/vyoo/qr-dashboard-api/internal/application/dto"
	"github.com/vyoo/qr-dashboard-api/internal/domain"
	"github.com/vyoo/qr-dashboard-api/internal/domain/repository"
)

const (
	dateLayout = "2006-01-02"
	// allAttractions centinela del SPA para "sin filtro de atracción".
	allAttractions = "all"
)

// SummaryReportGenerator puerto de generación del reporte PDF del resumen.
type SummaryReportGenerator interface {
	GenerateSummaryPDF(period dto.PeriodDTO, summary dto.SummaryDTO, rows []dto.DashboardRowDTO) ([]byte, error)
}

// DashboardUseCase consultas de solo lectura sobre el fact table.
// No accede directamente a las tablas; delega todo en el repositorio.
type DashboardUseCase struct {
	repo    repository.DashboardRepository
	reports SummaryReportGenerator
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository, reports SummaryReportGenerator) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, reports: reports}
}

// ListRows devuelve las filas filtradas con la tasa de conversión derivada.
// Orden: fecha descendente, nombre de atracción ascendente.
func (uc *DashboardUseCase) ListRows(ctx context.Context, q dto.DashboardQuery) ([]dto.DashboardRowDTO, error) {
	filter, err := parseFilter(q)
	if err != nil {
		return nil, err
	}
	rows, err := uc.repo.ListRows(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar filas: %w", err)
	}
	out := make([]dto.DashboardRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.DashboardRowDTO{
			ID:               r.ID,
			Date:             r.Date.Format(dateLayout),
			AttractionName:   r.AttractionName,
			AttractionID:     r.AttractionID,
			QrcodesDelivered: r.QrcodesDelivered,
			SalesMade:        r.SalesMade,
			ConversionRate:   domain.ConversionRate(r.SalesMade, r.QrcodesDelivered),
		})
	}
	return out, nil
}

// Summary agrega el período filtrado. La tasa promedio sale de las sumas
// agregadas (sum(sales)*100/sum(qrcodes)), nunca del promedio de tasas por
// fila: con filas (10,5) y (0,0) el resultado es 50.00, no 25.00.
func (uc *DashboardUseCase) Summary(ctx context.Context, q dto.DashboardQuery) (*dto.SummaryDTO, error) {
	filter, err := parseFilter(q)
	if err != nil {
		return nil, err
	}
	res, err := uc.repo.Summarize(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("dashboard: resumen: %w", err)
	}
	return &dto.SummaryDTO{
		TotalDays:         res.TotalDays,
		TotalQrcodes:      res.TotalQrcodes,
		TotalSales:        res.TotalSales,
		AvgConversionRate: domain.ConversionRate(res.TotalSales, res.TotalQrcodes),
	}, nil
}

// SummaryPDF genera el reporte PDF del período: resumen + tabla de filas.
// Las dos consultas son independientes y corren en paralelo.
func (uc *DashboardUseCase) SummaryPDF(ctx context.Context, q dto.DashboardQuery) ([]byte, error) {
	type rowsResult struct {
		rows []dto.DashboardRowDTO
		err  error
	}
	type summaryResult struct {
		summary *dto.SummaryDTO
		err     error
	}

	rowsCh := make(chan rowsResult, 1)
	sumCh := make(chan summaryResult, 1)

	go func() {
		rows, err := uc.ListRows(ctx, q)
		rowsCh <- rowsResult{rows, err}
	}()
	go func() {
		summary, err := uc.Summary(ctx, q)
		sumCh <- summaryResult{summary, err}
	}()

	rows := <-rowsCh
	sum := <-sumCh

	if rows.err != nil {
		return nil, rows.err
	}
	if sum.err != nil {
		return nil, sum.err
	}

	return uc.reports.GenerateSummaryPDF(periodLabel(q), *sum.summary, rows.rows)
}

// parseFilter convierte los strings de query en el filtro del repositorio.
// Campos vacíos (o el centinela "all") quedan sin filtro.
func parseFilter(q dto.DashboardQuery) (repository.DashboardFilter, error) {
	var f repository.DashboardFilter

	if q.StartDate != "" {
		start, err := time.Parse(dateLayout, q.StartDate)
		if err != nil {
			return f, fmt.Errorf("%w: startDate debe tener formato YYYY-MM-DD", domain.ErrInvalidInput)
		}
		f.StartDate = start
	}
	if q.EndDate != "" {
		end, err := time.Parse(dateLayout, q.EndDate)
		if err != nil {
			return f, fmt.Errorf("%w: endDate debe tener formato YYYY-MM-DD", domain.ErrInvalidInput)
		}
		f.EndDate = end
	}
	if !f.StartDate.IsZero() && !f.EndDate.IsZero() && f.StartDate.After(f.EndDate) {
		return f, fmt.Errorf("%w: startDate no puede ser posterior a endDate", domain.ErrInvalidInput)
	}
	if q.AttractionID != "" && q.AttractionID != allAttractions {
		f.AttractionID = q.AttractionID
	}
	return f, nil
}

// periodLabel arma el período a mostrar en el encabezado del reporte.
func periodLabel(q dto.DashboardQuery) dto.PeriodDTO {
	p := dto.PeriodDTO{StartDate: q.StartDate, EndDate: q.EndDate}
	if p.StartDate == "" {
		p.StartDate = "—"
	}
	if p.EndDate == "" {
		p.EndDate = "—"
	}
	return p
}

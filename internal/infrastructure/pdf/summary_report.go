// Package pdf implementa la exportación del resumen del dashboard como
// reporte PDF de una página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + período filtrado                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: días | QRs entregados | ventas | conversión        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Atracción | QRs | Ventas | Conversión        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/vyoo/qr-dashboard-api/internal/application/analytics"
	"github.com/vyoo/qr-dashboard-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ analytics.SummaryReportGenerator = (*MarotoSummaryReport)(nil)

// MarotoSummaryReport implementa analytics.SummaryReportGenerator usando Maroto v2.
type MarotoSummaryReport struct{}

// NewMarotoSummaryReport construye el generador.
func NewMarotoSummaryReport() *MarotoSummaryReport { return &MarotoSummaryReport{} }

// GenerateSummaryPDF genera el reporte y devuelve sus bytes.
func (g *MarotoSummaryReport) GenerateSummaryPDF(
	period dto.PeriodDTO,
	summary dto.SummaryDTO,
	rows []dto.DashboardRowDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen de distribución QR", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(period))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(tableDetailRow(r))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y período filtrado (der).
func headerRow(period dto.PeriodDTO) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("Distribución de códigos QR", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Resumen por atracción y fecha", props.Text{
				Size: 9, Top: 8, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Período: "+period.StartDate+" a "+period.EndDate, props.Text{
				Size: 9, Top: 3, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

// summaryRow: los cuatro agregados del período, en una banda.
func summaryRow(s dto.SummaryDTO) core.Row {
	cell := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Align: align.Center}),
			text.New(value, props.Text{
				Size: 12, Style: fontstyle.Bold, Top: 5, Align: align.Center, Color: colorPrimary,
			}),
		)
	}
	return row.New(14).Add(
		cell("Días registrados", fmt.Sprintf("%d", s.TotalDays)),
		cell("QRs entregados", fmt.Sprintf("%d", s.TotalQrcodes)),
		cell("Ventas", fmt.Sprintf("%d", s.TotalSales)),
		cell("Conversión", s.AvgConversionRate.StringFixed(2)+" %"),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
		}))
	}
	return row.New(7).Add(
		header(2, "Fecha", align.Left),
		header(4, "Atracción", align.Left),
		header(2, "QRs entregados", align.Right),
		header(2, "Ventas", align.Right),
		header(2, "Conversión", align.Right),
	)
}

func tableDetailRow(r dto.DashboardRowDTO) core.Row {
	cell := func(size int, value string, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: a}))
	}
	return row.New(5).Add(
		cell(2, r.Date, align.Left),
		cell(4, r.AttractionName, align.Left),
		cell(2, fmt.Sprintf("%d", r.QrcodesDelivered), align.Right),
		cell(2, fmt.Sprintf("%d", r.SalesMade), align.Right),
		cell(2, r.ConversionRate.StringFixed(2)+" %", align.Right),
	)
}

package postgres

import (
	"fmt"
	"strings"

	"github.com/vyoo/qr-dashboard-api/internal/domain/repository"
)

// predicates acumula condiciones WHERE con argumentos posicionales.
// Los valores nunca se interpolan en el SQL: cada predicado agrega un
// placeholder $n y su argumento, y el conjunto se une con AND.
type predicates struct {
	conds []string
	args  []any
}

// add agrega una condición; expr debe contener un único %d para el placeholder.
func (p *predicates) add(expr string, arg any) {
	p.args = append(p.args, arg)
	p.conds = append(p.conds, fmt.Sprintf(expr, len(p.args)))
}

// where devuelve la cláusula WHERE (o cadena vacía sin condiciones).
func (p *predicates) where() string {
	if len(p.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.conds, " AND ")
}

// dashboardPredicates arma los filtros conjuntivos del dashboard sobre el
// alias de tabla indicado. Campos en valor cero no generan condición.
func dashboardPredicates(f repository.DashboardFilter, alias string) *predicates {
	p := &predicates{}
	if !f.StartDate.IsZero() {
		p.add(alias+".date >= $%d", f.StartDate)
	}
	if !f.EndDate.IsZero() {
		p.add(alias+".date <= $%d", f.EndDate)
	}
	if f.AttractionID != "" {
		p.add(alias+".attraction_id = $%d", f.AttractionID)
	}
	return p
}

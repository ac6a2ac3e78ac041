package entity

import "time"

// DailyRecord hecho: conteos de un día para una atracción.
// Clave natural (AttractionID, Date); a lo sumo una fila por par.
type DailyRecord struct {
	ID               string
	AttractionID     string
	Date             time.Time // fecha calendario, sin componente horario
	QrcodesDelivered int64
	SalesMade        int64
	CreatedAt        time.Time
}

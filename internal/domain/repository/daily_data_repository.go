package repository

import (
	"time"

	"github.com/vyoo/qr-dashboard-api/internal/domain/entity"
)

// DailyDataRepository define el puerto de persistencia para DailyRecord.
type DailyDataRepository interface {
	Insert(record *entity.DailyRecord) error
	GetByID(id string) (*entity.DailyRecord, error)
	// GetByAttractionAndDate busca por clave natural; nil, nil si no hay fila.
	GetByAttractionAndDate(attractionID string, date time.Time) (*entity.DailyRecord, error)
	// UpdateCounts sobreescribe solo los conteos de la fila indicada.
	UpdateCounts(id string, qrcodesDelivered, salesMade int64) error
	// Update sobreescribe los cuatro campos mutables por PK.
	// Devuelve filas afectadas (0 = no existía).
	Update(record *entity.DailyRecord) (int64, error)
	// Delete devuelve filas eliminadas (0 = no existía).
	Delete(id string) (int64, error)
	// CountByAttraction cuenta los registros que referencian una atracción.
	CountByAttraction(attractionID string) (int64, error)
}

package repository

import "github.com/vyoo/qr-dashboard-api/internal/domain/entity"

// AttractionRepository define el puerto de persistencia para Attraction.
type AttractionRepository interface {
	Create(attraction *entity.Attraction) error
	GetByID(id string) (*entity.Attraction, error)
	// List devuelve todas las atracciones ordenadas por nombre ascendente.
	List() ([]*entity.Attraction, error)
	// Delete devuelve el número de filas eliminadas (0 = no existía).
	// Retorna domain.ErrConflict si la atracción tiene registros diarios.
	Delete(id string) (int64, error)
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vyoo/qr-dashboard-api/internal/domain"
	"github.com/vyoo/qr-dashboard-api/internal/domain/entity"
	"github.com/vyoo/qr-dashboard-api/internal/domain/repository"
)

var _ repository.AttractionRepository = (*AttractionRepo)(nil)

// AttractionRepo implementación del puerto AttractionRepository sobre PostgreSQL.
type AttractionRepo struct {
	q Querier
}

// NewAttractionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAttractionRepository(q Querier) *AttractionRepo {
	return &AttractionRepo{q: q}
}

// Create persiste una nueva atracción.
func (r *AttractionRepo) Create(attraction *entity.Attraction) error {
	query := `
		INSERT INTO attractions (id, name, created_at)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query,
		attraction.ID, attraction.Name, attraction.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert attraction: %w", err)
	}
	return nil
}

// GetByID obtiene una atracción por ID.
func (r *AttractionRepo) GetByID(id string) (*entity.Attraction, error) {
	query := `SELECT id, name, created_at FROM attractions WHERE id = $1`
	var a entity.Attraction
	err := r.q.QueryRow(context.Background(), query, id).Scan(&a.ID, &a.Name, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get attraction: %w", err)
	}
	return &a, nil
}

// List devuelve todas las atracciones ordenadas por nombre ascendente.
func (r *AttractionRepo) List() ([]*entity.Attraction, error) {
	query := `SELECT id, name, created_at FROM attractions ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list attractions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Attraction
	for rows.Next() {
		var a entity.Attraction
		if err := rows.Scan(&a.ID, &a.Name, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan attraction: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Delete elimina una atracción por ID y devuelve filas afectadas.
// La FK de daily_data actúa de respaldo del guard de la aplicación: si una
// eliminación llega con registros referenciando la fila, se reporta conflicto.
func (r *AttractionRepo) Delete(id string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM attractions WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.ErrConflict
		}
		return 0, fmt.Errorf("delete attraction: %w", err)
	}
	return cmd.RowsAffected(), nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/vyoo/qr-dashboard-api/internal/domain"
	"github.com/vyoo/qr-dashboard-api/internal/domain/entity"
	"github.com/vyoo/qr-dashboard-api/internal/domain/repository"
)

var _ repository.DailyDataRepository = (*DailyDataRepo)(nil)

// DailyDataRepo implementación del puerto DailyDataRepository sobre PostgreSQL.
type DailyDataRepo struct {
	q Querier
}

// NewDailyDataRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDailyDataRepository(q Querier) *DailyDataRepo {
	return &DailyDataRepo{q: q}
}

// Insert persiste un nuevo registro diario.
// Violación del constraint único (attraction_id, date) -> ErrDuplicate;
// atracción inexistente (FK) -> ErrAttractionNotFound.
func (r *DailyDataRepo) Insert(record *entity.DailyRecord) error {
	query := `
		INSERT INTO daily_data (id, attraction_id, date, qrcodes_delivered, sales_made, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.AttractionID, record.Date, record.QrcodesDelivered, record.SalesMade, record.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrAttractionNotFound
		}
		return fmt.Errorf("insert daily record: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por ID.
func (r *DailyDataRepo) GetByID(id string) (*entity.DailyRecord, error) {
	query := `
		SELECT id, attraction_id, date, qrcodes_delivered, sales_made, created_at
		FROM daily_data WHERE id = $1`
	var d entity.DailyRecord
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.AttractionID, &d.Date, &d.QrcodesDelivered, &d.SalesMade, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get daily record: %w", err)
	}
	return &d, nil
}

// GetByAttractionAndDate busca por clave natural; nil, nil si no hay fila.
func (r *DailyDataRepo) GetByAttractionAndDate(attractionID string, date time.Time) (*entity.DailyRecord, error) {
	query := `
		SELECT id, attraction_id, date, qrcodes_delivered, sales_made, created_at
		FROM daily_data WHERE attraction_id = $1 AND date = $2`
	var d entity.DailyRecord
	err := r.q.QueryRow(context.Background(), query, attractionID, date).Scan(
		&d.ID, &d.AttractionID, &d.Date, &d.QrcodesDelivered, &d.SalesMade, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get daily record by natural key: %w", err)
	}
	return &d, nil
}

// UpdateCounts sobreescribe solo los conteos (rama de actualización del upsert).
func (r *DailyDataRepo) UpdateCounts(id string, qrcodesDelivered, salesMade int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE daily_data SET qrcodes_delivered = $2, sales_made = $3 WHERE id = $1`,
		id, qrcodesDelivered, salesMade,
	)
	if err != nil {
		return fmt.Errorf("update daily record counts: %w", err)
	}
	return nil
}

// Update sobreescribe los cuatro campos mutables por PK; devuelve filas afectadas.
// Una colisión con otra fila por clave natural se reporta como ErrDuplicate.
func (r *DailyDataRepo) Update(record *entity.DailyRecord) (int64, error) {
	query := `
		UPDATE daily_data SET attraction_id = $2, date = $3, qrcodes_delivered = $4, sales_made = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		record.ID, record.AttractionID, record.Date, record.QrcodesDelivered, record.SalesMade,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return 0, domain.ErrAttractionNotFound
		}
		return 0, fmt.Errorf("update daily record: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// Delete elimina un registro por ID; devuelve filas afectadas.
func (r *DailyDataRepo) Delete(id string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM daily_data WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete daily record: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// CountByAttraction cuenta los registros que referencian una atracción.
func (r *DailyDataRepo) CountByAttraction(attractionID string) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM daily_data WHERE attraction_id = $1`, attractionID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count daily records by attraction: %w", err)
	}
	return count, nil
}

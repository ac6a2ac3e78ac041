package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vyoo/qr-dashboard-api/internal/application/dto"
	"github.com/vyoo/qr-dashboard-api/internal/domain"
	"github.com/vyoo/qr-dashboard-api/internal/domain/entity"
	"github.com/vyoo/qr-dashboard-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// DailyDataUseCase operaciones sobre los registros diarios. El upsert corre
// dentro de una transacción y la clave natural (attraction_id, date) está
// respaldada por un constraint único en la tabla.
type DailyDataUseCase struct {
	tx      TxRunner
	records repository.DailyDataRepository
}

// NewDailyDataUseCase construye el caso de uso.
func NewDailyDataUseCase(tx TxRunner, records repository.DailyDataRepository) *DailyDataUseCase {
	return &DailyDataUseCase{tx: tx, records: records}
}

// Upsert inserta o actualiza por clave natural (attractionId, date).
// Si la fila existe se sobreescriben solo los conteos (Created=false);
// si no, se inserta una nueva (Created=true). Ante una inserción concurrente
// de la misma clave, el constraint único aborta la transacción y el segundo
// intento toma la rama de actualización.
func (uc *DailyDataUseCase) Upsert(ctx context.Context, in dto.UpsertDailyDataRequest) (*dto.UpsertResult, error) {
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	if err := validateCounts(in.QrcodesDelivered, in.SalesMade); err != nil {
		return nil, err
	}

	out, err := uc.tryUpsert(ctx, in.AttractionID, date, in.QrcodesDelivered, in.SalesMade)
	if errors.Is(err, domain.ErrDuplicate) {
		out, err = uc.tryUpsert(ctx, in.AttractionID, date, in.QrcodesDelivered, in.SalesMade)
	}
	return out, err
}

func (uc *DailyDataUseCase) tryUpsert(ctx context.Context, attractionID string, date time.Time, qrcodes, sales int64) (*dto.UpsertResult, error) {
	var out dto.UpsertResult
	err := uc.tx.Run(ctx, func(records repository.DailyDataRepository) error {
		existing, err := records.GetByAttractionAndDate(attractionID, date)
		if err != nil {
			return err
		}
		if existing != nil {
			out = dto.UpsertResult{Created: false, ID: existing.ID}
			return records.UpdateCounts(existing.ID, qrcodes, sales)
		}
		record := &entity.DailyRecord{
			ID:               uuid.New().String(),
			AttractionID:     attractionID,
			Date:             date,
			QrcodesDelivered: qrcodes,
			SalesMade:        sales,
			CreatedAt:        time.Now(),
		}
		out = dto.UpsertResult{Created: true, ID: record.ID}
		return records.Insert(record)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateByID sobreescribe los cuatro campos mutables por PK. No re-verifica
// la clave natural: una colisión con otra fila la detecta el constraint único
// y se reporta como ErrDuplicate.
func (uc *DailyDataUseCase) UpdateByID(ctx context.Context, id string, in dto.UpdateDailyDataRequest) error {
	date, err := parseDate(in.Date)
	if err != nil {
		return err
	}
	if err := validateCounts(in.QrcodesDelivered, in.SalesMade); err != nil {
		return err
	}
	rows, err := uc.records.Update(&entity.DailyRecord{
		ID:               id,
		AttractionID:     in.AttractionID,
		Date:             date,
		QrcodesDelivered: in.QrcodesDelivered,
		SalesMade:        in.SalesMade,
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

// DeleteByID elimina un registro; ErrRecordNotFound si no existía.
func (uc *DailyDataUseCase) DeleteByID(ctx context.Context, id string) error {
	rows, err := uc.records.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: date es requerido", domain.ErrInvalidInput)
	}
	date, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date debe tener formato YYYY-MM-DD", domain.ErrInvalidInput)
	}
	return date, nil
}

func validateCounts(qrcodes, sales int64) error {
	if qrcodes < 0 || sales < 0 {
		return fmt.Errorf("%w: qrcodesDelivered y salesMade no pueden ser negativos", domain.ErrInvalidInput)
	}
	return nil
}

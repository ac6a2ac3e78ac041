package usecase_test

import (
	"context"
	"fmt"
	"time"

	"github.com/vyoo/qr-dashboard-api/internal/domain"
	"github.com/vyoo/qr-dashboard-api/internal/domain/entity"
	"github.com/vyoo/qr-dashboard-api/internal/domain/repository"
)

// fakeAttractionRepo repositorio en memoria de atracciones.
type fakeAttractionRepo struct {
	items map[string]*entity.Attraction
}

func newFakeAttractionRepo() *fakeAttractionRepo {
	return &fakeAttractionRepo{items: map[string]*entity.Attraction{}}
}

func (r *fakeAttractionRepo) Create(a *entity.Attraction) error {
	r.items[a.ID] = a
	return nil
}

func (r *fakeAttractionRepo) GetByID(id string) (*entity.Attraction, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, domain.ErrAttractionNotFound
	}
	return a, nil
}

func (r *fakeAttractionRepo) List() ([]*entity.Attraction, error) {
	out := make([]*entity.Attraction, 0, len(r.items))
	for _, a := range r.items {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAttractionRepo) Delete(id string) (int64, error) {
	if _, ok := r.items[id]; !ok {
		return 0, nil
	}
	delete(r.items, id)
	return 1, nil
}

// fakeDailyRepo repositorio en memoria de registros diarios con la misma
// restricción de unicidad sobre (attraction_id, date) que la tabla real.
type fakeDailyRepo struct {
	items map[string]*entity.DailyRecord // por ID
}

func newFakeDailyRepo() *fakeDailyRepo {
	return &fakeDailyRepo{items: map[string]*entity.DailyRecord{}}
}

func naturalKey(attractionID string, date time.Time) string {
	return attractionID + "|" + date.Format("2006-01-02")
}

func (r *fakeDailyRepo) Insert(record *entity.DailyRecord) error {
	for _, existing := range r.items {
		if naturalKey(existing.AttractionID, existing.Date) == naturalKey(record.AttractionID, record.Date) {
			return fmt.Errorf("%w: registro diario (atracción, fecha)", domain.ErrDuplicate)
		}
	}
	cp := *record
	r.items[record.ID] = &cp
	return nil
}

func (r *fakeDailyRepo) GetByID(id string) (*entity.DailyRecord, error) {
	rec, ok := r.items[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	cp := *rec
	return &cp, nil
}

func (r *fakeDailyRepo) GetByAttractionAndDate(attractionID string, date time.Time) (*entity.DailyRecord, error) {
	for _, rec := range r.items {
		if naturalKey(rec.AttractionID, rec.Date) == naturalKey(attractionID, date) {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeDailyRepo) UpdateCounts(id string, qrcodesDelivered, salesMade int64) error {
	rec, ok := r.items[id]
	if !ok {
		return domain.ErrRecordNotFound
	}
	rec.QrcodesDelivered = qrcodesDelivered
	rec.SalesMade = salesMade
	return nil
}

func (r *fakeDailyRepo) Update(record *entity.DailyRecord) (int64, error) {
	existing, ok := r.items[record.ID]
	if !ok {
		return 0, nil
	}
	for id, other := range r.items {
		if id != record.ID && naturalKey(other.AttractionID, other.Date) == naturalKey(record.AttractionID, record.Date) {
			return 0, fmt.Errorf("%w: registro diario (atracción, fecha)", domain.ErrDuplicate)
		}
	}
	existing.AttractionID = record.AttractionID
	existing.Date = record.Date
	existing.QrcodesDelivered = record.QrcodesDelivered
	existing.SalesMade = record.SalesMade
	return 1, nil
}

func (r *fakeDailyRepo) Delete(id string) (int64, error) {
	if _, ok := r.items[id]; !ok {
		return 0, nil
	}
	delete(r.items, id)
	return 1, nil
}

func (r *fakeDailyRepo) CountByAttraction(attractionID string) (int64, error) {
	var n int64
	for _, rec := range r.items {
		if rec.AttractionID == attractionID {
			n++
		}
	}
	return n, nil
}

// fakeTxRunner ejecuta el callback directamente sobre el repositorio,
// sin transacción real.
type fakeTxRunner struct {
	records repository.DailyDataRepository
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(records repository.DailyDataRepository) error) error {
	return fn(r.records)
}

package http_test

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/vyoo/qr-dashboard-api/internal/application/dto"
	"github.com/vyoo/qr-dashboard-api/internal/domain"
	"github.com/vyoo/qr-dashboard-api/internal/domain/entity"
	"github.com/vyoo/qr-dashboard-api/internal/domain/repository"
)

// Fakes en memoria con la misma semántica que los adaptadores de PostgreSQL:
// unicidad de (attraction_id, date), integridad referencial del hecho hacia
// la dimensión y filtros conjuntivos del dashboard.

type fakeUsers struct {
	byUsername map[string]*entity.User
}

func (r *fakeUsers) Create(u *entity.User) error {
	r.byUsername[u.Username] = u
	return nil
}

func (r *fakeUsers) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUsers) FindByUsername(username string) (*entity.User, error) {
	return r.byUsername[username], nil
}

type fakeAttractions struct {
	items map[string]*entity.Attraction
	daily *fakeDaily
}

func (r *fakeAttractions) Create(a *entity.Attraction) error {
	r.items[a.ID] = a
	return nil
}

func (r *fakeAttractions) GetByID(id string) (*entity.Attraction, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, domain.ErrAttractionNotFound
	}
	return a, nil
}

func (r *fakeAttractions) List() ([]*entity.Attraction, error) {
	out := make([]*entity.Attraction, 0, len(r.items))
	for _, a := range r.items {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeAttractions) Delete(id string) (int64, error) {
	if _, ok := r.items[id]; !ok {
		return 0, nil
	}
	n, _ := r.daily.CountByAttraction(id)
	if n > 0 {
		return 0, fmt.Errorf("%w: la atracción tiene registros diarios", domain.ErrConflict)
	}
	delete(r.items, id)
	return 1, nil
}

type fakeDaily struct {
	items       map[string]*entity.DailyRecord
	attractions *fakeAttractions
}

func naturalKey(attractionID string, date time.Time) string {
	return attractionID + "|" + date.Format("2006-01-02")
}

func (r *fakeDaily) Insert(record *entity.DailyRecord) error {
	if _, ok := r.attractions.items[record.AttractionID]; !ok {
		return domain.ErrAttractionNotFound
	}
	for _, existing := range r.items {
		if naturalKey(existing.AttractionID, existing.Date) == naturalKey(record.AttractionID, record.Date) {
			return fmt.Errorf("%w: registro diario (atracción, fecha)", domain.ErrDuplicate)
		}
	}
	cp := *record
	r.items[record.ID] = &cp
	return nil
}

func (r *fakeDaily) GetByID(id string) (*entity.DailyRecord, error) {
	rec, ok := r.items[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	cp := *rec
	return &cp, nil
}

func (r *fakeDaily) GetByAttractionAndDate(attractionID string, date time.Time) (*entity.DailyRecord, error) {
	for _, rec := range r.items {
		if naturalKey(rec.AttractionID, rec.Date) == naturalKey(attractionID, date) {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeDaily) UpdateCounts(id string, qrcodesDelivered, salesMade int64) error {
	rec, ok := r.items[id]
	if !ok {
		return domain.ErrRecordNotFound
	}
	rec.QrcodesDelivered = qrcodesDelivered
	rec.SalesMade = salesMade
	return nil
}

func (r *fakeDaily) Update(record *entity.DailyRecord) (int64, error) {
	existing, ok := r.items[record.ID]
	if !ok {
		return 0, nil
	}
	if _, ok := r.attractions.items[record.AttractionID]; !ok {
		return 0, domain.ErrAttractionNotFound
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

func (r *fakeDaily) Delete(id string) (int64, error) {
	if _, ok := r.items[id]; !ok {
		return 0, nil
	}
	delete(r.items, id)
	return 1, nil
}

func (r *fakeDaily) CountByAttraction(attractionID string) (int64, error) {
	var n int64
	for _, rec := range r.items {
		if rec.AttractionID == attractionID {
			n++
		}
	}
	return n, nil
}

type fakeDashboard struct {
	daily       *fakeDaily
	attractions *fakeAttractions
}

func (r *fakeDashboard) matches(rec *entity.DailyRecord, f repository.DashboardFilter) bool {
	if !f.StartDate.IsZero() && rec.Date.Before(f.StartDate) {
		return false
	}
	if !f.EndDate.IsZero() && rec.Date.After(f.EndDate) {
		return false
	}
	if f.AttractionID != "" && rec.AttractionID != f.AttractionID {
		return false
	}
	return true
}

func (r *fakeDashboard) ListRows(_ context.Context, f repository.DashboardFilter) ([]repository.DashboardRow, error) {
	out := []repository.DashboardRow{}
	for _, rec := range r.daily.items {
		if !r.matches(rec, f) {
			continue
		}
		name := ""
		if a, ok := r.attractions.items[rec.AttractionID]; ok {
			name = a.Name
		}
		out = append(out, repository.DashboardRow{
			ID:               rec.ID,
			Date:             rec.Date,
			AttractionName:   name,
			AttractionID:     rec.AttractionID,
			QrcodesDelivered: rec.QrcodesDelivered,
			SalesMade:        rec.SalesMade,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].AttractionName < out[j].AttractionName
	})
	return out, nil
}

func (r *fakeDashboard) Summarize(_ context.Context, f repository.DashboardFilter) (repository.SummaryResult, error) {
	var res repository.SummaryResult
	for _, rec := range r.daily.items {
		if r.matches(rec, f) {
			res.TotalDays++
			res.TotalQrcodes += rec.QrcodesDelivered
			res.TotalSales += rec.SalesMade
		}
	}
	return res, nil
}

type fakeTx struct {
	daily *fakeDaily
}

func (r *fakeTx) Run(_ context.Context, fn func(records repository.DailyDataRepository) error) error {
	return fn(r.daily)
}

type fakeReport struct{}

func (fakeReport) GenerateSummaryPDF(_ dto.PeriodDTO, _ dto.SummaryDTO, _ []dto.DashboardRowDTO) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}

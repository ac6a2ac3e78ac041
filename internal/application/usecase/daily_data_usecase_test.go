package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyoo/qr-dashboard-api/internal/application/dto"
	"github.com/vyoo/qr-dashboard-api/internal/application/usecase"
	"github.com/vyoo/qr-dashboard-api/internal/domain"
)

func newDailyUC() (*usecase.DailyDataUseCase, *fakeDailyRepo) {
	repo := newFakeDailyRepo()
	tx := &fakeTxRunner{records: repo}
	return usecase.NewDailyDataUseCase(tx, repo), repo
}

func TestUpsert_CreaRegistroNuevo(t *testing.T) {
	uc, repo := newDailyUC()

	out, err := uc.Upsert(context.Background(), dto.UpsertDailyDataRequest{
		AttractionID:     "attr-1",
		Date:             "2024-01-01",
		QrcodesDelivered: 100,
		SalesMade:        25,
	})
	require.NoError(t, err)

	assert.True(t, out.Created)
	assert.NotEmpty(t, out.ID)
	assert.Len(t, repo.items, 1)
}

// Dos upserts con la misma clave natural dejan una sola fila con los
// conteos del segundo.
func TestUpsert_MismaClaveActualizaConteos(t *testing.T) {
	uc, repo := newDailyUC()
	ctx := context.Background()

	first, err := uc.Upsert(ctx, dto.UpsertDailyDataRequest{
		AttractionID: "attr-1", Date: "2024-01-01", QrcodesDelivered: 100, SalesMade: 25,
	})
	require.NoError(t, err)
	require.True(t, first.Created)

	second, err := uc.Upsert(ctx, dto.UpsertDailyDataRequest{
		AttractionID: "attr-1", Date: "2024-01-01", QrcodesDelivered: 200, SalesMade: 80,
	})
	require.NoError(t, err)

	assert.False(t, second.Created)
	assert.Equal(t, first.ID, second.ID)
	require.Len(t, repo.items, 1)

	rec, err := repo.GetByID(first.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(200), rec.QrcodesDelivered)
	assert.Equal(t, int64(80), rec.SalesMade)
}

// Distinta fecha o distinta atracción son claves distintas: filas separadas.
func TestUpsert_ClavesDistintasCreanFilas(t *testing.T) {
	uc, repo := newDailyUC()
	ctx := context.Background()

	_, err := uc.Upsert(ctx, dto.UpsertDailyDataRequest{
		AttractionID: "attr-1", Date: "2024-01-01", QrcodesDelivered: 10, SalesMade: 5,
	})
	require.NoError(t, err)
	_, err = uc.Upsert(ctx, dto.UpsertDailyDataRequest{
		AttractionID: "attr-1", Date: "2024-01-02", QrcodesDelivered: 10, SalesMade: 5,
	})
	require.NoError(t, err)
	_, err = uc.Upsert(ctx, dto.UpsertDailyDataRequest{
		AttractionID: "attr-2", Date: "2024-01-01", QrcodesDelivered: 10, SalesMade: 5,
	})
	require.NoError(t, err)

	assert.Len(t, repo.items, 3)
}

func TestUpsert_FechaInvalida(t *testing.T) {
	uc, _ := newDailyUC()

	_, err := uc.Upsert(context.Background(), dto.UpsertDailyDataRequest{
		AttractionID: "attr-1", Date: "01/01/2024", QrcodesDelivered: 10, SalesMade: 5,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Upsert(context.Background(), dto.UpsertDailyDataRequest{
		AttractionID: "attr-1", Date: "", QrcodesDelivered: 10, SalesMade: 5,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpsert_ConteosNegativos(t *testing.T) {
	uc, _ := newDailyUC()

	_, err := uc.Upsert(context.Background(), dto.UpsertDailyDataRequest{
		AttractionID: "attr-1", Date: "2024-01-01", QrcodesDelivered: -1, SalesMade: 5,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateByID_RegistroInexistente(t *testing.T) {
	uc, _ := newDailyUC()

	err := uc.UpdateByID(context.Background(), "no-existe", dto.UpdateDailyDataRequest{
		AttractionID: "attr-1", Date: "2024-01-01", QrcodesDelivered: 10, SalesMade: 5,
	})
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

// Mover un registro a la clave natural de otro reporta duplicado.
func TestUpdateByID_ClaveNaturalOcupada(t *testing.T) {
	uc, _ := newDailyUC()
	ctx := context.Background()

	a, err := uc.Upsert(ctx, dto.UpsertDailyDataRequest{
		AttractionID: "attr-1", Date: "2024-01-01", QrcodesDelivered: 10, SalesMade: 5,
	})
	require.NoError(t, err)
	_, err = uc.Upsert(ctx, dto.UpsertDailyDataRequest{
		AttractionID: "attr-1", Date: "2024-01-02", QrcodesDelivered: 10, SalesMade: 5,
	})
	require.NoError(t, err)

	err = uc.UpdateByID(ctx, a.ID, dto.UpdateDailyDataRequest{
		AttractionID: "attr-1", Date: "2024-01-02", QrcodesDelivered: 10, SalesMade: 5,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestDeleteByID(t *testing.T) {
	uc, repo := newDailyUC()
	ctx := context.Background()

	out, err := uc.Upsert(ctx, dto.UpsertDailyDataRequest{
		AttractionID: "attr-1", Date: "2024-01-01", QrcodesDelivered: 10, SalesMade: 5,
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteByID(ctx, out.ID))
	assert.Empty(t, repo.items)

	err = uc.DeleteByID(ctx, out.ID)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irisagenda/agenda-api/internal/httperr"
	"github.com/irisagenda/agenda-api/internal/models"
)

func (f *fakeRepo) ListBookingsForPeriod(ctx context.Context, businessID uint, start, end time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.created {
		if b.BusinessID == businessID && !b.StartTime.Before(start) && b.StartTime.Before(end) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func createPending(t *testing.T, repo *fakeRepo) *models.Booking {
	t.Helper()
	openMonday(repo)

	uc := NewCreateBooking(repo, newFakeIdem(), nil)
	bk, err := uc.Execute(context.Background(), baseInput())
	require.NoError(t, err)
	return bk
}

func TestConfirmBooking(t *testing.T) {
	repo := newFakeRepo()
	bk := createPending(t, repo)

	uc := NewConfirmBooking(repo, nil)
	confirmed, err := uc.Execute(context.Background(), 1, 7, bk.ID)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", confirmed.Status)

	// confirmar de novo é transição inválida
	_, err = uc.Execute(context.Background(), 1, 7, bk.ID)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCancelBooking(t *testing.T) {
	repo := newFakeRepo()
	bk := createPending(t, repo)

	uc := NewCancelBooking(repo, nil)
	cancelled, err := uc.Execute(context.Background(), 1, 7, bk.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)

	// cancelada não volta
	_, err = uc.Execute(context.Background(), 1, 7, bk.ID)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCompleteBooking(t *testing.T) {
	repo := newFakeRepo()
	bk := createPending(t, repo)

	complete := NewCompleteBooking(repo, nil)

	// pendente não pode ser concluída direto
	_, err := complete.Execute(context.Background(), 1, 7, bk.ID)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	_, err = NewConfirmBooking(repo, nil).Execute(context.Background(), 1, 7, bk.ID)
	require.NoError(t, err)

	done, err := complete.Execute(context.Background(), 1, 7, bk.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", done.Status)
	require.NotNil(t, done.CompletedAt)
}

func TestTransition_UnknownBooking(t *testing.T) {
	repo := newFakeRepo()
	openMonday(repo)

	_, err := NewCancelBooking(repo, nil).Execute(context.Background(), 1, 7, 999)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestListBookingsByDate(t *testing.T) {
	repo := newFakeRepo()
	bk := createPending(t, repo)

	loc, _ := time.LoadLocation("America/Sao_Paulo")
	day, err := time.ParseInLocation("2006-01-02", futureMonday, loc)
	require.NoError(t, err)

	uc := NewListBookingsByDate(repo)
	list, err := uc.Execute(context.Background(), 1, day)
	require.NoError(t, err)

	require.Len(t, list, 1)
	assert.Equal(t, bk.Reference, list[0].Reference)
	assert.Equal(t, "Maria Souza", list[0].ClientName)
	assert.Equal(t, "Corte", list[0].ServiceName)

	// outro dia vem vazio
	list, err = uc.Execute(context.Background(), 1, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestListBookingsByMonth(t *testing.T) {
	repo := newFakeRepo()
	bk := createPending(t, repo)

	uc := NewListBookingsByMonth(repo)
	list, err := uc.Execute(context.Background(), 1, 2030, 3)
	require.NoError(t, err)

	require.Len(t, list, 1)
	assert.Equal(t, bk.ID, list[0].ID)

	list, err = uc.Execute(context.Background(), 1, 2030, 4)
	require.NoError(t, err)
	assert.Empty(t, list)
}

package schedule

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/irisagenda/agenda-api/internal/domain/booking"
	coredomain "github.com/irisagenda/agenda-api/internal/domain/schedule"
	"github.com/irisagenda/agenda-api/internal/models"
)

type fakeRepo struct {
	domain.Repository

	weekly    map[int]models.WeeklyHours
	overrides map[string]models.DateOverride

	// failBatchAfter > 0 faz os lotes seguintes falharem
	failBatchAfter int
	batches        int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		weekly:    make(map[int]models.WeeklyHours),
		overrides: make(map[string]models.DateOverride),
	}
}

func (f *fakeRepo) ReplaceWeeklyHours(ctx context.Context, businessID uint, days []models.WeeklyHours) error {
	f.weekly = make(map[int]models.WeeklyHours)
	for _, d := range days {
		f.weekly[d.Weekday] = d
	}
	return nil
}

func (f *fakeRepo) UpsertOverride(ctx context.Context, ov *models.DateOverride) error {
	f.overrides[ov.Date] = *ov
	return nil
}

func (f *fakeRepo) BatchUpsertOverrides(ctx context.Context, overrides []models.DateOverride) error {
	f.batches++
	if f.failBatchAfter > 0 && f.batches > f.failBatchAfter {
		return coredomain.ErrStore("batch_upsert_overrides", errors.New("conexão perdida"))
	}
	for _, ov := range overrides {
		f.overrides[ov.Date] = ov
	}
	return nil
}

func (f *fakeRepo) ListOverridesForRange(ctx context.Context, businessID uint, fromDate, toDate string) ([]models.DateOverride, error) {
	var out []models.DateOverride
	for _, ov := range f.overrides {
		if ov.Date >= fromDate && ov.Date <= toDate {
			out = append(out, ov)
		}
	}
	return out, nil
}

func (f *fakeRepo) DeleteOverride(ctx context.Context, businessID uint, date string) error {
	delete(f.overrides, date)
	return nil
}

// ======================================================
// Weekly
// ======================================================

func TestUpdateWeeklyHours(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUpdateWeeklyHours(repo, nil)

	err := uc.Execute(context.Background(), 1, 7, []WeeklyDayConfig{
		{Weekday: 1, IsOpen: true, Slots: models.SlotList{{Start: "08:00", End: "18:00"}}},
		{Weekday: 0, IsOpen: false},
	})
	require.NoError(t, err)

	require.Len(t, repo.weekly, 2)
	assert.True(t, repo.weekly[1].IsOpen)
	assert.False(t, repo.weekly[0].IsOpen)
}

func TestUpdateWeeklyHours_RejectsDuplicateWeekday(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUpdateWeeklyHours(repo, nil)

	err := uc.Execute(context.Background(), 1, 7, []WeeklyDayConfig{
		{Weekday: 1, IsOpen: true, Slots: models.SlotList{{Start: "08:00", End: "12:00"}}},
		{Weekday: 1, IsOpen: false},
	})
	require.Error(t, err)
	assert.True(t, coredomain.IsValidation(err))
	assert.Empty(t, repo.weekly)
}

func TestUpdateWeeklyHours_RejectsMalformedSlot(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUpdateWeeklyHours(repo, nil)

	err := uc.Execute(context.Background(), 1, 7, []WeeklyDayConfig{
		{Weekday: 2, IsOpen: true, Slots: models.SlotList{{Start: "18:00", End: "08:00"}}},
	})
	require.Error(t, err)
	assert.True(t, coredomain.IsValidation(err))
}

// ======================================================
// Override de data única
// ======================================================

func TestApplyOverride(t *testing.T) {
	repo := newFakeRepo()
	uc := NewApplyOverride(repo, nil)

	ov, err := uc.Execute(context.Background(), 1, 7, "2026-12-25", OverrideConfig{IsOpen: false})
	require.NoError(t, err)
	assert.Equal(t, "2026-12-25", ov.Date)
	assert.False(t, repo.overrides["2026-12-25"].IsOpen)

	// reaplicar a mesma data substitui, não duplica
	_, err = uc.Execute(context.Background(), 1, 7, "2026-12-25", OverrideConfig{
		IsOpen: true,
		Slots:  models.SlotList{{Start: "08:00", End: "12:00"}},
	})
	require.NoError(t, err)
	assert.Len(t, repo.overrides, 1)
	assert.True(t, repo.overrides["2026-12-25"].IsOpen)
}

func TestApplyOverride_InvalidDate(t *testing.T) {
	uc := NewApplyOverride(newFakeRepo(), nil)

	_, err := uc.Execute(context.Background(), 1, 7, "25/12/2026", OverrideConfig{IsOpen: false})
	require.Error(t, err)
	assert.True(t, coredomain.IsValidation(err))
}

// ======================================================
// Lote
// ======================================================

func sundays() []string {
	return []string{"2026-03-01", "2026-03-08", "2026-03-15", "2026-03-22", "2026-03-29"}
}

func TestBulkApplyOverrides(t *testing.T) {
	repo := newFakeRepo()
	uc := NewBulkApplyOverrides(repo, nil)

	err := uc.Execute(context.Background(), 1, 7, sundays(), OverrideConfig{IsOpen: false})
	require.NoError(t, err)

	require.Len(t, repo.overrides, 5)
	for _, d := range sundays() {
		assert.False(t, repo.overrides[d].IsOpen, "data %s", d)
	}
}

func TestBulkApplyOverrides_DeduplicatesDates(t *testing.T) {
	repo := newFakeRepo()
	uc := NewBulkApplyOverrides(repo, nil)

	dates := append(sundays(), "2026-03-01", "2026-03-08")
	err := uc.Execute(context.Background(), 1, 7, dates, OverrideConfig{IsOpen: false})
	require.NoError(t, err)
	assert.Len(t, repo.overrides, 5)
}

func TestBulkApplyOverrides_Rerunnable(t *testing.T) {
	repo := newFakeRepo()
	uc := NewBulkApplyOverrides(repo, nil)

	cfg := OverrideConfig{IsOpen: false}
	require.NoError(t, uc.Execute(context.Background(), 1, 7, sundays(), cfg))
	require.NoError(t, uc.Execute(context.Background(), 1, 7, sundays(), cfg))

	// reexecutar o mesmo lote converge para o mesmo estado
	assert.Len(t, repo.overrides, 5)
}

func TestBulkApplyOverrides_ChunksLargeBatches(t *testing.T) {
	repo := newFakeRepo()
	uc := NewBulkApplyOverrides(repo, nil)

	dates := consecutiveDates("2026-01-01", BatchLimit+200)

	err := uc.Execute(context.Background(), 1, 7, dates, OverrideConfig{IsOpen: false})
	require.NoError(t, err)

	assert.Equal(t, 2, repo.batches)
	assert.Len(t, repo.overrides, BatchLimit+200)
}

func TestBulkApplyOverrides_PartialFailureReportsDates(t *testing.T) {
	repo := newFakeRepo()
	repo.failBatchAfter = 1
	uc := NewBulkApplyOverrides(repo, nil)

	dates := consecutiveDates("2026-01-01", BatchLimit+3)

	err := uc.Execute(context.Background(), 1, 7, dates, OverrideConfig{IsOpen: false})
	require.Error(t, err)

	var pf *coredomain.PartialFailure
	require.ErrorAs(t, err, &pf)

	// o segundo lote inteiro fica de fora, nada além dele
	assert.Len(t, pf.FailedDates, 3)
	assert.Len(t, repo.overrides, BatchLimit)
}

func TestBulkApplyOverrides_RejectsInvalidDateUpfront(t *testing.T) {
	repo := newFakeRepo()
	uc := NewBulkApplyOverrides(repo, nil)

	err := uc.Execute(context.Background(), 1, 7,
		[]string{"2026-03-01", "março-08"}, OverrideConfig{IsOpen: false})
	require.Error(t, err)
	assert.True(t, coredomain.IsValidation(err))

	// validação falhou antes de qualquer gravação
	assert.Empty(t, repo.overrides)
	assert.Zero(t, repo.batches)
}

func TestBulkApplyOverrides_EmptyDates(t *testing.T) {
	uc := NewBulkApplyOverrides(newFakeRepo(), nil)

	err := uc.Execute(context.Background(), 1, 7, nil, OverrideConfig{IsOpen: false})
	require.Error(t, err)
	assert.True(t, coredomain.IsValidation(err))
}

// ======================================================
// Listagem e remoção
// ======================================================

func TestListOverridesByMonth(t *testing.T) {
	repo := newFakeRepo()
	repo.overrides["2026-03-10"] = models.DateOverride{BusinessID: 1, Date: "2026-03-10"}
	repo.overrides["2026-03-31"] = models.DateOverride{BusinessID: 1, Date: "2026-03-31"}
	repo.overrides["2026-04-01"] = models.DateOverride{BusinessID: 1, Date: "2026-04-01"}

	uc := NewListOverridesByMonth(repo)
	out, err := uc.Execute(context.Background(), 1, 2026, 3)
	require.NoError(t, err)
	assert.Len(t, out, 2)

	_, err = uc.Execute(context.Background(), 1, 2026, 13)
	require.Error(t, err)
	assert.True(t, coredomain.IsValidation(err))
}

func TestDeleteOverride(t *testing.T) {
	repo := newFakeRepo()
	repo.overrides["2026-03-10"] = models.DateOverride{BusinessID: 1, Date: "2026-03-10"}

	uc := NewDeleteOverride(repo)
	require.NoError(t, uc.Execute(context.Background(), 1, "2026-03-10"))
	assert.Empty(t, repo.overrides)

	err := uc.Execute(context.Background(), 1, "10-03-2026")
	require.Error(t, err)
	assert.True(t, coredomain.IsValidation(err))
}

func consecutiveDates(from string, n int) []string {
	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		panic(fmt.Sprintf("data inicial inválida: %s", from))
	}

	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, start.AddDate(0, 0, i).Format("2006-01-02"))
	}
	return out
}

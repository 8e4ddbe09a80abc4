package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/irisagenda/agenda-api/internal/domain/booking"
	"github.com/irisagenda/agenda-api/internal/domain/schedule"
	"github.com/irisagenda/agenda-api/internal/models"
)

// ======================================================
// Fakes
// ======================================================

type fakeRepo struct {
	domain.Repository

	business *models.Business
	service  *models.Service

	overrides map[string]*models.DateOverride
	weekly    map[int]*models.WeeklyHours

	bookings []models.Booking
	blocks   []models.Block

	created []*models.Booking
	nextID  uint

	// conflictOnCreate simula o outro cliente vencendo a corrida
	conflictOnCreate bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		business: &models.Business{
			ID:       1,
			Name:     "Studio Iris",
			Slug:     "studio-iris",
			Timezone: "America/Sao_Paulo",
		},
		service: &models.Service{
			ID:          10,
			BusinessID:  1,
			Name:        "Corte",
			DurationMin: 60,
			Price:       80,
			Active:      true,
		},
		overrides: make(map[string]*models.DateOverride),
		weekly:    make(map[int]*models.WeeklyHours),
		nextID:    1,
	}
}

func (f *fakeRepo) GetBusinessByID(ctx context.Context, id uint) (*models.Business, error) {
	if f.business == nil || f.business.ID != id {
		return nil, schedule.ErrValidation("business_id", "empresa não encontrada")
	}
	return f.business, nil
}

func (f *fakeRepo) GetService(ctx context.Context, businessID, serviceID uint) (*models.Service, error) {
	if f.service == nil || f.service.ID != serviceID {
		return nil, schedule.ErrValidation("service_id", "serviço não encontrado")
	}
	return f.service, nil
}

func (f *fakeRepo) GetOverride(ctx context.Context, businessID uint, date string) (*models.DateOverride, error) {
	return f.overrides[date], nil
}

func (f *fakeRepo) GetWeeklyHours(ctx context.Context, businessID uint, weekday int) (*models.WeeklyHours, error) {
	return f.weekly[weekday], nil
}

func (f *fakeRepo) HasWeeklyHours(ctx context.Context, businessID uint) (bool, error) {
	return len(f.weekly) > 0, nil
}

func (f *fakeRepo) ListBookingsForDay(ctx context.Context, businessID uint, start, end time.Time) ([]models.Booking, error) {
	return f.bookings, nil
}

func (f *fakeRepo) ListBlocksForDay(ctx context.Context, businessID uint, start, end time.Time) ([]models.Block, error) {
	return f.blocks, nil
}

func (f *fakeRepo) CreateBookingIfFree(ctx context.Context, b *models.Booking) error {
	if f.conflictOnCreate {
		return schedule.ErrConflict("time_conflict")
	}
	b.ID = f.nextID
	f.nextID++
	f.created = append(f.created, b)
	return nil
}

func (f *fakeRepo) GetBookingByReference(ctx context.Context, reference string) (*models.Booking, error) {
	for _, b := range f.created {
		if b.Reference == reference {
			return b, nil
		}
	}
	return nil, schedule.ErrValidation("reference", "reserva não encontrada")
}

func (f *fakeRepo) GetBookingForBusiness(ctx context.Context, bookingID, businessID uint) (*models.Booking, error) {
	for _, b := range f.created {
		if b.ID == bookingID && b.BusinessID == businessID {
			return b, nil
		}
	}
	return nil, schedule.ErrValidation("booking_id", "reserva não encontrada")
}

func (f *fakeRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	return nil
}

type fakeIdem struct {
	refs map[string]string
}

func newFakeIdem() *fakeIdem {
	return &fakeIdem{refs: make(map[string]string)}
}

func (f *fakeIdem) Lookup(ctx context.Context, businessID uint, key string) (string, error) {
	return f.refs[key], nil
}

func (f *fakeIdem) Remember(ctx context.Context, businessID uint, key, reference string) error {
	if _, ok := f.refs[key]; !ok {
		f.refs[key] = reference
	}
	return nil
}

// ======================================================
// Cenário base: segunda-feira distante, 08:00–18:00
// ======================================================

// 2030-03-04 é uma segunda-feira
const futureMonday = "2030-03-04"

func openMonday(repo *fakeRepo) {
	repo.weekly[1] = &models.WeeklyHours{
		BusinessID: 1, Weekday: 1, IsOpen: true,
		Slots: models.SlotList{{Start: "08:00", End: "18:00"}},
	}
}

func baseInput() CreateBookingInput {
	return CreateBookingInput{
		BusinessID:  1,
		ClientName:  "Maria Souza",
		ClientPhone: "+5511999998888",
		ServiceID:   10,
		Date:        futureMonday,
		Time:        "09:00",
	}
}

// ======================================================
// Tests
// ======================================================

func TestCreateBooking_PublicStartsPending(t *testing.T) {
	repo := newFakeRepo()
	openMonday(repo)

	uc := NewCreateBooking(repo, newFakeIdem(), nil)
	bk, err := uc.Execute(context.Background(), baseInput())
	require.NoError(t, err)

	assert.Equal(t, "pending", bk.Status)
	assert.NotEmpty(t, bk.Reference)
	assert.Equal(t, "Corte", bk.ServiceName)
	assert.Equal(t, 80.0, bk.TotalPrice)
	assert.Equal(t, 60*time.Minute, bk.EndTime.Sub(bk.StartTime))
	require.Len(t, repo.created, 1)
}

func TestCreateBooking_StaffStartsConfirmed(t *testing.T) {
	repo := newFakeRepo()
	openMonday(repo)

	in := baseInput()
	in.Staff = true

	uc := NewCreateBooking(repo, newFakeIdem(), nil)
	bk, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", bk.Status)
}

func TestCreateBooking_SlotTakenByExisting(t *testing.T) {
	repo := newFakeRepo()
	openMonday(repo)

	loc, _ := time.LoadLocation("America/Sao_Paulo")
	start, _ := time.ParseInLocation("2006-01-02 15:04", futureMonday+" 09:00", loc)
	repo.bookings = []models.Booking{
		{StartTime: start, EndTime: start.Add(time.Hour)},
	}

	uc := NewCreateBooking(repo, newFakeIdem(), nil)
	_, err := uc.Execute(context.Background(), baseInput())
	require.Error(t, err)
	assert.True(t, schedule.IsConflict(err))
	assert.Empty(t, repo.created)
}

func TestCreateBooking_RaceLostAtStore(t *testing.T) {
	repo := newFakeRepo()
	openMonday(repo)
	repo.conflictOnCreate = true

	uc := NewCreateBooking(repo, newFakeIdem(), nil)
	_, err := uc.Execute(context.Background(), baseInput())
	require.Error(t, err)
	assert.True(t, schedule.IsConflict(err))
}

func TestCreateBooking_ClosedDay(t *testing.T) {
	repo := newFakeRepo()
	openMonday(repo)
	repo.overrides[futureMonday] = &models.DateOverride{
		BusinessID: 1, Date: futureMonday, IsOpen: false,
	}

	uc := NewCreateBooking(repo, newFakeIdem(), nil)
	_, err := uc.Execute(context.Background(), baseInput())
	require.Error(t, err)
	assert.True(t, schedule.IsConflict(err))
}

func TestCreateBooking_OffGridTimeRejected(t *testing.T) {
	repo := newFakeRepo()
	openMonday(repo)

	in := baseInput()
	in.Time = "09:10" // fora do passo de 30 minutos

	uc := NewCreateBooking(repo, newFakeIdem(), nil)
	_, err := uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, schedule.IsConflict(err))
}

func TestCreateBooking_PastDateRejected(t *testing.T) {
	repo := newFakeRepo()
	openMonday(repo)
	// garante agenda também para o dia da semana da data passada
	for wd := 0; wd < 7; wd++ {
		repo.weekly[wd] = &models.WeeklyHours{
			BusinessID: 1, Weekday: wd, IsOpen: true,
			Slots: models.SlotList{{Start: "08:00", End: "18:00"}},
		}
	}

	in := baseInput()
	in.Date = "2020-03-02"

	uc := NewCreateBooking(repo, newFakeIdem(), nil)
	_, err := uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, schedule.IsConflict(err))
}

func TestCreateBooking_InactiveService(t *testing.T) {
	repo := newFakeRepo()
	openMonday(repo)
	repo.service.Active = false

	uc := NewCreateBooking(repo, newFakeIdem(), nil)
	_, err := uc.Execute(context.Background(), baseInput())
	require.Error(t, err)
	assert.True(t, schedule.IsValidation(err))
}

func TestCreateBooking_CustomPriceFromSlot(t *testing.T) {
	promo := 55.0
	repo := newFakeRepo()
	repo.weekly[1] = &models.WeeklyHours{
		BusinessID: 1, Weekday: 1, IsOpen: true,
		Slots: models.SlotList{
			{Start: "08:00", End: "18:00", CustomPrice: &promo},
		},
	}

	uc := NewCreateBooking(repo, newFakeIdem(), nil)
	bk, err := uc.Execute(context.Background(), baseInput())
	require.NoError(t, err)
	assert.Equal(t, 55.0, bk.TotalPrice)
}

func TestCreateBooking_IdempotentReplay(t *testing.T) {
	repo := newFakeRepo()
	openMonday(repo)
	idem := newFakeIdem()

	in := baseInput()
	in.IdempotencyKey = "retry-abc"

	uc := NewCreateBooking(repo, idem, nil)

	first, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	// repetir a mesma chave devolve a mesma reserva, sem duplicar
	second, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, first.Reference, second.Reference)
	assert.Len(t, repo.created, 1)
}

package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/irisagenda/agenda-api/internal/audit"
	domain "github.com/irisagenda/agenda-api/internal/domain/booking"
	"github.com/irisagenda/agenda-api/internal/domain/schedule"
	"github.com/irisagenda/agenda-api/internal/models"
	"github.com/irisagenda/agenda-api/internal/timezone"
	"github.com/irisagenda/agenda-api/internal/usecase/availability"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	BusinessID     uint
	ProfessionalID uint

	ClientName  string
	ClientPhone string

	ServiceID uint

	Date string // YYYY-MM-DD
	Time string // HH:mm

	Notes string

	// Staff indica reserva criada pela equipe (nasce confirmada)
	// em vez de pelo mini-site público (nasce pendente).
	Staff bool

	// IdempotencyKey opcional: repetir a mesma chave devolve a reserva
	// original em vez de criar outra.
	IdempotencyKey string
}

// IdempotencyStore guarda chave -> referência da reserva criada.
type IdempotencyStore interface {
	Lookup(ctx context.Context, businessID uint, key string) (string, error)
	Remember(ctx context.Context, businessID uint, key string, reference string) error
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo    domain.Repository
	resolve *availability.ResolveSchedule
	idem    IdempotencyStore
	audit   *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	idem IdempotencyStore,
	auditDisp *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:    repo,
		resolve: availability.NewResolveSchedule(repo),
		idem:    idem,
		audit:   auditDisp,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Replay idempotente
	// --------------------------------------------------
	if uc.idem != nil && in.IdempotencyKey != "" {
		ref, err := uc.idem.Lookup(ctx, in.BusinessID, in.IdempotencyKey)
		if err == nil && ref != "" {
			if existing, err := uc.repo.GetBookingByReference(ctx, ref); err == nil {
				return existing, nil
			}
		}
	}

	// --------------------------------------------------
	// 2. Empresa e serviço
	// --------------------------------------------------
	business, err := uc.repo.GetBusinessByID(ctx, in.BusinessID)
	if err != nil {
		return nil, err
	}

	service, err := uc.repo.GetService(ctx, in.BusinessID, in.ServiceID)
	if err != nil {
		return nil, schedule.ErrValidation("service_id", "serviço não encontrado")
	}
	if !service.Active {
		return nil, schedule.ErrValidation("service_id", "serviço inativo")
	}
	if service.DurationMin <= 0 {
		return nil, schedule.ErrValidation("duration_min", "duração deve ser positiva")
	}

	// --------------------------------------------------
	// 3. Data/hora no fuso da empresa
	// --------------------------------------------------
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(business.Timezone),
	)
	if err != nil {
		return nil, schedule.ErrValidation("date", "data ou hora inválida")
	}

	startMinute, err := schedule.ParseClock(in.Time)
	if err != nil {
		return nil, err
	}

	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	// --------------------------------------------------
	// 4. Revalidação: o horário pedido precisa ser um slot
	// que o motor devolveria agora. Fecha a corrida entre a
	// exibição dos slots e a gravação.
	// --------------------------------------------------
	daySchedule, err := uc.resolve.Execute(ctx, business, in.Date)
	if err != nil {
		return nil, err
	}

	day, err := timezone.ParseDate(business.Timezone, in.Date)
	if err != nil {
		return nil, schedule.ErrValidation("date", "esperado YYYY-MM-DD")
	}
	dayStart, dayEnd := timezone.DayBounds(business.Timezone, day)

	bookings, err := uc.repo.ListBookingsForDay(ctx, in.BusinessID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	blocks, err := uc.repo.ListBlocksForDay(ctx, in.BusinessID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	minutes, err := schedule.ComputeSlots(schedule.ComputeInput{
		Day:         dayStart,
		ServiceID:   service.ID,
		DurationMin: service.DurationMin,
		Schedule:    daySchedule,
		Bookings:    toBusy(bookings),
		Blocks:      blocksToBusy(blocks),
		Now:         timezone.NowIn(business.Timezone),
	})
	if err != nil {
		return nil, err
	}

	if !containsMinute(minutes, startMinute) {
		return nil, schedule.ErrConflict("slot_unavailable")
	}

	// --------------------------------------------------
	// 5. Criação condicionada: a contagem de sobreposição
	// acontece dentro da mesma transação do insert.
	// --------------------------------------------------
	bk := &models.Booking{
		Reference:      uuid.NewString(),
		BusinessID:     in.BusinessID,
		ClientName:     in.ClientName,
		ClientPhone:    in.ClientPhone,
		ServiceID:      service.ID,
		ServiceName:    service.Name,
		ProfessionalID: in.ProfessionalID,
		StartTime:      start,
		EndTime:        end,
		Status:         string(domain.InitialStatus(in.Staff)),
		TotalPrice:     daySchedule.PriceFor(service.ID, startMinute, service.Price),
		Notes:          in.Notes,
	}

	if err := uc.repo.CreateBookingIfFree(ctx, bk); err != nil {
		return nil, err
	}

	if uc.idem != nil && in.IdempotencyKey != "" {
		// falha aqui não desfaz a reserva; replay sem registro cria
		// conflito detectável, nunca duplicata silenciosa
		_ = uc.idem.Remember(ctx, in.BusinessID, in.IdempotencyKey, bk.Reference)
	}

	// --------------------------------------------------
	// 6. Auditoria
	// --------------------------------------------------
	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			BusinessID: in.BusinessID,
			Action:     "booking_created",
			Entity:     "booking",
			EntityID:   &bk.ID,
		})
	}

	return bk, nil
}

func toBusy(bookings []models.Booking) []schedule.Busy {
	out := make([]schedule.Busy, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, schedule.Busy{Start: b.StartTime, End: b.EndTime})
	}
	return out
}

func blocksToBusy(blocks []models.Block) []schedule.Busy {
	out := make([]schedule.Busy, 0, len(blocks))
	for _, bl := range blocks {
		out = append(out, schedule.Busy{Start: bl.StartTime, End: bl.EndTime})
	}
	return out
}

func containsMinute(minutes []int, m int) bool {
	for _, v := range minutes {
		if v == m {
			return true
		}
	}
	return false
}

package availability

import (
	"context"

	domain "github.com/irisagenda/agenda-api/internal/domain/booking"
	"github.com/irisagenda/agenda-api/internal/domain/schedule"
	"github.com/irisagenda/agenda-api/internal/httperr"
	"github.com/irisagenda/agenda-api/internal/timezone"
)

type GetAvailability struct {
	repo    domain.Repository
	resolve *ResolveSchedule
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{
		repo:    repo,
		resolve: NewResolveSchedule(repo),
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	business, err := uc.repo.GetBusinessByID(ctx, in.BusinessID)
	if err != nil {
		return nil, err
	}

	service, err := uc.repo.GetService(ctx, in.BusinessID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if !service.Active {
		return nil, httperr.ErrBusiness("service_inactive")
	}

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

	busyBookings := make([]schedule.Busy, 0, len(bookings))
	for _, b := range bookings {
		busyBookings = append(busyBookings, schedule.Busy{Start: b.StartTime, End: b.EndTime})
	}

	busyBlocks := make([]schedule.Busy, 0, len(blocks))
	for _, bl := range blocks {
		busyBlocks = append(busyBlocks, schedule.Busy{Start: bl.StartTime, End: bl.EndTime})
	}

	minutes, err := schedule.ComputeSlots(schedule.ComputeInput{
		Day:         dayStart,
		ServiceID:   service.ID,
		DurationMin: service.DurationMin,
		Schedule:    daySchedule,
		Bookings:    busyBookings,
		Blocks:      busyBlocks,
		Now:         timezone.NowIn(business.Timezone),
	})
	if err != nil {
		return nil, err
	}

	slots := make([]domain.TimeSlot, 0, len(minutes))
	for _, m := range minutes {
		slots = append(slots, domain.TimeSlot{
			Start: schedule.FormatClock(m),
			End:   schedule.FormatClock(m + service.DurationMin),
			Price: daySchedule.PriceFor(service.ID, m, service.Price),
		})
	}

	return slots, nil
}

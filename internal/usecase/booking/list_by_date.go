package booking

import (
	"context"
	"time"

	domain "github.com/irisagenda/agenda-api/internal/domain/booking"
	"github.com/irisagenda/agenda-api/internal/dto"
	"github.com/irisagenda/agenda-api/internal/timezone"
)

type ListBookingsByDate struct {
	repo domain.Repository
}

func NewListBookingsByDate(
	repo domain.Repository,
) *ListBookingsByDate {
	return &ListBookingsByDate{
		repo: repo,
	}
}

func (uc *ListBookingsByDate) Execute(
	ctx context.Context,
	businessID uint,
	date time.Time,
) ([]dto.BookingListDTO, error) {

	business, err := uc.repo.GetBusinessByID(ctx, businessID)
	if err != nil {
		return nil, err
	}

	start, end := timezone.DayBounds(business.Timezone, date)

	bookings, err := uc.repo.ListBookingsForPeriod(
		ctx,
		businessID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, bk := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:          bk.ID,
			Reference:   bk.Reference,
			StartTime:   bk.StartTime,
			EndTime:     bk.EndTime,
			Status:      bk.Status,
			ClientName:  bk.ClientName,
			ServiceName: bk.ServiceName,
			TotalPrice:  bk.TotalPrice,
		})
	}

	return out, nil
}

package booking

import (
	"context"
	"time"

	domain "github.com/irisagenda/agenda-api/internal/domain/booking"
	"github.com/irisagenda/agenda-api/internal/dto"
	"github.com/irisagenda/agenda-api/internal/timezone"
)

type ListBookingsByMonth struct {
	repo domain.Repository
}

func NewListBookingsByMonth(
	repo domain.Repository,
) *ListBookingsByMonth {
	return &ListBookingsByMonth{
		repo: repo,
	}
}

func (uc *ListBookingsByMonth) Execute(
	ctx context.Context,
	businessID uint,
	year int,
	month int,
) ([]dto.BookingListDTO, error) {

	business, err := uc.repo.GetBusinessByID(ctx, businessID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(business.Timezone)

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

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

package booking

import (
	"context"

	"github.com/irisagenda/agenda-api/internal/audit"
	domain "github.com/irisagenda/agenda-api/internal/domain/booking"
	"github.com/irisagenda/agenda-api/internal/httperr"
	"github.com/irisagenda/agenda-api/internal/models"
)

// ConfirmBooking aprova uma reserva pendente vinda do mini-site.
type ConfirmBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewConfirmBooking(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
) *ConfirmBooking {
	return &ConfirmBooking{
		repo:  repo,
		audit: auditDisp,
	}
}

func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	businessID uint,
	userID uint,
	bookingID uint,
) (*models.Booking, error) {

	bk, err := uc.repo.GetBookingForBusiness(ctx, bookingID, businessID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.Confirm(bk); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, bk); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		UserID:     &userID,
		Action:     "booking_confirmed",
		Entity:     "booking",
		EntityID:   &bk.ID,
	})

	return bk, nil
}

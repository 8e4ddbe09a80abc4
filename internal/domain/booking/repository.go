package booking

import (
	"context"
	"time"

	"github.com/irisagenda/agenda-api/internal/models"
)

type Repository interface {
	// -------- Business --------
	GetBusinessByID(
		ctx context.Context,
		id uint,
	) (*models.Business, error)

	GetBusinessBySlug(
		ctx context.Context,
		slug string,
	) (*models.Business, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		businessID uint,
		serviceID uint,
	) (*models.Service, error)

	// ListActiveServices devolve o catálogo visível no mini-site.
	ListActiveServices(
		ctx context.Context,
		businessID uint,
	) ([]models.Service, error)

	// -------- Schedule sources --------
	// GetOverride devolve (nil, nil) quando não há exceção para a data.
	GetOverride(
		ctx context.Context,
		businessID uint,
		date string,
	) (*models.DateOverride, error)

	// GetWeeklyHours devolve (nil, nil) quando o dia não está configurado.
	GetWeeklyHours(
		ctx context.Context,
		businessID uint,
		weekday int,
	) (*models.WeeklyHours, error)

	HasWeeklyHours(
		ctx context.Context,
		businessID uint,
	) (bool, error)

	ListWeeklyHours(
		ctx context.Context,
		businessID uint,
	) ([]models.WeeklyHours, error)

	ReplaceWeeklyHours(
		ctx context.Context,
		businessID uint,
		days []models.WeeklyHours,
	) error

	ListOverridesForRange(
		ctx context.Context,
		businessID uint,
		fromDate string,
		toDate string,
	) ([]models.DateOverride, error)

	UpsertOverride(
		ctx context.Context,
		ov *models.DateOverride,
	) error

	DeleteOverride(
		ctx context.Context,
		businessID uint,
		date string,
	) error

	// BatchUpsertOverrides grava o lote inteiro em uma transação:
	// tudo ou nada dentro do lote.
	BatchUpsertOverrides(
		ctx context.Context,
		overrides []models.DateOverride,
	) error

	// -------- Capacity --------
	ListBookingsForDay(
		ctx context.Context,
		businessID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	ListBlocksForDay(
		ctx context.Context,
		businessID uint,
		start time.Time,
		end time.Time,
	) ([]models.Block, error)

	// -------- Booking (create / conflict) --------
	// CreateBookingIfFree insere dentro de uma transação que conta,
	// com lock, reservas ativas sobrepostas do mesmo profissional.
	// Sobreposição -> schedule.ConflictError.
	CreateBookingIfFree(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBookingByReference(
		ctx context.Context,
		reference string,
	) (*models.Booking, error)

	// -------- Booking (state change) --------
	GetBookingForBusiness(
		ctx context.Context,
		bookingID uint,
		businessID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookingsForPeriod(
		ctx context.Context,
		businessID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	// -------- Block --------
	CreateBlock(
		ctx context.Context,
		bl *models.Block,
	) error

	DeleteBlock(
		ctx context.Context,
		blockID uint,
		businessID uint,
	) error
}

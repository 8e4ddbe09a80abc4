package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/irisagenda/agenda-api/internal/domain/booking"
	"github.com/irisagenda/agenda-api/internal/domain/schedule"
	"github.com/irisagenda/agenda-api/internal/models"
)

type SchedulingGormRepository struct {
	db *gorm.DB
}

func NewSchedulingGormRepository(db *gorm.DB) *SchedulingGormRepository {
	return &SchedulingGormRepository{db: db}
}

// --------------------------------------------------
// Business
// --------------------------------------------------

func (r *SchedulingGormRepository) GetBusinessByID(
	ctx context.Context,
	id uint,
) (*models.Business, error) {

	var business models.Business
	if err := r.db.WithContext(ctx).First(&business, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, schedule.ErrValidation("business_id", "empresa não encontrada")
		}
		return nil, schedule.ErrStore("get_business", err)
	}
	return &business, nil
}

func (r *SchedulingGormRepository) GetBusinessBySlug(
	ctx context.Context,
	slug string,
) (*models.Business, error) {

	var business models.Business
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&business).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, schedule.ErrValidation("slug", "empresa não encontrada")
		}
		return nil, schedule.ErrStore("get_business_by_slug", err)
	}
	return &business, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *SchedulingGormRepository) GetService(
	ctx context.Context,
	businessID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", serviceID, businessID).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, schedule.ErrValidation("service_id", "serviço não encontrado")
		}
		return nil, schedule.ErrStore("get_service", err)
	}
	return &service, nil
}

func (r *SchedulingGormRepository) ListActiveServices(
	ctx context.Context,
	businessID uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("business_id = ? AND active = ?", businessID, true).
		Order("category ASC, name ASC").
		Find(&services).Error; err != nil {
		return nil, schedule.ErrStore("list_active_services", err)
	}
	return services, nil
}

// --------------------------------------------------
// Schedule sources
// --------------------------------------------------

func (r *SchedulingGormRepository) GetOverride(
	ctx context.Context,
	businessID uint,
	date string,
) (*models.DateOverride, error) {

	var ov models.DateOverride
	err := r.db.WithContext(ctx).
		Where("business_id = ? AND date = ?", businessID, date).
		First(&ov).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, schedule.ErrStore("get_override", err)
	}
	return &ov, nil
}

func (r *SchedulingGormRepository) GetWeeklyHours(
	ctx context.Context,
	businessID uint,
	weekday int,
) (*models.WeeklyHours, error) {

	var wh models.WeeklyHours
	err := r.db.WithContext(ctx).
		Where("business_id = ? AND weekday = ?", businessID, weekday).
		First(&wh).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, schedule.ErrStore("get_weekly_hours", err)
	}
	return &wh, nil
}

func (r *SchedulingGormRepository) HasWeeklyHours(
	ctx context.Context,
	businessID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.WeeklyHours{}).
		Where("business_id = ?", businessID).
		Count(&count).Error; err != nil {
		return false, schedule.ErrStore("has_weekly_hours", err)
	}
	return count > 0, nil
}

func (r *SchedulingGormRepository) ListWeeklyHours(
	ctx context.Context,
	businessID uint,
) ([]models.WeeklyHours, error) {

	var hours []models.WeeklyHours
	if err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {
		return nil, schedule.ErrStore("list_weekly_hours", err)
	}
	return hours, nil
}

func (r *SchedulingGormRepository) ReplaceWeeklyHours(
	ctx context.Context,
	businessID uint,
	days []models.WeeklyHours,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("business_id = ?", businessID).
			Delete(&models.WeeklyHours{}).Error; err != nil {
			return err
		}

		if len(days) > 0 {
			if err := tx.Create(&days).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return schedule.ErrStore("replace_weekly_hours", err)
	}
	return nil
}

func (r *SchedulingGormRepository) ListOverridesForRange(
	ctx context.Context,
	businessID uint,
	fromDate string,
	toDate string,
) ([]models.DateOverride, error) {

	var overrides []models.DateOverride
	if err := r.db.WithContext(ctx).
		Where("business_id = ? AND date >= ? AND date <= ?", businessID, fromDate, toDate).
		Order("date ASC").
		Find(&overrides).Error; err != nil {
		return nil, schedule.ErrStore("list_overrides", err)
	}
	return overrides, nil
}

func (r *SchedulingGormRepository) UpsertOverride(
	ctx context.Context,
	ov *models.DateOverride,
) error {

	// chave composta (empresa, data) dá semântica de upsert: no máximo
	// uma exceção por data
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "business_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"is_open", "slots", "updated_at",
			}),
		}).
		Create(ov).Error; err != nil {
		return schedule.ErrStore("upsert_override", err)
	}
	return nil
}

func (r *SchedulingGormRepository) DeleteOverride(
	ctx context.Context,
	businessID uint,
	date string,
) error {

	if err := r.db.WithContext(ctx).
		Where("business_id = ? AND date = ?", businessID, date).
		Delete(&models.DateOverride{}).Error; err != nil {
		return schedule.ErrStore("delete_override", err)
	}
	return nil
}

func (r *SchedulingGormRepository) BatchUpsertOverrides(
	ctx context.Context,
	overrides []models.DateOverride,
) error {

	if len(overrides) == 0 {
		return nil
	}

	// lote inteiro em uma transação: tudo ou nada
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.
			Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "business_id"}, {Name: "date"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"is_open", "slots", "updated_at",
				}),
			}).
			Create(&overrides).Error
	})

	if err != nil {
		return schedule.ErrStore("batch_upsert_overrides", err)
	}
	return nil
}

// --------------------------------------------------
// Capacity
// --------------------------------------------------

func (r *SchedulingGormRepository) ListBookingsForDay(
	ctx context.Context,
	businessID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time").
		Where(
			"business_id = ? AND status IN ('pending', 'confirmed') AND start_time < ? AND end_time > ?",
			businessID, end, start,
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, schedule.ErrStore("list_bookings_for_day", err)
	}
	return bookings, nil
}

func (r *SchedulingGormRepository) ListBlocksForDay(
	ctx context.Context,
	businessID uint,
	start time.Time,
	end time.Time,
) ([]models.Block, error) {

	var blocks []models.Block
	if err := r.db.WithContext(ctx).
		Where(
			"business_id = ? AND start_time < ? AND end_time > ?",
			businessID, end, start,
		).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, schedule.ErrStore("list_blocks_for_day", err)
	}
	return blocks, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

// CreateBookingIfFree fecha a corrida entre dois clientes que viram o
// mesmo slot livre: a contagem de sobreposição roda com lock na mesma
// transação do insert, então no máximo uma das gravações vence.
func (r *SchedulingGormRepository) CreateBookingIfFree(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.
			Model(&models.Booking{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"business_id = ? AND professional_id = ? AND status IN ('pending', 'confirmed') AND start_time < ? AND end_time > ?",
				b.BusinessID,
				b.ProfessionalID,
				b.EndTime,
				b.StartTime,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return schedule.ErrConflict("time_conflict")
		}

		return tx.Create(b).Error
	})

	if err != nil {
		if schedule.IsConflict(err) {
			return err
		}
		return schedule.ErrStore("create_booking", err)
	}
	return nil
}

func (r *SchedulingGormRepository) GetBookingByReference(
	ctx context.Context,
	reference string,
) (*models.Booking, error) {

	var bk models.Booking
	if err := r.db.WithContext(ctx).
		Where("reference = ?", reference).
		First(&bk).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, schedule.ErrValidation("reference", "reserva não encontrada")
		}
		return nil, schedule.ErrStore("get_booking_by_reference", err)
	}
	return &bk, nil
}

func (r *SchedulingGormRepository) GetBookingForBusiness(
	ctx context.Context,
	bookingID uint,
	businessID uint,
) (*models.Booking, error) {

	var bk models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", bookingID, businessID).
		First(&bk).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, schedule.ErrValidation("booking_id", "reserva não encontrada")
		}
		return nil, schedule.ErrStore("get_booking", err)
	}
	return &bk, nil
}

func (r *SchedulingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	if err := r.db.WithContext(ctx).Save(b).Error; err != nil {
		return schedule.ErrStore("update_booking", err)
	}
	return nil
}

func (r *SchedulingGormRepository) ListBookingsForPeriod(
	ctx context.Context,
	businessID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"business_id = ? AND start_time >= ? AND start_time < ?",
			businessID,
			start,
			end,
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, schedule.ErrStore("list_bookings_for_period", err)
	}
	return bookings, nil
}

// --------------------------------------------------
// Block
// --------------------------------------------------

func (r *SchedulingGormRepository) CreateBlock(
	ctx context.Context,
	bl *models.Block,
) error {

	if err := r.db.WithContext(ctx).Create(bl).Error; err != nil {
		return schedule.ErrStore("create_block", err)
	}
	return nil
}

func (r *SchedulingGormRepository) DeleteBlock(
	ctx context.Context,
	blockID uint,
	businessID uint,
) error {

	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", blockID, businessID).
		Delete(&models.Block{}).Error; err != nil {
		return schedule.ErrStore("delete_block", err)
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*SchedulingGormRepository)(nil)

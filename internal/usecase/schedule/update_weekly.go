package schedule

import (
	"context"

	"github.com/irisagenda/agenda-api/internal/audit"
	domain "github.com/irisagenda/agenda-api/internal/domain/booking"
	coredomain "github.com/irisagenda/agenda-api/internal/domain/schedule"
	"github.com/irisagenda/agenda-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type WeeklyDayConfig struct {
	Weekday int             `json:"weekday" binding:"min=0,max=6"`
	IsOpen  bool            `json:"is_open"`
	Slots   models.SlotList `json:"slots"`
}

// ======================================================
// USE CASE
// ======================================================

// UpdateWeeklyHours substitui a configuração semanal inteira da
// empresa, como o editor de horários grava: todos os dias de uma vez.
type UpdateWeeklyHours struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateWeeklyHours(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
) *UpdateWeeklyHours {
	return &UpdateWeeklyHours{
		repo:  repo,
		audit: auditDisp,
	}
}

func (uc *UpdateWeeklyHours) Execute(
	ctx context.Context,
	businessID uint,
	userID uint,
	days []WeeklyDayConfig,
) error {

	seen := make(map[int]bool)
	toSave := make([]models.WeeklyHours, 0, len(days))

	for _, d := range days {
		if d.Weekday < 0 || d.Weekday > 6 {
			return coredomain.ErrValidation("weekday", "dia da semana fora de 0–6")
		}
		if seen[d.Weekday] {
			return coredomain.ErrValidation("weekday", "dia da semana repetido")
		}
		seen[d.Weekday] = true

		// valida intervalos antes de persistir; dia fechado não
		// precisa de slots válidos, mas malformado é rejeitado igual
		if _, err := models.DaySchedule(d.IsOpen, d.Slots); err != nil {
			return err
		}

		toSave = append(toSave, models.WeeklyHours{
			BusinessID: businessID,
			Weekday:    d.Weekday,
			IsOpen:     d.IsOpen,
			Slots:      d.Slots,
		})
	}

	if err := uc.repo.ReplaceWeeklyHours(ctx, businessID, toSave); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		UserID:     &userID,
		Action:     "weekly_hours_updated",
		Entity:     "weekly_hours",
	})

	return nil
}

package availability

import (
	"context"

	domain "github.com/irisagenda/agenda-api/internal/domain/booking"
	"github.com/irisagenda/agenda-api/internal/domain/schedule"
	"github.com/irisagenda/agenda-api/internal/models"
	"github.com/irisagenda/agenda-api/internal/timezone"
)

type ResolveSchedule struct {
	repo domain.Repository
}

func NewResolveSchedule(repo domain.Repository) *ResolveSchedule {
	return &ResolveSchedule{repo: repo}
}

// Execute resolve a fonte de agenda de uma data:
//
//  1. exceção da data, quando existe: substitui a semanal por completo,
//     mesmo aberta e sem slots;
//  2. senão, a configuração semanal do dia da semana;
//  3. senão, fechado, ou a janela padrão quando a empresa nunca
//     configurou horário semanal algum.
func (uc *ResolveSchedule) Execute(
	ctx context.Context,
	business *models.Business,
	date string,
) (schedule.DaySchedule, error) {

	day, err := timezone.ParseDate(business.Timezone, date)
	if err != nil {
		return schedule.DaySchedule{}, schedule.ErrValidation("date", "esperado YYYY-MM-DD")
	}

	ov, err := uc.repo.GetOverride(ctx, business.ID, date)
	if err != nil {
		return schedule.DaySchedule{}, err
	}
	if ov != nil {
		return models.DaySchedule(ov.IsOpen, ov.Slots)
	}

	wh, err := uc.repo.GetWeeklyHours(ctx, business.ID, int(day.Weekday()))
	if err != nil {
		return schedule.DaySchedule{}, err
	}
	if wh != nil {
		return models.DaySchedule(wh.IsOpen, wh.Slots)
	}

	configured, err := uc.repo.HasWeeklyHours(ctx, business.ID)
	if err != nil {
		return schedule.DaySchedule{}, err
	}
	if !configured {
		return schedule.Fallback(), nil
	}

	return schedule.Closed(), nil
}

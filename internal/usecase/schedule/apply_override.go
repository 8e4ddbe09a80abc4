package schedule

import (
	"context"

	"github.com/irisagenda/agenda-api/internal/audit"
	domain "github.com/irisagenda/agenda-api/internal/domain/booking"
	coredomain "github.com/irisagenda/agenda-api/internal/domain/schedule"
	"github.com/irisagenda/agenda-api/internal/models"
	"github.com/irisagenda/agenda-api/internal/timezone"
)

// OverrideConfig é a configuração aplicada a uma ou várias datas:
// substituição completa, nunca mescla com a semanal.
type OverrideConfig struct {
	IsOpen bool            `json:"is_open"`
	Slots  models.SlotList `json:"slots"`
}

// ApplyOverride grava a exceção de uma única data (upsert pela chave
// composta empresa+data).
type ApplyOverride struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewApplyOverride(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
) *ApplyOverride {
	return &ApplyOverride{
		repo:  repo,
		audit: auditDisp,
	}
}

func (uc *ApplyOverride) Execute(
	ctx context.Context,
	businessID uint,
	userID uint,
	date string,
	config OverrideConfig,
) (*models.DateOverride, error) {

	if _, err := timezone.ParseDate("", date); err != nil {
		return nil, coredomain.ErrValidation("date", "esperado YYYY-MM-DD")
	}

	if _, err := models.DaySchedule(config.IsOpen, config.Slots); err != nil {
		return nil, err
	}

	ov := &models.DateOverride{
		BusinessID: businessID,
		Date:       date,
		IsOpen:     config.IsOpen,
		Slots:      config.Slots,
	}

	if err := uc.repo.UpsertOverride(ctx, ov); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		UserID:     &userID,
		Action:     "override_applied",
		Entity:     "date_override",
		EntityID:   &ov.ID,
		Metadata:   map[string]any{"date": date, "is_open": config.IsOpen},
	})

	return ov, nil
}

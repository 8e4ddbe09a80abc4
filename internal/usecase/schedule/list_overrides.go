package schedule

import (
	"context"
	"fmt"
	"time"

	domain "github.com/irisagenda/agenda-api/internal/domain/booking"
	coredomain "github.com/irisagenda/agenda-api/internal/domain/schedule"
	"github.com/irisagenda/agenda-api/internal/models"
	"github.com/irisagenda/agenda-api/internal/timezone"
)

// ListOverridesByMonth devolve as exceções do mês visível no
// calendário de disponibilidade.
type ListOverridesByMonth struct {
	repo domain.Repository
}

func NewListOverridesByMonth(repo domain.Repository) *ListOverridesByMonth {
	return &ListOverridesByMonth{repo: repo}
}

func (uc *ListOverridesByMonth) Execute(
	ctx context.Context,
	businessID uint,
	year int,
	month int,
) ([]models.DateOverride, error) {

	if month < 1 || month > 12 {
		return nil, coredomain.ErrValidation("month", "mês fora de 1–12")
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	return uc.repo.ListOverridesForRange(
		ctx,
		businessID,
		first.Format(timezone.DateLayout),
		last.Format(timezone.DateLayout),
	)
}

// DeleteOverride remove a exceção de uma data; a ausência faz a data
// voltar a seguir a configuração semanal.
type DeleteOverride struct {
	repo domain.Repository
}

func NewDeleteOverride(repo domain.Repository) *DeleteOverride {
	return &DeleteOverride{repo: repo}
}

func (uc *DeleteOverride) Execute(
	ctx context.Context,
	businessID uint,
	date string,
) error {

	if _, err := timezone.ParseDate("", date); err != nil {
		return coredomain.ErrValidation("date", fmt.Sprintf("data inválida: %s", date))
	}

	return uc.repo.DeleteOverride(ctx, businessID, date)
}

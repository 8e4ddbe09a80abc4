package schedule

import (
	"context"
	"sort"

	"github.com/irisagenda/agenda-api/internal/audit"
	domain "github.com/irisagenda/agenda-api/internal/domain/booking"
	coredomain "github.com/irisagenda/agenda-api/internal/domain/schedule"
	"github.com/irisagenda/agenda-api/internal/models"
	"github.com/irisagenda/agenda-api/internal/timezone"
)

// BatchLimit é o teto de documentos por transação de lote, o mesmo
// limite de write-batch do armazenamento original.
const BatchLimit = 500

// BulkApplyOverrides aplica uma configuração a N datas ("fechar todos
// os domingos de março") em lotes transacionais. Cada lote é tudo ou
// nada; se algum lote falhar, o chamador recebe exatamente quais datas
// ficaram de fora, nunca uma aplicação parcial silenciosa.
type BulkApplyOverrides struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBulkApplyOverrides(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
) *BulkApplyOverrides {
	return &BulkApplyOverrides{
		repo:  repo,
		audit: auditDisp,
	}
}

func (uc *BulkApplyOverrides) Execute(
	ctx context.Context,
	businessID uint,
	userID uint,
	dates []string,
	config OverrideConfig,
) error {

	if len(dates) == 0 {
		return coredomain.ErrValidation("dates", "nenhuma data informada")
	}

	// valida tudo antes de gravar qualquer coisa
	if _, err := models.DaySchedule(config.IsOpen, config.Slots); err != nil {
		return err
	}

	uniq := make(map[string]bool, len(dates))
	for _, d := range dates {
		if _, err := timezone.ParseDate("", d); err != nil {
			return coredomain.ErrValidation("dates", "data inválida: "+d)
		}
		uniq[d] = true
	}

	ordered := make([]string, 0, len(uniq))
	for d := range uniq {
		ordered = append(ordered, d)
	}
	sort.Strings(ordered)

	var failed []string
	var lastErr error

	for start := 0; start < len(ordered); start += BatchLimit {
		end := start + BatchLimit
		if end > len(ordered) {
			end = len(ordered)
		}
		chunk := ordered[start:end]

		batch := make([]models.DateOverride, 0, len(chunk))
		for _, d := range chunk {
			batch = append(batch, models.DateOverride{
				BusinessID: businessID,
				Date:       d,
				IsOpen:     config.IsOpen,
				Slots:      config.Slots,
			})
		}

		if err := uc.repo.BatchUpsertOverrides(ctx, batch); err != nil {
			failed = append(failed, chunk...)
			lastErr = err
		}
	}

	if len(failed) > 0 {
		return &coredomain.PartialFailure{FailedDates: failed, Err: lastErr}
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		UserID:     &userID,
		Action:     "overrides_bulk_applied",
		Entity:     "date_override",
		Metadata: map[string]any{
			"dates":   len(ordered),
			"is_open": config.IsOpen,
		},
	})

	return nil
}

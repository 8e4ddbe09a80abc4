package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/irisagenda/agenda-api/internal/domain/schedule"
	"github.com/irisagenda/agenda-api/internal/httperr"
)

// isUniqueViolation detecta violação de índice único do Postgres
// (23505), a corrida que o pré-check de slug/e-mail não cobre.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// mapDomainError traduz a taxonomia do domínio para HTTP. Nenhum erro
// é engolido: toda operação devolve sucesso ou um erro tipado.
func mapDomainError(c *gin.Context, err error) {
	var ve *schedule.ValidationError
	if errors.As(err, &ve) {
		httperr.BadRequest(c, "validation_error", ve.Error())
		return
	}

	var ce *schedule.ConflictError
	if errors.As(err, &ce) {
		httperr.Conflict(c, ce.Code, "Horário não está mais disponível. Escolha outro.")
		return
	}

	var pf *schedule.PartialFailure
	if errors.As(err, &pf) {
		c.JSON(409, gin.H{
			"error_code":   "partial_failure",
			"message":      "Parte das datas não foi gravada. Tente novamente as datas listadas.",
			"failed_dates": pf.FailedDates,
		})
		return
	}

	var se *schedule.StoreError
	if errors.As(err, &se) {
		httperr.Unavailable(c, "store_unavailable", "Banco de dados indisponível. Tente novamente.")
		return
	}

	var be httperr.BusinessError
	if errors.As(err, &be) {
		httperr.BadRequest(c, be.Code, be.Code)
		return
	}

	httperr.Internal(c, "internal_error", "Erro interno.")
}

package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/irisagenda/agenda-api/internal/middleware"
	ucschedule "github.com/irisagenda/agenda-api/internal/usecase/schedule"
)

type OverrideHandler struct {
	list      *ucschedule.ListOverridesByMonth
	apply     *ucschedule.ApplyOverride
	bulkApply *ucschedule.BulkApplyOverrides
	remove    *ucschedule.DeleteOverride
}

func NewOverrideHandler(
	list *ucschedule.ListOverridesByMonth,
	apply *ucschedule.ApplyOverride,
	bulkApply *ucschedule.BulkApplyOverrides,
	remove *ucschedule.DeleteOverride,
) *OverrideHandler {
	return &OverrideHandler{
		list:      list,
		apply:     apply,
		bulkApply: bulkApply,
		remove:    remove,
	}
}

// List devolve as exceções do mês pedido (?year=2026&month=3);
// sem parâmetros assume o mês corrente.
func (h *OverrideHandler) List(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	now := time.Now()
	year, _ := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	month, _ := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))

	overrides, err := h.list.Execute(c.Request.Context(), businessID, year, month)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, overrides)
}

// Put grava (ou substitui) a exceção da data do path.
func (h *OverrideHandler) Put(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)
	date := c.Param("date")

	var req ucschedule.OverrideConfig
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ov, err := h.apply.Execute(c.Request.Context(), businessID, userID, date, req)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, ov)
}

type BulkOverridesRequest struct {
	Dates  []string                  `json:"dates" binding:"required"`
	Config ucschedule.OverrideConfig `json:"config"`
}

// Bulk aplica a mesma configuração a várias datas de uma vez.
func (h *OverrideHandler) Bulk(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req BulkOverridesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if err := h.bulkApply.Execute(c.Request.Context(), businessID, userID, req.Dates, req.Config); err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "exceções aplicadas",
		"dates":   len(req.Dates),
	})
}

// Delete remove a exceção; a data volta a seguir a grade semanal.
func (h *OverrideHandler) Delete(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)
	date := c.Param("date")

	if err := h.remove.Execute(c.Request.Context(), businessID, date); err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "exceção removida"})
}

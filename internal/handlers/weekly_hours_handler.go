package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/irisagenda/agenda-api/internal/domain/booking"
	"github.com/irisagenda/agenda-api/internal/middleware"
	ucschedule "github.com/irisagenda/agenda-api/internal/usecase/schedule"
)

type WeeklyHoursHandler struct {
	repo   domain.Repository
	update *ucschedule.UpdateWeeklyHours
}

func NewWeeklyHoursHandler(
	repo domain.Repository,
	update *ucschedule.UpdateWeeklyHours,
) *WeeklyHoursHandler {
	return &WeeklyHoursHandler{
		repo:   repo,
		update: update,
	}
}

// Get devolve a grade semanal completa da empresa (0=domingo).
func (h *WeeklyHoursHandler) Get(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	days, err := h.repo.ListWeeklyHours(c.Request.Context(), businessID)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, days)
}

type UpdateWeeklyHoursRequest struct {
	Days []ucschedule.WeeklyDayConfig `json:"days" binding:"required"`
}

// Put substitui a configuração semanal inteira de uma vez.
func (h *WeeklyHoursHandler) Put(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateWeeklyHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if err := h.update.Execute(c.Request.Context(), businessID, userID, req.Days); err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "horários atualizados"})
}

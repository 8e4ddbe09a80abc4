package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/irisagenda/agenda-api/internal/domain/booking"
	"github.com/irisagenda/agenda-api/internal/middleware"
	"github.com/irisagenda/agenda-api/internal/models"
	"github.com/irisagenda/agenda-api/internal/timezone"
)

type BlockHandler struct {
	db   *gorm.DB
	repo domain.Repository
}

func NewBlockHandler(db *gorm.DB, repo domain.Repository) *BlockHandler {
	return &BlockHandler{db: db, repo: repo}
}

type CreateBlockRequest struct {
	ProfessionalID uint   `json:"professional_id"`
	Date           string `json:"date" binding:"required"`       // YYYY-MM-DD
	StartTime      string `json:"start_time" binding:"required"` // HH:mm
	EndTime        string `json:"end_time" binding:"required"`   // HH:mm
	Reason         string `json:"reason"`
}

// List devolve os bloqueios do dia (?date=YYYY-MM-DD) no fuso da empresa.
func (h *BlockHandler) List(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	business, err := h.repo.GetBusinessByID(c.Request.Context(), businessID)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_date"})
		return
	}

	day, err := timezone.ParseDate(business.Timezone, date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date"})
		return
	}
	dayStart, dayEnd := timezone.DayBounds(business.Timezone, day)

	blocks, err := h.repo.ListBlocksForDay(c.Request.Context(), businessID, dayStart, dayEnd)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, blocks)
}

func (h *BlockHandler) Create(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	business, err := h.repo.GetBusinessByID(c.Request.Context(), businessID)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	start, err := parseDateTimeInBusiness(business, req.Date, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_start_time"})
		return
	}

	end, err := parseDateTimeInBusiness(business, req.Date, req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_end_time"})
		return
	}

	if !end.After(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_before_start"})
		return
	}

	block := models.Block{
		BusinessID:     businessID,
		ProfessionalID: req.ProfessionalID,
		StartTime:      start,
		EndTime:        end,
		Reason:         req.Reason,
	}

	if err := h.repo.CreateBlock(c.Request.Context(), &block); err != nil {
		mapDomainError(c, err)
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	writeAudit(h.db, businessID, &userID, "block_created", "block", &block.ID, nil)

	c.JSON(http.StatusCreated, block)
}

func (h *BlockHandler) Delete(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}
	blockID := uint(id)

	if err := h.repo.DeleteBlock(c.Request.Context(), blockID, businessID); err != nil {
		mapDomainError(c, err)
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	writeAudit(h.db, businessID, &userID, "block_deleted", "block", &blockID, nil)

	c.JSON(http.StatusOK, gin.H{"message": "bloqueio removido"})
}

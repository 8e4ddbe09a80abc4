package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/irisagenda/agenda-api/internal/middleware"
	"github.com/irisagenda/agenda-api/internal/models"
)

type ProfessionalHandler struct {
	db *gorm.DB
}

func NewProfessionalHandler(db *gorm.DB) *ProfessionalHandler {
	return &ProfessionalHandler{db: db}
}

type CreateProfessionalRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Bio   string `json:"bio"`
}

type UpdateProfessionalRequest struct {
	Name   *string `json:"name,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Bio    *string `json:"bio,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

func (h *ProfessionalHandler) List(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	var pros []models.Professional
	if err := h.db.
		Where("business_id = ?", businessID).
		Order("id ASC").
		Find(&pros).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_professionals"})
		return
	}

	c.JSON(http.StatusOK, pros)
}

func (h *ProfessionalHandler) Create(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	var req CreateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	pro := models.Professional{
		BusinessID: businessID,
		Name:       req.Name,
		Phone:      req.Phone,
		Bio:        req.Bio,
		Active:     true,
	}

	if err := h.db.Create(&pro).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_professional"})
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	writeAudit(h.db, businessID, &userID, "professional_created", "professional", &pro.ID, nil)

	c.JSON(http.StatusCreated, pro)
}

func (h *ProfessionalHandler) Update(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)
	id := c.Param("id")

	var pro models.Professional
	if err := h.db.
		Where("id = ? AND business_id = ?", id, businessID).
		First(&pro).Error; err != nil {

		c.JSON(http.StatusNotFound, gin.H{"error": "professional_not_found"})
		return
	}

	var req UpdateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		pro.Name = *req.Name
	}
	if req.Phone != nil {
		pro.Phone = *req.Phone
	}
	if req.Bio != nil {
		pro.Bio = *req.Bio
	}
	if req.Active != nil {
		pro.Active = *req.Active
	}

	if err := h.db.Save(&pro).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_professional"})
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	writeAudit(h.db, businessID, &userID, "professional_updated", "professional", &pro.ID, nil)

	c.JSON(http.StatusOK, pro)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/irisagenda/agenda-api/internal/httperr"
	"github.com/irisagenda/agenda-api/internal/middleware"
	"github.com/irisagenda/agenda-api/internal/models"
	"github.com/irisagenda/agenda-api/internal/timezone"
)

type BusinessHandler struct {
	db *gorm.DB
}

func NewBusinessHandler(db *gorm.DB) *BusinessHandler {
	return &BusinessHandler{db: db}
}

type UpdateBusinessRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Phone       *string `json:"phone"`
	WhatsApp    *string `json:"whatsapp"`
	Address     *string `json:"address"`
	Category    *string `json:"category"`
	Timezone    *string `json:"timezone"`
}

func (h *BusinessHandler) GetMeBusiness(c *gin.Context) {
	businessIDVal, _ := c.Get(middleware.ContextBusinessID)
	businessID := businessIDVal.(uint)

	var business models.Business
	if err := h.db.First(&business, businessID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "business_not_found", "Empresa não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_business", "Erro ao buscar dados da empresa.")
		return
	}

	c.JSON(http.StatusOK, business)
}

func (h *BusinessHandler) UpdateMeBusiness(c *gin.Context) {
	businessIDVal, _ := c.Get(middleware.ContextBusinessID)
	businessID := businessIDVal.(uint)

	var business models.Business
	if err := h.db.First(&business, businessID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "business_not_found", "Empresa não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_business", "Erro ao buscar dados da empresa.")
		return
	}

	var req UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	if req.Name != nil {
		business.Name = *req.Name
	}
	if req.Description != nil {
		business.Description = *req.Description
	}
	if req.Phone != nil {
		business.Phone = *req.Phone
	}
	if req.WhatsApp != nil {
		business.WhatsApp = *req.WhatsApp
	}
	if req.Address != nil {
		business.Address = *req.Address
	}
	if req.Category != nil {
		business.Category = *req.Category
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Fuso horário IANA inválido.")
			return
		}
		business.Timezone = *req.Timezone
	}

	if err := h.db.Save(&business).Error; err != nil {
		httperr.Internal(c, "failed_to_update_business", "Erro ao salvar dados da empresa.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	writeAudit(h.db, businessID, &userID, "business_updated", "business", &business.ID, nil)

	c.JSON(http.StatusOK, business)
}

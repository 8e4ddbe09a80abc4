package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/irisagenda/agenda-api/internal/domain/booking"
	"github.com/irisagenda/agenda-api/internal/notification"
	ucavailability "github.com/irisagenda/agenda-api/internal/usecase/availability"
	ucbooking "github.com/irisagenda/agenda-api/internal/usecase/booking"
)

// PublicHandler atende o mini-site de agendamento: tudo resolvido
// pelo slug da empresa, sem autenticação.
type PublicHandler struct {
	repo         domain.Repository
	availability *ucavailability.GetAvailability
	create       *ucbooking.CreateBooking
}

func NewPublicHandler(
	repo domain.Repository,
	availability *ucavailability.GetAvailability,
	create *ucbooking.CreateBooking,
) *PublicHandler {
	return &PublicHandler{
		repo:         repo,
		availability: availability,
		create:       create,
	}
}

// GetBusiness devolve o cartão público da empresa.
func (h *PublicHandler) GetBusiness(c *gin.Context) {
	business, err := h.repo.GetBusinessBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "business_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       business.ID,
		"name":     business.Name,
		"slug":     business.Slug,
		"phone":    business.Phone,
		"whatsapp": business.WhatsApp,
		"address":  business.Address,
		"timezone": business.Timezone,
	})
}

// ListServices devolve só os serviços ativos, na ordem do catálogo.
func (h *PublicHandler) ListServices(c *gin.Context) {
	business, err := h.repo.GetBusinessBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "business_not_found"})
		return
	}

	services, err := h.repo.ListActiveServices(c.Request.Context(), business.ID)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetAvailability devolve os horários livres de um serviço em uma data
// (?service_id=&date=YYYY-MM-DD).
func (h *PublicHandler) GetAvailability(c *gin.Context) {
	business, err := h.repo.GetBusinessBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "business_not_found"})
		return
	}

	var query struct {
		ServiceID      uint   `form:"service_id" binding:"required"`
		ProfessionalID uint   `form:"professional_id"`
		Date           string `form:"date" binding:"required"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		BusinessID:     business.ID,
		ProfessionalID: query.ProfessionalID,
		ServiceID:      query.ServiceID,
		Date:           query.Date,
	})
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  query.Date,
		"slots": slots,
	})
}

type PublicBookingRequest struct {
	ProfessionalID uint   `json:"professional_id"`
	ClientName     string `json:"client_name" binding:"required"`
	ClientPhone    string `json:"client_phone" binding:"required"`
	ServiceID      uint   `json:"service_id" binding:"required"`
	Date           string `json:"date" binding:"required"` // YYYY-MM-DD
	Time           string `json:"time" binding:"required"` // HH:mm
	Notes          string `json:"notes"`
}

// CreateBooking grava a reserva do cliente final. A resposta inclui o
// link de WhatsApp para o cliente confirmar com a empresa.
func (h *PublicHandler) CreateBooking(c *gin.Context) {
	business, err := h.repo.GetBusinessBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "business_not_found"})
		return
	}

	var req PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	bk, err := h.create.Execute(c.Request.Context(), ucbooking.CreateBookingInput{
		BusinessID:     business.ID,
		ProfessionalID: req.ProfessionalID,
		ClientName:     req.ClientName,
		ClientPhone:    req.ClientPhone,
		ServiceID:      req.ServiceID,
		Date:           req.Date,
		Time:           req.Time,
		Notes:          req.Notes,
		Staff:          false,
		IdempotencyKey: c.GetHeader("Idempotency-Key"),
	})
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking":       bk,
		"whatsapp_link": notification.WhatsAppLink(business, bk),
	})
}

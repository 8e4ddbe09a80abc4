package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/irisagenda/agenda-api/internal/middleware"
	"github.com/irisagenda/agenda-api/internal/timezone"
	ucbooking "github.com/irisagenda/agenda-api/internal/usecase/booking"
)

type BookingHandler struct {
	create      *ucbooking.CreateBooking
	cancel      *ucbooking.CancelBooking
	confirm     *ucbooking.ConfirmBooking
	complete    *ucbooking.CompleteBooking
	listByDate  *ucbooking.ListBookingsByDate
	listByMonth *ucbooking.ListBookingsByMonth
}

func NewBookingHandler(
	create *ucbooking.CreateBooking,
	cancel *ucbooking.CancelBooking,
	confirm *ucbooking.ConfirmBooking,
	complete *ucbooking.CompleteBooking,
	listByDate *ucbooking.ListBookingsByDate,
	listByMonth *ucbooking.ListBookingsByMonth,
) *BookingHandler {
	return &BookingHandler{
		create:      create,
		cancel:      cancel,
		confirm:     confirm,
		complete:    complete,
		listByDate:  listByDate,
		listByMonth: listByMonth,
	}
}

type StaffCreateBookingRequest struct {
	ProfessionalID uint   `json:"professional_id"`
	ClientName     string `json:"client_name" binding:"required"`
	ClientPhone    string `json:"client_phone"`
	ServiceID      uint   `json:"service_id" binding:"required"`
	Date           string `json:"date" binding:"required"` // YYYY-MM-DD
	Time           string `json:"time" binding:"required"` // HH:mm
	Notes          string `json:"notes"`
}

// Create grava uma reserva feita pela equipe; nasce confirmada.
func (h *BookingHandler) Create(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	var req StaffCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	bk, err := h.create.Execute(c.Request.Context(), ucbooking.CreateBookingInput{
		BusinessID:     businessID,
		ProfessionalID: req.ProfessionalID,
		ClientName:     req.ClientName,
		ClientPhone:    req.ClientPhone,
		ServiceID:      req.ServiceID,
		Date:           req.Date,
		Time:           req.Time,
		Notes:          req.Notes,
		Staff:          true,
		IdempotencyKey: c.GetHeader("Idempotency-Key"),
	})
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bk)
}

// List devolve as reservas do dia (?date=) ou do mês (?year=&month=).
func (h *BookingHandler) List(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.Parse(timezone.DateLayout, dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date"})
			return
		}

		bookings, err := h.listByDate.Execute(c.Request.Context(), businessID, date)
		if err != nil {
			mapDomainError(c, err)
			return
		}

		c.JSON(http.StatusOK, bookings)
		return
	}

	now := time.Now()
	year, _ := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	month, _ := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))

	if month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_month"})
		return
	}

	bookings, err := h.listByMonth.Execute(c.Request.Context(), businessID, year, month)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, func(businessID, userID, bookingID uint) (any, error) {
		return h.cancel.Execute(c.Request.Context(), businessID, userID, bookingID)
	})
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, func(businessID, userID, bookingID uint) (any, error) {
		return h.confirm.Execute(c.Request.Context(), businessID, userID, bookingID)
	})
}

func (h *BookingHandler) Complete(c *gin.Context) {
	h.transition(c, func(businessID, userID, bookingID uint) (any, error) {
		return h.complete.Execute(c.Request.Context(), businessID, userID, bookingID)
	})
}

// transition concentra o parse comum das rotas de mudança de status.
func (h *BookingHandler) transition(
	c *gin.Context,
	run func(businessID, userID, bookingID uint) (any, error),
) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	bk, err := run(businessID, userID, uint(id))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, bk)
}

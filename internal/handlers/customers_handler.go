package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/irisagenda/agenda-api/internal/httpresp"
	"github.com/irisagenda/agenda-api/internal/middleware"
)

// CustomerHandler deriva a base de clientes do histórico de reservas:
// não existe cadastro próprio, o cliente "nasce" na primeira reserva.
type CustomerHandler struct {
	db *gorm.DB
}

func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{db: db}
}

type CustomerRow struct {
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone"`
	Visits      int64     `json:"visits"`
	LastVisit   time.Time `json:"last_visit"`
	TotalSpent  float64   `json:"total_spent"`
}

// List agrega as reservas não canceladas por cliente, com busca
// opcional por nome ou telefone (?query=).
func (h *CustomerHandler) List(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.
		Table("bookings").
		Select(`client_name,
			client_phone,
			COUNT(*) AS visits,
			MAX(start_time) AS last_visit,
			SUM(total_price) AS total_spent`).
		Where("business_id = ? AND status <> ?", businessID, "cancelled").
		Group("client_name, client_phone").
		Order("last_visit DESC")

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(client_name) LIKE ? OR client_phone LIKE ?", like, like)
	}

	var customers []CustomerRow
	if err := q.Scan(&customers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_customers"})
		return
	}

	httpresp.List(c, customers)
}

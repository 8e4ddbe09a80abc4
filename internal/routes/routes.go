package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/irisagenda/agenda-api/internal/audit"
	"github.com/irisagenda/agenda-api/internal/cache"
	"github.com/irisagenda/agenda-api/internal/config"
	"github.com/irisagenda/agenda-api/internal/handlers"
	"github.com/irisagenda/agenda-api/internal/infra/repository"
	"github.com/irisagenda/agenda-api/internal/middleware"
	ucavailability "github.com/irisagenda/agenda-api/internal/usecase/availability"
	ucbooking "github.com/irisagenda/agenda-api/internal/usecase/booking"
	ucschedule "github.com/irisagenda/agenda-api/internal/usecase/schedule"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
) {

	// --------------------------------------------------
	// Infra compartilhada
	// --------------------------------------------------
	repo := repository.NewSchedulingGormRepository(db)
	auditDisp := audit.NewDispatcher(audit.New(db))
	idem := cache.NewIdempotencyStore(rdb)

	// --------------------------------------------------
	// Use cases
	// --------------------------------------------------
	getAvailability := ucavailability.NewGetAvailability(repo)

	createBooking := ucbooking.NewCreateBooking(repo, idem, auditDisp)
	cancelBooking := ucbooking.NewCancelBooking(repo, auditDisp)
	confirmBooking := ucbooking.NewConfirmBooking(repo, auditDisp)
	completeBooking := ucbooking.NewCompleteBooking(repo, auditDisp)
	listByDate := ucbooking.NewListBookingsByDate(repo)
	listByMonth := ucbooking.NewListBookingsByMonth(repo)

	updateWeekly := ucschedule.NewUpdateWeeklyHours(repo, auditDisp)
	applyOverride := ucschedule.NewApplyOverride(repo, auditDisp)
	bulkOverrides := ucschedule.NewBulkApplyOverrides(repo, auditDisp)
	listOverrides := ucschedule.NewListOverridesByMonth(repo)
	deleteOverride := ucschedule.NewDeleteOverride(repo)

	// --------------------------------------------------
	// Handlers
	// --------------------------------------------------
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	businessHandler := handlers.NewBusinessHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	professionalHandler := handlers.NewProfessionalHandler(db)
	weeklyHandler := handlers.NewWeeklyHoursHandler(repo, updateWeekly)
	overrideHandler := handlers.NewOverrideHandler(listOverrides, applyOverride, bulkOverrides, deleteOverride)
	blockHandler := handlers.NewBlockHandler(db, repo)
	bookingHandler := handlers.NewBookingHandler(
		createBooking,
		cancelBooking,
		confirmBooking,
		completeBooking,
		listByDate,
		listByMonth,
	)
	customerHandler := handlers.NewCustomerHandler(db)
	publicHandler := handlers.NewPublicHandler(repo, getAvailability, createBooking)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	api := r.Group("/api")

	// --------------------------------------------------
	// Público: mini-site de agendamento por slug
	// --------------------------------------------------
	public := api.Group("/public/:slug")
	{
		public.GET("", publicHandler.GetBusiness)
		public.GET("/services", publicHandler.ListServices)
		public.GET("/availability", publicHandler.GetAvailability)
		public.POST("/bookings", publicHandler.CreateBooking)
	}

	// --------------------------------------------------
	// Autenticação
	// --------------------------------------------------
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// --------------------------------------------------
	// Painel da empresa (JWT)
	// --------------------------------------------------
	me := api.Group("/me")
	me.Use(middleware.AuthMiddleware(cfg))
	{
		me.GET("", meHandler.GetMe)

		me.GET("/business", businessHandler.GetMeBusiness)
		me.PUT("/business", businessHandler.UpdateMeBusiness)

		me.GET("/services", serviceHandler.List)
		me.POST("/services", serviceHandler.Create)
		me.PUT("/services/:id", serviceHandler.Update)

		me.GET("/professionals", professionalHandler.List)
		me.POST("/professionals", professionalHandler.Create)
		me.PUT("/professionals/:id", professionalHandler.Update)

		me.GET("/weekly-hours", weeklyHandler.Get)
		me.PUT("/weekly-hours", weeklyHandler.Put)

		me.GET("/overrides", overrideHandler.List)
		me.PUT("/overrides/:date", overrideHandler.Put)
		me.DELETE("/overrides/:date", overrideHandler.Delete)
		me.POST("/overrides/bulk", overrideHandler.Bulk)

		me.GET("/blocks", blockHandler.List)
		me.POST("/blocks", blockHandler.Create)
		me.DELETE("/blocks/:id", blockHandler.Delete)

		me.GET("/bookings", bookingHandler.List)
		me.POST("/bookings", bookingHandler.Create)
		me.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
		me.PATCH("/bookings/:id/confirm", bookingHandler.Confirm)
		me.PATCH("/bookings/:id/complete", bookingHandler.Complete)

		me.GET("/customers", customerHandler.List)

		me.GET("/audit-logs", auditLogsHandler.List)
	}
}

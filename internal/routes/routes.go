package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/barbertime/barbertime-api/internal/audit"
	"github.com/barbertime/barbertime-api/internal/config"
	"github.com/barbertime/barbertime-api/internal/handlers"
	infraRepo "github.com/barbertime/barbertime-api/internal/infra/repository"
	"github.com/barbertime/barbertime-api/internal/infra/store"
	"github.com/barbertime/barbertime-api/internal/media"
	"github.com/barbertime/barbertime-api/internal/middleware"
	"github.com/barbertime/barbertime-api/internal/mirror"
	"github.com/barbertime/barbertime-api/internal/timezone"
	ucBooking "github.com/barbertime/barbertime-api/internal/usecase/booking"
	ucCalendar "github.com/barbertime/barbertime-api/internal/usecase/calendar"
	ucCatalog "github.com/barbertime/barbertime-api/internal/usecase/catalog"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	catalogRepo := infraRepo.NewCatalogGormRepository(db)

	localMirror := mirror.New(mirror.NewRedisKV(rdb))
	twoTier := store.NewTwoTier(bookingRepo, localMirror)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	uploader := media.NewUploader(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	sessions := ucBooking.NewSessionStore()
	wizard := ucBooking.NewWizard(sessions, twoTier, auditDispatcher, loc)

	adminCatalog := ucCatalog.NewAdmin(catalogRepo, twoTier, auditDispatcher)
	adminCalendar := ucCalendar.New(twoTier, loc)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	publicHandler := handlers.NewPublicHandler(twoTier, loc)
	bookingHandler := handlers.NewBookingHandler(wizard)

	serviceHandler := handlers.NewServiceHandler(db, adminCatalog)
	barberHandler := handlers.NewBarberHandler(db, adminCatalog, uploader)
	shopHandler := handlers.NewShopHandler(twoTier, adminCatalog, uploader)

	calendarHandler := handlers.NewCalendarHandler(adminCalendar, loc)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICA — vitrine e wizard
		// ------------------------------
		public := api.Group("/public")
		{
			public.GET("/shop", publicHandler.ShopInfo)
			public.GET("/services", publicHandler.ListServices)
			public.GET("/barbers", publicHandler.ListBarbers)
			public.GET("/days", publicHandler.SelectableDays)

			booking := public.Group("/booking")
			{
				booking.POST("", bookingHandler.Start)
				booking.GET("/:id", bookingHandler.Get)

				booking.POST("/:id/service", bookingHandler.SelectService)
				booking.POST("/:id/barber", bookingHandler.SelectBarber)
				booking.POST("/:id/datetime", bookingHandler.SelectDateTime)
				booking.POST("/:id/datetime/confirm", bookingHandler.ConfirmDateTime)
				booking.POST("/:id/confirm", bookingHandler.Confirm)

				booking.POST("/:id/back", bookingHandler.GoBack)
				booking.POST("/:id/reset", bookingHandler.Reset)

				booking.GET("/:id/availability", bookingHandler.Availability)
			}
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg))
		{
			admin.GET("/me", authHandler.Me)

			admin.GET("/shop", shopHandler.Get)
			admin.PATCH("/shop", shopHandler.Update)
			admin.POST("/shop/logo", shopHandler.UploadLogo)

			admin.GET("/services", serviceHandler.List)
			admin.POST("/services", serviceHandler.Create)
			admin.PATCH("/services/:id", serviceHandler.Update)
			admin.DELETE("/services/:id", serviceHandler.Delete)

			admin.GET("/barbers", barberHandler.List)
			admin.POST("/barbers", barberHandler.Create)
			admin.PATCH("/barbers/:id", barberHandler.Update)
			admin.DELETE("/barbers/:id", barberHandler.Delete)
			admin.POST("/barbers/:id/avatar", barberHandler.UploadAvatar)

			admin.GET("/calendar/day", calendarHandler.Day)
			admin.GET("/calendar/month", calendarHandler.Month)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}

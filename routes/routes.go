package routes

import (
	"net/http"
	"time"

	"groomly/handlers"
	"groomly/middleware"
	"groomly/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account and profile endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.SignInHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.AuthMiddleware(hb.UserRepo))
		api.POST("/logout", hb.SignOutHandler)
		api.GET("/profile", hb.GetProfileHandler)
		api.PUT("/profile", hb.UpdateProfileHandler)
	}
}

// RegisterPetRoutes registers the client's pet endpoints.
func RegisterPetRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/pets")
	{
		api.Use(middleware.AuthMiddleware(hb.UserRepo))
		api.POST("", hb.CreatePetHandler)
		api.GET("", hb.ListPetsHandler)
		api.GET("/:id", hb.GetPetHandler)
		api.PUT("/:id", hb.UpdatePetHandler)
		api.DELETE("/:id", hb.DeletePetHandler)
	}
}

// RegisterCatalogRoutes registers catalog endpoints. Reads are open to any
// signed-in user; writes are admin-only.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.Use(middleware.AuthMiddleware(hb.UserRepo))
		api.GET("", hb.ListServicesHandler)
		api.GET("/:id", hb.GetServiceHandler)

		admin := api.Group("")
		admin.Use(middleware.RequireAdmin())
		admin.POST("", hb.CreateServiceHandler)
		admin.PUT("/:id", hb.UpdateServiceHandler)
		admin.PATCH("/:id/active", hb.SetServiceActiveHandler)
		admin.POST("/:id/image", hb.UploadServiceImageHandler)
	}
}

// RegisterStylistRoutes registers the stylist directory and schedule rule
// endpoints.
func RegisterStylistRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/stylists")
	{
		api.Use(middleware.AuthMiddleware(hb.UserRepo))
		api.GET("", hb.ListStylistsHandler)

		schedule := api.Group("/schedule")
		schedule.Use(middleware.RequireStylist())
		schedule.POST("", hb.CreateScheduleRuleHandler)
		schedule.GET("", hb.ListScheduleRulesHandler)
		schedule.PUT("/:id", hb.UpdateScheduleRuleHandler)
		schedule.DELETE("/:id", hb.DeleteScheduleRuleHandler)
	}
}

// RegisterAvailabilityRoutes registers the slot resolution endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.Use(middleware.AuthMiddleware(hb.UserRepo))
		api.GET("", hb.GetAvailabilityHandler)
		api.GET("/day", hb.GetDayOverviewHandler)
	}
}

// RegisterBookingRoutes sets up the booking wizard endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.Use(middleware.AuthMiddleware(hb.UserRepo))
		api.POST("/session", hb.StartBookingSessionHandler)
		api.GET("/session/:sessionId", hb.GetBookingSessionHandler)
		api.PUT("/session/:sessionId/pet", hb.SelectBookingPetHandler)
		api.PUT("/session/:sessionId/service", hb.SelectBookingServiceHandler)
		api.PUT("/session/:sessionId/stylist", hb.SelectBookingStylistHandler)
		api.PUT("/session/:sessionId/date", hb.SetBookingDateHandler)
		api.PUT("/session/:sessionId/slot", hb.SelectBookingSlotHandler)
		api.PUT("/session/:sessionId/notes", hb.SetBookingNotesHandler)
		api.POST("/session/:sessionId/advance", hb.AdvanceBookingHandler)
		api.POST("/session/:sessionId/back", hb.BackBookingHandler)
		api.POST("/session/:sessionId/confirm", hb.ConfirmBookingHandler)
		api.DELETE("/session/:sessionId", hb.CancelBookingSessionHandler)
	}
}

// RegisterAppointmentRoutes registers appointment lifecycle endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.AuthMiddleware(hb.UserRepo))
		api.GET("", hb.ListAppointmentsHandler)
		api.GET("/:id", hb.GetAppointmentHandler)
		api.POST("/:id/cancel", hb.CancelAppointmentHandler)

		stylist := api.Group("")
		stylist.Use(middleware.RequireStylist())
		stylist.GET("/day", hb.DayViewHandler)
		stylist.POST("/:id/confirm", hb.ConfirmAppointmentHandler)
		stylist.POST("/:id/complete", hb.CompleteAppointmentHandler)
		stylist.POST("/:id/no-show", hb.NoShowAppointmentHandler)
	}
}

// RegisterNotificationRoutes registers the stylist notification feed.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.AuthMiddleware(hb.UserRepo))
		api.Use(middleware.RequireRole(models.RoleStylist, models.RoleAdmin))
		api.GET("", hb.ListNotificationsHandler)
		api.GET("/unread-count", hb.UnreadCountHandler)
		api.PATCH("/:id/read", hb.MarkNotificationReadHandler)
		api.PATCH("/read-all", hb.MarkAllNotificationsReadHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Groomly"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterPetRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterStylistRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterHealthRoute(r)
}

package routes

import (
	"net/http"
	"time"

	"labport/handlers"
	"labport/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers test and lab listing endpoints.
func RegisterCatalogRoutes(r *gin.Engine) {
	api := r.Group("/api/catalog")
	{
		api.GET("/tests", handlers.ListTests)
		api.GET("/tests/:testID", handlers.GetTest)
		api.GET("/labs", handlers.ListLabs)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking flow.
func RegisterBookingRoutes(r *gin.Engine) {
	api := r.Group("/api/booking")
	{
		api.POST("/session", handlers.StartBookingSession)
		api.GET("/session/:sessionID", handlers.GetBookingSession)
		api.POST("/session/:sessionID/cart", handlers.AddToCart)
		api.DELETE("/session/:sessionID/cart/:testID", handlers.RemoveFromCart)
		api.POST("/session/:sessionID/cart/toggle", handlers.ToggleCartItem)
		api.POST("/session/:sessionID/open", handlers.OpenBookingFlow)
		api.PUT("/session/:sessionID/lab", handlers.SelectLab)
		api.POST("/session/:sessionID/advance", handlers.AdvanceBookingStep)
		api.POST("/session/:sessionID/back", handlers.BackBookingStep)
		api.PUT("/session/:sessionID/schedule", handlers.SetSchedule)
		api.PUT("/session/:sessionID/contact", handlers.SetContactDetails)
		api.POST("/session/:sessionID/confirm", handlers.ConfirmBooking)
		api.DELETE("/session/:sessionID", handlers.CloseBookingFlow)
	}
}

// RegisterAIRoutes registers the symptom-triage consult endpoints.
func RegisterAIRoutes(r *gin.Engine) {
	api := r.Group("/api/ai")
	{
		api.POST("/consult", handlers.Consult)
		api.GET("/consult/:sessionID", handlers.ConsultHistory)
		api.DELETE("/consult/:sessionID", handlers.ResetConsult)
	}
}

// RegisterStorageRoutes registers prescription upload endpoints.
func RegisterStorageRoutes(r *gin.Engine) {
	api := r.Group("/api/storage")
	{
		api.POST("/prescription", handlers.UploadPrescription)
		api.GET("/prescription/:prescriptionID", handlers.GetPrescriptionURL)
	}
}

// RegisterDashboardRoutes registers the customer dashboard endpoints.
func RegisterDashboardRoutes(r *gin.Engine) {
	api := r.Group("/api/dashboard")
	{
		api.GET("/bookings", handlers.ListBookingsByPhone)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine) {
	api := r.Group("/api/admin")
	{
		api.GET("/bookings", handlers.AdminListBookings)
		api.PUT("/bookings/:bookingID/status", handlers.AdminUpdateBookingStatus)
		api.GET("/stats", handlers.AdminGetStats)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Labport"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.LanguageMiddleware())

	RegisterCatalogRoutes(r)
	RegisterBookingRoutes(r)
	RegisterAIRoutes(r)
	RegisterStorageRoutes(r)
	RegisterDashboardRoutes(r)
	RegisterAdminRoutes(r)
	RegisterHealthRoute(r)
}

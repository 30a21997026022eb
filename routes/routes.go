package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"shootbook/handlers"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterQuoteRoutes registers the live pricing endpoint.
func RegisterQuoteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/quote", hb.QuoteHandler)
}

// RegisterWizardRoutes sets up the endpoints for the intake wizard.
func RegisterWizardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	sessions := r.Group("/api/wizard/sessions")
	{
		sessions.POST("", hb.StartSessionHandler)
		sessions.GET("/:id", hb.GetSessionHandler)
		sessions.PATCH("/:id", hb.UpdateSessionHandler)
		sessions.DELETE("/:id", hb.CancelSessionHandler)
		sessions.POST("/:id/next", hb.NextStepHandler)
		sessions.POST("/:id/back", hb.PreviousStepHandler)
		sessions.POST("/:id/submit", hb.SubmitSessionHandler)
	}
}

// RegisterBookingRoutes registers direct record submission.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/bookings", hb.SubmitBookingHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterQuoteRoutes(r, hb)
	RegisterWizardRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}

package routes

import (
	"net/http"
	"time"

	"tripforge/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPlannerRoutes registers the planning session endpoints.
func RegisterPlannerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/planner")
	{
		api.GET("/currencies", hb.CurrencyOptionsHandler)

		api.POST("/sessions", hb.CreateSessionHandler)
		api.GET("/sessions/:sessionID", hb.GetSessionHandler)
		api.POST("/sessions/:sessionID/itinerary", hb.GenerateItineraryHandler)
		api.PATCH("/sessions/:sessionID/costs", hb.UpdateCostHandler)
		api.POST("/sessions/:sessionID/dismiss", hb.DismissErrorHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Tripforge"})
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

	RegisterPlannerRoutes(r, hb)
	RegisterHealthRoute(r)
}

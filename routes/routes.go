package routes

import (
	"net/http"
	"time"

	"cuidarte/handlers"
	"cuidarte/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterTestimonialRoutes registers the booking and sync endpoints.
func RegisterTestimonialRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/testimonials")
	{
		api.POST("", hb.BookTestimonial)
		api.POST("/sync", hb.SyncStatus)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// The CRM front end calls from the browser; preflights must pass
	// with the Supabase-style headers it sends.
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", "X-Client-Info", "Apikey"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterTestimonialRoutes(r, hb)
	RegisterHealthRoute(r)
}

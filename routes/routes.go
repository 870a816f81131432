package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"chukchukgo-backend/controllers"
	"chukchukgo-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controllers onto the REST surface.
func SetupRouter(
	ac *controllers.AuthController,
	tc *controllers.TrainController,
	bc *controllers.BookingController,
	fc *controllers.FoodController,
	pc *controllers.PaymentController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
		}

		api.GET("/stations", tc.ListStations)

		trains := api.Group("/trains")
		{
			trains.GET("", tc.Search)
			trains.GET("/:number/schedule", tc.GetSchedule)
		}

		api.POST("/payments", pc.Authorize)

		bookings := api.Group("/bookings")
		{
			bookings.POST("", bc.Create)
			bookings.POST("/:pnr/cancel", bc.Cancel)
		}

		api.GET("/pnr/:pnr", bc.GetByPNR)
		api.GET("/users/:id/bookings", bc.ListForUser)

		food := api.Group("/food-orders")
		{
			food.POST("", fc.Create)
			food.GET("/:pnr", fc.ListByPNR)
			food.POST("/:pnr/:orderId/cancel", fc.Cancel)
		}
	}

	return r
}

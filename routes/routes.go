package routes

import (
	"net/http"
	"time"

	"solarcare/handlers"
	"solarcare/middleware"
	"solarcare/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the simulated OTP login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/otp", hb.RequestOTPHandler)
		api.POST("/verify", hb.VerifyOTPHandler)
	}
}

// RegisterCatalogRoutes registers the public catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/services", hb.ListServicesHandler)
		api.GET("/services/:id", hb.GetServiceHandler)
		api.GET("/offers", hb.ListOffersHandler)
		api.GET("/slots", hb.ListSlotsHandler)
	}
}

// RegisterCartRoutes registers the signed-in user's cart endpoints.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cart")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.Tokens))
		api.GET("", hb.GetCartHandler)
		api.POST("/items", hb.AddCartItemHandler)
		api.DELETE("/items/:id", hb.RemoveCartItemHandler)
		api.PATCH("/items/:id", hb.UpdateCartItemHandler)
		api.POST("/offers", hb.ApplyOfferHandler)
		api.DELETE("/offers/:id", hb.RemoveOfferHandler)
	}
}

// RegisterBookingRoutes registers checkout and order history.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := middleware.JWTAuthUserMiddleware(hb.Tokens)

	r.POST("/api/checkout", auth, hb.PlaceOrderHandler)

	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(auth)
		bookingGroup.GET("", hb.ListBookingsHandler)
		bookingGroup.GET("/:id", hb.GetBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "Hi, I'm SolarCare",
			"services": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterCartRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}

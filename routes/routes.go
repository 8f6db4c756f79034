package routes

import (
	"voyago/handlers"
	"voyago/middleware"
	"voyago/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the router needs.
type HandlerBundle struct {
	Listings *handlers.ListingHandler
	Bookings *handlers.BookingHandler
	Payments *handlers.PaymentHandler
	Users    *handlers.UserHandler
	Health   *handlers.HealthHandler
	Tokens   *utils.TokenIssuer
}

// RegisterRoutes registers all endpoints on the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.Default())

	r.GET("/health", hb.Health.Check)

	api := r.Group("/api")
	{
		listings := api.Group("/listings")
		{
			listings.GET("", hb.Listings.ListListings)
			listings.POST("", hb.Listings.CreateListing)
			listings.GET("/:id", hb.Listings.GetListing)
			listings.PUT("/:id", hb.Listings.UpdateListing)
			listings.DELETE("/:id", hb.Listings.DeleteListing)
			listings.GET("/:id/reviews", hb.Listings.ListReviews)
			listings.POST("/:id/reviews", hb.Listings.CreateReview)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", hb.Bookings.ListBookings)
			bookings.POST("", hb.Bookings.CreateBooking)
			bookings.GET("/:id", hb.Bookings.GetBooking)
			bookings.DELETE("/:id", hb.Bookings.DeleteBooking)
		}

		users := api.Group("/users")
		{
			users.POST("/register", hb.Users.Register)
			users.POST("/login", hb.Users.Login)

			// Protected routes (require authentication).
			users.Use(middleware.JWTAuth(hb.Tokens))
			users.GET("/me", hb.Users.Me)
		}
	}

	// Payment endpoints keep their historical top-level paths.
	r.POST("/initiate-payment/", hb.Payments.InitiatePayment)
	r.GET("/verify-payment/:tx_ref", hb.Payments.VerifyPayment)
}

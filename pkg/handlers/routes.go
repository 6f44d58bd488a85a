package handlers

import (
	"github.com/gin-gonic/gin"

	"stayspot/pkg/auth"
)

// RegisterRoutes wires the full API surface onto the engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.Use(auth.RestoreUser(h.DB))

	api := r.Group("/api")
	{
		// Sessions and users
		api.POST("/users", h.Signup)
		api.POST("/session", h.Login)
		api.DELETE("/session", h.Logout)
		api.GET("/session", h.CurrentSession)

		// Spots
		api.GET("/spots", h.GetSpots)
		api.GET("/spots/current", auth.RequireAuth(), h.GetCurrentUserSpots)
		api.GET("/spots/:spotId", h.GetSpot)
		api.POST("/spots", auth.RequireAuth(), h.CreateSpot)
		api.PUT("/spots/:spotId", auth.RequireAuth(), h.UpdateSpot)
		api.DELETE("/spots/:spotId", auth.RequireAuth(), h.DeleteSpot)

		// Spot images
		api.POST("/spots/:spotId/images", auth.RequireAuth(), h.AddSpotImage)
		api.DELETE("/spot-images/:imageId", auth.RequireAuth(), h.DeleteSpotImage)

		// Reviews
		api.GET("/spots/:spotId/reviews", h.GetSpotReviews)
		api.POST("/spots/:spotId/reviews", auth.RequireAuth(), h.CreateReview)
		api.GET("/reviews/current", auth.RequireAuth(), h.GetCurrentUserReviews)
		api.GET("/reviews/:reviewId", h.GetReview)
		api.PUT("/reviews/:reviewId", auth.RequireAuth(), h.UpdateReview)
		api.DELETE("/reviews/:reviewId", auth.RequireAuth(), h.DeleteReview)

		// Review images
		api.POST("/reviews/:reviewId/images", auth.RequireAuth(), h.AddReviewImage)
		api.DELETE("/review-images/:imageId", auth.RequireAuth(), h.DeleteReviewImage)

		// Bookings
		api.GET("/bookings/current", auth.RequireAuth(), h.GetCurrentUserBookings)
		api.GET("/spots/:spotId/bookings", auth.RequireAuth(), h.GetSpotBookings)
		api.POST("/spots/:spotId/bookings", auth.RequireAuth(), h.CreateBooking)
		api.PUT("/bookings/:bookingId", auth.RequireAuth(), h.UpdateBooking)
		api.DELETE("/bookings/:bookingId", auth.RequireAuth(), h.DeleteBooking)
	}

	r.GET("/manage/health", h.HealthCheck)
}

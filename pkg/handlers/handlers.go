package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"stayspot/pkg/models"
)

// Handler carries the persistence handle every route needs. The database
// is injected here instead of living in a package-level singleton.
type Handler struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// respondError maps domain errors to their status code and JSON shape.
func (h *Handler) respondError(c *gin.Context, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": verr.Message,
			"errors":  verr.Errors,
		})
		return
	}

	switch {
	case errors.Is(err, models.ErrSpotNotFound),
		errors.Is(err, models.ErrSpotImageNotFound),
		errors.Is(err, models.ErrReviewNotFound),
		errors.Is(err, models.ErrReviewImageNotFound),
		errors.Is(err, models.ErrBookingNotFound),
		errors.Is(err, models.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})

	case errors.Is(err, models.ErrBookingConflict):
		c.JSON(http.StatusForbidden, gin.H{
			"message": err.Error(),
			"errors": gin.H{
				"startDate": "Start date conflicts with an existing booking",
				"endDate":   "End date conflicts with an existing booking",
			},
		})

	case errors.Is(err, models.ErrForbidden),
		errors.Is(err, models.ErrSelfBooking),
		errors.Is(err, models.ErrBookingStarted),
		errors.Is(err, models.ErrTooManyImages):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})

	case errors.Is(err, models.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})

	case errors.Is(err, models.ErrReviewExists):
		// The original API reported a duplicate review as a 500.
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An unexpected error occurred"})
	}
}

// HealthCheck reports database liveness.
func (h *Handler) HealthCheck(c *gin.Context) {
	sqlDB, err := h.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "DOWN",
			"details": "Database ping failed",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}

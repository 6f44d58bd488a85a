package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayspot/pkg/auth"
	"stayspot/pkg/bookings"
	"stayspot/pkg/models"
)

type bookingRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

func invalidDates() *models.ValidationError {
	return models.NewValidationError(map[string]string{
		"startDate": "startDate cannot be in the past",
		"endDate":   "endDate cannot be on or before startDate",
	})
}

func bookingJSON(b *models.Booking) gin.H {
	return gin.H{
		"id":        b.ID,
		"userId":    b.UserID,
		"spotId":    b.SpotID,
		"startDate": b.StartDate.Format(bookings.DateLayout),
		"endDate":   b.EndDate.Format(bookings.DateLayout),
	}
}

// ownerBookingView is the response row the spot owner sees: the full
// booking plus the renter's identity.
type ownerBookingView struct {
	ID        uint   `json:"id"`
	SpotID    uint   `json:"spotId"`
	UserID    uint   `json:"userId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	User      struct {
		ID        uint   `json:"id"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	} `json:"User"`
}

// publicBookingView is what everyone else sees: date ranges only.
type publicBookingView struct {
	SpotID    uint   `json:"spotId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// CreateBooking reserves a date range on a spot for the signed-in user.
func (h *Handler) CreateBooking(c *gin.Context) {
	user, _ := auth.CurrentUser(c)

	var spot models.Spot
	if err := h.DB.First(&spot, "id = ?", c.Param("spotId")).Error; err != nil {
		h.respondError(c, models.ErrSpotNotFound)
		return
	}
	if spot.OwnerID == user.ID {
		h.respondError(c, models.ErrSelfBooking)
		return
	}

	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, invalidDates())
		return
	}
	start, err1 := bookings.ParseDate(req.StartDate)
	end, err2 := bookings.ParseDate(req.EndDate)
	if err1 != nil || err2 != nil {
		h.respondError(c, invalidDates())
		return
	}
	if err := bookings.ValidateRange(start, end); err != nil {
		h.respondError(c, err)
		return
	}

	booking, err := bookings.Create(h.DB, user.ID, spot.ID, start, end)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bookingJSON(booking))
}

// UpdateBooking replaces a booking's date range, renter only, excluding
// the booking itself from the conflict check.
func (h *Handler) UpdateBooking(c *gin.Context) {
	user, _ := auth.CurrentUser(c)

	var booking models.Booking
	if err := h.DB.First(&booking, "id = ?", c.Param("bookingId")).Error; err != nil {
		h.respondError(c, models.ErrBookingNotFound)
		return
	}
	if booking.UserID != user.ID {
		h.respondError(c, models.ErrForbidden)
		return
	}

	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, invalidDates())
		return
	}
	start, err1 := bookings.ParseDate(req.StartDate)
	end, err2 := bookings.ParseDate(req.EndDate)
	if err1 != nil || err2 != nil {
		h.respondError(c, invalidDates())
		return
	}
	if err := bookings.ValidateRange(start, end); err != nil {
		h.respondError(c, err)
		return
	}

	if err := bookings.Update(h.DB, &booking, start, end); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookingJSON(&booking))
}

// DeleteBooking cancels a booking that has not started yet. The renter
// or the spot owner may cancel.
func (h *Handler) DeleteBooking(c *gin.Context) {
	user, _ := auth.CurrentUser(c)

	var booking models.Booking
	if err := h.DB.First(&booking, "id = ?", c.Param("bookingId")).Error; err != nil {
		h.respondError(c, models.ErrBookingNotFound)
		return
	}

	var spot models.Spot
	if err := h.DB.First(&spot, "id = ?", booking.SpotID).Error; err != nil {
		h.respondError(c, models.ErrSpotNotFound)
		return
	}
	if booking.UserID != user.ID && spot.OwnerID != user.ID {
		h.respondError(c, models.ErrForbidden)
		return
	}

	if !booking.StartDate.After(bookings.Today()) {
		h.respondError(c, models.ErrBookingStarted)
		return
	}

	if err := h.DB.Delete(&booking).Error; err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successfully deleted"})
}

// GetCurrentUserBookings lists the signed-in user's bookings with each
// spot's public fields.
func (h *Handler) GetCurrentUserBookings(c *gin.Context) {
	user, _ := auth.CurrentUser(c)

	var userBookings []models.Booking
	if err := h.DB.Where("user_id = ?", user.ID).Find(&userBookings).Error; err != nil {
		h.respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(userBookings))
	for i := range userBookings {
		b := &userBookings[i]
		item := bookingJSON(b)
		var spot models.Spot
		if err := h.DB.First(&spot, b.SpotID).Error; err == nil {
			item["Spot"] = gin.H{
				"id":           spot.ID,
				"ownerId":      spot.OwnerID,
				"address":      spot.Address,
				"city":         spot.City,
				"state":        spot.State,
				"country":      spot.Country,
				"lat":          spot.Lat,
				"lng":          spot.Lng,
				"name":         spot.Name,
				"price":        spot.Price,
				"previewImage": spot.PreviewImage,
			}
		}
		out = append(out, item)
	}
	c.JSON(http.StatusOK, gin.H{"Bookings": out})
}

// GetSpotBookings lists a spot's bookings. The owner sees full rows with
// renter identity; anyone else only sees the blocked date ranges.
func (h *Handler) GetSpotBookings(c *gin.Context) {
	user, _ := auth.CurrentUser(c)

	var spot models.Spot
	if err := h.DB.First(&spot, "id = ?", c.Param("spotId")).Error; err != nil {
		h.respondError(c, models.ErrSpotNotFound)
		return
	}

	var spotBookings []models.Booking
	if err := h.DB.Where("spot_id = ?", spot.ID).Find(&spotBookings).Error; err != nil {
		h.respondError(c, err)
		return
	}

	if spot.OwnerID != user.ID {
		out := make([]publicBookingView, 0, len(spotBookings))
		for _, b := range spotBookings {
			out = append(out, publicBookingView{
				SpotID:    b.SpotID,
				StartDate: b.StartDate.Format(bookings.DateLayout),
				EndDate:   b.EndDate.Format(bookings.DateLayout),
			})
		}
		c.JSON(http.StatusOK, gin.H{"Bookings": out})
		return
	}

	out := make([]ownerBookingView, 0, len(spotBookings))
	for _, b := range spotBookings {
		view := ownerBookingView{
			ID:        b.ID,
			SpotID:    b.SpotID,
			UserID:    b.UserID,
			StartDate: b.StartDate.Format(bookings.DateLayout),
			EndDate:   b.EndDate.Format(bookings.DateLayout),
		}
		var renter models.User
		if err := h.DB.First(&renter, b.UserID).Error; err == nil {
			view.User.ID = renter.ID
			view.User.FirstName = renter.FirstName
			view.User.LastName = renter.LastName
		}
		out = append(out, view)
	}
	c.JSON(http.StatusOK, gin.H{"Bookings": out})
}

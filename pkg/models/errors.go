package models

import "errors"

var (
	ErrUserNotFound        = errors.New("User couldn't be found")
	ErrSpotNotFound        = errors.New("Spot couldn't be found")
	ErrSpotImageNotFound   = errors.New("Spot Image couldn't be found")
	ErrReviewNotFound      = errors.New("Review couldn't be found")
	ErrReviewImageNotFound = errors.New("Review Image couldn't be found")
	ErrBookingNotFound     = errors.New("Booking couldn't be found")
)

var (
	ErrForbidden       = errors.New("Forbidden")
	ErrUnauthenticated = errors.New("Authentication required")
	ErrSelfBooking     = errors.New("You cannot book your own spot")
	ErrBookingStarted  = errors.New("Bookings that have been started can't be deleted")
	ErrBookingConflict = errors.New("Sorry, this spot is already booked for the specified dates")
	ErrReviewExists    = errors.New("User already has a review for this spot")
	ErrTooManyImages   = errors.New("Maximum number of images for this resource was reached")
)

// ValidationError carries field-level messages for a 400 response.
type ValidationError struct {
	Message string
	Errors  map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Message: "Bad Request", Errors: fields}
}

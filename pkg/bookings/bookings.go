// Package bookings holds the reservation rules for spots: date-range
// validation and the overlap check that prevents double-booking.
package bookings

import (
	"database/sql"
	"fmt"
	"time"

	"gorm.io/gorm"

	"stayspot/pkg/models"
)

const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// Today returns the current UTC calendar date at midnight.
func Today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ValidateRange rejects ranges that start in the past or do not end
// strictly after they start.
func ValidateRange(start, end time.Time) error {
	if start.Before(Today()) || !end.After(start) {
		return models.NewValidationError(map[string]string{
			"startDate": "startDate cannot be in the past",
			"endDate":   "endDate cannot be on or before startDate",
		})
	}
	return nil
}

// HasConflict reports whether any booking for the spot overlaps
// [start, end]. Boundaries are inclusive: a booking ending on start or
// starting on end still conflicts, because a rental day is a whole-day
// unit. excludeID, when nonzero, skips the booking being edited.
func HasConflict(tx *gorm.DB, spotID uint, start, end time.Time, excludeID uint) (bool, error) {
	q := tx.Model(&models.Booking{}).
		Where("spot_id = ? AND start_date <= ? AND end_date >= ?", spotID, end, start)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("count conflicting bookings: %w", err)
	}
	return count > 0, nil
}

// Create inserts a booking after the conflict check, both inside one
// serializable transaction so concurrent requests for the same spot
// cannot both pass the check and both insert.
func Create(db *gorm.DB, userID, spotID uint, start, end time.Time) (*models.Booking, error) {
	booking := &models.Booking{
		UserID:    userID,
		SpotID:    spotID,
		StartDate: start,
		EndDate:   end,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		conflict, err := HasConflict(tx, spotID, start, end, 0)
		if err != nil {
			return err
		}
		if conflict {
			return models.ErrBookingConflict
		}
		return tx.Create(booking).Error
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// Update replaces a booking's date range, re-running the conflict check
// with the booking itself excluded, under the same transactional guard
// as Create.
func Update(db *gorm.DB, booking *models.Booking, start, end time.Time) error {
	return db.Transaction(func(tx *gorm.DB) error {
		conflict, err := HasConflict(tx, booking.SpotID, start, end, booking.ID)
		if err != nil {
			return err
		}
		if conflict {
			return models.ErrBookingConflict
		}
		booking.StartDate = start
		booking.EndDate = end
		return tx.Save(booking).Error
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
}

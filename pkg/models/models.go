package models

import (
	"time"
)

type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	FirstName      string `gorm:"size:80;not null" json:"firstName"`
	LastName       string `gorm:"size:80;not null" json:"lastName"`
	Email          string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Username       string `gorm:"size:80;not null;uniqueIndex" json:"username"`
	HashedPassword []byte `gorm:"not null" json:"-"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Spot struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	OwnerID      uint    `gorm:"not null;index" json:"ownerId"`
	Address      string  `gorm:"not null" json:"address"`
	City         string  `gorm:"not null" json:"city"`
	State        string  `gorm:"not null" json:"state"`
	Country      string  `gorm:"not null" json:"country"`
	Lat          float64 `gorm:"not null" json:"lat"`
	Lng          float64 `gorm:"not null" json:"lng"`
	Name         string  `gorm:"size:50;not null" json:"name"`
	Description  string  `gorm:"not null" json:"description"`
	Price        float64 `gorm:"not null" json:"price"`
	AvgRating    float64 `gorm:"default:0" json:"avgRating"`
	PreviewImage string  `json:"previewImage"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Owner      User        `gorm:"foreignKey:OwnerID" json:"-"`
	SpotImages []SpotImage `gorm:"foreignKey:SpotID" json:"-"`
}

type SpotImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	SpotID    uint   `gorm:"not null;index" json:"spotId"`
	URL       string `gorm:"not null" json:"url"`
	Preview   bool   `json:"preview"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Review struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_review_user_spot" json:"userId"`
	SpotID    uint   `gorm:"not null;uniqueIndex:idx_review_user_spot" json:"spotId"`
	Review    string `gorm:"not null" json:"review"`
	Stars     int    `gorm:"not null;check:stars >= 1 AND stars <= 5" json:"stars"`
	CreatedAt time.Time
	UpdatedAt time.Time

	ReviewImages []ReviewImage `gorm:"foreignKey:ReviewID" json:"-"`
}

type ReviewImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ReviewID  uint   `gorm:"not null;index" json:"reviewId"`
	URL       string `gorm:"not null" json:"url"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Booking dates are calendar days stored at midnight UTC.
type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	SpotID    uint      `gorm:"not null;index" json:"spotId"`
	StartDate time.Time `gorm:"not null" json:"startDate"`
	EndDate   time.Time `gorm:"not null" json:"endDate"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

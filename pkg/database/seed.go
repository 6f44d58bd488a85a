package database

import (
	"log"

	"gorm.io/gorm"

	"stayspot/pkg/auth"
	"stayspot/pkg/models"
)

// Seed loads a demo user and spot so a fresh instance is browsable.
// Safe to call repeatedly.
func Seed(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	hashed, err := auth.HashPassword("password123")
	if err != nil {
		log.Printf("Seed skipped: %v", err)
		return
	}

	demo := models.User{
		FirstName:      "Demo",
		LastName:       "Lition",
		Email:          "demo@stayspot.io",
		Username:       "demo-lition",
		HashedPassword: hashed,
	}
	if err := db.Create(&demo).Error; err != nil {
		log.Printf("Seed user failed: %v", err)
		return
	}

	spot := models.Spot{
		OwnerID:     demo.ID,
		Address:     "123 Disney Lane",
		City:        "San Francisco",
		State:       "California",
		Country:     "United States of America",
		Lat:         37.7645358,
		Lng:         -122.4730327,
		Name:        "App Academy",
		Description: "Place where web developers are created",
		Price:       123,
	}
	if err := db.Create(&spot).Error; err != nil {
		log.Printf("Seed spot failed: %v", err)
		return
	}

	log.Println("Demo data seeded")
}

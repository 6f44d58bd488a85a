package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stayspot/pkg/auth"
	"stayspot/pkg/database"
	"stayspot/pkg/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	hashed, err := auth.HashPassword("password123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &models.User{
		FirstName:      "Test",
		LastName:       "User",
		Email:          username + "@example.com",
		Username:       username,
		HashedPassword: hashed,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}

func createTestSpot(t *testing.T, db *gorm.DB, ownerID uint) *models.Spot {
	t.Helper()
	spot := &models.Spot{
		OwnerID:     ownerID,
		Address:     "123 Test St",
		City:        "Testville",
		State:       "TS",
		Country:     "Testland",
		Lat:         45.0,
		Lng:         -120.0,
		Name:        "Test Spot",
		Description: "A spot for tests",
		Price:       100,
	}
	if err := db.Create(spot).Error; err != nil {
		t.Fatalf("create test spot: %v", err)
	}
	return spot
}

func createTestBooking(t *testing.T, db *gorm.DB, userID, spotID uint, start, end time.Time) *models.Booking {
	t.Helper()
	booking := &models.Booking{
		UserID:    userID,
		SpotID:    spotID,
		StartDate: start,
		EndDate:   end,
	}
	if err := db.Create(booking).Error; err != nil {
		t.Fatalf("create test booking: %v", err)
	}
	return booking
}

func day(offset int) time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

// testRequest builds a gin test context with an optional JSON body,
// signed-in user and route params.
func testRequest(method, path string, body interface{}, user *models.User, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	c.Request = httptest.NewRequest(method, path, &buf)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	if user != nil {
		auth.SetCurrentUser(c, user)
	}
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return out
}

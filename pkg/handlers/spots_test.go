package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"stayspot/pkg/models"
)

func validSpotBody() map[string]interface{} {
	return map[string]interface{}{
		"address":     "456 New St",
		"city":        "Newtown",
		"state":       "NT",
		"country":     "Newland",
		"lat":         10.5,
		"lng":         20.5,
		"name":        "New Spot",
		"description": "Brand new",
		"price":       250.0,
	}
}

func TestCreateSpot(t *testing.T) {
	db := setupTestDB(t)
	h := New(db)
	user := createTestUser(t, db, "host")

	c, w := testRequest("POST", "/api/spots", validSpotBody(), user, nil)

	h.CreateSpot(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var spot models.Spot
	db.First(&spot, "name = ?", "New Spot")
	assert.Equal(t, user.ID, spot.OwnerID)
	assert.Equal(t, 250.0, spot.Price)
}

func TestCreateSpotValidation(t *testing.T) {
	db := setupTestDB(t)
	h := New(db)
	user := createTestUser(t, db, "host")

	body := validSpotBody()
	body["lat"] = 95.0
	body["price"] = -5.0
	body["name"] = ""
	c, w := testRequest("POST", "/api/spots", body, user, nil)

	h.CreateSpot(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeBody(t, w)
	errs := resp["errors"].(map[string]interface{})
	assert.Equal(t, "Latitude must be within -90 and 90", errs["lat"])
	assert.Equal(t, "Price per day must be a positive number", errs["price"])
	assert.Contains(t, errs, "name")
}

func TestGetSpot(t *testing.T) {
	db := setupTestDB(t)
	h := New(db)
	owner := createTestUser(t, db, "host")
	spot := createTestSpot(t, db, owner.ID)
	db.Create(&models.Review{UserID: owner.ID, SpotID: spot.ID, Review: "Nice", Stars: 4})

	c, w := testRequest("GET", "/api/spots/1", nil, nil, spotParam(spot.ID))

	h.GetSpot(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "Test Spot", resp["name"])
	assert.Equal(t, float64(1), resp["numReviews"])
	assert.Equal(t, float64(4), resp["avgStarRating"])
	ownerData := resp["Owner"].(map[string]interface{})
	assert.Equal(t, "Test", ownerData["firstName"])
}

func TestGetSpotNotFound(t *testing.T) {
	db := setupTestDB(t)
	h := New(db)

	c, w := testRequest("GET", "/api/spots/999", nil, nil, spotParam(999))

	h.GetSpot(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "Spot couldn't be found", resp["message"])
}

func TestGetSpotsFilters(t *testing.T) {
	db := setupTestDB(t)
	h := New(db)
	owner := createTestUser(t, db, "host")
	createTestSpot(t, db, owner.ID) // price 100
	expensive := createTestSpot(t, db, owner.ID)
	db.Model(expensive).Update("price", 500)

	c, w := testRequest("GET", "/api/spots?minPrice=200", nil, nil, nil)

	h.GetSpots(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	items := resp["Spots"].([]interface{})
	assert.Equal(t, 1, len(items))
}

func TestGetSpotsInvalidQuery(t *testing.T) {
	db := setupTestDB(t)
	h := New(db)

	c, w := testRequest("GET", "/api/spots?minPrice=abc&page=0", nil, nil, nil)

	h.GetSpots(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeBody(t, w)
	errs := resp["errors"].(map[string]interface{})
	assert.Equal(t, "must be a number", errs["minPrice"])
	assert.Equal(t, "must be a positive integer", errs["page"])
}

func TestUpdateSpotNotOwner(t *testing.T) {
	db := setupTestDB(t)
	h := New(db)
	owner := createTestUser(t, db, "host")
	stranger := createTestUser(t, db, "stranger")
	spot := createTestSpot(t, db, owner.ID)

	c, w := testRequest("PUT", "/api/spots/1", validSpotBody(), stranger, spotParam(spot.ID))

	h.UpdateSpot(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "Forbidden", resp["message"])
}

func TestUpdateSpot(t *testing.T) {
	db := setupTestDB(t)
	h := New(db)
	owner := createTestUser(t, db, "host")
	spot := createTestSpot(t, db, owner.ID)

	body := validSpotBody()
	body["name"] = "Renamed Spot"
	c, w := testRequest("PUT", "/api/spots/1", body, owner, spotParam(spot.ID))

	h.UpdateSpot(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var stored models.Spot
	db.First(&stored, spot.ID)
	assert.Equal(t, "Renamed Spot", stored.Name)
}

func TestDeleteSpot(t *testing.T) {
	db := setupTestDB(t)
	h := New(db)
	owner := createTestUser(t, db, "host")
	spot := createTestSpot(t, db, owner.ID)

	c, w := testRequest("DELETE", "/api/spots/1", nil, owner, spotParam(spot.ID))

	h.DeleteSpot(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var count int64
	db.Model(&models.Spot{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestGetCurrentUserSpots(t *testing.T) {
	db := setupTestDB(t)
	h := New(db)
	owner := createTestUser(t, db, "host")
	other := createTestUser(t, db, "other")
	createTestSpot(t, db, owner.ID)
	createTestSpot(t, db, other.ID)

	c, w := testRequest("GET", "/api/spots/current", nil, owner, nil)

	h.GetCurrentUserSpots(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	items := resp["Spots"].([]interface{})
	assert.Equal(t, 1, len(items))
}

func TestAddSpotImage(t *testing.T) {
	db := setupTestDB(t)
	h := New(db)
	owner := createTestUser(t, db, "host")
	spot := createTestSpot(t, db, owner.ID)

	body := map[string]interface{}{"url": "https://img.example/1.jpg", "preview": true}
	c, w := testRequest("POST", "/api/spots/1/images", body, owner, spotParam(spot.ID))

	h.AddSpotImage(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var stored models.Spot
	db.First(&stored, spot.ID)
	assert.Equal(t, "https://img.example/1.jpg", stored.PreviewImage)
}

func TestAddSpotImageNotOwner(t *testing.T) {
	db := setupTestDB(t)
	h := New(db)
	owner := createTestUser(t, db, "host")
	stranger := createTestUser(t, db, "stranger")
	spot := createTestSpot(t, db, owner.ID)

	body := map[string]interface{}{"url": "https://img.example/1.jpg"}
	c, w := testRequest("POST", "/api/spots/1/images", body, stranger, spotParam(spot.ID))

	h.AddSpotImage(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteSpotImage(t *testing.T) {
	db := setupTestDB(t)
	h := New(db)
	owner := createTestUser(t, db, "host")
	spot := createTestSpot(t, db, owner.ID)
	image := models.SpotImage{SpotID: spot.ID, URL: "https://img.example/1.jpg"}
	db.Create(&image)

	c, w := testRequest("DELETE", "/api/spot-images/1", nil, owner,
		gin.Params{gin.Param{Key: "imageId", Value: "1"}})

	h.DeleteSpotImage(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

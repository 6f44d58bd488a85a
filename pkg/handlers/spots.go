package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stayspot/pkg/auth"
	"stayspot/pkg/models"
)

type spotRequest struct {
	Address     string  `json:"address"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Country     string  `json:"country"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

func validateSpot(req *spotRequest) map[string]string {
	errs := map[string]string{}
	if req.Address == "" {
		errs["address"] = "Street address is required"
	}
	if req.City == "" {
		errs["city"] = "City is required"
	}
	if req.State == "" {
		errs["state"] = "State is required"
	}
	if req.Country == "" {
		errs["country"] = "Country is required"
	}
	if req.Lat < -90 || req.Lat > 90 {
		errs["lat"] = "Latitude must be within -90 and 90"
	}
	if req.Lng < -180 || req.Lng > 180 {
		errs["lng"] = "Longitude must be within -180 and 180"
	}
	if len(req.Name) < 1 || len(req.Name) > 50 {
		errs["name"] = "Name is required and must be less than 50 characters"
	}
	if req.Description == "" {
		errs["description"] = "Description is required"
	}
	if req.Price <= 0 {
		errs["price"] = "Price per day must be a positive number"
	}
	return errs
}

// GetSpots lists spots with optional pagination and lat/lng/price filters.
func (h *Handler) GetSpots(c *gin.Context) {
	errs := map[string]string{}

	page := queryInt(c, "page", errs, "must be a positive integer")
	size := queryInt(c, "size", errs, "must be a positive integer")

	filters := map[string]float64{}
	for _, key := range []string{"minLat", "maxLat", "minLng", "maxLng", "minPrice", "maxPrice"} {
		if raw := c.Query(key); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				errs[key] = "must be a number"
				continue
			}
			filters[key] = v
		}
	}

	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid query parameters.", "errors": errs})
		return
	}

	q := h.DB.Model(&models.Spot{})
	if v, ok := filters["minLat"]; ok {
		q = q.Where("lat >= ?", v)
	}
	if v, ok := filters["maxLat"]; ok {
		q = q.Where("lat <= ?", v)
	}
	if v, ok := filters["minLng"]; ok {
		q = q.Where("lng >= ?", v)
	}
	if v, ok := filters["maxLng"]; ok {
		q = q.Where("lng <= ?", v)
	}
	if v, ok := filters["minPrice"]; ok {
		q = q.Where("price >= ?", v)
	}
	if v, ok := filters["maxPrice"]; ok {
		q = q.Where("price <= ?", v)
	}

	if page > 0 && size > 0 {
		q = q.Limit(size).Offset((page - 1) * size)
	} else {
		page, size = 1, 20
	}

	var spots []models.Spot
	if err := q.Find(&spots).Error; err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"Spots": spots, "page": page, "size": size})
}

func queryInt(c *gin.Context, key string, errs map[string]string, msg string) int {
	raw := c.Query(key)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		errs[key] = msg
		return 0
	}
	return v
}

// GetCurrentUserSpots lists the spots owned by the signed-in user.
func (h *Handler) GetCurrentUserSpots(c *gin.Context) {
	user, _ := auth.CurrentUser(c)

	var spots []models.Spot
	if err := h.DB.Where("owner_id = ?", user.ID).Find(&spots).Error; err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"Spots": spots})
}

// GetSpot returns one spot with its owner, images and review aggregates.
func (h *Handler) GetSpot(c *gin.Context) {
	var spot models.Spot
	err := h.DB.Preload("Owner").Preload("SpotImages").
		First(&spot, "id = ?", c.Param("spotId")).Error
	if err != nil {
		h.respondError(c, models.ErrSpotNotFound)
		return
	}

	var numReviews int64
	var avgStars float64
	h.DB.Model(&models.Review{}).Where("spot_id = ?", spot.ID).Count(&numReviews)
	if numReviews > 0 {
		h.DB.Model(&models.Review{}).Where("spot_id = ?", spot.ID).
			Select("AVG(stars)").Scan(&avgStars)
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            spot.ID,
		"ownerId":       spot.OwnerID,
		"address":       spot.Address,
		"city":          spot.City,
		"state":         spot.State,
		"country":       spot.Country,
		"lat":           spot.Lat,
		"lng":           spot.Lng,
		"name":          spot.Name,
		"description":   spot.Description,
		"price":         spot.Price,
		"previewImage":  spot.PreviewImage,
		"avgStarRating": avgStars,
		"numReviews":    numReviews,
		"Owner": gin.H{
			"id":        spot.Owner.ID,
			"firstName": spot.Owner.FirstName,
			"lastName":  spot.Owner.LastName,
		},
		"SpotImages": spot.SpotImages,
	})
}

// CreateSpot creates a listing owned by the signed-in user.
func (h *Handler) CreateSpot(c *gin.Context) {
	user, _ := auth.CurrentUser(c)

	var req spotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Bad Request", "errors": gin.H{"body": err.Error()}})
		return
	}
	if errs := validateSpot(&req); len(errs) > 0 {
		h.respondError(c, models.NewValidationError(errs))
		return
	}

	spot := models.Spot{
		OwnerID:     user.ID,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
		Lat:         req.Lat,
		Lng:         req.Lng,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
	if err := h.DB.Create(&spot).Error; err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, spot)
}

// UpdateSpot replaces a spot's fields, owner only.
func (h *Handler) UpdateSpot(c *gin.Context) {
	user, _ := auth.CurrentUser(c)

	var spot models.Spot
	if err := h.DB.First(&spot, "id = ?", c.Param("spotId")).Error; err != nil {
		h.respondError(c, models.ErrSpotNotFound)
		return
	}
	if spot.OwnerID != user.ID {
		h.respondError(c, models.ErrForbidden)
		return
	}

	var req spotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Bad Request", "errors": gin.H{"body": err.Error()}})
		return
	}
	if errs := validateSpot(&req); len(errs) > 0 {
		h.respondError(c, models.NewValidationError(errs))
		return
	}

	spot.Address = req.Address
	spot.City = req.City
	spot.State = req.State
	spot.Country = req.Country
	spot.Lat = req.Lat
	spot.Lng = req.Lng
	spot.Name = req.Name
	spot.Description = req.Description
	spot.Price = req.Price

	if err := h.DB.Save(&spot).Error; err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, spot)
}

// DeleteSpot removes a spot, owner only.
func (h *Handler) DeleteSpot(c *gin.Context) {
	user, _ := auth.CurrentUser(c)

	var spot models.Spot
	if err := h.DB.First(&spot, "id = ?", c.Param("spotId")).Error; err != nil {
		h.respondError(c, models.ErrSpotNotFound)
		return
	}
	if spot.OwnerID != user.ID {
		h.respondError(c, models.ErrForbidden)
		return
	}

	if err := h.DB.Delete(&spot).Error; err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successfully deleted"})
}

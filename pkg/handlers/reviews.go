package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayspot/pkg/auth"
	"stayspot/pkg/models"
)

type reviewRequest struct {
	Review string `json:"review"`
	Stars  int    `json:"stars"`
}

func validateReview(req *reviewRequest) map[string]string {
	errs := map[string]string{}
	if req.Review == "" {
		errs["review"] = "Review text is required"
	}
	if req.Stars < 1 || req.Stars > 5 {
		errs["stars"] = "Stars must be an integer from 1 to 5"
	}
	return errs
}

func reviewJSON(h *Handler, review *models.Review) gin.H {
	var user models.User
	h.DB.First(&user, review.UserID)
	var images []models.ReviewImage
	h.DB.Where("review_id = ?", review.ID).Find(&images)

	return gin.H{
		"id":     review.ID,
		"userId": review.UserID,
		"spotId": review.SpotID,
		"review": review.Review,
		"stars":  review.Stars,
		"User": gin.H{
			"id":        user.ID,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
		},
		"ReviewImages": images,
	}
}

// GetSpotReviews lists the reviews for a spot with author and images.
func (h *Handler) GetSpotReviews(c *gin.Context) {
	var spot models.Spot
	if err := h.DB.First(&spot, "id = ?", c.Param("spotId")).Error; err != nil {
		h.respondError(c, models.ErrSpotNotFound)
		return
	}

	var reviews []models.Review
	if err := h.DB.Where("spot_id = ?", spot.ID).Find(&reviews).Error; err != nil {
		h.respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(reviews))
	for i := range reviews {
		out = append(out, reviewJSON(h, &reviews[i]))
	}
	c.JSON(http.StatusOK, gin.H{"Reviews": out})
}

// CreateReview adds a review to a spot, one per user per spot.
func (h *Handler) CreateReview(c *gin.Context) {
	user, _ := auth.CurrentUser(c)

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Bad Request", "errors": gin.H{"body": err.Error()}})
		return
	}
	if errs := validateReview(&req); len(errs) > 0 {
		h.respondError(c, models.NewValidationError(errs))
		return
	}

	var spot models.Spot
	if err := h.DB.First(&spot, "id = ?", c.Param("spotId")).Error; err != nil {
		h.respondError(c, models.ErrSpotNotFound)
		return
	}

	var existing models.Review
	if err := h.DB.Where("user_id = ? AND spot_id = ?", user.ID, spot.ID).First(&existing).Error; err == nil {
		h.respondError(c, models.ErrReviewExists)
		return
	}

	review := models.Review{
		UserID: user.ID,
		SpotID: spot.ID,
		Review: req.Review,
		Stars:  req.Stars,
	}
	if err := h.DB.Create(&review).Error; err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// GetCurrentUserReviews lists the signed-in user's reviews with their
// spot's public fields.
func (h *Handler) GetCurrentUserReviews(c *gin.Context) {
	user, _ := auth.CurrentUser(c)

	var reviews []models.Review
	if err := h.DB.Where("user_id = ?", user.ID).Find(&reviews).Error; err != nil {
		h.respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(reviews))
	for i := range reviews {
		item := reviewJSON(h, &reviews[i])
		var spot models.Spot
		if err := h.DB.First(&spot, reviews[i].SpotID).Error; err == nil {
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
	c.JSON(http.StatusOK, gin.H{"Reviews": out})
}

// GetReview returns a single review.
func (h *Handler) GetReview(c *gin.Context) {
	var review models.Review
	if err := h.DB.First(&review, "id = ?", c.Param("reviewId")).Error; err != nil {
		h.respondError(c, models.ErrReviewNotFound)
		return
	}
	c.JSON(http.StatusOK, reviewJSON(h, &review))
}

// UpdateReview edits a review, author only.
func (h *Handler) UpdateReview(c *gin.Context) {
	user, _ := auth.CurrentUser(c)

	var review models.Review
	if err := h.DB.First(&review, "id = ?", c.Param("reviewId")).Error; err != nil {
		h.respondError(c, models.ErrReviewNotFound)
		return
	}
	if review.UserID != user.ID {
		h.respondError(c, models.ErrForbidden)
		return
	}

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Bad Request", "errors": gin.H{"body": err.Error()}})
		return
	}
	if errs := validateReview(&req); len(errs) > 0 {
		h.respondError(c, models.NewValidationError(errs))
		return
	}

	review.Review = req.Review
	review.Stars = req.Stars
	if err := h.DB.Save(&review).Error; err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// DeleteReview removes a review, author only.
func (h *Handler) DeleteReview(c *gin.Context) {
	user, _ := auth.CurrentUser(c)

	var review models.Review
	if err := h.DB.First(&review, "id = ?", c.Param("reviewId")).Error; err != nil {
		h.respondError(c, models.ErrReviewNotFound)
		return
	}
	if review.UserID != user.ID {
		h.respondError(c, models.ErrForbidden)
		return
	}

	if err := h.DB.Delete(&review).Error; err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successfully deleted"})
}

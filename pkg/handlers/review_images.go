package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayspot/pkg/auth"
	"stayspot/pkg/models"
)

const maxReviewImages = 10

type reviewImageRequest struct {
	URL string `json:"url" binding:"required"`
}

// AddReviewImage attaches an image to a review, author only, capped at
// ten images per review.
func (h *Handler) AddReviewImage(c *gin.Context) {
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

	var count int64
	if err := h.DB.Model(&models.ReviewImage{}).Where("review_id = ?", review.ID).Count(&count).Error; err != nil {
		h.respondError(c, err)
		return
	}
	if count >= maxReviewImages {
		h.respondError(c, models.ErrTooManyImages)
		return
	}

	var req reviewImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Bad Request", "errors": gin.H{"url": "Image url is required"}})
		return
	}

	image := models.ReviewImage{ReviewID: review.ID, URL: req.URL}
	if err := h.DB.Create(&image).Error; err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, image)
}

// DeleteReviewImage removes a review image; only the review author may.
func (h *Handler) DeleteReviewImage(c *gin.Context) {
	user, _ := auth.CurrentUser(c)

	var image models.ReviewImage
	if err := h.DB.First(&image, "id = ?", c.Param("imageId")).Error; err != nil {
		h.respondError(c, models.ErrReviewImageNotFound)
		return
	}

	var review models.Review
	if err := h.DB.First(&review, "id = ?", image.ReviewID).Error; err != nil {
		h.respondError(c, models.ErrReviewNotFound)
		return
	}
	if review.UserID != user.ID {
		h.respondError(c, models.ErrForbidden)
		return
	}

	if err := h.DB.Delete(&image).Error; err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successfully deleted"})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayspot/pkg/auth"
	"stayspot/pkg/models"
)

type spotImageRequest struct {
	URL     string `json:"url" binding:"required"`
	Preview bool   `json:"preview"`
}

// AddSpotImage attaches an image to a spot, owner only.
func (h *Handler) AddSpotImage(c *gin.Context) {
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

	var req spotImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Bad Request", "errors": gin.H{"url": "Image url is required"}})
		return
	}

	image := models.SpotImage{SpotID: spot.ID, URL: req.URL, Preview: req.Preview}
	if err := h.DB.Create(&image).Error; err != nil {
		h.respondError(c, err)
		return
	}

	if req.Preview {
		spot.PreviewImage = req.URL
		h.DB.Save(&spot)
	}

	c.JSON(http.StatusCreated, image)
}

// DeleteSpotImage removes a spot image; only the spot owner may do it.
func (h *Handler) DeleteSpotImage(c *gin.Context) {
	user, _ := auth.CurrentUser(c)

	var image models.SpotImage
	if err := h.DB.First(&image, "id = ?", c.Param("imageId")).Error; err != nil {
		h.respondError(c, models.ErrSpotImageNotFound)
		return
	}

	var spot models.Spot
	if err := h.DB.First(&spot, "id = ?", image.SpotID).Error; err != nil {
		h.respondError(c, models.ErrSpotNotFound)
		return
	}
	if spot.OwnerID != user.ID {
		h.respondError(c, models.ErrForbidden)
		return
	}

	if err := h.DB.Delete(&image).Error; err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successfully deleted"})
}

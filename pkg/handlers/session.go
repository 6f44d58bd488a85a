package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"stayspot/pkg/auth"
	"stayspot/pkg/models"
)

type loginRequest struct {
	Credential string `json:"credential" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

func (h *Handler) setTokenCookie(c *gin.Context, userID uint) error {
	token, err := auth.IssueToken(userID)
	if err != nil {
		return err
	}
	secure := os.Getenv("APP_ENV") == "production"
	c.SetCookie("token", token, 7*24*3600, "/", "", secure, true)
	return nil
}

// Login signs a user in by email or username.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Bad Request", "errors": gin.H{"body": err.Error()}})
		return
	}

	var user models.User
	err := h.DB.Where("email = ? OR username = ?", req.Credential, req.Credential).First(&user).Error
	if err != nil || !auth.CheckPassword(user.HashedPassword, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": "Invalid credentials",
			"errors":  []string{"The provided credentials were invalid."},
		})
		return
	}

	if err := h.setTokenCookie(c, user.ID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": safeUser(&user)})
}

// Logout clears the session cookie.
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}

// CurrentSession returns the restored user, or null when signed out.
func (h *Handler) CurrentSession(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": safeUser(user)})
}

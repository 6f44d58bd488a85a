package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"stayspot/pkg/auth"
	"stayspot/pkg/models"
)

type signupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

func validateSignup(req *signupRequest) map[string]string {
	errs := map[string]string{}
	if req.FirstName == "" {
		errs["firstName"] = "First name is required."
	}
	if req.LastName == "" {
		errs["lastName"] = "Last name is required."
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		errs["email"] = "Please provide a valid email."
	}
	if len(req.Username) < 4 {
		errs["username"] = "Please provide a username with at least 4 characters."
	} else if strings.Contains(req.Username, "@") {
		errs["username"] = "Username cannot be an email."
	}
	if len(req.Password) < 6 {
		errs["password"] = "Password must be 6 characters or more."
	}
	return errs
}

func safeUser(u *models.User) gin.H {
	return gin.H{
		"id":        u.ID,
		"firstName": u.FirstName,
		"lastName":  u.LastName,
		"email":     u.Email,
		"username":  u.Username,
	}
}

// Signup registers a new user and signs them in.
func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Bad Request", "errors": gin.H{"body": err.Error()}})
		return
	}

	if errs := validateSignup(&req); len(errs) > 0 {
		h.respondError(c, models.NewValidationError(errs))
		return
	}

	var existing models.User
	err := h.DB.Where("email = ? OR username = ?", req.Email, req.Username).First(&existing).Error
	if err == nil {
		errs := map[string]string{}
		if existing.Email == req.Email {
			errs["email"] = "email must be unique"
		}
		if existing.Username == req.Username {
			errs["username"] = "username must be unique"
		}
		// Preserved from the original API: duplicate signup is a 500.
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "User already exists with the specified email or username",
			"errors":  errs,
		})
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	user := models.User{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Username:       req.Username,
		HashedPassword: hashed,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.setTokenCookie(c, user.ID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": safeUser(&user)})
}

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"stayspot/pkg/auth"
	"stayspot/pkg/models"
)

func TestSignup(t *testing.T) {
	db := setupTestDB(t)
	h := New(db)

	body := map[string]string{
		"firstName": "New",
		"lastName":  "User",
		"email":     "new@example.com",
		"username":  "newuser",
		"password":  "password123",
	}
	c, w := testRequest("POST", "/api/users", body, nil, nil)

	h.Signup(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeBody(t, w)
	userData := resp["user"].(map[string]interface{})
	assert.Equal(t, "newuser", userData["username"])
	assert.NotContains(t, userData, "hashedPassword")
	assert.Contains(t, w.Header().Get("Set-Cookie"), "token=")

	var stored models.User
	db.First(&stored, "username = ?", "newuser")
	assert.True(t, auth.CheckPassword(stored.HashedPassword, "password123"))
}

func TestSignupValidation(t *testing.T) {
	db := setupTestDB(t)
	h := New(db)

	body := map[string]string{
		"firstName": "",
		"lastName":  "User",
		"email":     "not-an-email",
		"username":  "abc",
		"password":  "short",
	}
	c, w := testRequest("POST", "/api/users", body, nil, nil)

	h.Signup(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeBody(t, w)
	errs := resp["errors"].(map[string]interface{})
	assert.Contains(t, errs, "firstName")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "username")
	assert.Contains(t, errs, "password")
}

func TestSignupDuplicate(t *testing.T) {
	db := setupTestDB(t)
	h := New(db)
	createTestUser(t, db, "taken")

	body := map[string]string{
		"firstName": "New",
		"lastName":  "User",
		"email":     "taken@example.com",
		"username":  "someone",
		"password":  "password123",
	}
	c, w := testRequest("POST", "/api/users", body, nil, nil)

	h.Signup(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "User already exists with the specified email or username", resp["message"])
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	h := New(db)
	user := createTestUser(t, db, "loginuser")

	body := map[string]string{"credential": user.Email, "password": "password123"}
	c, w := testRequest("POST", "/api/session", body, nil, nil)

	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	userData := resp["user"].(map[string]interface{})
	assert.Equal(t, "loginuser", userData["username"])
	assert.Contains(t, w.Header().Get("Set-Cookie"), "token=")
}

func TestLoginByUsername(t *testing.T) {
	db := setupTestDB(t)
	h := New(db)
	createTestUser(t, db, "loginuser")

	body := map[string]string{"credential": "loginuser", "password": "password123"}
	c, w := testRequest("POST", "/api/session", body, nil, nil)

	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	h := New(db)
	user := createTestUser(t, db, "loginuser")

	body := map[string]string{"credential": user.Email, "password": "wrong"}
	c, w := testRequest("POST", "/api/session", body, nil, nil)

	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "Invalid credentials", resp["message"])
}

func TestCurrentSessionSignedOut(t *testing.T) {
	db := setupTestDB(t)
	h := New(db)

	c, w := testRequest("GET", "/api/session", nil, nil, nil)

	h.CurrentSession(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Nil(t, resp["user"])
}

// Router-level test: a bearer token issued at login restores the session
// through the middleware chain.
func TestSessionRestoreThroughRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	user := createTestUser(t, db, "roundtrip")

	r := gin.New()
	h := New(db)
	h.RegisterRoutes(r)

	token, err := auth.IssueToken(user.ID)
	assert.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/session", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	userData := resp["user"].(map[string]interface{})
	assert.Equal(t, "roundtrip", userData["username"])
}

// Router-level test: protected routes reject anonymous requests.
func TestRequireAuthThroughRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)

	r := gin.New()
	h := New(db)
	h.RegisterRoutes(r)

	body, _ := json.Marshal(map[string]string{"startDate": "2030-01-01", "endDate": "2030-01-05"})
	req := httptest.NewRequest("POST", "/api/spots/1/bookings", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "Authentication required", resp["message"])
}

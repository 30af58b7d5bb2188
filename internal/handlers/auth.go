package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/alumconnect/alumni-portal/backend/internal/models"
	"github.com/alumconnect/alumni-portal/backend/internal/store"
)

type AuthHandler struct {
	alumni store.AlumniStore
}

func NewAuthHandler(alumni store.AlumniStore) *AuthHandler {
	return &AuthHandler{alumni: alumni}
}

// Login checks alumni credentials and issues a session token
func (h *AuthHandler) Login(c *gin.Context) {
	var input models.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	alumni, err := h.alumni.FindByEmail(c.Request.Context(), input.Email)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server failure"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(alumni.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": alumni.ID.Hex(),
		"name":    alumni.Name,
		"role":    alumni.Role,
		"exp":     time.Now().Add(72 * time.Hour).Unix(), // 72 hours
	})

	tokenString, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server failure"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   tokenString,
		"user": gin.H{
			"id":    alumni.ID.Hex(),
			"name":  alumni.Name,
			"email": alumni.Email,
			"role":  alumni.Role,
		},
	})
}

// GetMe returns the current authenticated alumni
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	alumni, err := h.alumni.FindByID(c.Request.Context(), userID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server failure"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    alumni.ID.Hex(),
		"name":  alumni.Name,
		"email": alumni.Email,
		"role":  alumni.Role,
	})
}

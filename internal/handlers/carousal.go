package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumconnect/alumni-portal/backend/internal/models"
	"github.com/alumconnect/alumni-portal/backend/internal/store"
)

type CarousalHandler struct {
	carousal store.CarousalStore
}

func NewCarousalHandler(carousal store.CarousalStore) *CarousalHandler {
	return &CarousalHandler{carousal: carousal}
}

// CreateCarousal adds a banner item (PROTECTED - requires authentication).
// Unlike posts there is no alumni lookup: the author name comes straight from
// the form, only the id is taken from the session.
func (h *CarousalHandler) CreateCarousal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	image, status, msg := readImage(c)
	if image == nil {
		c.JSON(status, gin.H{"message": msg})
		return
	}

	item := models.Carousal{
		Title:  c.PostForm("title"),
		Date:   c.PostForm("date"),
		Author: models.Author{ID: userID, Name: c.PostForm("author")},
		Image:  *image,
	}

	id, err := h.carousal.Insert(c.Request.Context(), &item)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server failure"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post created successfully", "id": id.Hex()})
}

// GetCarousal returns the 5 most recent banner items, newest first
func (h *CarousalHandler) GetCarousal(c *gin.Context) {
	items, err := h.carousal.Latest(c.Request.Context(), latestLimit)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server failure"})
		return
	}

	responses := make([]gin.H, 0, len(items))
	for _, item := range items {
		responses = append(responses, gin.H{
			"id":     item.ID.Hex(),
			"author": item.Author,
			"title":  item.Title,
			"image":  item.Image,
			"date":   item.Date,
		})
	}

	c.JSON(http.StatusOK, responses)
}

// DeleteCarousal removes a banner item by id. Any authenticated user may
// delete any item; there is no ownership check on this path.
func (h *CarousalHandler) DeleteCarousal(c *gin.Context) {
	var input struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Post id is required"})
		return
	}

	err := h.carousal.Delete(c.Request.Context(), input.ID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		return
	}
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server failure"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

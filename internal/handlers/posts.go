package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumconnect/alumni-portal/backend/internal/models"
	"github.com/alumconnect/alumni-portal/backend/internal/store"
)

// latestLimit caps the newest-first listings.
const latestLimit = 5

type PostHandler struct {
	posts  store.PostStore
	alumni store.AlumniStore
}

func NewPostHandler(posts store.PostStore, alumni store.AlumniStore) *PostHandler {
	return &PostHandler{posts: posts, alumni: alumni}
}

// CreatePost creates a new image post (PROTECTED - requires authentication)
func (h *PostHandler) CreatePost(c *gin.Context) {
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

	image, status, msg := readImage(c)
	if image == nil {
		c.JSON(status, gin.H{"message": msg})
		return
	}

	post := models.Post{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Links:       c.PostFormArray("links"),
		Hashtag:     c.PostFormArray("hashtag"),
		Date:        c.PostForm("date"),
		Author:      models.Author{ID: userID, Name: alumni.Name},
		Image:       *image,
	}

	id, err := h.posts.Insert(c.Request.Context(), &post)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server failure"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post created successfully", "id": id.Hex()})
}

// GetLatestPosts returns the 5 most recent posts, newest first
func (h *PostHandler) GetLatestPosts(c *gin.Context) {
	posts, err := h.posts.Latest(c.Request.Context(), latestLimit)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server failure"})
		return
	}

	// DON'T marshal models.Post directly — build each response manually
	responses := make([]gin.H, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, gin.H{
			"id":     post.ID.Hex(),
			"author": post.Author,
			"title":  post.Title,
			"image":  post.Image,
			"date":   post.Date,
			"views":  post.Views,
		})
	}

	c.JSON(http.StatusOK, responses)
}

// GetPost returns a single post by ID. Every fetch counts as a view; the
// increment happens atomically in the store, so the returned counter already
// includes this read.
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.posts.GetAndBumpViews(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		return
	}
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server failure"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// SearchPosts performs a case-insensitive prefix search over title,
// description, author name and hashtags; supplied fields are OR-ed.
func (h *PostHandler) SearchPosts(c *gin.Context) {
	filter := store.SearchFilter{
		Title:       c.Query("title"),
		Description: c.Query("description"),
		Author:      c.Query("author"),
		Hashtag:     c.Query("hashtag"),
	}

	posts, err := h.posts.Search(c.Request.Context(), filter)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server failure"})
		return
	}

	responses := make([]gin.H, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, gin.H{
			"id":      post.ID.Hex(),
			"author":  post.Author,
			"title":   post.Title,
			"date":    post.Date,
			"views":   post.Views,
			"hashtag": post.Hashtag,
		})
	}

	c.JSON(http.StatusOK, responses)
}

// DeletePost deletes a post (PROTECTED - requires ownership)
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var input struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Post id is required"})
		return
	}

	author, err := h.posts.AuthorOf(c.Request.Context(), input.ID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		return
	}
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server failure"})
		return
	}

	if author.ID != userID {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	if err := h.posts.Delete(c.Request.Context(), input.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server failure"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// DeletePostByModerator deletes any post regardless of author. Authorization
// lives entirely in the moderator middleware in front of this route.
func (h *PostHandler) DeletePostByModerator(c *gin.Context) {
	var input struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Post id is required"})
		return
	}

	err := h.posts.Delete(c.Request.Context(), input.ID)
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

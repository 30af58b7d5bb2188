package handlers

import (
	"encoding/base64"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumconnect/alumni-portal/backend/internal/models"
)

const maxImageBytes = 1_000_000

// readImage validates and loads the uploaded "image" form file. Checks run in
// a fixed order: presence, size, content type. On failure it returns a nil
// image plus the status and message to send.
func readImage(c *gin.Context) (*models.Image, int, string) {
	file, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, http.StatusBadRequest, "Image not found"
	}
	if err != nil {
		log.Println(err)
		return nil, http.StatusInternalServerError, "Server error"
	}

	if file.Size > maxImageBytes {
		return nil, http.StatusBadRequest, "Image size is large than 1mb"
	}

	// Same trust model as the upload middleware the frontend talks to: the
	// declared content type of the part, not a sniff of the bytes.
	contentType := file.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" {
		return nil, http.StatusBadRequest, "Image format is not supported (png or jpeg)"
	}

	f, err := file.Open()
	if err != nil {
		log.Println(err)
		return nil, http.StatusInternalServerError, "Server error"
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		log.Println(err)
		return nil, http.StatusInternalServerError, "Server error"
	}

	return &models.Image{
		Data:        base64.StdEncoding.EncodeToString(data),
		ContentType: contentType,
	}, 0, ""
}

// currentUserID reads the identity set by the auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

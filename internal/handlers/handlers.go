package handlers

import (
	"github.com/alumconnect/alumni-portal/backend/internal/database"
	"github.com/alumconnect/alumni-portal/backend/internal/store"
)

// Handler combines all handler types
type Handler struct {
	Auth     *AuthHandler
	Post     *PostHandler
	Carousal *CarousalHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(db database.Service) *Handler {
	mdb := db.DB()
	alumni := store.NewAlumniStore(mdb)

	return &Handler{
		Auth:     NewAuthHandler(alumni),
		Post:     NewPostHandler(store.NewPostStore(mdb), alumni),
		Carousal: NewCarousalHandler(store.NewCarousalStore(mdb)),
	}
}

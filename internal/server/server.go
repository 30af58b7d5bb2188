package server

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/alumconnect/alumni-portal/backend/internal/database"
	"github.com/alumconnect/alumni-portal/backend/internal/handlers"
	"github.com/alumconnect/alumni-portal/backend/internal/middleware"
)

type Server struct {
	db      database.Service
	handler *handlers.Handler
}

// NewServer creates and configures a new server
func NewServer() *http.Server {
	// Initialize database
	db := database.New()
	if err := db.EnsureIndexes(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Create unified handler
	handler := handlers.NewHandler(db)

	// Create server instance
	newServer := &Server{
		db:      db,
		handler: handler,
	}

	// Configure Gin router
	router := newServer.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // local dev fallback
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         "0.0.0.0:" + port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Printf("🚀 Server starting on port %s\n", port)
	fmt.Println("📝 Press Ctrl+C to stop the server")

	return server
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.Default()

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.db.Health())
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		api.POST("/login", s.handler.Auth.Login)

		// Post routes (public reads)
		api.GET("/posts/latest", s.handler.Post.GetLatestPosts)
		api.GET("/posts/search", s.handler.Post.SearchPosts)
		api.GET("/posts/:id", s.handler.Post.GetPost)

		// Carousal routes (public reads)
		api.GET("/carousal", s.handler.Carousal.GetCarousal)

		// Protected routes (authentication required)
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// Auth protected routes
			protected.GET("/me", s.handler.Auth.GetMe)

			// Post protected routes
			protected.POST("/posts", s.handler.Post.CreatePost)
			protected.DELETE("/posts", s.handler.Post.DeletePost)
			protected.POST("/posts/delete", s.handler.Post.DeletePost)

			// Carousal protected routes
			protected.POST("/carousal", s.handler.Carousal.CreateCarousal)
			protected.POST("/carousal/delete", s.handler.Carousal.DeleteCarousal)

			// Moderation routes (moderator role required)
			moderator := protected.Group("/moderator")
			moderator.Use(middleware.RequireModerator())
			{
				moderator.POST("/posts/delete", s.handler.Post.DeletePostByModerator)
			}
		}
	}

	return r
}

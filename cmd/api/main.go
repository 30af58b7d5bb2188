package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/alumconnect/alumni-portal/backend/internal/server"
)

// defaultTimezone pins date handling to the platform's home zone, matching
// the deployed environment. Override with TZ.
const defaultTimezone = "Asia/Kolkata"

func main() {
	tz := os.Getenv("TZ")
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Fatalf("Invalid timezone %q: %v", tz, err)
	}
	time.Local = loc

	srv := server.NewServer()
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server error: %v", err)
	}
}

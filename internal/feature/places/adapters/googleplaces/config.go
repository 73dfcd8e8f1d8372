// Package googleplaces provides a client for the Google Maps Platform web
// services used by the scraper: Geocoding, Nearby Search and Place Details.
package googleplaces

import (
	"os"
	"time"
)

// Config holds configuration for the Google Places API client.
type Config struct {
	APIKey    string        // API key for authentication
	BaseURL   string        // Base URL for the API (e.g., "https://maps.googleapis.com/maps/api")
	Timeout   time.Duration // HTTP request timeout
	PageDelay time.Duration // wait before fetching a next_page_token page
}

// LoadConfig loads Google Places configuration from environment variables.
// GOOGLE_MAPS_API_KEY takes precedence over GOOGLE_API_KEY.
func LoadConfig() Config {
	key := os.Getenv("GOOGLE_MAPS_API_KEY")
	if key == "" {
		key = os.Getenv("GOOGLE_API_KEY")
	}
	baseURL := os.Getenv("GOOGLE_MAPS_BASE_URL")
	if baseURL == "" {
		baseURL = "https://maps.googleapis.com/maps/api"
	}
	return Config{
		APIKey:  key,
		BaseURL: baseURL,
		Timeout: 10 * time.Second,
		// next_page_token needs a short warm-up before it becomes valid
		PageDelay: 2 * time.Second,
	}
}

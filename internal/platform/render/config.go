// Package render provides a client for the headless-browser rendering
// service, which owns page navigation, viewport setup and screenshots.
package render

import (
	"os"
	"time"
)

// Config holds configuration for the rendering service client.
type Config struct {
	BaseURL        string        // base URL of the rendering service
	ViewportWidth  int           // browser viewport width
	ViewportHeight int           // browser viewport height
	SettleDelay    time.Duration // extra wait for dynamic content after load
	Timeout        time.Duration // whole-request timeout
}

// LoadConfig loads rendering service configuration from environment variables.
func LoadConfig() Config {
	return Config{
		BaseURL:        os.Getenv("RENDER_API_URL"),
		ViewportWidth:  1920,
		ViewportHeight: 1080,
		SettleDelay:    2 * time.Second,
		Timeout:        30 * time.Second,
	}
}

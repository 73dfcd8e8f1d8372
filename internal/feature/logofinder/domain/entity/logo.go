package entity

import "time"

// Validation is the vision model's verdict on a single candidate image.
type Validation struct {
	IsLogo          bool   `json:"is_logo"`
	Confidence      int    `json:"confidence"` // 0-100
	Reasoning       string `json:"reasoning"`
	LogoType        string `json:"logo_type"` // text, symbol, combination, wordmark, other
	HasBusinessName bool   `json:"has_business_name"`
	Quality         string `json:"quality"` // high, medium, low
}

// DetectedLogo is a brand annotation returned by the Cloud Vision cross-check.
type DetectedLogo struct {
	Name       string  // detected brand name
	Confidence float32 // 0.0 - 1.0
}

// LogoResult is the outcome of finding and validating a logo for one website.
type LogoResult struct {
	URL             string
	WebsiteName     string
	LogoFound       bool
	LogoURL         string
	LogoConfidence  int
	LogoReasoning   string
	LogoType        string
	HasBusinessName bool
	LogoQuality     string
	CandidatesFound int
	VisionBrand     string // brand name from the Cloud Vision cross-check, if any
	Error           string
	Timestamp       time.Time
}

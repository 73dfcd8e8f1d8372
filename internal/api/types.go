// Package api defines the request and response types of the HTTP API.
package api

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a simple confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// SignupRequest is the body of POST /signup.
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries the issued JWT.
type TokenResponse struct {
	Token string `json:"token"`
}

// LogoFindRequest is the body of POST /v1/logo/find.
type LogoFindRequest struct {
	URL  string `json:"url" binding:"required"`
	Name string `json:"name"`
}

// LogoFindResponse is the verdict for one website.
type LogoFindResponse struct {
	URL             string `json:"url"`
	WebsiteName     string `json:"website_name"`
	LogoFound       bool   `json:"logo_found"`
	LogoURL         string `json:"logo_url,omitempty"`
	LogoConfidence  int    `json:"logo_confidence"`
	LogoReasoning   string `json:"logo_reasoning,omitempty"`
	LogoType        string `json:"logo_type,omitempty"`
	HasBusinessName bool   `json:"has_business_name"`
	LogoQuality     string `json:"logo_quality,omitempty"`
	CandidatesFound int    `json:"candidates_found"`
	VisionBrand     string `json:"vision_brand,omitempty"`
	Error           string `json:"error,omitempty"`
}

// BackgroundRequest is the body of POST /v1/background.
type BackgroundRequest struct {
	LogoURL      string `json:"logo_url" binding:"required"`
	BusinessName string `json:"business_name"`
}

// BackgroundResponse carries the generated background image as base64 PNG.
type BackgroundResponse struct {
	Prompt      string `json:"prompt"`
	ImageBase64 string `json:"image_base64"`
}

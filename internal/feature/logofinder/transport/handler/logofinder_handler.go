// Package handler provides the HTTP handlers of the logofinder feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wmastover/labupops-lead-qualifier/internal/api"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/logofinder/domain/entity"
)

// LogoFinderUsecase defines the logo finding usecase interface.
// Following Go convention, interfaces are defined on the consumer (handler) side.
type LogoFinderUsecase interface {
	FindLogo(ctx context.Context, siteURL, siteName string) (*entity.LogoResult, error)
}

// LogoFinderHandler handles logo finding HTTP requests.
type LogoFinderHandler struct {
	uc LogoFinderUsecase
}

// NewLogoFinderHandler creates a new LogoFinderHandler.
func NewLogoFinderHandler(uc LogoFinderUsecase) *LogoFinderHandler {
	return &LogoFinderHandler{uc: uc}
}

// FindLogo discovers and validates a website's logo.
//
// Endpoint: POST /v1/logo/find
// Content-Type: application/json
func (h *LogoFinderHandler) FindLogo(c *gin.Context) {
	var req api.LogoFindRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("logo find request validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "url is required"})
		return
	}

	result, err := h.uc.FindLogo(c.Request.Context(), req.URL, req.Name)
	if err != nil {
		slog.Warn("logo find rejected", "error", err, "url", req.URL)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid url"})
		return
	}

	c.JSON(http.StatusOK, api.LogoFindResponse{
		URL:             result.URL,
		WebsiteName:     result.WebsiteName,
		LogoFound:       result.LogoFound,
		LogoURL:         result.LogoURL,
		LogoConfidence:  result.LogoConfidence,
		LogoReasoning:   result.LogoReasoning,
		LogoType:        result.LogoType,
		HasBusinessName: result.HasBusinessName,
		LogoQuality:     result.LogoQuality,
		CandidatesFound: result.CandidatesFound,
		VisionBrand:     result.VisionBrand,
		Error:           result.Error,
	})
}

// Package handler provides the HTTP handlers of the background feature.
package handler

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wmastover/labupops-lead-qualifier/internal/api"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/background/domain/entity"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/background/usecase"
)

// BackgroundUsecase defines the background generation usecase interface.
// Following Go convention, interfaces are defined on the consumer (handler) side.
type BackgroundUsecase interface {
	GenerateBackground(ctx context.Context, logoURL string, opts usecase.GenerateOptions) (*entity.GeneratedBackground, error)
}

// BackgroundHandler handles background generation HTTP requests.
type BackgroundHandler struct {
	uc BackgroundUsecase
}

// NewBackgroundHandler creates a new BackgroundHandler.
func NewBackgroundHandler(uc BackgroundUsecase) *BackgroundHandler {
	return &BackgroundHandler{uc: uc}
}

// Generate produces a website hero background matched to a company logo.
//
// Endpoint: POST /v1/background
// Content-Type: application/json
func (h *BackgroundHandler) Generate(c *gin.Context) {
	var req api.BackgroundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("background request validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "logo_url is required"})
		return
	}

	background, err := h.uc.GenerateBackground(c.Request.Context(), req.LogoURL, usecase.GenerateOptions{
		CompanyName: req.BusinessName,
	})
	if err != nil {
		slog.Error("background generation failed", "error", err, "logo_url", req.LogoURL)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "background generation failed"})
		return
	}

	c.JSON(http.StatusOK, api.BackgroundResponse{
		Prompt:      background.Prompt,
		ImageBase64: base64.StdEncoding.EncodeToString(background.Image),
	})
}

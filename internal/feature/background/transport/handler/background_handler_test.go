package handler_test

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/wmastover/labupops-lead-qualifier/internal/feature/background/domain/entity"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/background/transport/handler"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/background/usecase"
)

// mockBackgroundUsecase is a mock implementation of the BackgroundUsecase interface.
type mockBackgroundUsecase struct {
	GenerateFunc func(ctx context.Context, logoURL string, opts usecase.GenerateOptions) (*entity.GeneratedBackground, error)
}

func (m *mockBackgroundUsecase) GenerateBackground(ctx context.Context, logoURL string, opts usecase.GenerateOptions) (*entity.GeneratedBackground, error) {
	return m.GenerateFunc(ctx, logoURL, opts)
}

func TestBackgroundHandler_Generate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		mockFunc       func(ctx context.Context, logoURL string, opts usecase.GenerateOptions) (*entity.GeneratedBackground, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			body: `{"logo_url":"https://rubys.example.com/logo.png","business_name":"Ruby's"}`,
			mockFunc: func(ctx context.Context, logoURL string, opts usecase.GenerateOptions) (*entity.GeneratedBackground, error) {
				if opts.CompanyName != "Ruby's" {
					t.Errorf("business name not passed through, got %q", opts.CompanyName)
				}
				return &entity.GeneratedBackground{Prompt: "a landscape", Image: []byte("bg")}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"image_base64":"` + base64.StdEncoding.EncodeToString([]byte("bg")) + `"`,
		},
		{
			name:           "error: missing logo_url",
			body:           `{"business_name":"Ruby's"}`,
			mockFunc:       nil,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"logo_url is required"}`,
		},
		{
			name: "error: generation fails",
			body: `{"logo_url":"https://rubys.example.com/logo.png"}`,
			mockFunc: func(ctx context.Context, logoURL string, opts usecase.GenerateOptions) (*entity.GeneratedBackground, error) {
				return nil, errors.New("imagen unavailable")
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"background generation failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockBackgroundUsecase{GenerateFunc: tt.mockFunc}
			h := handler.NewBackgroundHandler(mockUC)

			router := gin.New()
			router.POST("/v1/background", h.Generate)

			req := httptest.NewRequest(http.MethodPost, "/v1/background", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

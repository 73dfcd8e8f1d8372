// Package gemini provides the Gemini-backed logo analyzer and image generator.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/wmastover/labupops-lead-qualifier/internal/feature/background/domain/entity"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/background/usecase"
	"github.com/wmastover/labupops-lead-qualifier/internal/platform/llmjson"
)

const (
	// DefaultModel is the default Gemini model for logo analysis.
	DefaultModel = "gemini-2.5-flash"
)

const analyzePrompt = `Analyze this company logo and provide insights for creating a complementary website background. Please identify:

1. Primary colors (hex codes if possible)
2. Secondary colors
3. Design style (modern, classic, minimalist, bold, etc.)
4. Industry/business type (based on visual elements)
5. Brand personality (professional, creative, tech-focused, etc.)
6. Visual elements (geometric, organic, text-based, icon-based, etc.)

Respond in JSON format with these exact keys: primary_colors, secondary_colors, design_style, industry, brand_personality, visual_elements`

// GeminiAnalyzer profiles company logos with the Gemini API.
type GeminiAnalyzer struct {
	client *genai.Client
	model  string
}

// GeminiAnalyzer implements usecase.LogoAnalyzer; verified at compile time.
var _ usecase.LogoAnalyzer = (*GeminiAnalyzer)(nil)

// NewGeminiAnalyzer creates a GeminiAnalyzer using ADC. The environment
// variables GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT and
// GOOGLE_CLOUD_LOCATION are required.
func NewGeminiAnalyzer(ctx context.Context) (*GeminiAnalyzer, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiAnalyzer{client: client, model: DefaultModel}, nil
}

// AnalyzeLogo sends the logo image and decodes the JSON profile.
func (g *GeminiAnalyzer) AnalyzeLogo(ctx context.Context, image []byte) (*entity.LogoProfile, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(analyzePrompt),
		genai.NewPartFromBytes(image, "image/png"),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini API request failed: %w", err)
	}

	var profile entity.LogoProfile
	if err := llmjson.Unmarshal(resp.Text(), &profile); err != nil {
		return nil, fmt.Errorf("parse logo profile: %w", err)
	}
	return &profile, nil
}

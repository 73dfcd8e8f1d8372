// Package gemini provides the Gemini-backed logo validation client.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/wmastover/labupops-lead-qualifier/internal/feature/logofinder/domain/entity"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/logofinder/usecase"
	"github.com/wmastover/labupops-lead-qualifier/internal/platform/llmjson"
)

const (
	// DefaultModel is the default Gemini model for vision validation.
	DefaultModel = "gemini-2.5-flash"
)

const validatePrompt = `Please analyze this image and determine if it is the logo for the website: %s

Website/Business name hint: %s

Consider the following criteria:
1. Does this appear to be a logo or brand mark?
2. Does it contain text, symbols, or graphics that would identify a business?
3. Is it professionally designed and suitable as a brand identifier?
4. Does it appear to be the main logo (not a social media icon, advertisement, or decoration)?
5. Is the image quality and resolution appropriate for a logo?

Respond with a JSON object containing:
- "is_logo": boolean (true if this is likely the website's logo)
- "confidence": integer from 0-100 (how confident you are)
- "reasoning": string (1-2 sentences explaining your decision)
- "logo_type": string ("text", "symbol", "combination", "wordmark", or "other")
- "has_business_name": boolean (does the logo contain readable business name)
- "quality": string ("high", "medium", "low") based on image quality and professionalism`

// GeminiValidator judges whether a candidate image is a site's logo.
type GeminiValidator struct {
	client *genai.Client
	model  string
}

// GeminiValidator implements usecase.LogoValidator; verified at compile time.
var _ usecase.LogoValidator = (*GeminiValidator)(nil)

// NewGeminiValidator creates a GeminiValidator using ADC. The environment
// variables GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT and
// GOOGLE_CLOUD_LOCATION are required.
func NewGeminiValidator(ctx context.Context) (*GeminiValidator, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiValidator{client: client, model: DefaultModel}, nil
}

// Validate sends the image with the validation prompt and decodes the JSON
// verdict. A response that cannot be parsed is an error rather than a silent
// rejection so callers can tell validation failures from negative verdicts.
func (g *GeminiValidator) Validate(ctx context.Context, image []byte, siteURL, siteName string) (*entity.Validation, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(fmt.Sprintf(validatePrompt, siteURL, siteName)),
		genai.NewPartFromBytes(image, "image/png"),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr[float32](0.1),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini API request failed: %w", err)
	}

	var v entity.Validation
	if err := llmjson.Unmarshal(resp.Text(), &v); err != nil {
		return nil, fmt.Errorf("parse validation response: %w", err)
	}
	return &v, nil
}

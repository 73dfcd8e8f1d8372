// Package gemini provides the Gemini-backed website design classifier.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/wmastover/labupops-lead-qualifier/internal/feature/audit/domain/entity"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/audit/usecase"
	"github.com/wmastover/labupops-lead-qualifier/internal/platform/llmjson"
)

const (
	// DefaultModel is the default Gemini model for design classification.
	DefaultModel = "gemini-2.5-flash"

	systemInstruction = "You are an expert web designer and developer with extensive experience in modern web design trends and UX principles."
)

const classifyPrompt = `Analyze this website screenshot to determine if the design looks modern or outdated.

Consider these factors:
- Layout design (responsive vs fixed-width, grid systems)
- Typography (modern fonts vs default system fonts)
- Color schemes and visual hierarchy
- Navigation patterns and UI elements
- Overall visual sophistication and current design trends
- Mobile-first design principles
- White space usage and content density

Respond with a JSON object containing:
- "judgment": string, one of "Modern", "Outdated" or "Unclear"
- "reason": string (1-2 sentence explanation of the assessment)
- "confidence": integer from 0-100 (confidence level of the assessment)`

// GeminiClassifier judges screenshots with the Gemini API.
type GeminiClassifier struct {
	client *genai.Client
	model  string
}

// GeminiClassifier implements usecase.DesignClassifier; verified at compile time.
var _ usecase.DesignClassifier = (*GeminiClassifier)(nil)

// NewGeminiClassifier creates a GeminiClassifier using ADC. The environment
// variables GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT and
// GOOGLE_CLOUD_LOCATION are required.
func NewGeminiClassifier(ctx context.Context) (*GeminiClassifier, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiClassifier{client: client, model: DefaultModel}, nil
}

// ClassifyDesign sends the screenshot with the audit prompt and decodes the
// JSON verdict.
func (g *GeminiClassifier) ClassifyDesign(ctx context.Context, screenshot []byte) (*entity.Assessment, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(classifyPrompt),
		genai.NewPartFromBytes(screenshot, "image/png"),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		Temperature:       genai.Ptr[float32](0.1),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini API request failed: %w", err)
	}

	var a entity.Assessment
	if err := llmjson.Unmarshal(resp.Text(), &a); err != nil {
		return nil, fmt.Errorf("parse design assessment: %w", err)
	}
	return &a, nil
}

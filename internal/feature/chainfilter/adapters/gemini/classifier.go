// Package gemini provides the Gemini-backed chain classifier.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/wmastover/labupops-lead-qualifier/internal/feature/chainfilter/usecase"
)

const (
	// DefaultModel is the default Gemini model for chain classification.
	DefaultModel = "gemini-2.5-flash"

	systemInstruction = "You are an expert at identifying major chain restaurants vs local independent restaurants. You are conservative and only mark businesses for removal when you're absolutely certain they are major chains. You must respond with a valid JSON object only - do not use markdown formatting or code blocks."
)

// GeminiClassifier classifies lead batches with the Gemini API.
type GeminiClassifier struct {
	client *genai.Client
	model  string
}

// GeminiClassifier implements usecase.ChainClassifier; verified at compile time.
var _ usecase.ChainClassifier = (*GeminiClassifier)(nil)

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

// Classify sends one batch prompt and returns the raw model response.
func (g *GeminiClassifier) Classify(ctx context.Context, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		Temperature:       genai.Ptr[float32](0.1),
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}
	return resp.Text(), nil
}

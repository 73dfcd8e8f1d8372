package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/wmastover/labupops-lead-qualifier/internal/feature/background/domain/entity"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/background/usecase"
)

// DefaultImageModel is the default Imagen model for background generation.
const DefaultImageModel = "imagen-3.0-generate-002"

// ImagenGenerator renders backgrounds with the Imagen API.
type ImagenGenerator struct {
	client *genai.Client
	model  string
}

// ImagenGenerator implements usecase.ImageGenerator; verified at compile time.
var _ usecase.ImageGenerator = (*ImagenGenerator)(nil)

// NewImagenGenerator creates an ImagenGenerator using ADC. The environment
// variables GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT and
// GOOGLE_CLOUD_LOCATION are required.
func NewImagenGenerator(ctx context.Context) (*ImagenGenerator, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &ImagenGenerator{client: client, model: DefaultImageModel}, nil
}

// GenerateImage renders one 16:9 background for the prompt.
func (g *ImagenGenerator) GenerateImage(ctx context.Context, prompt string) (*entity.GeneratedBackground, error) {
	config := &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		AspectRatio:    "16:9",
	}
	resp, err := g.client.Models.GenerateImages(ctx, g.model, prompt, config)
	if err != nil {
		return nil, fmt.Errorf("imagen API request failed: %w", err)
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return nil, fmt.Errorf("imagen API returned no images")
	}

	img := resp.GeneratedImages[0].Image
	return &entity.GeneratedBackground{
		Image:    img.ImageBytes,
		MIMEType: img.MIMEType,
	}, nil
}

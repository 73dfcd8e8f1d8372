// Package vision provides the Cloud Vision logo detection client.
package vision

import (
	"context"
	"fmt"

	gvision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"

	"github.com/wmastover/labupops-lead-qualifier/internal/feature/logofinder/domain/entity"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/logofinder/usecase"
)

// VisionLogoDetector detects known brand logos with the Cloud Vision API.
type VisionLogoDetector struct {
	client *gvision.ImageAnnotatorClient
}

// VisionLogoDetector implements usecase.LogoAnnotator; verified at compile time.
var _ usecase.LogoAnnotator = (*VisionLogoDetector)(nil)

// NewVisionLogoDetector creates a VisionLogoDetector using ADC.
func NewVisionLogoDetector(ctx context.Context) (*VisionLogoDetector, error) {
	client, err := gvision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	return &VisionLogoDetector{client: client}, nil
}

// Close releases the Vision API client.
func (v *VisionLogoDetector) Close() error {
	return v.client.Close()
}

// DetectLogos runs LOGO_DETECTION over the image bytes.
func (v *VisionLogoDetector) DetectLogos(ctx context.Context, imageData []byte) ([]entity.DetectedLogo, error) {
	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{Content: imageData},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_LOGO_DETECTION},
				},
			},
		},
	}

	resp, err := v.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("vision API request failed: %w", err)
	}

	if len(resp.Responses) == 0 {
		return nil, nil
	}

	if resp.Responses[0].Error != nil {
		return nil, fmt.Errorf("vision API error: %s", resp.Responses[0].Error.Message)
	}

	logos := make([]entity.DetectedLogo, 0, len(resp.Responses[0].LogoAnnotations))
	for _, logo := range resp.Responses[0].LogoAnnotations {
		logos = append(logos, entity.DetectedLogo{
			Name:       logo.Description,
			Confidence: logo.Score,
		})
	}

	return logos, nil
}

// Package usecase implements AI background generation from company logos.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wmastover/labupops-lead-qualifier/internal/feature/background/domain/entity"
)

// MaxLogoSize caps logo downloads.
const MaxLogoSize = 20 * 1024 * 1024

// ImageDownloader fetches the logo image as raw bytes.
// Following Go convention, interfaces are defined on the consumer (usecase) side.
type ImageDownloader interface {
	Download(ctx context.Context, imageURL string, maxSize int64) ([]byte, error)
}

// LogoAnalyzer extracts a visual identity profile from a logo image.
type LogoAnalyzer interface {
	AnalyzeLogo(ctx context.Context, image []byte) (*entity.LogoProfile, error)
}

// ImageGenerator renders a background image from a text prompt.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (*entity.GeneratedBackground, error)
}

// GenerateOptions carries optional context for the prompt.
type GenerateOptions struct {
	CompanyName        string
	CompanyDescription string
	StylePreference    string
}

// backgroundUsecase turns a logo into a matching website hero background.
type backgroundUsecase struct {
	downloader ImageDownloader
	analyzer   LogoAnalyzer
	generator  ImageGenerator
}

// NewBackgroundUsecase creates a new backgroundUsecase.
func NewBackgroundUsecase(downloader ImageDownloader, analyzer LogoAnalyzer, generator ImageGenerator) *backgroundUsecase {
	return &backgroundUsecase{downloader: downloader, analyzer: analyzer, generator: generator}
}

// GenerateBackground downloads the logo, profiles it and renders a background
// to match. A failed analysis falls back to the default profile so generation
// still proceeds; download and generation failures are returned.
func (u *backgroundUsecase) GenerateBackground(ctx context.Context, logoURL string, opts GenerateOptions) (*entity.GeneratedBackground, error) {
	if logoURL == "" {
		return nil, fmt.Errorf("logo URL is required")
	}

	logo, err := u.downloader.Download(ctx, logoURL, MaxLogoSize)
	if err != nil {
		return nil, fmt.Errorf("download logo: %w", err)
	}

	profile, err := u.analyzer.AnalyzeLogo(ctx, logo)
	if err != nil || profile == nil {
		slog.Warn("logo analysis failed, using default profile", "url", logoURL, "error", err)
		p := entity.DefaultLogoProfile()
		profile = &p
	}

	prompt := BuildPrompt(*profile, opts)
	slog.Info("background prompt built", "url", logoURL, "prompt_len", len(prompt))

	background, err := u.generator.GenerateImage(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate background: %w", err)
	}
	background.Prompt = prompt
	return background, nil
}

var industryStyles = map[string]string{
	"technology":    "futuristic cityscape with clean lines and digital elements",
	"healthcare":    "serene natural landscape with soft, calming elements",
	"finance":       "modern urban skyline with geometric patterns",
	"education":     "inspiring mountain or forest vista with bright, optimistic tones",
	"retail":        "vibrant, energetic landscape with dynamic elements",
	"consulting":    "professional, clean landscape with subtle sophistication",
	"creative":      "artistic, imaginative landscape with bold visual interest",
	"manufacturing": "industrial-inspired landscape with strong, reliable elements",
}

var styleDescriptors = map[string]string{
	"modern":     "sleek, minimalist, with clean gradients",
	"classic":    "timeless, elegant, with refined details",
	"minimalist": "simple, uncluttered, with subtle beauty",
	"bold":       "striking, dramatic, with strong visual impact",
	"organic":    "natural, flowing, with soft organic shapes",
	"geometric":  "structured, precise, with geometric elements",
}

var personalityElements = map[string]string{
	"professional": "sophisticated lighting and composition",
	"creative":     "artistic flair and unique perspective",
	"tech-focused": "subtle tech elements or digital-inspired patterns",
	"friendly":     "warm, welcoming atmosphere",
	"innovative":   "forward-thinking, cutting-edge visual elements",
	"trustworthy":  "stable, reliable, comforting elements",
}

// BuildPrompt composes the image generation prompt from the logo profile and
// the caller's context.
func BuildPrompt(profile entity.LogoProfile, opts GenerateOptions) string {
	parts := []string{
		"Create a stunning landscape website background image in wide format (16:9 aspect ratio)",
	}

	if profile.Industry != "" {
		style, ok := industryStyles[strings.ToLower(profile.Industry)]
		if !ok {
			style = "modern, professional landscape"
		}
		parts = append(parts, fmt.Sprintf("The scene should be a %s", style))
	}

	if len(profile.PrimaryColors) > 0 {
		colors := profile.PrimaryColors
		if len(colors) > 2 {
			colors = colors[:2]
		}
		parts = append(parts, fmt.Sprintf("incorporating color tones that complement %s", strings.Join(colors, " and ")))
	}

	designStyle := strings.ToLower(profile.DesignStyle)
	if designStyle == "" {
		designStyle = "modern"
	}
	styleDesc, ok := styleDescriptors[designStyle]
	if !ok {
		styleDesc = "modern and professional"
	}
	parts = append(parts, fmt.Sprintf("The aesthetic should be %s", styleDesc))

	personality := strings.ToLower(profile.BrandPersonality)
	if personality == "" {
		personality = "professional"
	}
	if element, ok := personalityElements[personality]; ok {
		parts = append(parts, fmt.Sprintf("with %s", element))
	}

	if opts.CompanyDescription != "" {
		parts = append(parts, fmt.Sprintf("The image should reflect a company that %s", opts.CompanyDescription))
	}
	if opts.StylePreference != "" {
		parts = append(parts, fmt.Sprintf("Overall style: %s", opts.StylePreference))
	}

	parts = append(parts,
		"The image should work well as a website hero background",
		"with good contrast areas for overlaying text",
		"professional quality, high resolution",
		"avoid any text, logos, or specific branded elements",
		"photorealistic style with excellent composition and lighting",
	)

	return strings.Join(parts, ". ") + "."
}

// Package page discovers logo candidate images on web pages.
package page

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/wmastover/labupops-lead-qualifier/internal/feature/logofinder/domain/entity"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/logofinder/usecase"
	"github.com/wmastover/labupops-lead-qualifier/internal/platform/render"
)

// DefaultSelectors is the discovery rule list, tried in order. Discovery
// order is the order in which these rules encounter elements in one pass.
var DefaultSelectors = []string{
	`img[alt*="logo" i]`,
	`img[src*="logo" i]`,
	`img[class*="logo" i]`,
	`img[id*="logo" i]`,
	`.logo img`,
	`#logo img`,
	`header img`,
	`.header img`,
	`.navbar img`,
	`.nav img`,
	`.brand img`,
	`.brand-logo img`,
	`.site-logo img`,
	`.company-logo img`,
	`[class*="brand"] img`,
	`[class*="logo"] img`,
	`img[alt*="brand" i]`,
	`img[src*="brand" i]`,
}

// ImageQuerier is the part of the rendering service the extractor needs.
type ImageQuerier interface {
	QueryImages(ctx context.Context, pageURL string, selectors []string) ([]render.Element, error)
}

// RenderedExtractor discovers candidates through the rendering service, which
// reports real layout boxes for each matched element.
type RenderedExtractor struct {
	querier   ImageQuerier
	selectors []string
}

// RenderedExtractor implements usecase.PageExtractor; verified at compile time.
var _ usecase.PageExtractor = (*RenderedExtractor)(nil)

// NewRenderedExtractor creates a RenderedExtractor. A nil selector list uses
// DefaultSelectors.
func NewRenderedExtractor(querier ImageQuerier, selectors []string) *RenderedExtractor {
	if selectors == nil {
		selectors = DefaultSelectors
	}
	return &RenderedExtractor{querier: querier, selectors: selectors}
}

// ExtractCandidates queries the page for each selector and maps element
// records to candidates. Elements without a src are skipped; relative URLs
// are resolved against the page URL. A missing bounding box becomes the zero
// box, keeping the upstream bias toward ambiguous candidates.
func (e *RenderedExtractor) ExtractCandidates(ctx context.Context, pageURL string) ([]entity.ImageCandidate, error) {
	pageURL = EnsureScheme(pageURL)
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse page URL %q: %w", pageURL, err)
	}

	elements, err := e.querier.QueryImages(ctx, pageURL, e.selectors)
	if err != nil {
		return nil, fmt.Errorf("query page images: %w", err)
	}

	candidates := make([]entity.ImageCandidate, 0, len(elements))
	for _, el := range elements {
		if el.Src == "" {
			continue
		}
		c := entity.ImageCandidate{
			SourceURL:       resolve(base, el.Src),
			AltText:         el.Alt,
			CSSClass:        el.Class,
			ElementID:       el.ID,
			MatchedSelector: el.Selector,
		}
		if el.Box != nil {
			c.Width = el.Box.Width
			c.Height = el.Box.Height
			c.Position = entity.Box{X: el.Box.X, Y: el.Box.Y, Width: el.Box.Width, Height: el.Box.Height}
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

// EnsureScheme prefixes https:// when the URL carries no scheme.
func EnsureScheme(raw string) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "https://" + raw
}

func resolve(base *url.URL, src string) string {
	ref, err := url.Parse(src)
	if err != nil {
		return src
	}
	return base.ResolveReference(ref).String()
}

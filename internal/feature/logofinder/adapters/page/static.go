package page

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/wmastover/labupops-lead-qualifier/internal/feature/logofinder/domain/entity"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/logofinder/usecase"
)

// containerSelector matches the header/nav/brand containers from the
// discovery rule list; a static fetch cannot evaluate the case-insensitive
// attribute selectors, so containment plus attribute keywords stand in.
const containerSelector = "header, nav, .header, .navbar, .nav, .logo, #logo, .brand, .brand-logo, .site-logo, .company-logo"

// StaticExtractor discovers candidates from raw HTML without a browser.
// Used when no rendering service is configured: sizes come from width/height
// attributes (0 when absent) and positions are always the zero box, so the
// pre-filter does most of the work the layout signals would normally do.
type StaticExtractor struct {
	client   *http.Client
	keywords []string
}

// StaticExtractor implements usecase.PageExtractor; verified at compile time.
var _ usecase.PageExtractor = (*StaticExtractor)(nil)

// NewStaticExtractor creates a StaticExtractor. A nil keyword list uses the
// ranker's default keyword set.
func NewStaticExtractor(client *http.Client, keywords []string) *StaticExtractor {
	if keywords == nil {
		keywords = usecase.DefaultRankerConfig().Keywords
	}
	return &StaticExtractor{client: client, keywords: keywords}
}

// ExtractCandidates fetches the page and keeps every img whose attributes
// contain a logo keyword or that sits inside a header/nav/brand container.
func (e *StaticExtractor) ExtractCandidates(ctx context.Context, pageURL string) ([]entity.ImageCandidate, error) {
	pageURL = EnsureScheme(pageURL)
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse page URL %q: %w", pageURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	res, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch page: http %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	var candidates []entity.ImageCandidate
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		src, ok := s.Attr("src")
		if !ok || src == "" {
			return
		}
		alt := s.AttrOr("alt", "")
		class := s.AttrOr("class", "")
		id := s.AttrOr("id", "")

		inContainer := s.ParentsFiltered(containerSelector).Length() > 0
		if !inContainer && !e.matchesKeyword(alt+" "+class+" "+id+" "+src) {
			return
		}

		selector := "img"
		if inContainer {
			selector = "container img"
		}
		candidates = append(candidates, entity.ImageCandidate{
			SourceURL:       resolve(base, src),
			AltText:         alt,
			CSSClass:        class,
			ElementID:       id,
			Width:           attrFloat(s, "width"),
			Height:          attrFloat(s, "height"),
			MatchedSelector: selector,
		})
	})
	return candidates, nil
}

func (e *StaticExtractor) matchesKeyword(blob string) bool {
	blob = strings.ToLower(blob)
	for _, kw := range e.keywords {
		if strings.Contains(blob, kw) {
			return true
		}
	}
	return false
}

func attrFloat(s *goquery.Selection, name string) float64 {
	v, ok := s.Attr(name)
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(v), "px"), 64)
	if err != nil {
		return 0
	}
	return f
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wmastover/labupops-lead-qualifier/internal/feature/logofinder/domain/entity"
)

const (
	// MaxImageSize caps candidate downloads at 20MiB, the vision API limit.
	MaxImageSize = 20 * 1024 * 1024
	// AcceptConfidence is the minimum validation confidence for a logo to win.
	AcceptConfidence = 70
)

// PageExtractor discovers image candidates on a rendered page.
// Following Go convention, interfaces are defined on the consumer (usecase) side.
type PageExtractor interface {
	// ExtractCandidates returns image candidates in discovery order, with
	// source URLs already resolved against the page base URL.
	ExtractCandidates(ctx context.Context, pageURL string) ([]entity.ImageCandidate, error)
}

// ImageDownloader fetches a candidate image as raw bytes.
type ImageDownloader interface {
	// Download returns the image bytes, or an error if the image is
	// unreachable or exceeds maxSize.
	Download(ctx context.Context, imageURL string, maxSize int64) ([]byte, error)
}

// LogoValidator asks the vision model whether an image is the site's logo.
type LogoValidator interface {
	Validate(ctx context.Context, image []byte, siteURL, siteName string) (*entity.Validation, error)
}

// LogoAnnotator cross-checks an accepted logo against a logo-detection API.
type LogoAnnotator interface {
	DetectLogos(ctx context.Context, image []byte) ([]entity.DetectedLogo, error)
}

// Limiter paces external calls.
type Limiter interface {
	WaitIfNeeded()
}

// logoFinderUsecase finds logo candidates on a site, ranks them and validates
// them one at a time until the first acceptance.
type logoFinderUsecase struct {
	extractor  PageExtractor
	ranker     *Ranker
	downloader ImageDownloader
	validator  LogoValidator
	annotator  LogoAnnotator // optional
	limiter    Limiter       // optional
	limit      int
}

// NewLogoFinderUsecase creates a new logoFinderUsecase. annotator and limiter
// may be nil.
func NewLogoFinderUsecase(extractor PageExtractor, ranker *Ranker, downloader ImageDownloader,
	validator LogoValidator, annotator LogoAnnotator, limiter Limiter) *logoFinderUsecase {
	return &logoFinderUsecase{
		extractor:  extractor,
		ranker:     ranker,
		downloader: downloader,
		validator:  validator,
		annotator:  annotator,
		limiter:    limiter,
		limit:      DefaultRankLimit,
	}
}

// FindLogo processes one website: discover candidates, rank them, then
// download and validate each in rank order. The first candidate the vision
// model accepts with confidence >= AcceptConfidence wins and iteration stops.
// Per-candidate failures are logged and skipped; only discovery failures
// surface in the result's Error field. The returned error is non-nil only for
// invalid input.
func (u *logoFinderUsecase) FindLogo(ctx context.Context, siteURL, siteName string) (*entity.LogoResult, error) {
	if siteURL == "" {
		return nil, fmt.Errorf("site URL is required")
	}

	result := &entity.LogoResult{
		URL:         siteURL,
		WebsiteName: siteName,
		Timestamp:   time.Now(),
	}

	candidates, err := u.extractor.ExtractCandidates(ctx, siteURL)
	if err != nil {
		result.Error = fmt.Sprintf("candidate discovery failed: %v", err)
		return result, nil
	}

	ranked := u.ranker.Rank(candidates, u.limit)
	result.CandidatesFound = len(ranked)
	if len(ranked) == 0 {
		result.Error = "no logo candidates found"
		return result, nil
	}

	for i, candidate := range ranked {
		slog.Info("validating logo candidate",
			"site", siteURL, "candidate", candidate.SourceURL, "rank", i+1, "of", len(ranked))

		image, err := u.downloader.Download(ctx, candidate.SourceURL, MaxImageSize)
		if err != nil {
			slog.Warn("candidate download failed", "url", candidate.SourceURL, "error", err)
			continue
		}

		validation, err := u.validator.Validate(ctx, image, siteURL, siteName)
		if err != nil {
			slog.Warn("candidate validation failed", "url", candidate.SourceURL, "error", err)
			continue
		}

		if validation.IsLogo && validation.Confidence >= AcceptConfidence {
			result.LogoFound = true
			result.LogoURL = candidate.SourceURL
			result.LogoConfidence = validation.Confidence
			result.LogoReasoning = validation.Reasoning
			result.LogoType = validation.LogoType
			result.HasBusinessName = validation.HasBusinessName
			result.LogoQuality = validation.Quality
			result.VisionBrand = u.crossCheck(ctx, image)
			break
		}

		slog.Info("candidate rejected", "url", candidate.SourceURL, "confidence", validation.Confidence)
		if u.limiter != nil {
			u.limiter.WaitIfNeeded()
		}
	}

	if !result.LogoFound {
		result.Error = "no valid logos found among candidates"
	}
	return result, nil
}

// crossCheck runs the accepted logo through the annotation API and returns
// the highest-scoring brand name. Best effort: failures are logged only.
func (u *logoFinderUsecase) crossCheck(ctx context.Context, image []byte) string {
	if u.annotator == nil {
		return ""
	}
	logos, err := u.annotator.DetectLogos(ctx, image)
	if err != nil {
		slog.Warn("logo annotation cross-check failed", "error", err)
		return ""
	}
	best := ""
	var bestScore float32
	for _, l := range logos {
		if l.Confidence > bestScore {
			best, bestScore = l.Name, l.Confidence
		}
	}
	return best
}

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/wmastover/labupops-lead-qualifier/internal/feature/logofinder/domain/entity"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/logofinder/usecase"
)

// mockExtractor is a mock implementation of the PageExtractor interface.
type mockExtractor struct {
	ExtractFunc func(ctx context.Context, pageURL string) ([]entity.ImageCandidate, error)
}

func (m *mockExtractor) ExtractCandidates(ctx context.Context, pageURL string) ([]entity.ImageCandidate, error) {
	return m.ExtractFunc(ctx, pageURL)
}

// mockDownloader is a mock implementation of the ImageDownloader interface.
type mockDownloader struct {
	DownloadFunc func(ctx context.Context, imageURL string, maxSize int64) ([]byte, error)
	Calls        []string
}

func (m *mockDownloader) Download(ctx context.Context, imageURL string, maxSize int64) ([]byte, error) {
	m.Calls = append(m.Calls, imageURL)
	if m.DownloadFunc != nil {
		return m.DownloadFunc(ctx, imageURL, maxSize)
	}
	return []byte("fake-image"), nil
}

// mockValidator is a mock implementation of the LogoValidator interface.
type mockValidator struct {
	ValidateFunc func(ctx context.Context, image []byte, siteURL, siteName string) (*entity.Validation, error)
	Calls        int
}

func (m *mockValidator) Validate(ctx context.Context, image []byte, siteURL, siteName string) (*entity.Validation, error) {
	m.Calls++
	return m.ValidateFunc(ctx, image, siteURL, siteName)
}

func candidates(urls ...string) []entity.ImageCandidate {
	out := make([]entity.ImageCandidate, 0, len(urls))
	for _, u := range urls {
		out = append(out, entity.ImageCandidate{
			SourceURL: u,
			Width:     200,
			Height:    100,
			Position:  entity.Box{Y: 100},
		})
	}
	return out
}

func TestLogoFinderUsecase_FindLogo_FirstAcceptanceWins(t *testing.T) {
	ctx := context.Background()
	extractor := &mockExtractor{
		ExtractFunc: func(ctx context.Context, pageURL string) ([]entity.ImageCandidate, error) {
			return candidates(
				"https://example.com/a.png",
				"https://example.com/b.png",
				"https://example.com/c.png",
			), nil
		},
	}
	downloader := &mockDownloader{}
	validator := &mockValidator{
		ValidateFunc: func(ctx context.Context, image []byte, siteURL, siteName string) (*entity.Validation, error) {
			// Second candidate is the logo.
			if len(downloader.Calls) == 2 {
				return &entity.Validation{IsLogo: true, Confidence: 85, LogoType: "combination", Quality: "high"}, nil
			}
			return &entity.Validation{IsLogo: false, Confidence: 30}, nil
		},
	}

	uc := usecase.NewLogoFinderUsecase(extractor, usecase.NewRanker(usecase.RankerConfig{}), downloader, validator, nil, nil)
	result, err := uc.FindLogo(ctx, "https://example.com", "Example Cafe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.LogoFound {
		t.Fatal("expected logo to be found")
	}
	if result.LogoURL != "https://example.com/b.png" {
		t.Errorf("wrong logo accepted: %q", result.LogoURL)
	}
	if result.LogoConfidence != 85 {
		t.Errorf("confidence: got %d, want 85", result.LogoConfidence)
	}
	// Iteration must stop at the first acceptance.
	if validator.Calls != 2 {
		t.Errorf("validation calls: got %d, want 2", validator.Calls)
	}
	if result.CandidatesFound != 3 {
		t.Errorf("candidates found: got %d, want 3", result.CandidatesFound)
	}
}

func TestLogoFinderUsecase_FindLogo_LowConfidenceRejected(t *testing.T) {
	ctx := context.Background()
	extractor := &mockExtractor{
		ExtractFunc: func(ctx context.Context, pageURL string) ([]entity.ImageCandidate, error) {
			return candidates("https://example.com/a.png"), nil
		},
	}
	validator := &mockValidator{
		ValidateFunc: func(ctx context.Context, image []byte, siteURL, siteName string) (*entity.Validation, error) {
			// is_logo true but below the 70 threshold
			return &entity.Validation{IsLogo: true, Confidence: 69}, nil
		},
	}

	uc := usecase.NewLogoFinderUsecase(extractor, usecase.NewRanker(usecase.RankerConfig{}), &mockDownloader{}, validator, nil, nil)
	result, err := uc.FindLogo(ctx, "https://example.com", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.LogoFound {
		t.Error("confidence 69 must not be accepted")
	}
	if result.Error == "" {
		t.Error("expected an error message in the result")
	}
}

func TestLogoFinderUsecase_FindLogo_SkipsFailedCandidates(t *testing.T) {
	ctx := context.Background()
	extractor := &mockExtractor{
		ExtractFunc: func(ctx context.Context, pageURL string) ([]entity.ImageCandidate, error) {
			return candidates("https://example.com/broken.png", "https://example.com/ok.png"), nil
		},
	}
	downloader := &mockDownloader{
		DownloadFunc: func(ctx context.Context, imageURL string, maxSize int64) ([]byte, error) {
			if imageURL == "https://example.com/broken.png" {
				return nil, errors.New("connection refused")
			}
			return []byte("fake-image"), nil
		},
	}
	validator := &mockValidator{
		ValidateFunc: func(ctx context.Context, image []byte, siteURL, siteName string) (*entity.Validation, error) {
			return &entity.Validation{IsLogo: true, Confidence: 90}, nil
		},
	}

	uc := usecase.NewLogoFinderUsecase(extractor, usecase.NewRanker(usecase.RankerConfig{}), downloader, validator, nil, nil)
	result, err := uc.FindLogo(ctx, "https://example.com", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.LogoFound || result.LogoURL != "https://example.com/ok.png" {
		t.Errorf("expected the second candidate after a download failure, got %+v", result)
	}
}

func TestLogoFinderUsecase_FindLogo_DiscoveryFailure(t *testing.T) {
	ctx := context.Background()
	extractor := &mockExtractor{
		ExtractFunc: func(ctx context.Context, pageURL string) ([]entity.ImageCandidate, error) {
			return nil, errors.New("timeout")
		},
	}

	uc := usecase.NewLogoFinderUsecase(extractor, usecase.NewRanker(usecase.RankerConfig{}), &mockDownloader{}, &mockValidator{}, nil, nil)
	result, err := uc.FindLogo(ctx, "https://example.com", "")
	if err != nil {
		t.Fatalf("discovery failures must not abort the batch: %v", err)
	}
	if result.LogoFound {
		t.Error("no logo can be found when discovery fails")
	}
	if result.Error == "" {
		t.Error("discovery failure must be recorded in the result")
	}
}

func TestLogoFinderUsecase_FindLogo_EmptyURL(t *testing.T) {
	uc := usecase.NewLogoFinderUsecase(&mockExtractor{}, usecase.NewRanker(usecase.RankerConfig{}), &mockDownloader{}, &mockValidator{}, nil, nil)
	if _, err := uc.FindLogo(context.Background(), "", ""); err == nil {
		t.Fatal("expected an error for an empty site URL")
	}
}

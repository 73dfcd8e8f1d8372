// Package usecase implements the website design audit.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wmastover/labupops-lead-qualifier/internal/feature/audit/domain/entity"
)

// Screenshotter captures a full-page screenshot of a URL.
// Following Go convention, interfaces are defined on the consumer (usecase) side.
type Screenshotter interface {
	Screenshot(ctx context.Context, pageURL string) ([]byte, error)
}

// DesignClassifier judges a screenshot as modern or outdated.
type DesignClassifier interface {
	ClassifyDesign(ctx context.Context, screenshot []byte) (*entity.Assessment, error)
}

// ScreenshotStore persists screenshots for later inspection.
type ScreenshotStore interface {
	// Save writes the screenshot and returns the stored path.
	Save(pageURL string, screenshot []byte) (string, error)
}

// Limiter paces external calls.
type Limiter interface {
	WaitIfNeeded()
}

// auditUsecase screenshots websites and classifies their design.
type auditUsecase struct {
	shooter    Screenshotter
	classifier DesignClassifier
	store      ScreenshotStore // optional
	limiter    Limiter         // optional
}

// NewAuditUsecase creates a new auditUsecase. store and limiter may be nil.
func NewAuditUsecase(shooter Screenshotter, classifier DesignClassifier, store ScreenshotStore, limiter Limiter) *auditUsecase {
	return &auditUsecase{shooter: shooter, classifier: classifier, store: store, limiter: limiter}
}

// AuditSite screenshots one website and judges its design. Failures never
// propagate as errors: a failed screenshot or classification yields an
// Unclear verdict with confidence 0 so a batch run always produces a row per
// site.
func (u *auditUsecase) AuditSite(ctx context.Context, pageURL string) *entity.AuditResult {
	result := &entity.AuditResult{
		URL:       pageURL,
		Timestamp: time.Now(),
		Judgment:  entity.JudgmentUnclear,
		Reason:    "Processing failed",
	}

	screenshot, err := u.shooter.Screenshot(ctx, pageURL)
	if err != nil {
		slog.Warn("screenshot failed", "url", pageURL, "error", err)
		result.Reason = "Failed to take screenshot"
		return result
	}
	result.ScreenshotTaken = true

	if u.store != nil {
		path, err := u.store.Save(pageURL, screenshot)
		if err != nil {
			slog.Warn("could not save screenshot", "url", pageURL, "error", err)
		} else {
			result.ScreenshotPath = path
		}
	}

	assessment, err := u.classifier.ClassifyDesign(ctx, screenshot)
	if err != nil {
		slog.Warn("design classification failed", "url", pageURL, "error", err)
		result.Reason = fmt.Sprintf("Analysis error: %v", err)
		return result
	}

	result.Judgment = normalizeJudgment(assessment.Judgment)
	result.Reason = assessment.Reason
	result.Confidence = assessment.Confidence
	slog.Info("site audited", "url", pageURL, "judgment", result.Judgment, "confidence", result.Confidence)
	return result
}

// AuditAll audits the URLs sequentially, pacing between sites.
func (u *auditUsecase) AuditAll(ctx context.Context, urls []string) []*entity.AuditResult {
	results := make([]*entity.AuditResult, 0, len(urls))
	for i, pageURL := range urls {
		slog.Info("auditing website", "url", pageURL, "index", i+1, "total", len(urls))
		results = append(results, u.AuditSite(ctx, pageURL))
		if u.limiter != nil && i < len(urls)-1 {
			u.limiter.WaitIfNeeded()
		}
	}
	return results
}

// normalizeJudgment clamps free-form model output to the known judgments.
func normalizeJudgment(j string) string {
	switch j {
	case entity.JudgmentModern, entity.JudgmentOutdated, entity.JudgmentUnclear:
		return j
	default:
		return entity.JudgmentUnclear
	}
}

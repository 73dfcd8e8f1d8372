// Package usecase implements the business logic of the logofinder feature.
package usecase

import (
	"sort"
	"strings"

	"github.com/wmastover/labupops-lead-qualifier/internal/feature/logofinder/domain/entity"
)

// DefaultRankLimit is how many ranked candidates are handed to validation.
const DefaultRankLimit = 10

// PositionBand awards Bonus to candidates whose top edge is above MaxY.
// Bands are evaluated in order; the first match wins.
type PositionBand struct {
	MaxY  float64
	Bonus float64
}

// SizeBand awards Bonus to candidates whose rendered size falls inside the
// band (inclusive on all edges).
type SizeBand struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
	Bonus     float64
}

// RankerConfig holds every knob of the scoring heuristic so tests can probe
// scoring sensitivity directly instead of reverse-engineering constants.
type RankerConfig struct {
	// Pre-filter: candidates smaller than this are discarded before scoring.
	MinWidth  float64
	MinHeight float64

	// Position bands, top of page first.
	PositionBands []PositionBand

	// Size bands, ideal first. The first matching band wins.
	SizeBands []SizeBand

	// Keywords matched as substrings against the lowercase
	// alt+class+id+src blob; each hit adds KeywordBonus.
	Keywords     []string
	KeywordBonus float64

	// Extra bonuses stacked on top of the generic keyword bonus.
	LogoBonus      float64 // blob contains "logo"
	BrandBonus     float64 // blob contains "brand"
	HeaderNavBonus float64 // blob contains any of "header", "nav", "brand"
}

// DefaultRankerConfig returns the reference weights. Logos sit in the page
// header at moderate sizes, so position and size dominate; keyword hits in
// alt/class/id/src break the remaining ties.
func DefaultRankerConfig() RankerConfig {
	return RankerConfig{
		MinWidth:  50,
		MinHeight: 20,
		PositionBands: []PositionBand{
			{MaxY: 150, Bonus: 3.0},
			{MaxY: 300, Bonus: 2.0},
			{MaxY: 600, Bonus: 1.0},
		},
		SizeBands: []SizeBand{
			{MinWidth: 100, MaxWidth: 400, MinHeight: 50, MaxHeight: 200, Bonus: 2.0},
			{MinWidth: 50, MaxWidth: 600, MinHeight: 20, MaxHeight: 300, Bonus: 1.0},
		},
		Keywords:       []string{"logo", "brand", "header", "nav", "company", "site"},
		KeywordBonus:   1.5,
		LogoBonus:      2.0,
		BrandBonus:     1.5,
		HeaderNavBonus: 1.0,
	}
}

// Ranker deduplicates, scores and orders logo candidates. It is a pure
// in-memory transformation with no shared state, safe for concurrent use on
// independent inputs.
type Ranker struct {
	cfg RankerConfig
}

// NewRanker creates a Ranker. A zero-value config falls back to the defaults.
func NewRanker(cfg RankerConfig) *Ranker {
	if cfg.Keywords == nil && cfg.PositionBands == nil && cfg.SizeBands == nil {
		cfg = DefaultRankerConfig()
	}
	return &Ranker{cfg: cfg}
}

// Rank drops too-small candidates, deduplicates by exact SourceURL (first
// occurrence wins, no URL normalization), then returns at most limit
// candidates in descending score order. Equal scores keep discovery order.
// An empty input yields an empty output.
func (r *Ranker) Rank(candidates []entity.ImageCandidate, limit int) []entity.ImageCandidate {
	if limit <= 0 {
		limit = DefaultRankLimit
	}

	seen := make(map[string]struct{}, len(candidates))
	unique := make([]entity.ImageCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Width < r.cfg.MinWidth || c.Height < r.cfg.MinHeight {
			continue
		}
		if _, ok := seen[c.SourceURL]; ok {
			continue
		}
		seen[c.SourceURL] = struct{}{}
		unique = append(unique, c)
	}

	scores := make([]float64, len(unique))
	for i, c := range unique {
		scores[i] = r.Score(c)
	}
	idx := make([]int, len(unique))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})

	if len(idx) > limit {
		idx = idx[:limit]
	}
	out := make([]entity.ImageCandidate, len(idx))
	for i, j := range idx {
		out[i] = unique[j]
	}
	return out
}

// Score computes the additive heuristic score of one candidate. The score is
// unbounded above and only meaningful for relative ordering. A missing
// bounding box counts as y=0 and so takes the top positional bonus; that bias
// is deliberate and matched by the pre-filter, which usually removes such
// candidates on size.
func (r *Ranker) Score(c entity.ImageCandidate) float64 {
	var score float64

	for _, band := range r.cfg.PositionBands {
		if c.Position.Y < band.MaxY {
			score += band.Bonus
			break
		}
	}

	for _, band := range r.cfg.SizeBands {
		if c.Width >= band.MinWidth && c.Width <= band.MaxWidth &&
			c.Height >= band.MinHeight && c.Height <= band.MaxHeight {
			score += band.Bonus
			break
		}
	}

	blob := strings.ToLower(c.AltText + " " + c.CSSClass + " " + c.ElementID + " " + c.SourceURL)
	for _, kw := range r.cfg.Keywords {
		if strings.Contains(blob, kw) {
			score += r.cfg.KeywordBonus
		}
	}
	if strings.Contains(blob, "logo") {
		score += r.cfg.LogoBonus
	}
	if strings.Contains(blob, "brand") {
		score += r.cfg.BrandBonus
	}
	if strings.Contains(blob, "header") || strings.Contains(blob, "nav") || strings.Contains(blob, "brand") {
		score += r.cfg.HeaderNavBonus
	}

	return score
}

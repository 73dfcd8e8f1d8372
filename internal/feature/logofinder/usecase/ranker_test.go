package usecase_test

import (
	"fmt"
	"testing"

	"github.com/wmastover/labupops-lead-qualifier/internal/feature/logofinder/domain/entity"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/logofinder/usecase"
)

// headerCandidate returns a candidate that passes the pre-filter and sits in
// the header band. Fields are overridden per test.
func headerCandidate(src string) entity.ImageCandidate {
	return entity.ImageCandidate{
		SourceURL: src,
		Width:     200,
		Height:    100,
		Position:  entity.Box{X: 10, Y: 100, Width: 200, Height: 100},
	}
}

func TestRanker_Rank_EmptyInput(t *testing.T) {
	r := usecase.NewRanker(usecase.RankerConfig{})

	got := r.Rank(nil, 10)
	if len(got) != 0 {
		t.Fatalf("expected empty output for nil input, got %d candidates", len(got))
	}
	got = r.Rank([]entity.ImageCandidate{}, 10)
	if len(got) != 0 {
		t.Fatalf("expected empty output for empty input, got %d candidates", len(got))
	}
}

func TestRanker_Rank_DeduplicatesBySourceURL(t *testing.T) {
	r := usecase.NewRanker(usecase.RankerConfig{})

	first := headerCandidate("https://example.com/img/logo.png")
	first.AltText = "site logo"
	duplicate := headerCandidate("https://example.com/img/logo.png")
	duplicate.AltText = "something else entirely"
	duplicate.Position.Y = 700

	got := r.Rank([]entity.ImageCandidate{first, duplicate}, 10)
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate after dedupe, got %d", len(got))
	}
	if got[0].AltText != "site logo" {
		t.Errorf("first-seen candidate must win: got alt %q", got[0].AltText)
	}
}

func TestRanker_Rank_NoURLNormalization(t *testing.T) {
	r := usecase.NewRanker(usecase.RankerConfig{})

	a := headerCandidate("https://example.com/logo.png")
	b := headerCandidate("https://example.com/logo.png?v=2")

	got := r.Rank([]entity.ImageCandidate{a, b}, 10)
	if len(got) != 2 {
		t.Fatalf("URL variants are distinct candidates, expected 2, got %d", len(got))
	}
}

func TestRanker_Rank_PreFilterDropsSmallImages(t *testing.T) {
	r := usecase.NewRanker(usecase.RankerConfig{})

	small := headerCandidate("https://example.com/tiny.png")
	small.Width = 40 // below the 50px floor
	small.AltText = "company logo brand header nav site"

	narrow := headerCandidate("https://example.com/narrow.png")
	narrow.Height = 19

	got := r.Rank([]entity.ImageCandidate{small, narrow}, 10)
	if len(got) != 0 {
		t.Fatalf("pre-filter must drop undersized candidates regardless of other signals, got %d", len(got))
	}
}

func TestRanker_Rank_KeywordSensitivity(t *testing.T) {
	r := usecase.NewRanker(usecase.RankerConfig{})

	plain := headerCandidate("https://example.com/a.png")
	withKeyword := headerCandidate("https://example.com/b.png")
	withKeyword.AltText = "Company Logo"

	if rs, ps := r.Score(withKeyword), r.Score(plain); rs <= ps {
		t.Fatalf("keyword candidate must score strictly higher: %v <= %v", rs, ps)
	}

	got := r.Rank([]entity.ImageCandidate{plain, withKeyword}, 10)
	if got[0].SourceURL != withKeyword.SourceURL {
		t.Errorf("keyword candidate must rank first, got %q", got[0].SourceURL)
	}
}

func TestRanker_Rank_PositionalSensitivity(t *testing.T) {
	r := usecase.NewRanker(usecase.RankerConfig{})

	low := headerCandidate("https://example.com/low.png")
	low.Position.Y = 700
	high := headerCandidate("https://example.com/high.png")
	high.Position.Y = 50

	got := r.Rank([]entity.ImageCandidate{low, high}, 10)
	if got[0].SourceURL != high.SourceURL {
		t.Errorf("candidate at y=50 must outrank y=700, got %q first", got[0].SourceURL)
	}
}

func TestRanker_Rank_StableForEqualScores(t *testing.T) {
	r := usecase.NewRanker(usecase.RankerConfig{})

	var in []entity.ImageCandidate
	for i := 0; i < 5; i++ {
		in = append(in, headerCandidate(fmt.Sprintf("https://example.com/%d.png", i)))
	}

	got := r.Rank(in, 10)
	if len(got) != 5 {
		t.Fatalf("expected 5 candidates, got %d", len(got))
	}
	for i, c := range got {
		if want := fmt.Sprintf("https://example.com/%d.png", i); c.SourceURL != want {
			t.Errorf("position %d: discovery order not preserved, got %q want %q", i, c.SourceURL, want)
		}
	}
}

func TestRanker_Rank_TruncatesToLimit(t *testing.T) {
	r := usecase.NewRanker(usecase.RankerConfig{})

	var in []entity.ImageCandidate
	for i := 0; i < 25; i++ {
		in = append(in, headerCandidate(fmt.Sprintf("https://example.com/%d.png", i)))
	}

	if got := r.Rank(in, 3); len(got) != 3 {
		t.Errorf("limit=3: got %d candidates", len(got))
	}
	// limit <= 0 falls back to the default of 10
	if got := r.Rank(in, 0); len(got) != usecase.DefaultRankLimit {
		t.Errorf("limit=0: got %d candidates, want %d", len(got), usecase.DefaultRankLimit)
	}
}

func TestRanker_Rank_Scenario(t *testing.T) {
	r := usecase.NewRanker(usecase.RankerConfig{})

	a := headerCandidate("https://example.com/a.png")
	a.AltText = "site logo"
	b := headerCandidate("https://example.com/b.png")
	b.Position.Y = 700
	c := headerCandidate("https://example.com/a.png") // duplicate of A's URL
	c.AltText = "different attributes"

	got := r.Rank([]entity.ImageCandidate{a, b, c}, 1)
	if len(got) != 1 {
		t.Fatalf("limit=1: got %d candidates", len(got))
	}
	if got[0].SourceURL != a.SourceURL || got[0].AltText != "site logo" {
		t.Errorf("expected A to win, got %+v", got[0])
	}
}

func TestRanker_Score(t *testing.T) {
	r := usecase.NewRanker(usecase.RankerConfig{})

	testCases := []struct {
		name      string
		candidate entity.ImageCandidate
		expected  float64
	}{
		{
			name: "header position, ideal size, no keywords",
			candidate: entity.ImageCandidate{
				SourceURL: "https://example.com/a.png",
				Width:     200, Height: 100,
				Position: entity.Box{Y: 100},
			},
			// 3.0 position + 2.0 ideal size
			expected: 5.0,
		},
		{
			name: "logo keyword stacks generic and specific bonuses",
			candidate: entity.ImageCandidate{
				SourceURL: "https://example.com/a.png",
				AltText:   "logo",
				Width:     200, Height: 100,
				Position: entity.Box{Y: 100},
			},
			// 3.0 + 2.0 + 1.5 keyword + 2.0 logo extra
			expected: 8.5,
		},
		{
			name: "brand keyword also triggers header/nav/brand bonus",
			candidate: entity.ImageCandidate{
				SourceURL: "https://example.com/a.png",
				CSSClass:  "brand",
				Width:     200, Height: 100,
				Position: entity.Box{Y: 100},
			},
			// 3.0 + 2.0 + 1.5 keyword + 1.5 brand extra + 1.0 header/nav/brand
			expected: 9.0,
		},
		{
			name: "acceptable size band",
			candidate: entity.ImageCandidate{
				SourceURL: "https://example.com/a.png",
				Width:     500, Height: 250,
				Position: entity.Box{Y: 100},
			},
			// 3.0 + 1.0 acceptable size
			expected: 4.0,
		},
		{
			name: "band boundaries are inclusive: width=400 is still ideal",
			candidate: entity.ImageCandidate{
				SourceURL: "https://example.com/a.png",
				Width:     400, Height: 200,
				Position: entity.Box{Y: 100},
			},
			expected: 5.0,
		},
		{
			name: "width=600 exactly hits the acceptable band",
			candidate: entity.ImageCandidate{
				SourceURL: "https://example.com/a.png",
				Width:     600, Height: 300,
				Position: entity.Box{Y: 100},
			},
			expected: 4.0,
		},
		{
			name: "below the fold gets no positional bonus",
			candidate: entity.ImageCandidate{
				SourceURL: "https://example.com/a.png",
				Width:     200, Height: 100,
				Position: entity.Box{Y: 600},
			},
			expected: 2.0,
		},
		{
			name: "zero bounding box takes the top positional bonus",
			candidate: entity.ImageCandidate{
				SourceURL: "https://example.com/a.png",
				Width:     200, Height: 100,
			},
			expected: 5.0,
		},
		{
			name: "keyword in source URL counts",
			candidate: entity.ImageCandidate{
				SourceURL: "https://example.com/images/site-header.png",
				Width:     200, Height: 100,
				Position: entity.Box{Y: 100},
			},
			// 3.0 + 2.0 + 1.5*2 (header, site) + 1.0 header/nav/brand
			expected: 9.0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Score(tc.candidate); got != tc.expected {
				t.Errorf("score mismatch: got %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestRanker_CustomConfig(t *testing.T) {
	// Zeroing every weight but the keyword bonus isolates keyword scoring.
	cfg := usecase.RankerConfig{
		MinWidth:     1,
		MinHeight:    1,
		Keywords:     []string{"takeaway"},
		KeywordBonus: 4.0,
	}
	r := usecase.NewRanker(cfg)

	hit := entity.ImageCandidate{SourceURL: "https://example.com/takeaway.png", Width: 10, Height: 10}
	miss := entity.ImageCandidate{SourceURL: "https://example.com/other.png", Width: 10, Height: 10}

	if got := r.Score(hit); got != 4.0 {
		t.Errorf("custom keyword score: got %v, want 4.0", got)
	}
	if got := r.Score(miss); got != 0.0 {
		t.Errorf("non-matching score: got %v, want 0.0", got)
	}

	got := r.Rank([]entity.ImageCandidate{miss, hit}, 10)
	if got[0].SourceURL != hit.SourceURL {
		t.Errorf("custom keyword must rank first, got %q", got[0].SourceURL)
	}
}

// Package usecase implements the lead scraping business logic.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wmastover/labupops-lead-qualifier/internal/feature/places/domain/entity"
)

// DefaultRadius is the default search radius in meters.
const DefaultRadius = 2000

// DefaultFoodTypes are the place types searched when none is given.
var DefaultFoodTypes = []string{"restaurant", "meal_takeaway"}

// Geocoder resolves a town name to coordinates.
// Following Go convention, interfaces are defined on the consumer (usecase) side.
type Geocoder interface {
	Geocode(ctx context.Context, town string) (entity.LatLng, error)
}

// PlaceSearcher queries the places API.
type PlaceSearcher interface {
	// SearchNearby returns all result pages for one place type.
	SearchNearby(ctx context.Context, loc entity.LatLng, radius int, placeType string) ([]entity.Place, error)
	// PlaceDetails fetches extra fields for a single place.
	PlaceDetails(ctx context.Context, placeID string) (*entity.PlaceDetails, error)
}

// Limiter paces external calls.
type Limiter interface {
	WaitIfNeeded()
}

// ScrapeParams selects what to search for.
type ScrapeParams struct {
	Town           string
	PlaceType      string // empty means the default food types
	Radius         int    // meters, 0 means DefaultRadius
	IncludeDetails bool   // also fetch opening hours
}

// scrapeUsecase searches a town for establishments and enriches each hit with
// contact details.
type scrapeUsecase struct {
	geocoder Geocoder
	searcher PlaceSearcher
	limiter  Limiter // optional
}

// NewScrapeUsecase creates a new scrapeUsecase. limiter may be nil.
func NewScrapeUsecase(geocoder Geocoder, searcher PlaceSearcher, limiter Limiter) *scrapeUsecase {
	return &scrapeUsecase{geocoder: geocoder, searcher: searcher, limiter: limiter}
}

// Scrape geocodes the town, runs one nearby search per place type and merges
// the results. Duplicate place IDs keep their first occurrence. Places missing
// a phone number or website get a details lookup; details failures are logged
// and the place keeps its search-result fields.
func (u *scrapeUsecase) Scrape(ctx context.Context, p ScrapeParams) ([]entity.Place, error) {
	if strings.TrimSpace(p.Town) == "" {
		return nil, fmt.Errorf("town name is required")
	}
	radius := p.Radius
	if radius <= 0 {
		radius = DefaultRadius
	}

	loc, err := u.geocoder.Geocode(ctx, p.Town)
	if err != nil {
		return nil, fmt.Errorf("geocode %q: %w", p.Town, err)
	}
	slog.Info("town geocoded", "town", p.Town, "lat", loc.Lat, "lng", loc.Lng)

	types := DefaultFoodTypes
	if p.PlaceType != "" {
		types = []string{p.PlaceType}
	}

	var all []entity.Place
	for _, placeType := range types {
		places, err := u.searcher.SearchNearby(ctx, loc, radius, placeType)
		if err != nil {
			return nil, fmt.Errorf("search %s: %w", placeType, err)
		}
		slog.Info("nearby search finished", "type", placeType, "count", len(places))
		all = append(all, places...)
	}

	unique := dedupeByPlaceID(all)
	slog.Info("unique establishments found", "count", len(unique))

	for i := range unique {
		u.enrich(ctx, &unique[i], p.IncludeDetails)
	}
	return unique, nil
}

// dedupeByPlaceID keeps the first occurrence per place ID. Places without an
// ID cannot be deduplicated and are dropped.
func dedupeByPlaceID(places []entity.Place) []entity.Place {
	seen := make(map[string]struct{}, len(places))
	out := make([]entity.Place, 0, len(places))
	for _, p := range places {
		if p.PlaceID == "" {
			continue
		}
		if _, ok := seen[p.PlaceID]; ok {
			continue
		}
		seen[p.PlaceID] = struct{}{}
		out = append(out, p)
	}
	return out
}

// enrich fills in phone, website and address from a details lookup when the
// search result lacks them. Opening hours cost an extra field and are only
// requested when includeDetails is set.
func (u *scrapeUsecase) enrich(ctx context.Context, p *entity.Place, includeDetails bool) {
	if !includeDetails && p.PhoneNumber != "" && p.Website != "" {
		return
	}

	// Pacing belongs with the request so failed lookups stay throttled too.
	if u.limiter != nil {
		u.limiter.WaitIfNeeded()
	}

	details, err := u.searcher.PlaceDetails(ctx, p.PlaceID)
	if err != nil {
		slog.Warn("place details lookup failed", "place_id", p.PlaceID, "error", err)
		return
	}
	if details.FormattedAddress != "" {
		p.Address = details.FormattedAddress
	}
	if p.PhoneNumber == "" {
		p.PhoneNumber = details.PhoneNumber
	}
	if p.Website == "" {
		p.Website = details.Website
	}
	if includeDetails {
		p.OpeningHours = strings.Join(details.OpeningHours, "; ")
	}
}

package googleplaces

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/wmastover/labupops-lead-qualifier/internal/feature/places/adapters/googleplaces/dto"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/places/domain/entity"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/places/usecase"
)

// detailsFields are the Place Details fields the scraper needs.
const detailsFields = "name,formatted_address,formatted_phone_number,website,rating,user_ratings_total,business_status,opening_hours,price_level,type"

// Client queries the Google Maps web services.
type Client struct {
	cfg    Config
	client *http.Client
}

// Client implements the scraper's Geocoder and PlaceSearcher; verified at
// compile time.
var (
	_ usecase.Geocoder      = (*Client)(nil)
	_ usecase.PlaceSearcher = (*Client)(nil)
)

// NewClient creates a new Client with the given configuration and HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// Geocode resolves a town name to coordinates.
func (c *Client) Geocode(ctx context.Context, town string) (entity.LatLng, error) {
	q := url.Values{}
	q.Set("address", town)
	q.Set("key", c.cfg.APIKey)

	var body dto.GeocodeResponse
	if err := c.get(ctx, "/geocode/json", q, &body); err != nil {
		return entity.LatLng{}, err
	}
	if body.Status != "OK" {
		return entity.LatLng{}, fmt.Errorf("geocode %q: %s %s", town, body.Status, body.ErrorMessage)
	}
	if len(body.Results) == 0 {
		return entity.LatLng{}, fmt.Errorf("geocode %q: no results", town)
	}
	loc := body.Results[0].Geometry.Location
	return entity.LatLng{Lat: loc.Lat, Lng: loc.Lng}, nil
}

// SearchNearby runs a Nearby Search for one place type and follows
// next_page_token pagination until exhausted.
func (c *Client) SearchNearby(ctx context.Context, loc entity.LatLng, radius int, placeType string) ([]entity.Place, error) {
	q := url.Values{}
	q.Set("location", fmt.Sprintf("%f,%f", loc.Lat, loc.Lng))
	q.Set("radius", strconv.Itoa(radius))
	q.Set("type", placeType)
	q.Set("key", c.cfg.APIKey)

	var places []entity.Place
	for {
		var body dto.NearbyResponse
		if err := c.get(ctx, "/place/nearbysearch/json", q, &body); err != nil {
			return nil, err
		}
		if body.Status != "OK" && body.Status != "ZERO_RESULTS" {
			return nil, fmt.Errorf("nearby search %s: %s %s", placeType, body.Status, body.ErrorMessage)
		}

		for _, r := range body.Results {
			places = append(places, entity.Place{
				Name:             r.Name,
				PlaceID:          r.PlaceID,
				Address:          r.Vicinity,
				Latitude:         r.Geometry.Location.Lat,
				Longitude:        r.Geometry.Location.Lng,
				Rating:           r.Rating,
				UserRatingsTotal: r.UserRatingsTotal,
				PriceLevel:       r.PriceLevel,
				Types:            r.Types,
				BusinessStatus:   r.BusinessStatus,
			})
		}

		if body.NextPageToken == "" {
			return places, nil
		}
		slog.Info("following next page", "type", placeType, "collected", len(places))
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.cfg.PageDelay):
		}
		q = url.Values{}
		q.Set("pagetoken", body.NextPageToken)
		q.Set("key", c.cfg.APIKey)
	}
}

// PlaceDetails fetches contact and opening-hours fields for one place.
func (c *Client) PlaceDetails(ctx context.Context, placeID string) (*entity.PlaceDetails, error) {
	q := url.Values{}
	q.Set("place_id", placeID)
	q.Set("fields", detailsFields)
	q.Set("key", c.cfg.APIKey)

	var body dto.DetailsResponse
	if err := c.get(ctx, "/place/details/json", q, &body); err != nil {
		return nil, err
	}
	if body.Status != "OK" {
		return nil, fmt.Errorf("place details %s: %s %s", placeID, body.Status, body.ErrorMessage)
	}
	return &entity.PlaceDetails{
		FormattedAddress: body.Result.FormattedAddress,
		PhoneNumber:      body.Result.FormattedPhoneNumber,
		Website:          body.Result.Website,
		OpeningHours:     body.Result.OpeningHours.WeekdayText,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	u := fmt.Sprintf("%s%s?%s", c.cfg.BaseURL, path, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("google maps http %d", res.StatusCode)
	}
	return json.NewDecoder(res.Body).Decode(out)
}

// Package entity defines the domain entities of the places feature.
package entity

// LatLng is a geographic coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place is one establishment returned by a nearby search.
type Place struct {
	Name             string
	PlaceID          string
	Address          string
	Latitude         float64
	Longitude        float64
	Rating           float64
	UserRatingsTotal int
	PriceLevel       int
	Types            []string
	BusinessStatus   string
	PhoneNumber      string
	Website          string
	OpeningHours     string
}

// PlaceDetails is the extra information available from a details lookup.
type PlaceDetails struct {
	FormattedAddress string
	PhoneNumber      string
	Website          string
	OpeningHours     []string
}

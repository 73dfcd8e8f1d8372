// Package dto defines the JSON response shapes of the Google Maps web services.
package dto

// Location is a coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Geometry wraps a result location.
type Geometry struct {
	Location Location `json:"location"`
}

// GeocodeResponse is the body of a Geocoding API call.
type GeocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		Geometry Geometry `json:"geometry"`
	} `json:"results"`
}

// NearbyPlace is one result of a Nearby Search.
type NearbyPlace struct {
	Name             string   `json:"name"`
	PlaceID          string   `json:"place_id"`
	Vicinity         string   `json:"vicinity"`
	Geometry         Geometry `json:"geometry"`
	Rating           float64  `json:"rating"`
	UserRatingsTotal int      `json:"user_ratings_total"`
	PriceLevel       int      `json:"price_level"`
	Types            []string `json:"types"`
	BusinessStatus   string   `json:"business_status"`
}

// NearbyResponse is the body of a Nearby Search call.
type NearbyResponse struct {
	Status        string        `json:"status"`
	ErrorMessage  string        `json:"error_message"`
	Results       []NearbyPlace `json:"results"`
	NextPageToken string        `json:"next_page_token"`
}

// DetailsResponse is the body of a Place Details call.
type DetailsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Result       struct {
		FormattedAddress     string `json:"formatted_address"`
		FormattedPhoneNumber string `json:"formatted_phone_number"`
		Website              string `json:"website"`
		OpeningHours         struct {
			WeekdayText []string `json:"weekday_text"`
		} `json:"opening_hours"`
	} `json:"result"`
}

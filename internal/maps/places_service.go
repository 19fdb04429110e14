// README: Google Places adapter: text autocomplete and place-to-coordinate resolution.
package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"bettercommute/internal/types"
)

// Prediction is one autocomplete candidate offered to the user.
type Prediction struct {
	Label   string `json:"label"`
	PlaceID string `json:"place_id"`
}

// placesAPI is the slice of the Google Maps client the places service uses.
// *maps.Client satisfies it.
type placesAPI interface {
	PlaceAutocomplete(ctx context.Context, r *maps.PlaceAutocompleteRequest) (maps.AutocompleteResponse, error)
	PlaceDetails(ctx context.Context, r *maps.PlaceDetailsRequest) (maps.PlaceDetailsResult, error)
}

// PlacesService handles interactions with the Google Places API.
type PlacesService struct {
	client placesAPI
}

// NewPlacesService creates a PlacesService with the given API key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

func newPlacesServiceWithClient(client placesAPI) *PlacesService {
	return &PlacesService{client: client}
}

// Search returns autocomplete predictions for a free-text query, ordered as
// the API returns them. Any lookup failure yields an empty list, never an
// error: the user retries by typing.
func (s *PlacesService) Search(ctx context.Context, query string) []Prediction {
	if query == "" {
		return nil
	}
	resp, err := s.client.PlaceAutocomplete(ctx, &maps.PlaceAutocompleteRequest{
		Input: query,
	})
	if err != nil {
		return nil
	}
	preds := make([]Prediction, 0, len(resp.Predictions))
	for _, p := range resp.Predictions {
		preds = append(preds, Prediction{Label: p.Description, PlaceID: p.PlaceID})
	}
	return preds
}

// Resolve looks up the coordinate for a prediction's place ID. The boolean is
// false when the place cannot be resolved.
func (s *PlacesService) Resolve(ctx context.Context, placeID string) (types.Point, bool) {
	if placeID == "" {
		return types.Point{}, false
	}
	result, err := s.client.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID: placeID,
		Fields:  []maps.PlaceDetailsFieldMask{maps.PlaceDetailsFieldMaskGeometry},
	})
	if err != nil {
		return types.Point{}, false
	}
	loc := result.Geometry.Location
	return types.Point{Lat: loc.Lat, Lng: loc.Lng}, true
}

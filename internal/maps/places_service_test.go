// README: Places service tests with a stubbed Places client.
package maps

import (
	"context"
	"errors"
	"testing"

	"googlemaps.github.io/maps"
)

type stubPlaces struct {
	autocomplete    maps.AutocompleteResponse
	autocompleteErr error
	details         maps.PlaceDetailsResult
	detailsErr      error
}

func (s *stubPlaces) PlaceAutocomplete(_ context.Context, _ *maps.PlaceAutocompleteRequest) (maps.AutocompleteResponse, error) {
	return s.autocomplete, s.autocompleteErr
}

func (s *stubPlaces) PlaceDetails(_ context.Context, _ *maps.PlaceDetailsRequest) (maps.PlaceDetailsResult, error) {
	return s.details, s.detailsErr
}

func TestSearch_MapsPredictions(t *testing.T) {
	svc := newPlacesServiceWithClient(&stubPlaces{
		autocomplete: maps.AutocompleteResponse{
			Predictions: []maps.AutocompletePrediction{
				{Description: "Taipei 101, Taipei", PlaceID: "place-101"},
				{Description: "Taipei Main Station", PlaceID: "place-main"},
			},
		},
	})

	preds := svc.Search(context.Background(), "taipei")
	if len(preds) != 2 {
		t.Fatalf("got %d predictions, want 2", len(preds))
	}
	if preds[0].Label != "Taipei 101, Taipei" || preds[0].PlaceID != "place-101" {
		t.Errorf("first prediction = %+v", preds[0])
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	svc := newPlacesServiceWithClient(&stubPlaces{})
	if preds := svc.Search(context.Background(), ""); preds != nil {
		t.Fatalf("got %v, want nil for empty query", preds)
	}
}

func TestSearch_APIErrorYieldsEmpty(t *testing.T) {
	svc := newPlacesServiceWithClient(&stubPlaces{autocompleteErr: errors.New("unavailable")})
	if preds := svc.Search(context.Background(), "taipei"); preds != nil {
		t.Fatalf("got %v, want nil on API error", preds)
	}
}

func TestResolve_ReturnsCoordinate(t *testing.T) {
	svc := newPlacesServiceWithClient(&stubPlaces{
		details: maps.PlaceDetailsResult{
			Geometry: maps.AddressGeometry{
				Location: maps.LatLng{Lat: 25.0339, Lng: 121.5645},
			},
		},
	})

	point, ok := svc.Resolve(context.Background(), "place-101")
	if !ok {
		t.Fatal("expected resolution to succeed")
	}
	if point.Lat != 25.0339 || point.Lng != 121.5645 {
		t.Fatalf("point = %+v", point)
	}
}

func TestResolve_Failure(t *testing.T) {
	svc := newPlacesServiceWithClient(&stubPlaces{detailsErr: errors.New("not found")})
	if _, ok := svc.Resolve(context.Background(), "place-101"); ok {
		t.Fatal("expected resolution to fail")
	}

	if _, ok := svc.Resolve(context.Background(), ""); ok {
		t.Fatal("expected empty place ID to fail without a lookup")
	}
}

// README: Google Directions adapter producing route estimates with an empty fallback.
package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"bettercommute/internal/types"
)

// RouteEstimate is the path and driving distance between two coordinates.
// An empty path with zero distance is the explicit no-route fallback, not an
// error: pricing with it yields a zero total.
type RouteEstimate struct {
	Path       []types.Point `json:"path"`
	DistanceKm float64       `json:"distance_km"`
}

// Empty reports whether this estimate is the no-route fallback.
func (e RouteEstimate) Empty() bool {
	return len(e.Path) == 0 && e.DistanceKm == 0
}

// directionsAPI is the slice of the Google Maps client the route service
// uses. *maps.Client satisfies it.
type directionsAPI interface {
	Directions(ctx context.Context, r *maps.DirectionsRequest) ([]maps.Route, []maps.GeocodedWaypoint, error)
}

// RouteService handles interactions with the Google Directions API.
type RouteService struct {
	client directionsAPI
}

// NewRouteService creates a RouteService with the given API key.
func NewRouteService(apiKey string) (*RouteService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &RouteService{client: client}, nil
}

func newRouteServiceWithClient(client directionsAPI) *RouteService {
	return &RouteService{client: client}
}

// Route returns the driving route between origin and destination. Any failure
// (API error, no routes, undecodable polyline) falls back to the empty
// estimate; the caller never sees an error.
func (s *RouteService) Route(ctx context.Context, origin, destination types.Point) RouteEstimate {
	routes, _, err := s.client.Directions(ctx, &maps.DirectionsRequest{
		Origin:      formatLatLng(origin),
		Destination: formatLatLng(destination),
		Mode:        maps.TravelModeDriving,
	})
	if err != nil || len(routes) == 0 || len(routes[0].Legs) == 0 {
		return RouteEstimate{}
	}

	route := routes[0]
	leg := route.Legs[0]

	decoded, err := route.OverviewPolyline.Decode()
	if err != nil {
		return RouteEstimate{}
	}
	path := make([]types.Point, 0, len(decoded))
	for _, ll := range decoded {
		path = append(path, types.Point{Lat: ll.Lat, Lng: ll.Lng})
	}

	return RouteEstimate{
		Path:       path,
		DistanceKm: float64(leg.Distance.Meters) / 1000.0,
	}
}

func formatLatLng(p types.Point) string {
	return fmt.Sprintf("%f,%f", p.Lat, p.Lng)
}

package clients

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// GeocodeClientWrapper resolves a place name to coordinates. The interface
// exists so handlers can be tested without the Google Maps SDK.
type GeocodeClientWrapper interface {
	Geocode(ctx context.Context, name string) (lat, long float64, err error)
}

// GeocodeClient implements GeocodeClientWrapper using the Google Maps API.
type GeocodeClient struct {
	Client *maps.Client
}

// NewGeocodeClient creates a new GeocodeClient with the given API key.
func NewGeocodeClient(apiKey string) (*GeocodeClient, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GeocodeClient{Client: client}, nil
}

// Geocode returns the coordinates of the first geocoding result for name.
func (g *GeocodeClient) Geocode(ctx context.Context, name string) (float64, float64, error) {
	results, err := g.Client.Geocode(ctx, &maps.GeocodingRequest{Address: name})
	if err != nil {
		return 0, 0, fmt.Errorf("geocoding api error: %w", err)
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("no geocoding result for %q", name)
	}
	loc := results[0].Geometry.Location
	return loc.Lat, loc.Lng, nil
}

// README: Routed driving distance over the Google Distance Matrix API.
package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"jatriwheels/internal/modules/quote"
)

// DistanceService returns routed driving distances between place
// references. It implements quote.DistanceProvider.
type DistanceService struct {
	client *maps.Client
}

// NewDistanceService creates a new DistanceService with the given API key.
func NewDistanceService(apiKey string) (*DistanceService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &DistanceService{client: client}, nil
}

// RouteDistance returns the driving distance in kilometres from origin
// to dest. It assumes driving mode.
func (s *DistanceService) RouteDistance(ctx context.Context, origin, dest quote.PlaceReference) (float64, error) {
	r := &maps.DistanceMatrixRequest{
		Origins:      []string{"place_id:" + string(origin.ID)},
		Destinations: []string{"place_id:" + string(dest.ID)},
		Mode:         maps.TravelModeDriving,
	}

	resp, err := s.client.DistanceMatrix(ctx, r)
	if err != nil {
		return 0, fmt.Errorf("distance matrix api error: %w", err)
	}
	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return 0, fmt.Errorf("no distance element returned")
	}

	el := resp.Rows[0].Elements[0]
	if el.Status != "OK" {
		return 0, fmt.Errorf("distance element status %s", el.Status)
	}
	return float64(el.Distance.Meters) / 1000.0, nil
}

// README: Place resolution over the Google Geocoding API.
package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"jatriwheels/internal/modules/quote"
	"jatriwheels/internal/types"
)

// topLevelType is the Geocoding API tag for a state-level component.
const topLevelType = "administrative_area_level_1"

// GeocodeService resolves place references to coordinates and
// administrative components. It implements quote.PlaceResolver.
type GeocodeService struct {
	client *maps.Client
}

// NewGeocodeService creates a new GeocodeService with the given API key.
func NewGeocodeService(apiKey string) (*GeocodeService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GeocodeService{client: client}, nil
}

// Resolve geocodes the place ID and returns its coordinates plus every
// administrative component tagged with whether it is state level. An
// empty result set is an error; the caller fails closed on it.
func (s *GeocodeService) Resolve(ctx context.Context, ref quote.PlaceReference) (quote.ResolvedPlace, error) {
	r := &maps.GeocodingRequest{
		PlaceID: string(ref.ID),
		Region:  "IN", // Bias results to India
	}

	results, err := s.client.Geocode(ctx, r)
	if err != nil {
		return quote.ResolvedPlace{}, fmt.Errorf("geocode api error: %w", err)
	}
	if len(results) == 0 {
		return quote.ResolvedPlace{}, fmt.Errorf("no geocode result for %q", ref.Label)
	}

	first := results[0]
	place := quote.ResolvedPlace{
		Position: types.Point{
			Lat: first.Geometry.Location.Lat,
			Lng: first.Geometry.Location.Lng,
		},
		Address: first.FormattedAddress,
	}
	for _, c := range first.AddressComponents {
		place.Regions = append(place.Regions, quote.AdminComponent{
			Label:    c.LongName,
			TopLevel: hasType(c.Types, topLevelType),
		})
	}
	return place, nil
}

func hasType(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}

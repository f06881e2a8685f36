package directions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"pickbook/models"

	"github.com/twpayne/go-polyline"
)

// DirectionsService proxies route lookups so the Maps API key never reaches
// clients.
type DirectionsService interface {
	GetRoute(ctx context.Context, req models.DirectionsRequest) (*models.DirectionsResponse, error)
}

// DefaultDirectionsService calls the Google Directions API.
type DefaultDirectionsService struct {
	APIKey     string
	HTTPClient *http.Client
}

func NewDefaultDirectionsService(apiKey string) *DefaultDirectionsService {
	return &DefaultDirectionsService{
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// googleDirectionsResponse is the subset of the upstream payload we consume.
type googleDirectionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		OverviewPolyline struct {
			Points string `json:"points"`
		} `json:"overview_polyline"`
		Legs []struct {
			Distance struct {
				Text string `json:"text"`
			} `json:"distance"`
			Duration struct {
				Text string `json:"text"`
			} `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
}

// GetRoute fetches the route between two points and decodes its polyline.
func (s *DefaultDirectionsService) GetRoute(ctx context.Context, req models.DirectionsRequest) (*models.DirectionsResponse, error) {
	if s.APIKey == "" {
		return nil, fmt.Errorf("maps api key is not configured")
	}

	params := url.Values{}
	params.Set("origin", fmt.Sprintf("%f,%f", req.Origin.Lat, req.Origin.Lng))
	params.Set("destination", fmt.Sprintf("%f,%f", req.Destination.Lat, req.Destination.Lng))
	params.Set("key", s.APIKey)
	endpoint := "https://maps.googleapis.com/maps/api/directions/json?" + params.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build directions request: %w", err)
	}
	resp, err := s.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	var upstream googleDirectionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&upstream); err != nil {
		return nil, fmt.Errorf("failed to decode directions response: %w", err)
	}
	if upstream.Status != "OK" || len(upstream.Routes) == 0 {
		return nil, fmt.Errorf("no route found (status %s)", upstream.Status)
	}

	route := upstream.Routes[0]
	coords, err := DecodeRoutePolyline(route.OverviewPolyline.Points)
	if err != nil {
		return nil, err
	}

	out := &models.DirectionsResponse{
		Polyline:    route.OverviewPolyline.Points,
		Coordinates: coords,
	}
	if len(route.Legs) > 0 {
		out.Distance = route.Legs[0].Distance.Text
		out.Duration = route.Legs[0].Duration.Text
	}
	return out, nil
}

// DecodeRoutePolyline expands an encoded overview polyline into [lng, lat]
// pairs for map rendering.
func DecodeRoutePolyline(encoded string) ([][2]float64, error) {
	if encoded == "" {
		return nil, fmt.Errorf("empty polyline")
	}
	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("failed to decode polyline: %w", err)
	}

	out := make([][2]float64, 0, len(coords))
	for _, c := range coords {
		out = append(out, [2]float64{c[1], c[0]})
	}
	return out, nil
}

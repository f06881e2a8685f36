package models

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat" binding:"required"`
	Lng float64 `json:"lng" binding:"required"`
}

// DirectionsRequest asks for a route between two points.
type DirectionsRequest struct {
	Origin      LatLng `json:"origin" binding:"required"`
	Destination LatLng `json:"destination" binding:"required"`
}

// DirectionsResponse carries the route polyline decoded into coordinates
// ([lng, lat] pairs, ready for map rendering) plus the raw encoded form.
type DirectionsResponse struct {
	Polyline    string       `json:"polyline"`
	Coordinates [][2]float64 `json:"coordinates"`
	Distance    string       `json:"distance,omitempty"`
	Duration    string       `json:"duration,omitempty"`
}

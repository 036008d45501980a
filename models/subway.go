package models

// RouteRequest asks for the cheapest route between two stations.
type RouteRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// RouteSegment is one uninterrupted ride on a single line.
type RouteSegment struct {
	Line string `json:"line"`
	From string `json:"from"`
	To   string `json:"to"`
}

// RouteResponse carries the full routing answer. Found is false when
// the stations exist but no track connects them; the remaining route
// fields are then omitted.
type RouteResponse struct {
	RequestID       string            `json:"requestId"`
	Found           bool              `json:"found"`
	Start           string            `json:"start"`
	End             string            `json:"end"`
	Path            []string          `json:"path,omitempty"`
	ArrivalLines    map[string]string `json:"arrivalLines,omitempty"`
	Segments        []RouteSegment    `json:"segments,omitempty"`
	Transfers       []string          `json:"transfers,omitempty"`
	TotalDistanceKm float64           `json:"totalDistanceKm"`
	Fare            float64           `json:"fare"`
}

// NearbyStation is one station within the requested radius.
type NearbyStation struct {
	Station    string  `json:"station"`
	Line       string  `json:"line"`
	DistanceKm float64 `json:"distanceKm"`
}

// NearbyResponse lists the stations within a travel-distance radius of
// the requested station along its lines.
type NearbyResponse struct {
	Station       string          `json:"station"`
	MaxDistanceKm float64         `json:"maxDistanceKm"`
	Stations      []NearbyStation `json:"stations"`
}

// TransfersResponse maps every interchange station to its lines.
type TransfersResponse struct {
	Count     int                 `json:"count"`
	Transfers map[string][]string `json:"transfers"`
}

// FareResponse prices a trip distance.
type FareResponse struct {
	DistanceKm float64 `json:"distanceKm"`
	Fare       float64 `json:"fare"`
}

package types

// TransportOption describes a sustainable transport mode and its assumed
// average speed, selected by party size.
type TransportOption struct {
	Mode     string  `json:"mode" bson:"mode"`
	SpeedKmh float64 `json:"speed_kmh" bson:"speed_kmh"`
}

// RouteLeg is one hop between two consecutive itinerary activities.
type RouteLeg struct {
	From             string `json:"from" bson:"from"`
	To               string `json:"to" bson:"to"`
	TransportMode    string `json:"transport_mode" bson:"transport_mode"`
	EstimatedTimeMin int    `json:"estimated_time_min" bson:"estimated_time_min"`
}

// DayRoutePlan holds the ordered legs for one itinerary day.
type DayRoutePlan struct {
	RoutePlan []RouteLeg `json:"route_plan" bson:"route_plan"`
}

// RouteDocument is the persisted sustainable-routes record.
type RouteDocument struct {
	ID                string                  `json:"_id,omitempty" bson:"-"`
	Name              string                  `json:"name" bson:"name"`
	NumberOfPeople    int                     `json:"numberOfPeople" bson:"numberOfPeople"`
	DateOfVisit       string                  `json:"dateOfVisit" bson:"dateOfVisit"`
	SustainableRoutes map[string]DayRoutePlan `json:"sustainable_routes" bson:"sustainable_routes"`
}

// RoutesResponse wraps the stored route document for the HTTP response.
type RoutesResponse struct {
	Message string        `json:"message"`
	Data    RouteDocument `json:"data"`
}

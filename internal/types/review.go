package types

// PlaceReview is one analyzed review with its sentiment flag.
type PlaceReview struct {
	Location       string  `json:"Location"`
	Review         string  `json:"Review"`
	SentimentScore float64 `json:"Sentiment Score"`
	Flag           string  `json:"Flag"`
	Recommended    string  `json:"Recommended"`
}

// AccessiblePlace is a wheelchair-accessible attraction returned by the
// places provider.
type AccessiblePlace struct {
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Location     LatLng  `json:"location"`
	Rating       float64 `json:"rating,omitempty"`
	TotalRatings int     `json:"total_ratings,omitempty"`
}

// LatLng is a coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

package types

import "fmt"

// TouristProfile describes a tourist's travel preferences, used for
// similarity matching.
type TouristProfile struct {
	Name           string `json:"name" bson:"name"`
	PlaceToVisit   string `json:"placetovisit" bson:"placetovisit"`
	CurrentStay    string `json:"currentstay" bson:"currentstay"`
	Date           string `json:"date" bson:"date"`
	PurposeOfVisit string `json:"purposeofvisit" bson:"purposeofvisit"`
}

// Validate checks the fields required for matching.
func (t TouristProfile) Validate() error {
	fields := map[string]string{
		"name":           t.Name,
		"placetovisit":   t.PlaceToVisit,
		"currentstay":    t.CurrentStay,
		"date":           t.Date,
		"purposeofvisit": t.PurposeOfVisit,
	}
	for name, value := range fields {
		if value == "" {
			return fmt.Errorf("%w: missing field '%s' for matching", ErrValidation, name)
		}
	}
	return nil
}

// FeatureText concatenates the preference fields into the text that gets
// vectorized for similarity scoring.
func (t TouristProfile) FeatureText() string {
	return fmt.Sprintf("%s %s %s %s", t.PlaceToVisit, t.CurrentStay, t.Date, t.PurposeOfVisit)
}

// MatchResult is the outcome of matching a new tourist against the stored
// ones. BestMatch is nil when no candidates exist.
type MatchResult struct {
	BestMatch       *TouristProfile `json:"best_match,omitempty"`
	SimilarityScore float64         `json:"similarity_score,omitempty"`
	Message         string          `json:"message,omitempty"`
}

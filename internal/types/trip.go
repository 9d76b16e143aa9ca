package types

import "fmt"

// TripRequest is the validated input for itinerary generation. All six
// fields are required; the request is rejected before any external call
// when one is missing.
type TripRequest struct {
	Name           string `json:"name"`
	NumberOfPeople int    `json:"numberOfPeople"`
	DaysOfVisit    int    `json:"daysOfVisit"`
	PlacesToVisit  string `json:"placesToVisit"`
	DateOfVisit    string `json:"dateOfVisit"`
	CurrentStay    string `json:"currentStay"`
}

// Validate checks that every required field carries a usable value.
func (t TripRequest) Validate() error {
	switch {
	case t.Name == "":
		return fmt.Errorf("%w: missing field 'name'", ErrValidation)
	case t.NumberOfPeople <= 0:
		return fmt.Errorf("%w: 'numberOfPeople' must be a positive integer", ErrValidation)
	case t.DaysOfVisit <= 0:
		return fmt.Errorf("%w: 'daysOfVisit' must be a positive integer", ErrValidation)
	case t.PlacesToVisit == "":
		return fmt.Errorf("%w: missing field 'placesToVisit'", ErrValidation)
	case t.DateOfVisit == "":
		return fmt.Errorf("%w: missing field 'dateOfVisit'", ErrValidation)
	case t.CurrentStay == "":
		return fmt.Errorf("%w: missing field 'currentStay'", ErrValidation)
	}
	return nil
}

// DaySchedule maps a period name ("Morning", "Afternoon", "Evening", plus
// the appended "Sidequests") to its contents: a list of activity strings or
// objects for the three periods, or the fixed gem list for sidequests.
type DaySchedule = map[string]any

// ItineraryDocument is the normalized day-by-day plan, keyed by day label
// ("Day 1", ...). Day order follows model output order.
type ItineraryDocument map[string]DaySchedule

// Gem is a fixed bonus recommendation appended to every day. The two gem
// values are literals, not derived from trip parameters.
type Gem struct {
	HiddenGem   string `json:"hiddengem" bson:"hiddengem"`
	Description string `json:"description" bson:"description"`
}

// ItineraryResponse is the success payload for itinerary generation.
// StorageError is populated when the document could not be persisted but
// generation itself succeeded.
type ItineraryResponse struct {
	ID           string            `json:"id,omitempty"`
	Name         string            `json:"name"`
	Itinerary    ItineraryDocument `json:"itinerary"`
	Budget       *float64          `json:"budget,omitempty"`
	StorageError string            `json:"storage_error,omitempty"`
}

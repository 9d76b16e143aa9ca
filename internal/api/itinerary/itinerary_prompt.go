package itinerary

import (
	"fmt"

	"github.com/whytorch/travel-planner-api/internal/types"
)

const plannerSystemPrompt = "You are a professional AI itinerary planner with expertise in structured travel planning."

// buildPlannerPrompt assembles the generation prompt from the trip
// parameters. Pure function of its input.
func buildPlannerPrompt(req types.TripRequest) string {
	return fmt.Sprintf(`
    You are a highly advanced AI travel planner. Your task is to create a detailed, structured %d-day itinerary for %s,
    starting from %s, for %d tourists staying at %s. The traveller's name is %s.

    The itinerary must be well-organized, structured in JSON format, and divided into:
    - Morning: Sightseeing, activities, tours.
    - Afternoon: Lunch recommendations, local cuisine.
    - Evening: Cultural activities, entertainment, nightlife.
    - Sidequests: Include at least two unique 'Hidden Gems' for tourists to explore.

    Optimize visit timings to avoid peak crowd hours.
    Return ONLY valid JSON format without any additional text.
    `, req.DaysOfVisit, req.PlacesToVisit, req.DateOfVisit, req.NumberOfPeople, req.CurrentStay, req.Name)
}

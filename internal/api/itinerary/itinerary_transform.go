package itinerary

import (
	"strings"

	"github.com/whytorch/travel-planner-api/internal/types"
)

var schedulePeriods = []string{"Morning", "Afternoon", "Evening"}

// hiddenGems are the fixed sidequest recommendations appended to every day.
// The same two gems repeat across all days.
var hiddenGems = []types.Gem{
	{HiddenGem: "Secret Beach", Description: "A secluded paradise away from the crowds."},
	{HiddenGem: "Local Artisan Market", Description: "Authentic handcrafted souvenirs and street food."},
}

// OptimizeSchedule shifts activities out of two known peak slots:
// 10:00 -> 09:00 and 14:30 -> 15:30. Only activity objects with a "time"
// field participate; bare string activities are left untouched. This is a
// fixed two-rule table standing in for real peak-avoidance logic.
func OptimizeSchedule(doc types.ItineraryDocument) types.ItineraryDocument {
	for _, sched := range doc {
		for _, period := range schedulePeriods {
			activities, ok := sched[period].([]any)
			if !ok {
				continue
			}
			for _, a := range activities {
				activity, ok := a.(map[string]any)
				if !ok {
					continue
				}
				timeVal, _ := activity["time"].(string)
				switch {
				case strings.Contains(timeVal, "10:00"):
					activity["time"] = "09:00"
				case strings.Contains(timeVal, "14:30"):
					activity["time"] = "15:30"
				}
			}
		}
	}
	return doc
}

// AddHiddenGems appends the fixed sidequests to every day. The key is
// overwritten rather than extended, so re-applying the pass is safe.
func AddHiddenGems(doc types.ItineraryDocument) types.ItineraryDocument {
	for _, sched := range doc {
		sched["Sidequests"] = hiddenGems
	}
	return doc
}

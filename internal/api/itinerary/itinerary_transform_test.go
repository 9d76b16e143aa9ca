package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whytorch/travel-planner-api/internal/types"
)

func TestOptimizeScheduleShiftsPeakSlots(t *testing.T) {
	doc := types.ItineraryDocument{
		"Day 1": {
			"Morning": []any{
				map[string]any{"activity": "Palace tour", "time": "10:00 AM"},
				map[string]any{"activity": "Garden walk", "time": "11:00"},
			},
			"Afternoon": []any{
				map[string]any{"activity": "Bazaar visit", "time": "14:30"},
			},
			"Evening": []any{"Street food crawl"},
		},
	}

	out := OptimizeSchedule(doc)

	morning := out["Day 1"]["Morning"].([]any)
	assert.Equal(t, "09:00", morning[0].(map[string]any)["time"])
	assert.Equal(t, "11:00", morning[1].(map[string]any)["time"])

	afternoon := out["Day 1"]["Afternoon"].([]any)
	assert.Equal(t, "15:30", afternoon[0].(map[string]any)["time"])

	// Bare string activities pass through untouched.
	assert.Equal(t, []any{"Street food crawl"}, out["Day 1"]["Evening"])
}

func TestAddHiddenGems(t *testing.T) {
	doc := types.ItineraryDocument{
		"Day 1": {"Morning": []any{"Walk"}},
		"Day 2": {"Evening": []any{"Dinner"}},
	}

	out := AddHiddenGems(doc)

	for day := range out {
		gems, ok := out[day]["Sidequests"].([]types.Gem)
		require.True(t, ok, "day %s missing gems", day)
		require.Len(t, gems, 2)
		assert.Equal(t, "Secret Beach", gems[0].HiddenGem)
		assert.Equal(t, "Local Artisan Market", gems[1].HiddenGem)
	}
}

func TestAddHiddenGemsIdempotent(t *testing.T) {
	doc := types.ItineraryDocument{"Day 1": {}}

	out := AddHiddenGems(AddHiddenGems(doc))

	gems := out["Day 1"]["Sidequests"].([]types.Gem)
	assert.Len(t, gems, 2)
}

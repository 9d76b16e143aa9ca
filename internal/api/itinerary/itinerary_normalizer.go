package itinerary

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/whytorch/travel-planner-api/internal/types"
)

// sectionBullet is the glyph the model uses to open a period bucket in
// freeform output.
const sectionBullet = "\U0001F539" // 🔹

var (
	markdownStripper = strings.NewReplacer("*", "", "_", "", "`", "", "#", "")
	spaceRun         = regexp.MustCompile(`[ \t]+`)
)

// Normalize converts the model's raw text into an ItineraryDocument. It
// first attempts a strict JSON parse (after stripping code fences and a
// stray leading language tag); on parse failure it falls back to a
// line-oriented scan of the freeform text. If neither path yields a
// non-empty mapping the result is a generation error, never an empty
// success.
func Normalize(raw string) (types.ItineraryDocument, error) {
	clean := stripFormatMarkers(raw)

	var parsed any
	if err := json.Unmarshal([]byte(clean), &parsed); err == nil {
		doc, err := coerceDocument(parsed)
		if err != nil {
			return nil, err
		}
		if len(doc) == 0 {
			return nil, fmt.Errorf("%w: model returned an empty itinerary", types.ErrGeneration)
		}
		return doc, nil
	}

	doc := scanFreeform(clean)
	if len(doc) == 0 {
		return nil, fmt.Errorf("%w: response is neither valid JSON nor a recognizable day-by-day plan", types.ErrGeneration)
	}
	return doc, nil
}

// stripFormatMarkers removes markdown code fences and a stray "json"
// language tag the model sometimes emits before the payload.
func stripFormatMarkers(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)
	if len(clean) > 5 && strings.EqualFold(clean[:5], "json ") {
		clean = strings.TrimSpace(clean[5:])
	}
	return clean
}

// coerceDocument descends into a parsed JSON value and shapes it into the
// day mapping. A top-level "itinerary" key is unwrapped, preferring its
// "events" sub-key when present.
func coerceDocument(parsed any) (types.ItineraryDocument, error) {
	m, ok := parsed.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: itinerary payload is not a JSON object", types.ErrGeneration)
	}

	if wrapped, ok := m["itinerary"]; ok {
		inner, ok := wrapped.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: 'itinerary' key does not hold an object", types.ErrGeneration)
		}
		if events, ok := inner["events"].(map[string]any); ok {
			m = events
		} else {
			m = inner
		}
	}

	doc := make(types.ItineraryDocument, len(m))
	for day, v := range m {
		sched, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: day %q does not hold a schedule object", types.ErrGeneration, day)
		}
		doc[day] = sched
	}
	return doc, nil
}

// scanFreeform buckets freeform text into day -> period -> activity lists.
// The scan runs on the raw lines; markdown punctuation and whitespace runs
// are cleaned per line so newline boundaries survive. Three line shapes, in
// priority order: "Day" plus a digit opens a day and resets the period, the
// section bullet opens a period under the open day, anything else non-blank
// appends to the open period. Lines before the first day are discarded.
func scanFreeform(text string) types.ItineraryDocument {
	doc := types.ItineraryDocument{}
	var currentDay, currentSection string

	for _, line := range strings.Split(text, "\n") {
		line = markdownStripper.Replace(line)
		line = strings.TrimSpace(spaceRun.ReplaceAllString(line, " "))
		if line == "" {
			continue
		}

		switch {
		case strings.Contains(line, "Day") && containsDigit(line):
			currentDay = line
			currentSection = ""
			doc[currentDay] = types.DaySchedule{}
		case strings.HasPrefix(line, sectionBullet) && currentDay != "":
			currentSection = strings.TrimSpace(strings.TrimPrefix(line, sectionBullet))
			doc[currentDay][currentSection] = []any{}
		case currentDay != "" && currentSection != "":
			list, _ := doc[currentDay][currentSection].([]any)
			doc[currentDay][currentSection] = append(list, line)
		}
	}
	return doc
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

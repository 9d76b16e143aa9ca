package routes

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"github.com/whytorch/travel-planner-api/internal/api/itinerary"
	"github.com/whytorch/travel-planner-api/internal/types"
)

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service plans sustainable travel legs over a freshly generated itinerary.
type Service interface {
	GenerateRoutes(ctx context.Context, req types.TripRequest) (*types.RoutesResponse, error)
}

var transportOptions = map[string]types.TransportOption{
	"solo":        {Mode: "electric scooter or shared e-bike", SpeedKmh: 20},
	"couple":      {Mode: "EV taxi or rickshaw", SpeedKmh: 40},
	"small_group": {Mode: "shared ride-hailing service (e.g., Uber Green)", SpeedKmh: 35},
	"large_group": {Mode: "electric minivan or public bus", SpeedKmh: 25},
}

// transportFor picks the most sustainable option for the party size.
func transportFor(numPeople int) types.TransportOption {
	switch {
	case numPeople == 1:
		return transportOptions["solo"]
	case numPeople == 2:
		return transportOptions["couple"]
	case numPeople >= 3 && numPeople <= 5:
		return transportOptions["small_group"]
	default:
		return transportOptions["large_group"]
	}
}

var schedulePeriods = []string{"Morning", "Afternoon", "Evening"}

// ServiceImpl provides the implementation for Service.
type ServiceImpl struct {
	logger      *slog.Logger
	itineraries itinerary.Service
	repo        Repository

	// distanceFn simulates the leg distance in km until a real distance
	// provider is wired in. Injectable for deterministic tests.
	distanceFn func() float64
}

// NewService creates a new routes service instance.
func NewService(itineraries itinerary.Service, repo Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:      logger,
		itineraries: itineraries,
		repo:        repo,
		distanceFn: func() float64 {
			return 2 + rand.Float64()*13
		},
	}
}

// estimateTravelTime converts a leg distance into minutes at the transport
// option's average speed.
func estimateTravelTime(distanceKm, speedKmh float64) int {
	return int(math.Round(distanceKm / speedKmh * 60))
}

// GenerateRoutes builds an itinerary for the trip and threads travel legs
// between each day's consecutive activities. Days with fewer than two
// activities need no travel and are skipped.
func (s *ServiceImpl) GenerateRoutes(ctx context.Context, req types.TripRequest) (*types.RoutesResponse, error) {
	itin, err := s.itineraries.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	l := s.logger.With(slog.String("name", req.Name))
	transport := transportFor(req.NumberOfPeople)

	sustainable := make(map[string]types.DayRoutePlan)
	for day, sched := range itin.Itinerary {
		var places []any
		for _, period := range schedulePeriods {
			if activities, ok := sched[period].([]any); ok {
				places = append(places, activities...)
			}
		}
		if len(places) < 2 {
			continue
		}

		legs := make([]types.RouteLeg, 0, len(places)-1)
		for i := 0; i < len(places)-1; i++ {
			distance := s.distanceFn()
			legs = append(legs, types.RouteLeg{
				From:             activityLabel(places[i]),
				To:               activityLabel(places[i+1]),
				TransportMode:    transport.Mode,
				EstimatedTimeMin: estimateTravelTime(distance, transport.SpeedKmh),
			})
		}
		sustainable[day] = types.DayRoutePlan{RoutePlan: legs}
	}

	doc := types.RouteDocument{
		Name:              req.Name,
		NumberOfPeople:    req.NumberOfPeople,
		DateOfVisit:       req.DateOfVisit,
		SustainableRoutes: sustainable,
	}

	id, err := s.repo.Store(ctx, doc)
	if err != nil {
		l.ErrorContext(ctx, "Failed to persist routes", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %s", types.ErrPersistence, err)
	}
	doc.ID = id

	l.InfoContext(ctx, "Sustainable routes generated",
		slog.String("id", id),
		slog.Int("day_count", len(sustainable)),
		slog.String("transport_mode", transport.Mode))
	return &types.RoutesResponse{Message: "Route generated successfully", Data: doc}, nil
}

// activityLabel flattens an itinerary activity into the place name used on
// a route leg. Activities are either bare strings or objects with an
// "activity" field.
func activityLabel(a any) string {
	switch v := a.(type) {
	case string:
		return v
	case map[string]any:
		for _, key := range []string{"activity", "name", "place"} {
			if s, ok := v[key].(string); ok {
				return s
			}
		}
	}
	return fmt.Sprintf("%v", a)
}

package places

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/whytorch/travel-planner-api/internal/types"
)

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service finds wheelchair accessible attractions near a coordinate.
type Service interface {
	AccessibleNearby(ctx context.Context, lat, lon float64) ([]types.AccessiblePlace, error)
}

// NearbySearcher is the slice of the places client the accessible lookup
// needs.
type NearbySearcher interface {
	NearbyAccessible(ctx context.Context, lat, lon float64) ([]types.AccessiblePlace, error)
}

// ServiceImpl provides the implementation for Service.
type ServiceImpl struct {
	logger *slog.Logger
	client NearbySearcher
}

// NewService creates a new accessible places service instance.
func NewService(client NearbySearcher, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		client: client,
	}
}

// AccessibleNearby validates the coordinates and queries the places
// provider.
func (s *ServiceImpl) AccessibleNearby(ctx context.Context, lat, lon float64) ([]types.AccessiblePlace, error) {
	if lat == 0 || lon == 0 {
		return nil, fmt.Errorf("%w: latitude and longitude are required", types.ErrValidation)
	}

	places, err := s.client.NearbyAccessible(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "Accessible places fetched",
		slog.Float64("lat", lat),
		slog.Float64("lon", lon),
		slog.Int("count", len(places)))
	return places, nil
}

package matching

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/whytorch/travel-planner-api/internal/types"
)

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service matches a new tourist against the stored profiles.
type Service interface {
	Match(ctx context.Context, profile types.TouristProfile) (*types.MatchResult, error)
}

// ServiceImpl provides the implementation for Service.
type ServiceImpl struct {
	logger *slog.Logger
	repo   Repository
}

// NewService creates a new matching service instance.
func NewService(repo Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

// Match scores the newcomer against every stored tourist and always saves
// the newcomer afterwards so later arrivals can match against them.
func (s *ServiceImpl) Match(ctx context.Context, profile types.TouristProfile) (*types.MatchResult, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	l := s.logger.With(slog.String("name", profile.Name))

	candidates, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	match, score, err := bestMatch(profile, candidates)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", types.ErrGeneration, err)
	}

	if err := s.repo.Insert(ctx, profile); err != nil {
		l.WarnContext(ctx, "Failed to save tourist profile", slog.Any("error", err))
	}

	if match == nil {
		l.InfoContext(ctx, "No candidates to match against")
		return &types.MatchResult{Message: "No matching tourist found. New tourist added."}, nil
	}

	l.InfoContext(ctx, "Tourist matched",
		slog.String("best_match", match.Name),
		slog.Float64("similarity_score", score))
	return &types.MatchResult{BestMatch: match, SimilarityScore: score}, nil
}

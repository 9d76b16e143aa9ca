package reviews

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/whytorch/travel-planner-api/internal/types"
)

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service analyzes place reviews and flags locations visitors should
// avoid.
type Service interface {
	Analyze(ctx context.Context, placeIDs []string) ([]types.PlaceReview, error)
}

// ReviewSource fetches a place's name and review texts.
type ReviewSource interface {
	Details(ctx context.Context, placeID string) (string, []string, error)
}

// ServiceImpl provides the implementation for Service.
type ServiceImpl struct {
	logger   *slog.Logger
	source   ReviewSource
	analyzer Analyzer
}

// NewService creates a new review analysis service instance.
func NewService(source ReviewSource, analyzer Analyzer, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:   logger,
		source:   source,
		analyzer: analyzer,
	}
}

// Analyze fetches reviews for every place concurrently, scores each one
// and marks a location Not Recommended once it collects more than one
// negative review.
func (s *ServiceImpl) Analyze(ctx context.Context, placeIDs []string) ([]types.PlaceReview, error) {
	var (
		mu      sync.Mutex
		results []types.PlaceReview
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(5)
	for _, placeID := range placeIDs {
		g.Go(func() error {
			name, texts, err := s.source.Details(ctx, placeID)
			if err != nil {
				return err
			}

			batch := make([]types.PlaceReview, 0, len(texts))
			for _, text := range texts {
				score := s.analyzer.Score(text)
				flag := "Red"
				if score > 0 {
					flag = "Green"
				}
				batch = append(batch, types.PlaceReview{
					Location:       name,
					Review:         text,
					SentimentScore: score,
					Flag:           flag,
				})
			}

			mu.Lock()
			results = append(results, batch...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	redCounts := make(map[string]int)
	for _, r := range results {
		if r.Flag == "Red" {
			redCounts[r.Location]++
		}
	}
	for i := range results {
		if redCounts[results[i].Location] > 1 {
			results[i].Recommended = "Not Recommended"
		} else {
			results[i].Recommended = "Recommended"
		}
	}

	s.logger.DebugContext(ctx, "Reviews analyzed",
		slog.Int("place_count", len(placeIDs)),
		slog.Int("review_count", len(results)))
	return results, nil
}

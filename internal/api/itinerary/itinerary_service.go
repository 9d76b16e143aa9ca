package itinerary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	generativeAI "github.com/whytorch/travel-planner-api/internal/api/generative_ai"
	"github.com/whytorch/travel-planner-api/internal/types"

	"github.com/whytorch/travel-planner-api/app/observability/metrics"
)

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for itinerary generation.
type Service interface {
	Generate(ctx context.Context, req types.TripRequest) (*types.ItineraryResponse, error)
}

// ServiceImpl provides the implementation for Service.
type ServiceImpl struct {
	logger     *slog.Logger
	client     generativeAI.Completer
	model      string
	repo       Repository
	budgetRepo BudgetRepository
}

// NewService creates a new itinerary service instance. budgetRepo may be
// nil when no hotel price data source is configured.
func NewService(client generativeAI.Completer, model string, repo Repository, budgetRepo BudgetRepository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:     logger,
		client:     client,
		model:      model,
		repo:       repo,
		budgetRepo: budgetRepo,
	}
}

// Generate runs the full pipeline: validate, prompt, call the model,
// normalize, transform, persist. A storage failure does not discard the
// generated itinerary; it is reported alongside the result instead.
func (s *ServiceImpl) Generate(ctx context.Context, req types.TripRequest) (*types.ItineraryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	l := s.logger.With(slog.String("name", req.Name), slog.String("place", req.PlacesToVisit))
	l.DebugContext(ctx, "Starting itinerary generation", slog.Int("days", req.DaysOfVisit))

	prompt := buildPlannerPrompt(req)
	startTime := time.Now()
	raw, err := s.client.Complete(ctx, s.model, []generativeAI.Message{
		{Role: "system", Content: plannerSystemPrompt},
		{Role: "user", Content: prompt},
	})
	metrics.Get().LLMRequestDuration.Record(ctx, time.Since(startTime).Seconds())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", types.ErrGeneration, err)
	}

	doc, err := Normalize(raw)
	if err != nil {
		l.ErrorContext(ctx, "Failed to normalize model output", slog.Any("error", err))
		return nil, err
	}

	doc = OptimizeSchedule(doc)
	doc = AddHiddenGems(doc)

	resp := &types.ItineraryResponse{
		Name:      req.Name,
		Itinerary: doc,
	}

	if s.budgetRepo != nil {
		budget, err := s.budgetRepo.SuggestBudget(ctx, req.CurrentStay)
		if err != nil {
			l.WarnContext(ctx, "Budget suggestion unavailable", slog.Any("error", err))
		} else if budget != nil {
			resp.Budget = budget
		}
	}

	record := map[string]any{
		"name":           req.Name,
		"numberOfPeople": req.NumberOfPeople,
		"daysOfVisit":    req.DaysOfVisit,
		"placesToVisit":  req.PlacesToVisit,
		"dateOfVisit":    req.DateOfVisit,
		"currentStay":    req.CurrentStay,
		"itinerary":      doc,
	}
	if resp.Budget != nil {
		record["budget"] = *resp.Budget
	}

	id, err := s.repo.Store(ctx, record)
	if err != nil {
		metrics.Get().StorageErrorsTotal.Add(ctx, 1)
		l.ErrorContext(ctx, "Failed to persist itinerary, returning in-memory result", slog.Any("error", err))
		resp.StorageError = fmt.Errorf("%w: %s", types.ErrPersistence, err).Error()
		return resp, nil
	}
	resp.ID = id
	metrics.Get().ItineraryRequestsTotal.Add(ctx, 1)

	l.InfoContext(ctx, "Itinerary generated",
		slog.String("id", id),
		slog.Int("day_count", len(doc)))
	return resp, nil
}

package waste

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/whytorch/travel-planner-api/app/observability/metrics"
	generativeAI "github.com/whytorch/travel-planner-api/internal/api/generative_ai"
	"github.com/whytorch/travel-planner-api/internal/types"
)

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service classifies waste in an image and relays an alert.
type Service interface {
	Detect(ctx context.Context, imageURL string) (*types.WasteResponse, error)
}

const wastePrompt = "Analyze the image and identify any waste present. Classify it into one of these categories: " +
	"Plastic Waste, Organic Waste, Metal Waste, Glass Waste, Electronic Waste, Paper Waste, " +
	"Medical Waste, or Other. If multiple types of waste are detected, list them all. " +
	"List the objects that you think are waste. " +
	"Output the detected waste types and their classifications."

const alertTemplate = "\U0001F6A8 *Waste Alert!* \U0001F6A8\n\nDetected waste:\n%s\n\n" +
	"Please take immediate action to clean the area. Thank you for keeping our surroundings clean! \U0001F33F"

// ServiceImpl provides the implementation for Service.
type ServiceImpl struct {
	logger   *slog.Logger
	client   generativeAI.Completer
	model    string
	notifier Notifier
}

// NewService creates a new waste detection service instance. notifier may
// be nil when no alert channel is configured.
func NewService(client generativeAI.Completer, model string, notifier Notifier, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:   logger,
		client:   client,
		model:    model,
		notifier: notifier,
	}
}

// Detect sends the image to the vision model and forwards the
// classification to the alert channel. A failed relay does not discard the
// analysis; it is reported alongside the result instead.
func (s *ServiceImpl) Detect(ctx context.Context, imageURL string) (*types.WasteResponse, error) {
	l := s.logger.With(slog.String("image_url", imageURL))

	wasteInfo, err := s.client.Complete(ctx, s.model, []generativeAI.Message{
		{
			Role: "user",
			Content: []generativeAI.ContentPart{
				{Type: "text", Text: wastePrompt},
				{Type: "image_url", ImageURL: &generativeAI.ImageRef{URL: imageURL}},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", types.ErrGeneration, err)
	}

	resp := &types.WasteResponse{WasteInfo: wasteInfo}

	if s.notifier == nil {
		l.DebugContext(ctx, "No alert channel configured, skipping relay")
		return resp, nil
	}

	msgID, err := s.notifier.Notify(ctx, fmt.Sprintf(alertTemplate, wasteInfo))
	if err != nil {
		l.ErrorContext(ctx, "Failed to relay waste alert", slog.Any("error", err))
		resp.TelegramError = err.Error()
		return resp, nil
	}
	resp.TelegramMessageID = msgID
	metrics.Get().WasteAlertsTotal.Add(ctx, 1)

	l.InfoContext(ctx, "Waste alert relayed", slog.Int("message_id", msgID))
	return resp, nil
}

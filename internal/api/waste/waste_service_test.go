package waste

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	generativeAI "github.com/whytorch/travel-planner-api/internal/api/generative_ai"
	"github.com/whytorch/travel-planner-api/internal/types"
)

type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) Complete(ctx context.Context, model string, messages []generativeAI.Message) (string, error) {
	args := m.Called(ctx, model, messages)
	return args.String(0), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, text string) (int, error) {
	args := m.Called(ctx, text)
	return args.Int(0), args.Error(1)
}

func TestDetectRelaysAlert(t *testing.T) {
	client := new(MockCompleter)
	client.On("Complete", mock.Anything, "vision-model", mock.MatchedBy(func(messages []generativeAI.Message) bool {
		if len(messages) != 1 {
			return false
		}
		parts, ok := messages[0].Content.([]generativeAI.ContentPart)
		return ok && len(parts) == 2 && parts[1].ImageURL.URL == "https://img.example/bin.jpg"
	})).Return("Plastic Waste: bottles", nil)

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "Waste Alert!") && strings.Contains(text, "Plastic Waste: bottles")
	})).Return(42, nil)

	svc := NewService(client, "vision-model", notifier, slog.New(slog.DiscardHandler))

	resp, err := svc.Detect(context.Background(), "https://img.example/bin.jpg")
	require.NoError(t, err)
	assert.Equal(t, "Plastic Waste: bottles", resp.WasteInfo)
	assert.Equal(t, 42, resp.TelegramMessageID)
	assert.Empty(t, resp.TelegramError)
	client.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestDetectSurvivesRelayFailure(t *testing.T) {
	client := new(MockCompleter)
	client.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("Organic Waste: peels", nil)

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, mock.Anything).Return(0, errors.New("bot token revoked"))

	svc := NewService(client, "vision-model", notifier, slog.New(slog.DiscardHandler))

	resp, err := svc.Detect(context.Background(), "https://img.example/bin.jpg")
	require.NoError(t, err)
	assert.Equal(t, "Organic Waste: peels", resp.WasteInfo)
	assert.Contains(t, resp.TelegramError, "bot token revoked")
}

func TestDetectModelFailure(t *testing.T) {
	client := new(MockCompleter)
	client.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("model overloaded"))

	svc := NewService(client, "vision-model", nil, slog.New(slog.DiscardHandler))

	_, err := svc.Detect(context.Background(), "https://img.example/bin.jpg")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrGeneration)
}

func TestDetectWithoutNotifier(t *testing.T) {
	client := new(MockCompleter)
	client.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("No waste detected", nil)

	svc := NewService(client, "vision-model", nil, slog.New(slog.DiscardHandler))

	resp, err := svc.Detect(context.Background(), "https://img.example/park.jpg")
	require.NoError(t, err)
	assert.Equal(t, "No waste detected", resp.WasteInfo)
	assert.Zero(t, resp.TelegramMessageID)
}

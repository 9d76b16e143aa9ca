package chat

import (
	"context"
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

func TestRespondValidation(t *testing.T) {
	svc := NewService(new(MockCompleter), "chat-model", NewSessionStore(), slog.New(slog.DiscardHandler))

	_, err := svc.Respond(context.Background(), types.ChatRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrValidation)
}

func TestRespondCreatesSession(t *testing.T) {
	client := new(MockCompleter)
	client.On("Complete", mock.Anything, "chat-model", mock.Anything).Return("  The Maurya Empire was founded by Chandragupta.  ", nil)

	svc := NewService(client, "chat-model", NewSessionStore(), slog.New(slog.DiscardHandler))

	resp, err := svc.Respond(context.Background(), types.ChatRequest{UserInput: "Who founded the Maurya Empire?"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, "The Maurya Empire was founded by Chandragupta.", resp.BotResponse)
	assert.Equal(t, "AI-generated", resp.Metadata.Source)
	assert.Equal(t, "chat-model", resp.Metadata.Model)
}

func TestRespondThreadsHistory(t *testing.T) {
	client := new(MockCompleter)
	client.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("Ashoka.", nil).Once()
	client.On("Complete", mock.Anything, mock.Anything, mock.MatchedBy(func(messages []generativeAI.Message) bool {
		prompt, ok := messages[0].Content.(string)
		return ok && strings.Contains(prompt, "Ashoka.")
	})).Return("He ruled from Pataliputra.", nil).Once()

	svc := NewService(client, "chat-model", NewSessionStore(), slog.New(slog.DiscardHandler))

	first, err := svc.Respond(context.Background(), types.ChatRequest{UserInput: "Who was the greatest Mauryan ruler?"})
	require.NoError(t, err)

	second, err := svc.Respond(context.Background(), types.ChatRequest{
		UserInput: "Where did he rule from?",
		SessionID: first.SessionID,
	})
	require.NoError(t, err)
	assert.Equal(t, first.SessionID, second.SessionID)
	assert.Equal(t, "He ruled from Pataliputra.", second.BotResponse)
	client.AssertExpectations(t)
}

func TestSessionsAreIsolated(t *testing.T) {
	client := new(MockCompleter)
	client.On("Complete", mock.Anything, mock.Anything, mock.MatchedBy(func(messages []generativeAI.Message) bool {
		prompt, ok := messages[0].Content.(string)
		return ok && !strings.Contains(prompt, "Ashoka")
	})).Return("The Gupta dynasty.", nil)
	client.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("Ashoka.", nil)

	store := NewSessionStore()
	svc := NewService(client, "chat-model", store, slog.New(slog.DiscardHandler))

	first, err := svc.Respond(context.Background(), types.ChatRequest{UserInput: "Who was the greatest Mauryan ruler?"})
	require.NoError(t, err)

	// A fresh session must not see the other session's turns.
	second, err := svc.Respond(context.Background(), types.ChatRequest{UserInput: "Which dynasty followed?"})
	require.NoError(t, err)
	assert.NotEqual(t, first.SessionID, second.SessionID)
}

package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	generativeAI "github.com/whytorch/travel-planner-api/internal/api/generative_ai"
	"github.com/whytorch/travel-planner-api/internal/types"
)

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service answers Indian-history questions while tracking per-session
// conversation history.
type Service interface {
	Respond(ctx context.Context, req types.ChatRequest) (*types.ChatResponse, error)
}

const chatPromptTemplate = "You are a chatbot specializing in Indian history. Provide detailed, engaging responses with historical examples.\n" +
	"Make sure you do not deviate from anything that is not related to indian history. All you know is about Indian History only. If you get any other type of questions reply : Please refrain from asking questions that are not relvant to Indian history\n" +
	"Previous conversation: %s\n" +
	"User query: %s\n" +
	"Response:"

// ServiceImpl provides the implementation for Service.
type ServiceImpl struct {
	logger   *slog.Logger
	client   generativeAI.Completer
	model    string
	sessions *SessionStore
}

// NewService creates a new chat service instance.
func NewService(client generativeAI.Completer, model string, sessions *SessionStore, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:   logger,
		client:   client,
		model:    model,
		sessions: sessions,
	}
}

// Respond generates the next reply for the session. The full prior history
// is embedded in the prompt so the model can stay on topic across turns.
func (s *ServiceImpl) Respond(ctx context.Context, req types.ChatRequest) (*types.ChatResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sessionID, history := s.sessions.Resolve(req.SessionID)
	l := s.logger.With(slog.String("session_id", sessionID))

	historyJSON, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode conversation history: %w", err)
	}

	prompt := fmt.Sprintf(chatPromptTemplate, historyJSON, req.UserInput)
	reply, err := s.client.Complete(ctx, s.model, []generativeAI.Message{
		{Role: "user", Content: prompt},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", types.ErrGeneration, err)
	}
	reply = strings.TrimSpace(reply)

	s.sessions.Append(sessionID, types.ChatTurn{User: req.UserInput, Bot: reply})

	l.DebugContext(ctx, "Chat reply generated", slog.Int("history_turns", len(history)))
	return &types.ChatResponse{
		UserInput:   req.UserInput,
		BotResponse: reply,
		SessionID:   sessionID,
		Metadata: types.ChatMetadata{
			Source: "AI-generated",
			Model:  s.model,
		},
	}, nil
}

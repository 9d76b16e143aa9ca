package itinerary

import (
	"context"
	"errors"
	"log/slog"
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

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Store(ctx context.Context, document map[string]any) (string, error) {
	args := m.Called(ctx, document)
	return args.String(0), args.Error(1)
}

type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) SuggestBudget(ctx context.Context, hotel string) (*float64, error) {
	args := m.Called(ctx, hotel)
	budget, _ := args.Get(0).(*float64)
	return budget, args.Error(1)
}

func validTrip() types.TripRequest {
	return types.TripRequest{
		Name:           "Alex",
		NumberOfPeople: 4,
		DaysOfVisit:    1,
		PlacesToVisit:  "Paris",
		DateOfVisit:    "2025-03-10",
		CurrentStay:    "Hotel Le Grand",
	}
}

const modelOutput = `{"Day 1": {"Morning": [{"activity": "Louvre", "time": "10:00"}], "Afternoon": ["Lunch"], "Evening": ["Seine cruise"]}}`

func TestGenerateValidationRejectsBeforeExternalCalls(t *testing.T) {
	client := new(MockCompleter)
	repo := new(MockRepository)
	svc := NewService(client, "planner-model", repo, nil, slog.New(slog.DiscardHandler))

	req := validTrip()
	req.CurrentStay = ""

	_, err := svc.Generate(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrValidation)
	client.AssertNotCalled(t, "Complete")
	repo.AssertNotCalled(t, "Store")
}

func TestGenerateEndToEnd(t *testing.T) {
	client := new(MockCompleter)
	client.On("Complete", mock.Anything, "planner-model", mock.MatchedBy(func(messages []generativeAI.Message) bool {
		return len(messages) == 2 && messages[0].Role == "system" && messages[1].Role == "user"
	})).Return(modelOutput, nil)

	repo := new(MockRepository)
	repo.On("Store", mock.Anything, mock.MatchedBy(func(document map[string]any) bool {
		return document["name"] == "Alex" && document["itinerary"] != nil
	})).Return("661f0c2ab1e2cd3412345678", nil)

	svc := NewService(client, "planner-model", repo, nil, slog.New(slog.DiscardHandler))

	resp, err := svc.Generate(context.Background(), validTrip())
	require.NoError(t, err)
	assert.Equal(t, "661f0c2ab1e2cd3412345678", resp.ID)
	assert.Equal(t, "Alex", resp.Name)
	assert.Empty(t, resp.StorageError)

	day1 := resp.Itinerary["Day 1"]
	morning := day1["Morning"].([]any)
	assert.Equal(t, "09:00", morning[0].(map[string]any)["time"])

	gems, ok := day1["Sidequests"].([]types.Gem)
	require.True(t, ok)
	require.Len(t, gems, 2)
	assert.Equal(t, "Secret Beach", gems[0].HiddenGem)

	client.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestGenerateWithBudget(t *testing.T) {
	client := new(MockCompleter)
	client.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return(modelOutput, nil)

	budget := 1200.0
	budgetRepo := new(MockBudgetRepository)
	budgetRepo.On("SuggestBudget", mock.Anything, "Hotel Le Grand").Return(&budget, nil)

	repo := new(MockRepository)
	repo.On("Store", mock.Anything, mock.MatchedBy(func(document map[string]any) bool {
		return document["budget"] == 1200.0
	})).Return("abc123", nil)

	svc := NewService(client, "planner-model", repo, budgetRepo, slog.New(slog.DiscardHandler))

	resp, err := svc.Generate(context.Background(), validTrip())
	require.NoError(t, err)
	require.NotNil(t, resp.Budget)
	assert.Equal(t, 1200.0, *resp.Budget)
}

func TestGenerateBudgetFailureIsNonFatal(t *testing.T) {
	client := new(MockCompleter)
	client.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return(modelOutput, nil)

	budgetRepo := new(MockBudgetRepository)
	budgetRepo.On("SuggestBudget", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	repo := new(MockRepository)
	repo.On("Store", mock.Anything, mock.Anything).Return("abc123", nil)

	svc := NewService(client, "planner-model", repo, budgetRepo, slog.New(slog.DiscardHandler))

	resp, err := svc.Generate(context.Background(), validTrip())
	require.NoError(t, err)
	assert.Nil(t, resp.Budget)
}

func TestGenerateModelFailure(t *testing.T) {
	client := new(MockCompleter)
	client.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("rate limited"))

	repo := new(MockRepository)
	svc := NewService(client, "planner-model", repo, nil, slog.New(slog.DiscardHandler))

	_, err := svc.Generate(context.Background(), validTrip())
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrGeneration)
	repo.AssertNotCalled(t, "Store")
}

func TestGenerateStorageFailureStillReturnsItinerary(t *testing.T) {
	client := new(MockCompleter)
	client.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return(modelOutput, nil)

	repo := new(MockRepository)
	repo.On("Store", mock.Anything, mock.Anything).Return("", errors.New("write concern failed"))

	svc := NewService(client, "planner-model", repo, nil, slog.New(slog.DiscardHandler))

	resp, err := svc.Generate(context.Background(), validTrip())
	require.NoError(t, err)
	assert.Empty(t, resp.ID)
	assert.NotEmpty(t, resp.StorageError)
	assert.Contains(t, resp.StorageError, "write concern failed")
	assert.NotEmpty(t, resp.Itinerary)
}

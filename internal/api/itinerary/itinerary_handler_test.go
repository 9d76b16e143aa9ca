package itinerary

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/whytorch/travel-planner-api/internal/types"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Generate(ctx context.Context, req types.TripRequest) (*types.ItineraryResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*types.ItineraryResponse)
	return resp, args.Error(1)
}

func postJSON(t *testing.T, handler http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/itinerary/generate", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestGenerateHandlerSuccess(t *testing.T) {
	svc := new(MockService)
	svc.On("Generate", mock.Anything, mock.Anything).Return(&types.ItineraryResponse{
		ID:   "abc123",
		Name: "Alex",
		Itinerary: types.ItineraryDocument{
			"Day 1": {"Morning": []any{"Louvre"}},
		},
	}, nil)

	h := NewHandler(svc, slog.New(slog.DiscardHandler))
	rec := postJSON(t, h.Generate, validTrip())

	require.Equal(t, http.StatusOK, rec.Code)
	var resp types.ItineraryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "abc123", resp.ID)
	assert.Contains(t, resp.Itinerary, "Day 1")
}

func TestGenerateHandlerValidationError(t *testing.T) {
	svc := new(MockService)
	svc.On("Generate", mock.Anything, mock.Anything).Return(nil, types.ErrValidation)

	h := NewHandler(svc, slog.New(slog.DiscardHandler))
	rec := postJSON(t, h.Generate, map[string]any{"name": "Alex"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateHandlerGenerationError(t *testing.T) {
	svc := new(MockService)
	svc.On("Generate", mock.Anything, mock.Anything).Return(nil, types.ErrGeneration)

	h := NewHandler(svc, slog.New(slog.DiscardHandler))
	rec := postJSON(t, h.Generate, validTrip())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGenerateHandlerMalformedBody(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.New(slog.DiscardHandler))

	req := httptest.NewRequest(http.MethodPost, "/itinerary/generate", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Generate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Generate")
}

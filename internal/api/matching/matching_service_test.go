package matching

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/whytorch/travel-planner-api/internal/types"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListAll(ctx context.Context) ([]types.TouristProfile, error) {
	args := m.Called(ctx)
	profiles, _ := args.Get(0).([]types.TouristProfile)
	return profiles, args.Error(1)
}

func (m *MockRepository) Insert(ctx context.Context, profile types.TouristProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func newTestService(repo Repository) *ServiceImpl {
	return NewService(repo, slog.New(slog.DiscardHandler))
}

func validProfile() types.TouristProfile {
	return types.TouristProfile{
		Name: "Asha", PlaceToVisit: "Jaipur", CurrentStay: "Hotel Pearl",
		Date: "2025-03-10", PurposeOfVisit: "heritage",
	}
}

func TestMatchValidation(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	profile := validProfile()
	profile.PurposeOfVisit = ""

	_, err := svc.Match(context.Background(), profile)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrValidation)
	repo.AssertNotCalled(t, "ListAll")
}

func TestMatchFirstTourist(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListAll", mock.Anything).Return([]types.TouristProfile(nil), nil)
	repo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	svc := newTestService(repo)

	result, err := svc.Match(context.Background(), validProfile())
	require.NoError(t, err)
	assert.Nil(t, result.BestMatch)
	assert.Equal(t, "No matching tourist found. New tourist added.", result.Message)
	repo.AssertExpectations(t)
}

func TestMatchReturnsBestCandidate(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListAll", mock.Anything).Return([]types.TouristProfile{
		{Name: "Boris", PlaceToVisit: "Goa", CurrentStay: "Beach Resort", Date: "2025-07-01", PurposeOfVisit: "surfing"},
		{Name: "Chitra", PlaceToVisit: "Jaipur", CurrentStay: "Hotel Pearl", Date: "2025-03-10", PurposeOfVisit: "heritage"},
	}, nil)
	repo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	svc := newTestService(repo)

	result, err := svc.Match(context.Background(), validProfile())
	require.NoError(t, err)
	require.NotNil(t, result.BestMatch)
	assert.Equal(t, "Chitra", result.BestMatch.Name)
	assert.Greater(t, result.SimilarityScore, 0.5)
}

func TestMatchSurvivesSaveFailure(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListAll", mock.Anything).Return([]types.TouristProfile{
		{Name: "Chitra", PlaceToVisit: "Jaipur", CurrentStay: "Hotel Pearl", Date: "2025-03-10", PurposeOfVisit: "heritage"},
	}, nil)
	repo.On("Insert", mock.Anything, mock.Anything).Return(errors.New("write concern failed"))
	svc := newTestService(repo)

	result, err := svc.Match(context.Background(), validProfile())
	require.NoError(t, err)
	require.NotNil(t, result.BestMatch)
}

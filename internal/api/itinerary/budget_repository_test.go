package itinerary

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestBudgetHighRating(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	mockPool.ExpectQuery("SELECT price_inr, review").
		WithArgs("Hotel Pearl").
		WillReturnRows(pgxmock.NewRows([]string{"price_inr", "review"}).AddRow(1000.0, 8.5))

	repo := NewBudgetRepository(mockPool)

	budget, err := repo.SuggestBudget(context.Background(), "Hotel Pearl")
	require.NoError(t, err)
	require.NotNil(t, budget)
	assert.Equal(t, 1200.0, *budget)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestSuggestBudgetLowRating(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	mockPool.ExpectQuery("SELECT price_inr, review").
		WithArgs("Budget Inn").
		WillReturnRows(pgxmock.NewRows([]string{"price_inr", "review"}).AddRow(500.0, 2.0))

	repo := NewBudgetRepository(mockPool)

	budget, err := repo.SuggestBudget(context.Background(), "Budget Inn")
	require.NoError(t, err)
	require.NotNil(t, budget)
	assert.Equal(t, 450.0, *budget)
}

func TestSuggestBudgetMidRating(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	mockPool.ExpectQuery("SELECT price_inr, review").
		WithArgs("Hotel Plain").
		WillReturnRows(pgxmock.NewRows([]string{"price_inr", "review"}).AddRow(800.0, 5.0))

	repo := NewBudgetRepository(mockPool)

	budget, err := repo.SuggestBudget(context.Background(), "Hotel Plain")
	require.NoError(t, err)
	require.NotNil(t, budget)
	assert.Equal(t, 800.0, *budget)
}

func TestSuggestBudgetUnknownHotel(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	mockPool.ExpectQuery("SELECT price_inr, review").
		WithArgs("Nowhere Lodge").
		WillReturnError(pgx.ErrNoRows)

	repo := NewBudgetRepository(mockPool)

	budget, err := repo.SuggestBudget(context.Background(), "Nowhere Lodge")
	require.NoError(t, err)
	assert.Nil(t, budget)
}

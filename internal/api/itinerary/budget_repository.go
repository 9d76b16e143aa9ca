package itinerary

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"
)

// PGXQuerier is the slice of the pgx pool interface the budget lookup
// needs. Satisfied by *pgxpool.Pool and by pgxmock in tests.
type PGXQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BudgetRepository suggests a stay budget from stored hotel review data.
// A nil result with nil error means no data exists for the hotel.
type BudgetRepository interface {
	SuggestBudget(ctx context.Context, hotel string) (*float64, error)
}

// PostgresBudgetRepository reads the hotel_reviews table.
type PostgresBudgetRepository struct {
	db PGXQuerier
}

var _ BudgetRepository = (*PostgresBudgetRepository)(nil)

// NewBudgetRepository creates the budget repository.
func NewBudgetRepository(db PGXQuerier) *PostgresBudgetRepository {
	return &PostgresBudgetRepository{db: db}
}

const suggestBudgetQuery = `
    SELECT price_inr, review
    FROM hotel_reviews
    WHERE hotel = $1
    LIMIT 1`

// SuggestBudget starts from the hotel's price and nudges it by the review
// score: +20% for highly rated hotels (>= 7), -10% for poorly rated ones
// (<= 3).
func (r *PostgresBudgetRepository) SuggestBudget(ctx context.Context, hotel string) (*float64, error) {
	var price, review float64
	err := r.db.QueryRow(ctx, suggestBudgetQuery, hotel).Scan(&price, &review)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hotel data: %w", err)
	}

	budget := price
	switch {
	case review >= 7:
		budget += 0.2 * price
	case review <= 3:
		budget -= 0.1 * price
	}
	budget = math.Round(budget*100) / 100
	return &budget, nil
}

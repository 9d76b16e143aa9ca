package matching

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/whytorch/travel-planner-api/internal/types"
)

// Repository stores tourist profiles and lists them for matching.
type Repository interface {
	ListAll(ctx context.Context) ([]types.TouristProfile, error)
	Insert(ctx context.Context, profile types.TouristProfile) error
}

// MongoRepository keeps tourist profiles in the Tourists collection.
type MongoRepository struct {
	collection *mongo.Collection
}

var _ Repository = (*MongoRepository)(nil)

// NewRepository creates the tourist repository.
func NewRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection("Tourists")}
}

// ListAll returns every stored tourist profile.
func (r *MongoRepository) ListAll(ctx context.Context) ([]types.TouristProfile, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list tourists: %w", err)
	}
	defer cursor.Close(ctx)

	var tourists []types.TouristProfile
	if err := cursor.All(ctx, &tourists); err != nil {
		return nil, fmt.Errorf("failed to decode tourists: %w", err)
	}
	return tourists, nil
}

// Insert stores a new tourist profile.
func (r *MongoRepository) Insert(ctx context.Context, profile types.TouristProfile) error {
	if _, err := r.collection.InsertOne(ctx, profile); err != nil {
		return fmt.Errorf("failed to insert tourist: %w", err)
	}
	return nil
}

package routes

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/whytorch/travel-planner-api/internal/types"
)

// Repository persists generated route plans.
type Repository interface {
	Store(ctx context.Context, doc types.RouteDocument) (string, error)
}

// MongoRepository stores route plans in the SustainableRoutes collection.
type MongoRepository struct {
	collection *mongo.Collection
}

var _ Repository = (*MongoRepository)(nil)

// NewRepository creates the routes repository.
func NewRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection("SustainableRoutes")}
}

// Store inserts the route document and returns the inserted ID as a hex
// string.
func (r *MongoRepository) Store(ctx context.Context, doc types.RouteDocument) (string, error) {
	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert routes: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

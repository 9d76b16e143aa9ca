package itinerary

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository persists finished itinerary documents. The store only needs to
// accept an arbitrary JSON-compatible nested mapping and hand back an
// opaque identifier; no querying or update capability is required.
type Repository interface {
	Store(ctx context.Context, document map[string]any) (string, error)
}

// MongoRepository stores itineraries in a Mongo collection.
type MongoRepository struct {
	collection *mongo.Collection
}

var _ Repository = (*MongoRepository)(nil)

// NewRepository creates the itinerary repository on the Itineraries
// collection.
func NewRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection("Itineraries")}
}

// Store inserts the document and returns the inserted ID as a hex string.
func (r *MongoRepository) Store(ctx context.Context, document map[string]any) (string, error) {
	res, err := r.collection.InsertOne(ctx, document)
	if err != nil {
		return "", fmt.Errorf("failed to insert itinerary: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the indexes the dashboard queries rely on. Index
// creation is idempotent, so this runs on every startup.
func EnsureIndexes(col *mongo.Collection) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "animal_type", Value: 1}}},
		{Keys: bson.D{{Key: "breed", Value: 1}}},
		{Keys: bson.D{{Key: "outcome_type", Value: 1}}},
		{Keys: bson.D{{Key: "age_upon_outcome_in_weeks", Value: 1}}},
	}

	if _, err := col.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create indexes on %s: %w", col.Name(), err)
	}

	return nil
}

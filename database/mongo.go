package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var client *mongo.Client

// Connect establishes the MongoDB connection and verifies it with a ping
func Connect(uri string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Test the connection
	if err := c.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping mongodb: %w", err)
	}

	client = c
	return nil
}

// InitializeDatabase connects to MongoDB and ensures collection indexes
func InitializeDatabase(uri, db, collection string) error {
	if err := Connect(uri); err != nil {
		return err
	}

	if err := EnsureIndexes(client.Database(db).Collection(collection)); err != nil {
		return fmt.Errorf("failed to ensure indexes: %w", err)
	}

	fmt.Println("✅ Database initialized successfully")
	return nil
}

// GetClient returns the MongoDB client
func GetClient() *mongo.Client {
	return client
}

// GetCollection returns a handle to the named collection
func GetCollection(db, collection string) *mongo.Collection {
	if client == nil {
		return nil
	}
	return client.Database(db).Collection(collection)
}

// Close disconnects the MongoDB client
func Close() error {
	if client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return client.Disconnect(ctx)
	}
	return nil
}

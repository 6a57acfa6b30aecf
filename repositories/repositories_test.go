package repositories

import (
	"context"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// setupTestCollection connects to a throwaway collection on the instance named
// by MONGO_TEST_URI. Tests are skipped when no test instance is configured.
func setupTestCollection(t *testing.T) *mongo.Collection {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set, skipping repository tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("Failed to connect to test mongodb: %v", err)
	}

	col := client.Database("shelter_test").Collection("animals_" + time.Now().Format("20060102150405"))

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		col.Drop(ctx)
		client.Disconnect(ctx)
	})

	return col
}

func TestAnimalRepository(t *testing.T) {
	col := setupTestCollection(t)
	repo := NewAnimalRepository(col)
	ctx := context.Background()

	// Test Create
	doc := bson.M{
		"name":                      "Rex",
		"animal_type":               "Dog",
		"breed":                     "Labrador Retriever Mix",
		"age_upon_outcome_in_weeks": 104.0,
		"outcome_type":              "Adoption",
	}
	if ok := repo.Create(ctx, doc); !ok {
		t.Fatal("Expected Create to succeed")
	}

	// Empty documents are rejected without error
	if ok := repo.Create(ctx, bson.M{}); ok {
		t.Error("Expected Create to reject an empty document")
	}

	// Test Read
	results := repo.Read(ctx, bson.M{"name": "Rex"})
	if len(results) != 1 {
		t.Fatalf("Expected 1 matching document, got %d", len(results))
	}

	// Nil queries fail soft with an empty result
	if results := repo.Read(ctx, nil); len(results) != 0 {
		t.Errorf("Expected empty result for nil query, got %d documents", len(results))
	}

	// Test ReadAll null normalization
	repo.Create(ctx, bson.M{"name": nil, "animal_type": "Cat", "breed": "Siamese"})
	all := repo.ReadAll(ctx)
	if len(all) != 2 {
		t.Fatalf("Expected 2 documents, got %d", len(all))
	}
	for _, d := range all {
		for key, value := range d {
			if value == nil {
				t.Errorf("ReadAll returned nil value for field %q", key)
			}
		}
	}

	// Test Update single
	repo.Create(ctx, bson.M{"name": "Rex", "animal_type": "Dog", "breed": "Beagle"})
	modified := repo.Update(ctx, bson.M{"name": "Rex"}, bson.M{"color": "Black"}, false)
	if modified != 1 {
		t.Errorf("Expected 1 modified document with multiple=false, got %d", modified)
	}

	// Test Update multiple
	modified = repo.Update(ctx, bson.M{"name": "Rex"}, bson.M{"color": "Brown"}, true)
	if modified != 2 {
		t.Errorf("Expected 2 modified documents with multiple=true, got %d", modified)
	}

	// Invalid update inputs fail soft
	if modified := repo.Update(ctx, nil, bson.M{"color": "Red"}, true); modified != 0 {
		t.Errorf("Expected 0 modified for nil query, got %d", modified)
	}

	// Test Delete single
	deleted := repo.Delete(ctx, bson.M{"name": "Rex"}, false)
	if deleted != 1 {
		t.Errorf("Expected 1 deleted document with multiple=false, got %d", deleted)
	}

	// Test Delete multiple
	deleted = repo.Delete(ctx, bson.M{"name": "Rex"}, true)
	if deleted != 1 {
		t.Errorf("Expected 1 remaining Rex deleted with multiple=true, got %d", deleted)
	}

	if deleted := repo.Delete(ctx, nil, true); deleted != 0 {
		t.Errorf("Expected 0 deleted for nil query, got %d", deleted)
	}
}

func TestNormalizeDocument(t *testing.T) {
	doc := bson.M{
		"name":  nil,
		"breed": "Beagle",
		"color": nil,
	}

	normalizeDocument(doc)

	if doc["name"] != "" || doc["color"] != "" {
		t.Errorf("Expected nil values normalized to empty strings, got %v", doc)
	}
	if doc["breed"] != "Beagle" {
		t.Errorf("Expected non-nil values untouched, got %v", doc["breed"])
	}
}

package repositories

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AnimalRepository defines the document-store operations for animal records.
// Every operation fails soft: errors and malformed inputs are logged and
// converted into empty/zero/false return values instead of propagating.
type AnimalRepository interface {
	Create(ctx context.Context, doc bson.M) bool
	Read(ctx context.Context, query bson.M) []bson.M
	ReadAll(ctx context.Context) []bson.M
	Update(ctx context.Context, query bson.M, newValues bson.M, multiple bool) int64
	Delete(ctx context.Context, query bson.M, multiple bool) int64
}

// animalRepository implements AnimalRepository against a MongoDB collection
type animalRepository struct {
	col *mongo.Collection
}

// NewAnimalRepository creates a new animal repository
func NewAnimalRepository(col *mongo.Collection) AnimalRepository {
	return &animalRepository{col: col}
}

// available reports whether the collection handle is usable. A nil handle
// means the document store was unreachable at startup.
func (r *animalRepository) available() bool {
	if r.col == nil {
		log.Println("animal repository: document store unavailable")
		return false
	}
	return true
}

// Create inserts a new animal record and reports success
func (r *animalRepository) Create(ctx context.Context, doc bson.M) bool {
	if !r.available() {
		return false
	}
	if len(doc) == 0 {
		log.Println("animal repository: refusing to insert empty document")
		return false
	}

	result, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		log.Printf("animal repository: failed to insert document: %v", err)
		return false
	}

	log.Printf("animal repository: inserted document with ID %v", result.InsertedID)
	return true
}

// Read returns all records matching the query, or an empty slice on a nil or
// empty query and on any database error
func (r *animalRepository) Read(ctx context.Context, query bson.M) []bson.M {
	if !r.available() {
		return []bson.M{}
	}
	if len(query) == 0 {
		log.Println("animal repository: invalid query, expected a non-empty document")
		return []bson.M{}
	}

	cursor, err := r.col.Find(ctx, query)
	if err != nil {
		log.Printf("animal repository: failed to query documents: %v", err)
		return []bson.M{}
	}
	defer cursor.Close(ctx)

	results := []bson.M{}
	if err := cursor.All(ctx, &results); err != nil {
		log.Printf("animal repository: failed to decode documents: %v", err)
		return []bson.M{}
	}

	return results
}

// ReadAll returns every record in the collection with nil field values
// normalized to empty strings, so display code never sees a null
func (r *animalRepository) ReadAll(ctx context.Context) []bson.M {
	if !r.available() {
		return []bson.M{}
	}

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		log.Printf("animal repository: failed to query all documents: %v", err)
		return []bson.M{}
	}
	defer cursor.Close(ctx)

	results := []bson.M{}
	if err := cursor.All(ctx, &results); err != nil {
		log.Printf("animal repository: failed to decode documents: %v", err)
		return []bson.M{}
	}

	for _, doc := range results {
		normalizeDocument(doc)
	}

	return results
}

// Update applies a $set of newValues to one match, or to all matches when
// multiple is true, and returns the number of modified documents
func (r *animalRepository) Update(ctx context.Context, query bson.M, newValues bson.M, multiple bool) int64 {
	if !r.available() {
		return 0
	}
	if query == nil || newValues == nil {
		log.Println("animal repository: invalid update, query and values must be documents")
		return 0
	}

	update := bson.M{"$set": newValues}

	var result *mongo.UpdateResult
	var err error
	if multiple {
		result, err = r.col.UpdateMany(ctx, query, update)
	} else {
		result, err = r.col.UpdateOne(ctx, query, update)
	}
	if err != nil {
		log.Printf("animal repository: failed to update documents: %v", err)
		return 0
	}

	log.Printf("animal repository: %d document(s) updated", result.ModifiedCount)
	return result.ModifiedCount
}

// Delete removes one match, or all matches when multiple is true, and returns
// the number of deleted documents
func (r *animalRepository) Delete(ctx context.Context, query bson.M, multiple bool) int64 {
	if !r.available() {
		return 0
	}
	if query == nil {
		log.Println("animal repository: invalid delete, query must be a document")
		return 0
	}

	var result *mongo.DeleteResult
	var err error
	if multiple {
		result, err = r.col.DeleteMany(ctx, query)
	} else {
		result, err = r.col.DeleteOne(ctx, query)
	}
	if err != nil {
		log.Printf("animal repository: failed to delete documents: %v", err)
		return 0
	}

	log.Printf("animal repository: %d document(s) deleted", result.DeletedCount)
	return result.DeletedCount
}

// normalizeDocument replaces nil field values with empty strings in place
func normalizeDocument(doc bson.M) {
	for key, value := range doc {
		if value == nil {
			doc[key] = ""
		}
	}
}

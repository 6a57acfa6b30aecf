package services

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/acmays/shelter-dashboard/dataset"
	"github.com/acmays/shelter-dashboard/models"
	"github.com/acmays/shelter-dashboard/repositories"
)

// AnimalService defines record management business logic over the document
// store
type AnimalService interface {
	List(ctx context.Context) []models.Animal
	Get(ctx context.Context, id string) (*models.Animal, error)
	Create(ctx context.Context, form *models.AnimalForm) (*models.Animal, error)
	Update(ctx context.Context, id string, form *models.AnimalForm) error
	Delete(ctx context.Context, id string) error
	ImportCSV(ctx context.Context, path string) (int, error)
}

// animalService implements AnimalService
type animalService struct {
	repo repositories.AnimalRepository
}

// NewAnimalService creates a new animal service
func NewAnimalService(repo repositories.AnimalRepository) AnimalService {
	return &animalService{repo: repo}
}

// List retrieves every record from the collection for the admin table
func (s *animalService) List(ctx context.Context) []models.Animal {
	docs := s.repo.ReadAll(ctx)

	animals := make([]models.Animal, 0, len(docs))
	for _, doc := range docs {
		animals = append(animals, docToAnimal(doc))
	}
	return animals
}

// Get retrieves a single record by its document ID
func (s *animalService) Get(ctx context.Context, id string) (*models.Animal, error) {
	query, err := idQuery(id)
	if err != nil {
		return nil, err
	}

	docs := s.repo.Read(ctx, query)
	if len(docs) == 0 {
		return nil, fmt.Errorf("animal record %s not found", id)
	}

	animal := docToAnimal(docs[0])
	return &animal, nil
}

// Create validates the form and inserts a new record
func (s *animalService) Create(ctx context.Context, form *models.AnimalForm) (*models.Animal, error) {
	if errors := form.Validate(); len(errors) > 0 {
		return nil, fmt.Errorf("validation failed: %s", strings.Join(errors, ", "))
	}

	animal := form.ToAnimal()
	if !s.repo.Create(ctx, animalToDoc(animal)) {
		return nil, fmt.Errorf("failed to create animal record")
	}

	return &animal, nil
}

// Update validates the form and replaces the record's fields
func (s *animalService) Update(ctx context.Context, id string, form *models.AnimalForm) error {
	if errors := form.Validate(); len(errors) > 0 {
		return fmt.Errorf("validation failed: %s", strings.Join(errors, ", "))
	}

	query, err := idQuery(id)
	if err != nil {
		return err
	}

	// Verify the record exists so an unmodified update is not mistaken
	// for a missing one
	if docs := s.repo.Read(ctx, query); len(docs) == 0 {
		return fmt.Errorf("animal record %s not found", id)
	}

	s.repo.Update(ctx, query, formUpdateDoc(form), false)
	return nil
}

// Delete removes a single record by its document ID
func (s *animalService) Delete(ctx context.Context, id string) error {
	query, err := idQuery(id)
	if err != nil {
		return err
	}

	if deleted := s.repo.Delete(ctx, query, false); deleted == 0 {
		return fmt.Errorf("animal record %s not found", id)
	}

	return nil
}

// ImportCSV seeds the collection from a shelter outcomes export and returns
// the number of records inserted
func (s *animalService) ImportCSV(ctx context.Context, path string) (int, error) {
	animals := dataset.Load(path)
	if len(animals) == 0 {
		return 0, fmt.Errorf("no records loaded from %s", path)
	}

	inserted := 0
	for _, animal := range animals {
		if s.repo.Create(ctx, animalToDoc(animal)) {
			inserted++
		}
	}

	if inserted == 0 {
		return 0, fmt.Errorf("failed to insert any of the %d loaded records", len(animals))
	}

	return inserted, nil
}

func idQuery(id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid animal record ID %q: %w", id, err)
	}
	return bson.M{"_id": oid}, nil
}

// animalToDoc flattens a record into the collection's document shape
func animalToDoc(a models.Animal) bson.M {
	return bson.M{
		"animal_id":                 a.AnimalID,
		"name":                      a.Name,
		"animal_type":               a.AnimalType,
		"breed":                     a.Breed,
		"sex_upon_outcome":          a.Sex,
		"age_upon_outcome_in_weeks": a.AgeWeeks,
		"color":                     a.Color,
		"outcome_type":              a.OutcomeType,
		"location_lat":              a.Lat,
		"location_long":             a.Long,
	}
}

// formUpdateDoc builds the replacement fields for an edit. The form does not
// manage animal_id, and coordinates left blank are kept, so neither is
// written
func formUpdateDoc(form *models.AnimalForm) bson.M {
	animal := form.ToAnimal()
	doc := bson.M{
		"name":                      animal.Name,
		"animal_type":               animal.AnimalType,
		"breed":                     animal.Breed,
		"sex_upon_outcome":          animal.Sex,
		"age_upon_outcome_in_weeks": animal.AgeWeeks,
		"color":                     animal.Color,
		"outcome_type":              animal.OutcomeType,
	}
	if form.Lat != "" && form.Long != "" {
		doc["location_lat"] = animal.Lat
		doc["location_long"] = animal.Long
	}
	return doc
}

// docToAnimal rebuilds a record from a raw document, tolerating the numeric
// type variants the driver may decode
func docToAnimal(doc bson.M) models.Animal {
	animal := models.Animal{
		AnimalID:    docString(doc, "animal_id"),
		Name:        docString(doc, "name"),
		AnimalType:  docString(doc, "animal_type"),
		Breed:       docString(doc, "breed"),
		Sex:         docString(doc, "sex_upon_outcome"),
		AgeWeeks:    docFloat(doc, "age_upon_outcome_in_weeks"),
		Color:       docString(doc, "color"),
		OutcomeType: docString(doc, "outcome_type"),
		Lat:         docFloat(doc, "location_lat"),
		Long:        docFloat(doc, "location_long"),
	}
	animal.AgeReadable = models.FormatAge(animal.AgeWeeks)

	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		animal.ID = oid
	}

	return animal
}

func docString(doc bson.M, key string) string {
	if s, ok := doc[key].(string); ok {
		return s
	}
	return ""
}

func docFloat(doc bson.M, key string) float64 {
	switch v := doc[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

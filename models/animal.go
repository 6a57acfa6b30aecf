package models

import (
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Animal represents a single shelter outcome record
type Animal struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	AnimalID    string             `json:"animal_id,omitempty" bson:"animal_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	AnimalType  string             `json:"animal_type" bson:"animal_type"`
	Breed       string             `json:"breed" bson:"breed"`
	Sex         string             `json:"sex_upon_outcome" bson:"sex_upon_outcome"`
	AgeWeeks    float64            `json:"age_upon_outcome_in_weeks" bson:"age_upon_outcome_in_weeks"`
	Color       string             `json:"color" bson:"color"`
	OutcomeType string             `json:"outcome_type" bson:"outcome_type"`
	Lat         float64            `json:"location_lat" bson:"location_lat"`
	Long        float64            `json:"location_long" bson:"location_long"`

	// Derived for display, never persisted
	AgeReadable string `json:"age_readable,omitempty" bson:"-"`
}

// HasLocation reports whether the record carries usable coordinates
func (a Animal) HasLocation() bool {
	return a.Lat != 0 || a.Long != 0
}

// AnimalForm represents form data for creating/updating animal records
type AnimalForm struct {
	Name        string `json:"name"`
	AnimalType  string `json:"animal_type"`
	Breed       string `json:"breed"`
	Sex         string `json:"sex_upon_outcome"`
	AgeWeeks    string `json:"age_upon_outcome_in_weeks"`
	Color       string `json:"color"`
	OutcomeType string `json:"outcome_type"`
	Lat         string `json:"location_lat"`
	Long        string `json:"location_long"`
}

// Validate validates the animal form data
func (f *AnimalForm) Validate() []string {
	var errors []string

	if strings.TrimSpace(f.AnimalType) == "" {
		errors = append(errors, "Animal type is required")
	}

	if strings.TrimSpace(f.Breed) == "" {
		errors = append(errors, "Breed is required")
	}

	if len(f.Name) > 100 {
		errors = append(errors, "Name must be less than 100 characters")
	}

	if f.AgeWeeks != "" {
		age, err := strconv.ParseFloat(f.AgeWeeks, 64)
		if err != nil || age < 0 {
			errors = append(errors, "Age must be a non-negative number of weeks")
		}
	}

	if (f.Lat == "") != (f.Long == "") {
		errors = append(errors, "Latitude and longitude must be provided together")
	}

	if f.Lat != "" {
		if _, err := strconv.ParseFloat(f.Lat, 64); err != nil {
			errors = append(errors, "Latitude must be a number")
		}
	}

	if f.Long != "" {
		if _, err := strconv.ParseFloat(f.Long, 64); err != nil {
			errors = append(errors, "Longitude must be a number")
		}
	}

	return errors
}

// ToAnimal converts validated form data into an Animal record
func (f *AnimalForm) ToAnimal() Animal {
	age, _ := strconv.ParseFloat(f.AgeWeeks, 64)
	lat, _ := strconv.ParseFloat(f.Lat, 64)
	long, _ := strconv.ParseFloat(f.Long, 64)

	return Animal{
		Name:        strings.TrimSpace(f.Name),
		AnimalType:  strings.TrimSpace(f.AnimalType),
		Breed:       strings.TrimSpace(f.Breed),
		Sex:         strings.TrimSpace(f.Sex),
		AgeWeeks:    age,
		Color:       strings.TrimSpace(f.Color),
		OutcomeType: strings.TrimSpace(f.OutcomeType),
		Lat:         lat,
		Long:        long,
	}
}

// friendlyStatuses maps shelter outcome codes to adopter-facing descriptions
var friendlyStatuses = map[string]string{
	"Adoption":        "Available for Adoption",
	"Transfer":        "Transferred",
	"Return to Owner": "Returned to Owner",
	"Euthanasia":      "Euthanized",
	"Died":            "Passed Away",
	"Disposal":        "Other Disposal",
	"Rto-Adopt":       "Returned to Owner for Adoption",
}

// FriendlyStatus converts a raw outcome type into a user-friendly status.
// Unknown codes pass through unchanged.
func FriendlyStatus(outcomeType string) string {
	if s, ok := friendlyStatuses[outcomeType]; ok {
		return s
	}
	return outcomeType
}

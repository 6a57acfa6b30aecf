package dataset

import (
	"strings"

	"github.com/acmays/shelter-dashboard/models"
)

// Prepare returns a display-ready copy of the dataset: readable age strings,
// shelter database artifacts stripped from names, and blank display fields
// replaced with "Unknown". The input slice is not modified.
func Prepare(animals []models.Animal) []models.Animal {
	prepared := make([]models.Animal, len(animals))
	for i, a := range animals {
		a.AgeReadable = models.FormatAge(a.AgeWeeks)

		// Shelter exports prefix some names with asterisks
		a.Name = strings.TrimSpace(strings.ReplaceAll(a.Name, "*", ""))
		if a.Name == "" {
			a.Name = "Unknown"
		}

		a.AnimalType = orUnknown(a.AnimalType)
		a.Breed = orUnknown(a.Breed)
		a.Sex = orUnknown(a.Sex)
		a.Color = orUnknown(a.Color)
		a.OutcomeType = orUnknown(a.OutcomeType)

		prepared[i] = a
	}
	return prepared
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Unknown"
	}
	return s
}

// Stats summarizes the dataset for the dashboard header
type Stats struct {
	TotalAnimals int `json:"total_animals"`
	Dogs         int `json:"dogs"`
	Cats         int `json:"cats"`
	Other        int `json:"other"`
	Birds        int `json:"birds"`
	Livestock    int `json:"livestock"`
	Adopted      int `json:"adopted"`
	UniqueBreeds int `json:"unique_breeds"`
}

// Summarize calculates count statistics for the dataset
func Summarize(animals []models.Animal) Stats {
	stats := Stats{TotalAnimals: len(animals)}

	breeds := make(map[string]struct{})
	for _, a := range animals {
		switch a.AnimalType {
		case "Dog":
			stats.Dogs++
		case "Cat":
			stats.Cats++
		case "Other":
			stats.Other++
		case "Bird":
			stats.Birds++
		case "Livestock":
			stats.Livestock++
		}

		if a.OutcomeType == "Adoption" {
			stats.Adopted++
		}

		if a.Breed != "" {
			breeds[a.Breed] = struct{}{}
		}
	}

	stats.UniqueBreeds = len(breeds)
	return stats
}

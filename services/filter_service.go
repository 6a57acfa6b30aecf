package services

import (
	"sort"

	"github.com/acmays/shelter-dashboard/config"
	"github.com/acmays/shelter-dashboard/dataset"
	"github.com/acmays/shelter-dashboard/models"
)

// FilterResult is the resolved view for one filter interaction: the filtered
// records plus the adjusted control values to render back to the UI
type FilterResult struct {
	Animals      []models.Animal
	State        models.FilterState
	BreedOptions []string
}

// FilterService resolves dashboard filter-control state against the working
// dataset
type FilterService interface {
	Resolve(state models.FilterState) *FilterResult
	BreedOptions(animalType string) []string
	RescueTypes() []string
	FilterByRescueType(name string) []models.Animal
	Dataset() []models.Animal
	Stats() dataset.Stats
}

// filterService implements FilterService over an immutable in-memory dataset
type filterService struct {
	animals []models.Animal
	stats   dataset.Stats
}

// NewFilterService creates a filter service for the given prepared dataset
func NewFilterService(animals []models.Animal) FilterService {
	return &filterService{
		animals: animals,
		stats:   dataset.Summarize(animals),
	}
}

// Resolve maps the submitted control state to a filtered view. Quick filters
// override and reset the type/breed selectors; otherwise type, breed and age
// range compose conjunctively.
func (s *filterService) Resolve(state models.FilterState) *FilterResult {
	// Reset restores the full dataset and default control values
	if state.Trigger == models.TriggerReset {
		return &FilterResult{
			Animals:      s.animals,
			State:        models.DefaultFilterState(),
			BreedOptions: s.BreedOptions(models.FilterAll),
		}
	}

	if state.AnimalType == "" {
		state.AnimalType = models.FilterAll
	}
	if state.Breed == "" {
		state.Breed = models.FilterAll
	}

	// Changing the animal type invalidates the breed selection
	if state.Trigger == models.TriggerAnimalType {
		state.Breed = models.FilterAll
	}

	filtered := s.animals

	// Quick filters apply a preset and reset the selectors
	switch state.Trigger {
	case models.TriggerYoung:
		filtered = filterAnimals(filtered, func(a models.Animal) bool {
			return a.AgeWeeks <= models.YoungMaxWeeks
		})
		state.AnimalType = models.FilterAll
		state.Breed = models.FilterAll
	case models.TriggerAdult:
		filtered = filterAnimals(filtered, func(a models.Animal) bool {
			return a.AgeWeeks > models.YoungMaxWeeks && a.AgeWeeks <= models.SeniorMinWeeks
		})
		state.AnimalType = models.FilterAll
		state.Breed = models.FilterAll
	case models.TriggerSenior:
		filtered = filterAnimals(filtered, func(a models.Animal) bool {
			return a.AgeWeeks > models.SeniorMinWeeks
		})
		state.AnimalType = models.FilterAll
		state.Breed = models.FilterAll
	case models.TriggerAvailable:
		filtered = filterAnimals(filtered, func(a models.Animal) bool {
			return a.OutcomeType == "Adoption"
		})
		state.AnimalType = models.FilterAll
		state.Breed = models.FilterAll
	}

	if state.AnimalType != models.FilterAll {
		animalType := state.AnimalType
		filtered = filterAnimals(filtered, func(a models.Animal) bool {
			return a.AnimalType == animalType
		})
	}

	if state.Breed != models.FilterAll {
		breed := state.Breed
		filtered = filterAnimals(filtered, func(a models.Animal) bool {
			return a.Breed == breed
		})
	}

	// The age-band buttons already pin the age, so the slider is ignored
	// for that resolution
	if !state.IsAgeQuickFilter() {
		min, max := state.AgeMin, state.AgeMax
		filtered = filterAnimals(filtered, func(a models.Animal) bool {
			return a.AgeWeeks >= min && a.AgeWeeks <= max
		})
	}

	return &FilterResult{
		Animals:      filtered,
		State:        state,
		BreedOptions: s.BreedOptions(state.AnimalType),
	}
}

// BreedOptions returns the sorted unique breeds present for the selected
// animal type, or across the whole dataset when the type is All
func (s *filterService) BreedOptions(animalType string) []string {
	seen := make(map[string]struct{})
	for _, a := range s.animals {
		if animalType != models.FilterAll && animalType != "" && a.AnimalType != animalType {
			continue
		}
		if a.Breed == "" {
			continue
		}
		seen[a.Breed] = struct{}{}
	}

	breeds := make([]string, 0, len(seen))
	for breed := range seen {
		breeds = append(breeds, breed)
	}
	sort.Strings(breeds)
	return breeds
}

// RescueTypes returns the available rescue-criteria preset names, sorted
func (s *filterService) RescueTypes() []string {
	names := make([]string, 0, len(config.RescuePresets))
	for name := range config.RescuePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FilterByRescueType returns the animals matching a rescue-criteria preset:
// breed in the preset's set, matching sex when specified, and age within the
// preset's window. Unknown preset names yield the full dataset.
func (s *filterService) FilterByRescueType(name string) []models.Animal {
	criteria, ok := config.RescuePresets[name]
	if !ok {
		return s.animals
	}

	breeds := make(map[string]struct{}, len(criteria.Breeds))
	for _, b := range criteria.Breeds {
		breeds[b] = struct{}{}
	}

	return filterAnimals(s.animals, func(a models.Animal) bool {
		if _, ok := breeds[a.Breed]; !ok {
			return false
		}
		if criteria.Sex != "" && a.Sex != criteria.Sex {
			return false
		}
		if criteria.AgeMin > 0 && a.AgeWeeks < criteria.AgeMin {
			return false
		}
		if criteria.AgeMax > 0 && a.AgeWeeks > criteria.AgeMax {
			return false
		}
		return true
	})
}

// Dataset returns the full prepared dataset
func (s *filterService) Dataset() []models.Animal {
	return s.animals
}

// Stats returns the dataset summary statistics
func (s *filterService) Stats() dataset.Stats {
	return s.stats
}

func filterAnimals(animals []models.Animal, keep func(models.Animal) bool) []models.Animal {
	filtered := make([]models.Animal, 0, len(animals))
	for _, a := range animals {
		if keep(a) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

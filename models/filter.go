package models

// Default filter control values
const (
	FilterAll     = "All"
	DefaultAgeMin = 0
	DefaultAgeMax = 520 // 10 years in weeks
)

// Age band boundaries in weeks
const (
	YoungMaxWeeks  = 52  // 1 year or younger
	SeniorMinWeeks = 312 // older than 6 years
)

// Trigger identifiers for the dashboard filter controls
const (
	TriggerAnimalType = "animal-type"
	TriggerBreed      = "breed"
	TriggerAgeRange   = "age-range"
	TriggerYoung      = "young"
	TriggerAdult      = "adult"
	TriggerSenior     = "senior"
	TriggerAvailable  = "available"
	TriggerReset      = "reset"
)

// FilterState captures the dashboard filter controls as submitted by the UI
type FilterState struct {
	AnimalType string  `json:"animal_type"`
	Breed      string  `json:"breed"`
	AgeMin     float64 `json:"age_min"`
	AgeMax     float64 `json:"age_max"`
	Trigger    string  `json:"trigger"`
	RescueType string  `json:"rescue_type,omitempty"`
}

// DefaultFilterState returns the controls in their reset position
func DefaultFilterState() FilterState {
	return FilterState{
		AnimalType: FilterAll,
		Breed:      FilterAll,
		AgeMin:     DefaultAgeMin,
		AgeMax:     DefaultAgeMax,
	}
}

// IsAgeQuickFilter reports whether the trigger is one of the age-band
// quick-filter buttons, which suppress the age range slider
func (f FilterState) IsAgeQuickFilter() bool {
	switch f.Trigger {
	case TriggerYoung, TriggerAdult, TriggerSenior:
		return true
	}
	return false
}

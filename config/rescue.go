package config

// RescueCriteria describes a preset rescue-training filter. Age values are in
// weeks; a zero AgeMax means no upper bound.
type RescueCriteria struct {
	Breeds []string
	Sex    string
	AgeMin float64
	AgeMax float64
}

// RescuePresets maps rescue operation names to their filter criteria.
// Maintained for backward compatibility with specialized rescue filtering.
var RescuePresets = map[string]RescueCriteria{
	"Water Rescue": {
		Breeds: []string{"Labrador Retriever Mix", "Chesapeake Bay Retriever", "Newfoundland"},
		Sex:    "Intact Female",
		AgeMin: 26,  // 6 months minimum
		AgeMax: 156, // 3 years maximum
	},
	"Mountain or Wilderness Rescue": {
		Breeds: []string{"German Shepherd", "Alaskan Malamute", "Old English Sheepdog",
			"Siberian Husky", "Rottweiler"},
		Sex: "Intact Male",
	},
	"Disaster or Individual Tracking": {
		Breeds: []string{"Doberman Pinscher", "German Shepherd", "Golden Retriever",
			"Bloodhound", "Rottweiler"},
		Sex:    "Intact Male",
		AgeMin: 20,  // 5 months minimum
		AgeMax: 300, // ~6 years maximum
	},
	"All Preferred Breeds": {
		Breeds: []string{"Labrador Retriever Mix", "Chesapeake Bay Retriever", "Newfoundland",
			"German Shepherd", "Alaskan Malamute", "Old English Sheepdog",
			"Siberian Husky", "Rottweiler", "Doberman Pinscher", "Golden Retriever",
			"Bloodhound"},
	},
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/acmays/shelter-dashboard/models"
)

// FilterServiceTestSuite is a test suite for the filter resolver
type FilterServiceTestSuite struct {
	suite.Suite
	service FilterService
}

// SetupTest builds a small fixture dataset before each test
func (suite *FilterServiceTestSuite) SetupTest() {
	suite.service = NewFilterService([]models.Animal{
		{Name: "Rex", AnimalType: "Dog", Breed: "Labrador Retriever Mix", Sex: "Intact Female", AgeWeeks: 104, OutcomeType: "Adoption"},
		{Name: "Buddy", AnimalType: "Dog", Breed: "Labrador Retriever Mix", Sex: "Neutered Male", AgeWeeks: 400, OutcomeType: "Transfer"},
		{Name: "Duke", AnimalType: "Dog", Breed: "German Shepherd", Sex: "Intact Male", AgeWeeks: 208, OutcomeType: "Adoption"},
		{Name: "Mia", AnimalType: "Cat", Breed: "Siamese", Sex: "Spayed Female", AgeWeeks: 30, OutcomeType: "Adoption"},
		{Name: "Tom", AnimalType: "Cat", Breed: "Domestic Shorthair", Sex: "Intact Male", AgeWeeks: 350, OutcomeType: "Euthanasia"},
		{Name: "Coco", AnimalType: "Bird", Breed: "Parakeet", Sex: "Unknown", AgeWeeks: 52, OutcomeType: "Adoption"},
	})
}

func (suite *FilterServiceTestSuite) TestTypeAndBreedComposeConjunctively() {
	result := suite.service.Resolve(models.FilterState{
		AnimalType: "Dog",
		Breed:      "Labrador Retriever Mix",
		AgeMin:     0,
		AgeMax:     520,
	})

	assert.Len(suite.T(), result.Animals, 2)
	for _, a := range result.Animals {
		assert.Equal(suite.T(), "Dog", a.AnimalType)
		assert.Equal(suite.T(), "Labrador Retriever Mix", a.Breed)
	}
}

func (suite *FilterServiceTestSuite) TestSeniorQuickFilter() {
	result := suite.service.Resolve(models.FilterState{
		AnimalType: "Dog",
		Breed:      "German Shepherd",
		AgeMin:     0,
		AgeMax:     520,
		Trigger:    models.TriggerSenior,
	})

	// Selectors are reset by the quick filter
	assert.Equal(suite.T(), models.FilterAll, result.State.AnimalType)
	assert.Equal(suite.T(), models.FilterAll, result.State.Breed)

	assert.Len(suite.T(), result.Animals, 2)
	for _, a := range result.Animals {
		assert.Greater(suite.T(), a.AgeWeeks, float64(312))
	}
}

func (suite *FilterServiceTestSuite) TestYoungQuickFilter() {
	result := suite.service.Resolve(models.FilterState{Trigger: models.TriggerYoung})

	assert.Len(suite.T(), result.Animals, 2)
	for _, a := range result.Animals {
		assert.LessOrEqual(suite.T(), a.AgeWeeks, float64(52))
	}
}

func (suite *FilterServiceTestSuite) TestAdultQuickFilter() {
	result := suite.service.Resolve(models.FilterState{Trigger: models.TriggerAdult})

	assert.Len(suite.T(), result.Animals, 2)
	for _, a := range result.Animals {
		assert.Greater(suite.T(), a.AgeWeeks, float64(52))
		assert.LessOrEqual(suite.T(), a.AgeWeeks, float64(312))
	}
}

func (suite *FilterServiceTestSuite) TestAvailableQuickFilterKeepsAgeRange() {
	result := suite.service.Resolve(models.FilterState{
		AgeMin:  0,
		AgeMax:  150,
		Trigger: models.TriggerAvailable,
	})

	// Availability resets the selectors but the age range still applies
	assert.Len(suite.T(), result.Animals, 3)
	for _, a := range result.Animals {
		assert.Equal(suite.T(), "Adoption", a.OutcomeType)
		assert.LessOrEqual(suite.T(), a.AgeWeeks, float64(150))
	}
}

func (suite *FilterServiceTestSuite) TestResetRestoresDefaults() {
	result := suite.service.Resolve(models.FilterState{
		AnimalType: "Cat",
		Breed:      "Siamese",
		AgeMin:     100,
		AgeMax:     200,
		Trigger:    models.TriggerReset,
	})

	assert.Len(suite.T(), result.Animals, 6)
	assert.Equal(suite.T(), models.FilterAll, result.State.AnimalType)
	assert.Equal(suite.T(), models.FilterAll, result.State.Breed)
	assert.Equal(suite.T(), float64(0), result.State.AgeMin)
	assert.Equal(suite.T(), float64(520), result.State.AgeMax)
	assert.Len(suite.T(), result.BreedOptions, 5)
}

func (suite *FilterServiceTestSuite) TestAnimalTypeChangeResetsBreed() {
	result := suite.service.Resolve(models.FilterState{
		AnimalType: "Cat",
		Breed:      "German Shepherd", // stale selection from the Dog view
		AgeMin:     0,
		AgeMax:     520,
		Trigger:    models.TriggerAnimalType,
	})

	assert.Equal(suite.T(), models.FilterAll, result.State.Breed)
	assert.Len(suite.T(), result.Animals, 2)
	assert.ElementsMatch(suite.T(), []string{"Domestic Shorthair", "Siamese"}, result.BreedOptions)
}

func (suite *FilterServiceTestSuite) TestAgeRangeFilter() {
	result := suite.service.Resolve(models.FilterState{
		AnimalType: models.FilterAll,
		Breed:      models.FilterAll,
		AgeMin:     50,
		AgeMax:     250,
	})

	assert.Len(suite.T(), result.Animals, 3)
	for _, a := range result.Animals {
		assert.GreaterOrEqual(suite.T(), a.AgeWeeks, float64(50))
		assert.LessOrEqual(suite.T(), a.AgeWeeks, float64(250))
	}
}

func (suite *FilterServiceTestSuite) TestZeroAgeRangeIsHonored() {
	result := suite.service.Resolve(models.FilterState{
		AnimalType: models.FilterAll,
		Breed:      models.FilterAll,
		AgeMin:     0,
		AgeMax:     0,
	})

	// A submitted [0, 0] range matches only zero-week records, it is not
	// widened to the full range
	assert.Empty(suite.T(), result.Animals)
	assert.Equal(suite.T(), float64(0), result.State.AgeMax)
}

func (suite *FilterServiceTestSuite) TestSeniorQuickFilterIgnoresAgeRange() {
	result := suite.service.Resolve(models.FilterState{
		AgeMin:  0,
		AgeMax:  100,
		Trigger: models.TriggerSenior,
	})

	// The age-band button pins the age, so the narrower slider range is
	// ignored
	assert.Len(suite.T(), result.Animals, 2)
	for _, a := range result.Animals {
		assert.Greater(suite.T(), a.AgeWeeks, float64(312))
	}
}

func (suite *FilterServiceTestSuite) TestBreedOptionsPerType() {
	assert.ElementsMatch(suite.T(),
		[]string{"German Shepherd", "Labrador Retriever Mix"},
		suite.service.BreedOptions("Dog"))

	assert.Len(suite.T(), suite.service.BreedOptions(models.FilterAll), 5)
}

func (suite *FilterServiceTestSuite) TestRescuePresetFilter() {
	water := suite.service.FilterByRescueType("Water Rescue")

	// Only the intact female Labrador within the age window qualifies
	assert.Len(suite.T(), water, 1)
	assert.Equal(suite.T(), "Rex", water[0].Name)

	// Unknown preset names fall back to the full dataset
	assert.Len(suite.T(), suite.service.FilterByRescueType("Space Rescue"), 6)
}

func (suite *FilterServiceTestSuite) TestStats() {
	stats := suite.service.Stats()

	assert.Equal(suite.T(), 6, stats.TotalAnimals)
	assert.Equal(suite.T(), 3, stats.Dogs)
	assert.Equal(suite.T(), 2, stats.Cats)
	assert.Equal(suite.T(), 4, stats.Adopted)
	assert.Equal(suite.T(), 5, stats.UniqueBreeds)
}

func TestFilterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FilterServiceTestSuite))
}

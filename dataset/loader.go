package dataset

import (
	"encoding/csv"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/acmays/shelter-dashboard/models"
)

// Column names expected in the shelter outcomes export
const (
	colName        = "name"
	colAnimalType  = "animal_type"
	colBreed       = "breed"
	colSex         = "sex_upon_outcome"
	colAgeWeeks    = "age_upon_outcome_in_weeks"
	colColor       = "color"
	colOutcomeType = "outcome_type"
	colAnimalID    = "animal_id"
	colLat         = "location_lat"
	colLong        = "location_long"
)

// Load reads the shelter outcomes CSV and returns the working dataset.
// Rows without both coordinates are dropped, since the map cannot place
// them. Any failure yields an empty dataset so the dashboard still renders.
func Load(path string) []models.Animal {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("dataset: failed to open %s: %v", path, err)
		return []models.Animal{}
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		log.Printf("dataset: failed to read header from %s: %v", path, err)
		return []models.Animal{}
	}

	// Column lookup by header name. The export sometimes carries a leading
	// unnamed index column, which simply never matches a known name.
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	if _, ok := index[colLat]; !ok {
		log.Printf("dataset: %s is missing the %s column", path, colLat)
		return []models.Animal{}
	}
	if _, ok := index[colLong]; !ok {
		log.Printf("dataset: %s is missing the %s column", path, colLong)
		return []models.Animal{}
	}

	animals := []models.Animal{}
	dropped := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("dataset: failed to parse %s: %v", path, err)
			return []models.Animal{}
		}

		lat, latErr := parseFloat(field(record, index, colLat))
		long, longErr := parseFloat(field(record, index, colLong))
		if latErr != nil || longErr != nil {
			dropped++
			continue
		}

		age, _ := parseFloat(field(record, index, colAgeWeeks))

		animals = append(animals, models.Animal{
			AnimalID:    field(record, index, colAnimalID),
			Name:        field(record, index, colName),
			AnimalType:  field(record, index, colAnimalType),
			Breed:       field(record, index, colBreed),
			Sex:         field(record, index, colSex),
			AgeWeeks:    age,
			Color:       field(record, index, colColor),
			OutcomeType: field(record, index, colOutcomeType),
			Lat:         lat,
			Long:        long,
		})
	}

	log.Printf("dataset: loaded %d animals from %s (%d dropped without coordinates)", len(animals), path, dropped)
	return animals
}

// field returns the named column of the record, or "" when missing
func field(record []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseFloat(s, 64)
}

package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"gitea.com/go-chi/session"

	"github.com/acmays/shelter-dashboard/dataset"
	"github.com/acmays/shelter-dashboard/models"
	"github.com/acmays/shelter-dashboard/services"
)

// maxMapMarkers caps the marker count so the map stays responsive
const maxMapMarkers = 100

const filterSessionKey = "filter_state"

// DashboardController handles the adoption dashboard pages
type DashboardController struct {
	services *services.Services
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(services *services.Services) *DashboardController {
	return &DashboardController{
		services: services,
	}
}

// Index handles GET /, the table view with all filter controls
func (c *DashboardController) Index(w http.ResponseWriter, r *http.Request) {
	state := c.filterState(r)

	result := c.services.Filter.Resolve(state)
	animals := result.Animals

	// A rescue preset replaces the resolved view with its own criteria
	if state.RescueType != "" && state.RescueType != models.FilterAll {
		animals = c.services.Filter.FilterByRescueType(state.RescueType)
	}

	// Remember the last filter state for the next page load
	if sess := session.GetSession(r); sess != nil {
		sess.Set(filterSessionKey, result.State)
	}

	var flash *models.FlashMessage
	if len(c.services.Filter.Dataset()) == 0 {
		flash = &models.FlashMessage{
			Type:    "warning",
			Message: "No animal data loaded. Check the CSV file path and restart.",
		}
	}

	templateData := struct {
		Title        string
		CurrentPage  string
		Flash        *models.FlashMessage
		Animals      []models.Animal
		State        models.FilterState
		BreedOptions []string
		RescueTypes  []string
		Stats        dataset.Stats
		ResultCount  int
	}{
		Title:        "Austin Area Animal Adoption Dashboard",
		CurrentPage:  "dashboard",
		Flash:        flash,
		Animals:      animals,
		State:        result.State,
		BreedOptions: result.BreedOptions,
		RescueTypes:  c.services.Filter.RescueTypes(),
		Stats:        c.services.Filter.Stats(),
		ResultCount:  len(animals),
	}

	renderTemplate(w, "dashboard", "templates/dashboard.html", templateData)
}

// marker is one map pin in the locations response
type marker struct {
	Name   string  `json:"name"`
	Breed  string  `json:"breed"`
	Type   string  `json:"animal_type"`
	Age    string  `json:"age"`
	Sex    string  `json:"sex"`
	Color  string  `json:"color"`
	Status string  `json:"status"`
	Lat    float64 `json:"lat"`
	Long   float64 `json:"long"`
}

// locationsResponse is the payload behind the dashboard map
type locationsResponse struct {
	Markers []marker `json:"markers"`
	Total   int      `json:"total"`
	Message string   `json:"message"`
}

// Locations handles GET /api/locations, returning map markers for the
// currently filtered animals
func (c *DashboardController) Locations(w http.ResponseWriter, r *http.Request) {
	state := c.filterState(r)

	result := c.services.Filter.Resolve(state)
	animals := result.Animals
	if state.RescueType != "" && state.RescueType != models.FilterAll {
		animals = c.services.Filter.FilterByRescueType(state.RescueType)
	}

	total := len(animals)
	message := "Showing all " + strconv.Itoa(total) + " animals on map."
	if total > maxMapMarkers {
		animals = animals[:maxMapMarkers]
		message = "Showing first " + strconv.Itoa(maxMapMarkers) + " of " +
			strconv.Itoa(total) + " animals on map. Use filters to narrow results."
	}

	markers := make([]marker, 0, len(animals))
	for _, a := range animals {
		if !a.HasLocation() {
			continue
		}
		markers = append(markers, marker{
			Name:   a.Name,
			Breed:  a.Breed,
			Type:   a.AnimalType,
			Age:    a.AgeReadable,
			Sex:    a.Sex,
			Color:  a.Color,
			Status: models.FriendlyStatus(a.OutcomeType),
			Lat:    a.Lat,
			Long:   a.Long,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(locationsResponse{
		Markers: markers,
		Total:   total,
		Message: message,
	}); err != nil {
		http.Error(w, "Failed to encode locations: "+err.Error(), http.StatusInternalServerError)
	}
}

// filterState parses the filter controls from the query string, falling back
// to the session-remembered state when no controls were submitted
func (c *DashboardController) filterState(r *http.Request) models.FilterState {
	q := r.URL.Query()

	if len(q) == 0 {
		if sess := session.GetSession(r); sess != nil {
			if saved, ok := sess.Get(filterSessionKey).(models.FilterState); ok {
				return saved
			}
		}
		return models.DefaultFilterState()
	}

	state := models.FilterState{
		AnimalType: q.Get("animal_type"),
		Breed:      q.Get("breed"),
		AgeMin:     parseAge(q.Get("age_min"), models.DefaultAgeMin),
		AgeMax:     parseAge(q.Get("age_max"), models.DefaultAgeMax),
		Trigger:    q.Get("trigger"),
		RescueType: q.Get("rescue_type"),
	}
	return state
}

func parseAge(s string, fallback float64) float64 {
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

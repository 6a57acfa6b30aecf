package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/acmays/shelter-dashboard/models"
	"github.com/acmays/shelter-dashboard/services"
)

// AnimalsController handles record management requests against the document
// store
type AnimalsController struct {
	services *services.Services
}

// NewAnimalsController creates a new animals controller
func NewAnimalsController(services *services.Services) *AnimalsController {
	return &AnimalsController{
		services: services,
	}
}

// Index handles GET /animals
func (c *AnimalsController) Index(w http.ResponseWriter, r *http.Request) {
	animals := c.services.Animal.List(r.Context())

	templateData := struct {
		Title       string
		CurrentPage string
		Error       string
		Success     string
		Animals     []models.Animal
		Form        *models.AnimalForm
	}{
		Title:       "Animal Records",
		CurrentPage: "animals",
		Error:       r.URL.Query().Get("error"),
		Success:     r.URL.Query().Get("success"),
		Animals:     animals,
		Form:        &models.AnimalForm{},
	}

	renderTemplate(w, "animals", "templates/animals.html", templateData)
}

// Create handles POST /animals
func (c *AnimalsController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	form := animalFormFromRequest(r)

	if _, err := c.services.Animal.Create(r.Context(), form); err != nil {
		// Reload page with form data and error
		animals := c.services.Animal.List(r.Context())

		templateData := struct {
			Title       string
			CurrentPage string
			Error       string
			Success     string
			Animals     []models.Animal
			Form        *models.AnimalForm
		}{
			Title:       "Animal Records",
			CurrentPage: "animals",
			Error:       err.Error(),
			Success:     "",
			Animals:     animals,
			Form:        form,
		}

		renderTemplateWithStatus(w, http.StatusBadRequest, "animals_create_error", "templates/animals.html", templateData)
		return
	}

	http.Redirect(w, r, "/animals?success=Record+created", http.StatusSeeOther)
}

// Edit handles GET /animals/{id}/edit
func (c *AnimalsController) Edit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	animal, err := c.services.Animal.Get(r.Context(), id)
	if err != nil {
		http.Error(w, "Animal record not found: "+err.Error(), http.StatusNotFound)
		return
	}

	form := animalFormFromRecord(animal)

	templateData := struct {
		Title       string
		CurrentPage string
		Error       string
		Success     string
		Animal      *models.Animal
		Form        *models.AnimalForm
	}{
		Title:       "Edit Animal Record",
		CurrentPage: "animals",
		Error:       "",
		Success:     "",
		Animal:      animal,
		Form:        form,
	}

	renderTemplate(w, "animal_edit", "templates/animal_edit.html", templateData)
}

// Update handles POST /animals/{id}
func (c *AnimalsController) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	form := animalFormFromRequest(r)

	if err := c.services.Animal.Update(r.Context(), id, form); err != nil {
		animal, loadErr := c.services.Animal.Get(r.Context(), id)
		if loadErr != nil {
			http.Error(w, "Animal record not found: "+loadErr.Error(), http.StatusNotFound)
			return
		}

		templateData := struct {
			Title       string
			CurrentPage string
			Error       string
			Success     string
			Animal      *models.Animal
			Form        *models.AnimalForm
		}{
			Title:       "Edit Animal Record",
			CurrentPage: "animals",
			Error:       err.Error(),
			Success:     "",
			Animal:      animal,
			Form:        form,
		}

		renderTemplateWithStatus(w, http.StatusBadRequest, "animal_update_error", "templates/animal_edit.html", templateData)
		return
	}

	http.Redirect(w, r, "/animals?success=Record+updated", http.StatusSeeOther)
}

// Delete handles POST /animals/{id}/delete
func (c *AnimalsController) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := c.services.Animal.Delete(r.Context(), id); err != nil {
		http.Redirect(w, r, "/animals?error="+err.Error(), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/animals?success=Record+deleted", http.StatusSeeOther)
}

func animalFormFromRequest(r *http.Request) *models.AnimalForm {
	return &models.AnimalForm{
		Name:        r.FormValue("name"),
		AnimalType:  r.FormValue("animal_type"),
		Breed:       r.FormValue("breed"),
		Sex:         r.FormValue("sex_upon_outcome"),
		AgeWeeks:    r.FormValue("age_upon_outcome_in_weeks"),
		Color:       r.FormValue("color"),
		OutcomeType: r.FormValue("outcome_type"),
		Lat:         r.FormValue("location_lat"),
		Long:        r.FormValue("location_long"),
	}
}

func animalFormFromRecord(a *models.Animal) *models.AnimalForm {
	form := &models.AnimalForm{
		Name:        a.Name,
		AnimalType:  a.AnimalType,
		Breed:       a.Breed,
		Sex:         a.Sex,
		Color:       a.Color,
		OutcomeType: a.OutcomeType,
	}

	if a.AgeWeeks != 0 {
		form.AgeWeeks = formatFloat(a.AgeWeeks)
	}
	if a.HasLocation() {
		form.Lat = formatFloat(a.Lat)
		form.Long = formatFloat(a.Long)
	}

	return form
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

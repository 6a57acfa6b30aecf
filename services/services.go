package services

import (
	"github.com/acmays/shelter-dashboard/models"
	"github.com/acmays/shelter-dashboard/repositories"
)

// Services holds all service instances
type Services struct {
	Filter FilterService
	Animal AnimalService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, animals []models.Animal) *Services {
	return &Services{
		Filter: NewFilterService(animals),
		Animal: NewAnimalService(repos.Animal),
	}
}

package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// AuditCollection is the collection used for mutation audit entries
const AuditCollection = "audit_log"

// Repositories struct holds all repository interfaces
type Repositories struct {
	Animal AnimalRepository
	Audit  AuditRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(animals *mongo.Collection, audit *mongo.Collection) *Repositories {
	return &Repositories{
		Animal: NewAnimalRepository(animals),
		Audit:  NewAuditRepository(audit),
	}
}

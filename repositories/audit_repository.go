package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/acmays/shelter-dashboard/models"
)

// AuditRepository handles audit log persistence
type AuditRepository interface {
	Create(ctx context.Context, entry *models.AuditLogEntry) error
}

type mongoAuditRepository struct {
	col *mongo.Collection
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(col *mongo.Collection) AuditRepository {
	return &mongoAuditRepository{col: col}
}

// Create inserts a new audit log entry
func (r *mongoAuditRepository) Create(ctx context.Context, entry *models.AuditLogEntry) error {
	if r.col == nil {
		return fmt.Errorf("audit collection unavailable")
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	_, err := r.col.InsertOne(ctx, entry)
	return err
}

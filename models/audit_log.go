package models

import "time"

// AuditLogEntry represents a single HTTP mutation event
type AuditLogEntry struct {
	ID        string    `bson:"_id,omitempty"`
	Timestamp time.Time `bson:"timestamp"`
	Method    string    `bson:"method"`
	Path      string    `bson:"path"`
	FormData  string    `bson:"form_data"`
	UserAgent string    `bson:"user_agent"`
	IPAddress string    `bson:"ip_address"`
}

package model

import "time"

// Document represents an ingested file in the system.
// This is a pure domain model with no transport- or store-specific dependencies.
// StoragePath and Content are internal fields and must never be exposed to clients;
// JSON shapes returned over HTTP are defined at the handler layer.
type Document struct {
	ID          string
	FileName    string
	StoragePath string
	Content     string
	CreatedAt   time.Time
}

package users

import (
	"context"

	"docqa/internal/model"
)

// Package users contains the client boundary for the external
// user-management collaborator. Account creation is delegated entirely;
// this service stores no user state.

// Service creates user accounts through the external collaborator.
type Service interface {
	// Create registers a new user and returns its metadata.
	Create(ctx context.Context, email, password string) (*model.User, error)
}

package model

import "time"

// User holds the metadata returned by the external user-management
// collaborator after a signup. ConfirmedAt is zero when the account
// was created but not confirmed.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
	ConfirmedAt time.Time `json:"confirmed_at,omitempty"`
}

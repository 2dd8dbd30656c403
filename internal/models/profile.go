package models

import "time"

// Profile is the per-principal account record backing the guest message quota.
// MessageCount only ever grows; for guests the conditional update in the chat
// service keeps it from passing the guest limit.
type Profile struct {
	ID           string    `json:"id"`
	Email        *string   `json:"email,omitempty"`
	PasswordHash *string   `json:"-"`
	IsGuest      bool      `json:"is_guest"`
	MessageCount int       `json:"message_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

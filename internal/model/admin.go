package model

import (
	"time"

	"github.com/google/uuid"
)

// Admin is a dashboard account. The session model is binary: an authenticated
// admin may do everything the dashboard offers, anonymous visitors nothing.
type Admin struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

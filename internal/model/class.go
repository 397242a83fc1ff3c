package model

import (
	"time"

	"github.com/google/uuid"
)

// Class represents a tuition class group (e.g. "2026 A/L", "Lesson Packs").
// Name doubles as the public lookup key the slug mapping resolves to.
type Class struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Year        *int      `json:"year"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// Note is downloadable study material within a month. Notes carry no ordering
// key; display order is whatever the store returns.
type Note struct {
	ID          uuid.UUID `json:"id"`
	MonthID     uuid.UUID `json:"month_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DriveURL    string    `json:"drive_url"`
	IsFree      bool      `json:"is_free"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

// NoteWithContext is the admin listing row for notes.
type NoteWithContext struct {
	Note
	MonthName string `json:"month_name"`
	ClassName string `json:"class_name"`
}

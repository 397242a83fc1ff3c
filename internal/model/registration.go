package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentRegistration is a lead submitted through the public registration form.
// Class is the free-text class label the student selected, not a classes FK —
// registrations outlive class renames and deletions.
type StudentRegistration struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Class       string    `json:"class"`
	StudentID   string    `json:"student_id"`
	PhoneNumber string    `json:"phone_number"`
	School      string    `json:"school"`
	CreatedAt   time.Time `json:"created_at"`
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// Result is a student achievement displayed on the results section.
type Result struct {
	ID          uuid.UUID `json:"id"`
	StudentName string    `json:"student_name"`
	Achievement string    `json:"achievement"`
	Year        int       `json:"year"`
	ImageURL    *string   `json:"image_url"`
	Testimonial *string   `json:"testimonial"`
	OrderIndex  int       `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
}

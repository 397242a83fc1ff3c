package model

import (
	"time"

	"github.com/google/uuid"
)

// Month is one month of content belonging to exactly one class.
// MonthNumber is the chronological ordering key.
type Month struct {
	ID          uuid.UUID `json:"id"`
	ClassID     uuid.UUID `json:"class_id"`
	Name        string    `json:"name"`
	MonthNumber int       `json:"month_number"`
	Year        int       `json:"year"`
	CreatedAt   time.Time `json:"created_at"`
}

// MonthWithClass is the admin listing row: a month with its owning class name
// resolved inline. Declared up front instead of an ad-hoc joined row shape.
type MonthWithClass struct {
	Month
	ClassName string `json:"class_name"`
}

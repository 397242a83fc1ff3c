package model

import (
	"time"

	"github.com/google/uuid"
)

// GalleryItem is a photo shown on the gallery section.
type GalleryItem struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	ImageURL    string    `json:"image_url"`
	Category    string    `json:"category"`
	OrderIndex  int       `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
}

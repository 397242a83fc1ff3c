package model

import (
	"time"

	"github.com/google/uuid"
)

// Video is a lesson recording within a month. Price is only meaningful when
// IsFree is false; the free/paid flag is presentation metadata, not an access
// gate (access control, if any, lives in the hosted store's row policies).
type Video struct {
	ID           uuid.UUID `json:"id"`
	MonthID      uuid.UUID `json:"month_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	IsFree       bool      `json:"is_free"`
	Price        float64   `json:"price"`
	OrderIndex   int       `json:"order_index"`
	CreatedAt    time.Time `json:"created_at"`
}

// VideoWithContext is the admin listing row: a video with its month and class
// names resolved inline via joins.
type VideoWithContext struct {
	Video
	MonthName   string `json:"month_name"`
	MonthNumber int    `json:"month_number"`
	MonthYear   int    `json:"month_year"`
	ClassName   string `json:"class_name"`
}

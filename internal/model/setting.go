package model

import "time"

// SiteSetting represents a key-value pair for site-wide content configuration
// (hero text, about text, WhatsApp number, bank details).
type SiteSetting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateSettingsRequest is the payload for bulk upserting settings.
type UpdateSettingsRequest struct {
	Settings map[string]string `json:"settings" binding:"required"`
}

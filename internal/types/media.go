package types

import "fmt"

// ImageURLRequest is the shared input shape for endpoints operating on a
// remote image (photo location, waste detection).
type ImageURLRequest struct {
	ImageURL string `json:"image_url"`
}

// Validate checks that an image URL was supplied.
func (r ImageURLRequest) Validate() error {
	if r.ImageURL == "" {
		return fmt.Errorf("%w: image URL is required", ErrValidation)
	}
	return nil
}

// LocationResponse carries the GPS coordinates extracted from an image and
// the nearest reverse-geocoded address.
type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// WasteResponse carries the vision model's waste classification and the
// outcome of the Telegram alert relay. TelegramError is populated when the
// relay failed but the analysis itself succeeded.
type WasteResponse struct {
	WasteInfo         string `json:"waste_info"`
	TelegramMessageID int    `json:"telegram_message_id,omitempty"`
	TelegramError     string `json:"telegram_error,omitempty"`
}

package models

// ConfirmationPayload is the task payload for a booking confirmation notice.
type ConfirmationPayload struct {
	BookingID     string        `json:"bookingId"`
	ClientName    string        `json:"clientName"`
	ContactMethod ContactMethod `json:"contactMethod"`
	Contact       string        `json:"contact"`
	Language      string        `json:"language"`
	Start         string        `json:"start"`
	Total         float64       `json:"total"`
}

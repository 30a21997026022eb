package models

// BookingConfirmationResponse is returned once a booking has been stored.
type BookingConfirmationResponse struct {
	Booking      BookingRecord    `json:"booking"`
	Receipt      PricingBreakdown `json:"receipt"`
	Confirmation string           `json:"confirmation"`
}

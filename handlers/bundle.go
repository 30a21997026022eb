package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	HealthHandler gin.HandlerFunc

	// Pricing
	QuoteHandler gin.HandlerFunc

	// Wizard session endpoints
	StartSessionHandler  gin.HandlerFunc
	GetSessionHandler    gin.HandlerFunc
	UpdateSessionHandler gin.HandlerFunc
	NextStepHandler      gin.HandlerFunc
	PreviousStepHandler  gin.HandlerFunc
	SubmitSessionHandler gin.HandlerFunc
	CancelSessionHandler gin.HandlerFunc

	// Direct submission
	SubmitBookingHandler gin.HandlerFunc
}

// NewHandlerBundle wires every endpoint of the booking handler and the
// health handler into a bundle.
func NewHandlerBundle(bh *BookingHandler, hh *HealthHandler) *HandlerBundle {
	return &HandlerBundle{
		HealthHandler:        hh.GetHealth,
		QuoteHandler:         bh.Quote,
		StartSessionHandler:  bh.StartSession,
		GetSessionHandler:    bh.GetSession,
		UpdateSessionHandler: bh.UpdateSession,
		NextStepHandler:      bh.NextStep,
		PreviousStepHandler:  bh.PreviousStep,
		SubmitSessionHandler: bh.SubmitSession,
		CancelSessionHandler: bh.CancelSession,
		SubmitBookingHandler: bh.SubmitBooking,
	}
}

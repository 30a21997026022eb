package models

import "time"

// WizardStep is a position in the intake wizard.
type WizardStep string

const (
	StepContact   WizardStep = "contact"
	StepDetails   WizardStep = "details"
	StepSchedule  WizardStep = "schedule"
	StepEquipment WizardStep = "equipment"
	StepReview    WizardStep = "review"
	StepSubmitted WizardStep = "submitted"
)

// WizardSteps is the forward order of the wizard.
var WizardSteps = []WizardStep{StepContact, StepDetails, StepSchedule, StepEquipment, StepReview, StepSubmitted}

// BookingSession holds one wizard draft between requests.
type BookingSession struct {
	SessionID     string       `json:"sessionId"`
	Step          WizardStep   `json:"step"`
	Draft         BookingDraft `json:"draft"`
	CreatedAt     time.Time    `json:"createdAt"`
	LastUpdatedAt time.Time    `json:"lastUpdatedAt"`
}

// BookingSessionResponse is returned by every wizard endpoint.
type BookingSessionResponse struct {
	Session BookingSession    `json:"session"`
	Quote   PricingBreakdown  `json:"quote"`
	Errors  map[string]string `json:"errors,omitempty"`
}

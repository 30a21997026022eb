package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	bookingRepo "shootbook/database/repository/booking"
	"shootbook/models"
	"shootbook/services/pricing"
	"shootbook/services/session"
	"shootbook/services/tasks"
	"shootbook/services/wizard"
)

// BookingService drives the intake wizard and the submission boundary.
type BookingService interface {
	Quote(req models.QuoteRequest) models.PricingBreakdown
	StartSession(ctx context.Context) (*models.BookingSessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingSessionResponse, error)
	UpdateSession(ctx context.Context, sessionID string, patch wizard.DraftPatch) (*models.BookingSessionResponse, error)
	NextStep(ctx context.Context, sessionID string) (*models.BookingSessionResponse, error)
	PreviousStep(ctx context.Context, sessionID string) (*models.BookingSessionResponse, error)
	SubmitSession(ctx context.Context, sessionID string) (*models.BookingConfirmationResponse, error)
	CancelSession(ctx context.Context, sessionID string) error
	SubmitRecord(ctx context.Context, record models.BookingRecord) (*models.BookingConfirmationResponse, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Drafts session.DraftStore
	Repo   bookingRepo.BookingRepository
	Tasks  tasks.Enqueuer // optional; confirmations are skipped when nil
	Rates  pricing.RateCard
	// Location is the studio's zone for dates and times entered in the wizard.
	Location *time.Location
	Now      func() time.Time
	Logger   *zap.Logger
}

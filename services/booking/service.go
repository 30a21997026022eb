package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "shootbook/database/repository/booking"
	"shootbook/models"
	"shootbook/services/pricing"
	"shootbook/services/tasks"
	"shootbook/services/wizard"
)

func (s *DefaultBookingService) now() time.Time {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	loc := s.Location
	if loc == nil {
		loc = time.UTC
	}
	return now().In(loc)
}

// Quote prices a request directly. It never fails.
func (s *DefaultBookingService) Quote(req models.QuoteRequest) models.PricingBreakdown {
	return pricing.Quote(req, s.Rates)
}

func (s *DefaultBookingService) StartSession(ctx context.Context) (*models.BookingSessionResponse, error) {
	now := s.now()
	sess := models.BookingSession{
		SessionID:     uuid.New().String(),
		Step:          models.StepContact,
		Draft:         wizard.Normalize(models.BookingDraft{}),
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
	sess.Draft.Details.Language = wizard.DefaultLanguage
	if err := s.Drafts.Save(ctx, sess); err != nil {
		return nil, err
	}
	s.Logger.Info("Booking session started", zap.String("sessionId", sess.SessionID))
	return s.respond(sess, false), nil
}

func (s *DefaultBookingService) GetSession(ctx context.Context, sessionID string) (*models.BookingSessionResponse, error) {
	sess, err := s.Drafts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.respond(*sess, true), nil
}

func (s *DefaultBookingService) UpdateSession(ctx context.Context, sessionID string, patch wizard.DraftPatch) (*models.BookingSessionResponse, error) {
	return s.transition(ctx, sessionID, func(sess models.BookingSession) (models.BookingSession, error) {
		return wizard.Edit(sess, patch)
	})
}

func (s *DefaultBookingService) NextStep(ctx context.Context, sessionID string) (*models.BookingSessionResponse, error) {
	return s.transition(ctx, sessionID, func(sess models.BookingSession) (models.BookingSession, error) {
		return wizard.Next(sess, s.now())
	})
}

func (s *DefaultBookingService) PreviousStep(ctx context.Context, sessionID string) (*models.BookingSessionResponse, error) {
	return s.transition(ctx, sessionID, wizard.Back)
}

// transition loads a session, applies fn and stores the result. Nothing is
// stored when fn fails.
func (s *DefaultBookingService) transition(
	ctx context.Context,
	sessionID string,
	fn func(models.BookingSession) (models.BookingSession, error),
) (*models.BookingSessionResponse, error) {
	sess, err := s.Drafts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	next, err := fn(*sess)
	if err != nil {
		return nil, err
	}
	next.LastUpdatedAt = s.now()
	if err := s.Drafts.Save(ctx, next); err != nil {
		return nil, err
	}
	if next.Step != sess.Step {
		s.Logger.Debug("Booking session moved",
			zap.String("sessionId", sessionID),
			zap.String("from", string(sess.Step)),
			zap.String("to", string(next.Step)))
	}
	return s.respond(next, true), nil
}

// SubmitSession validates the draft from the review step, persists the record
// and discards the draft. A refused record leaves the session at review.
func (s *DefaultBookingService) SubmitSession(ctx context.Context, sessionID string) (*models.BookingConfirmationResponse, error) {
	sess, err := s.Drafts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	_, rec, err := wizard.Submit(*sess, s.now())
	if err != nil {
		return nil, err
	}
	conf, err := s.persist(ctx, rec)
	if err != nil {
		return nil, err
	}
	if err := s.Drafts.Delete(ctx, sessionID); err != nil {
		s.Logger.Warn("Failed to discard submitted session", zap.String("sessionId", sessionID), zap.Error(err))
	}
	return conf, nil
}

func (s *DefaultBookingService) CancelSession(ctx context.Context, sessionID string) error {
	if _, err := s.Drafts.Load(ctx, sessionID); err != nil {
		return err
	}
	if err := s.Drafts.Delete(ctx, sessionID); err != nil {
		return err
	}
	s.Logger.Info("Booking session cancelled", zap.String("sessionId", sessionID))
	return nil
}

// SubmitRecord accepts a flattened record built outside the wizard.
func (s *DefaultBookingService) SubmitRecord(ctx context.Context, record models.BookingRecord) (*models.BookingConfirmationResponse, error) {
	if errs := wizard.ValidateSubmission(&record, s.now()); len(errs) > 0 {
		return nil, NewConstraintViolationError(errs)
	}
	return s.persist(ctx, &record)
}

// persist prices, stores and announces a validated record.
func (s *DefaultBookingService) persist(ctx context.Context, rec *models.BookingRecord) (*models.BookingConfirmationResponse, error) {
	receipt := pricing.Quote(RecordQuoteRequest(*rec), s.Rates)
	rec.ID = uuid.New().String()
	rec.CreatedAt = s.now()
	rec.Total = receipt.Total

	if err := s.Repo.Create(ctx, rec); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotUnavailable) {
			return nil, NewSlotUnavailableError()
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	s.Logger.Info("Booking created",
		zap.String("bookingId", rec.ID),
		zap.Time("start", rec.Start),
		zap.Float64("total", rec.Total))

	s.enqueueConfirmation(ctx, rec)
	return &models.BookingConfirmationResponse{
		Booking:      *rec,
		Receipt:      receipt,
		Confirmation: "Booking confirmed",
	}, nil
}

// enqueueConfirmation schedules the confirmation notice. Failure is logged
// and does not undo the booking.
func (s *DefaultBookingService) enqueueConfirmation(ctx context.Context, rec *models.BookingRecord) {
	if s.Tasks == nil {
		return
	}
	task, opts, err := tasks.NewConfirmationTask(models.ConfirmationPayload{
		BookingID:     rec.ID,
		ClientName:    rec.ClientName,
		ContactMethod: rec.ContactMethod,
		Contact:       rec.Contact,
		Language:      rec.Language,
		Start:         rec.Start.Format("2006-01-02 15:04"),
		Total:         rec.Total,
	})
	if err == nil {
		_, err = s.Tasks.EnqueueContext(ctx, task, opts...)
	}
	if err != nil {
		s.Logger.Warn("Failed to enqueue booking confirmation", zap.String("bookingId", rec.ID), zap.Error(err))
	}
}

// respond attaches the live quote and, when withErrors is set, the current
// step's validation errors.
func (s *DefaultBookingService) respond(sess models.BookingSession, withErrors bool) *models.BookingSessionResponse {
	resp := &models.BookingSessionResponse{
		Session: sess,
		Quote:   wizard.DraftQuote(sess.Draft, s.Rates),
	}
	if withErrors && sess.Step != models.StepSubmitted {
		if errs := wizard.ValidateStep(sess.Step, sess.Draft, s.now()); len(errs) > 0 {
			resp.Errors = errs
		}
	}
	return resp
}

// RecordQuoteRequest prices a record on its actual elapsed duration.
func RecordQuoteRequest(rec models.BookingRecord) models.QuoteRequest {
	return models.QuoteRequest{
		Equipment:              rec.EquipmentSelection,
		Location:               rec.Location,
		RequestedDurationHours: rec.ElapsedHours(),
		PeopleCount:            rec.PeopleCount,
		DslrAddonPhotos:        rec.DslrAddonPhotos,
		ExtraEdits:             rec.ExtraEdits,
	}
}

package bookingRepo

import (
	"context"
	"errors"

	"shootbook/models"
)

// ErrSlotUnavailable is returned by Create when the requested interval
// overlaps an existing booking.
var ErrSlotUnavailable = errors.New("requested time slot is unavailable")

// ErrBookingNotFound is returned by GetByID.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepository is the submission boundary for normalized booking records.
type BookingRepository interface {
	Create(ctx context.Context, record *models.BookingRecord) error
	GetByID(ctx context.Context, id string) (*models.BookingRecord, error)
	EnsureIndexes(ctx context.Context) error
}

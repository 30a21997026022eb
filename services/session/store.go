package session

import (
	"context"
	"errors"

	"shootbook/models"
)

// ErrSessionNotFound is returned when a draft is missing or has expired.
var ErrSessionNotFound = errors.New("booking session not found or expired")

// DraftStore keeps wizard sessions between requests.
type DraftStore interface {
	Save(ctx context.Context, s models.BookingSession) error
	Load(ctx context.Context, id string) (*models.BookingSession, error)
	Delete(ctx context.Context, id string) error
}

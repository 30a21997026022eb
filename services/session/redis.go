package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"shootbook/models"
)

const keyPrefix = "booking_session:"

// RedisDraftStore stores each session as JSON under its own key with a TTL
// that is refreshed on every save.
type RedisDraftStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisDraftStore(client *redis.Client, ttl time.Duration) *RedisDraftStore {
	return &RedisDraftStore{Client: client, TTL: ttl}
}

func (s *RedisDraftStore) Save(ctx context.Context, sess models.BookingSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to serialize booking session: %w", err)
	}
	if err := s.Client.Set(ctx, keyPrefix+sess.SessionID, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *RedisDraftStore) Load(ctx context.Context, id string) (*models.BookingSession, error) {
	data, err := s.Client.Get(ctx, keyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}

	var sess models.BookingSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &sess, nil
}

func (s *RedisDraftStore) Delete(ctx context.Context, id string) error {
	if err := s.Client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}

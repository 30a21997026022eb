package booking

import (
	"context"
	"errors"
	"sync"

	"github.com/hibiken/asynq"

	bookingRepo "shootbook/database/repository/booking"
	"shootbook/models"
)

type memoryRepo struct {
	mu      sync.Mutex
	records []models.BookingRecord
	err     error
}

func (r *memoryRepo) Create(_ context.Context, rec *models.BookingRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for _, existing := range r.records {
		if existing.Start.Before(rec.End) && existing.End.After(rec.Start) {
			return bookingRepo.ErrSlotUnavailable
		}
	}
	r.records = append(r.records, *rec)
	return nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*models.BookingRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.ID == id {
			return &rec, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (r *memoryRepo) EnsureIndexes(context.Context) error { return nil }

type recordingQueue struct {
	tasks []*asynq.Task
	err   error
}

func (q *recordingQueue) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if q.err != nil {
		return nil, q.err
	}
	q.tasks = append(q.tasks, task)
	return &asynq.TaskInfo{Type: task.Type()}, nil
}

var errQueueDown = errors.New("queue unavailable")

package tasks

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"

	"shootbook/models"
)

const TypeBookingConfirmation = "booking:confirmation"

// Enqueuer is the subset of *asynq.Client used to schedule tasks.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

func NewConfirmationTask(payload models.ConfirmationPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingConfirmation, b)
	opts := []asynq.Option{asynq.MaxRetry(5), asynq.TaskID("confirm:" + payload.BookingID)}

	return task, opts, nil
}

// ParseConfirmation decodes the payload of a confirmation task.
func ParseConfirmation(task *asynq.Task) (models.ConfirmationPayload, error) {
	var p models.ConfirmationPayload
	err := json.Unmarshal(task.Payload(), &p)
	return p, err
}

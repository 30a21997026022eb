package cron

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"shootbook/models"
	"shootbook/services/tasks"
)

type recordingNotifier struct {
	sent []models.ConfirmationPayload
	err  error
}

func (n *recordingNotifier) SendBookingConfirmation(_ context.Context, p models.ConfirmationPayload) error {
	n.sent = append(n.sent, p)
	return n.err
}

func TestHandleConfirmationTask(t *testing.T) {
	n := &recordingNotifier{}
	handler := HandleConfirmationTask(n, zap.NewNop())

	task, _, err := tasks.NewConfirmationTask(models.ConfirmationPayload{BookingID: "b-1", Contact: "ana@example.com"})
	if err != nil {
		t.Fatal(err)
	}
	if err := handler(context.Background(), task); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if len(n.sent) != 1 || n.sent[0].BookingID != "b-1" {
		t.Errorf("sent = %+v", n.sent)
	}
}

func TestHandleConfirmationTaskBadPayloadSkipsRetry(t *testing.T) {
	handler := HandleConfirmationTask(&recordingNotifier{}, zap.NewNop())
	err := handler(context.Background(), asynq.NewTask(tasks.TypeBookingConfirmation, []byte("{not json")))
	if !errors.Is(err, asynq.SkipRetry) {
		t.Errorf("err = %v, want SkipRetry", err)
	}
}

func TestHandleConfirmationTaskPropagatesDeliveryError(t *testing.T) {
	boom := errors.New("smtp down")
	handler := HandleConfirmationTask(&recordingNotifier{err: boom}, zap.NewNop())
	task, _, _ := tasks.NewConfirmationTask(models.ConfirmationPayload{BookingID: "b-2"})
	if err := handler(context.Background(), task); !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}

package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"shootbook/services/notification"
	"shootbook/services/tasks"
)

// InitConfirmationWorker runs the async worker in background and returns the
// server so the caller can shut it down.
func InitConfirmationWorker(redisOpts asynq.RedisClientOpt, notifSvc notification.NotificationService, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingConfirmation, HandleConfirmationTask(notifSvc, logger))

	// Start async worker with retry logic
	go func() {
		logger.Info("[ConfirmationWorker] Starting async worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Warn("[ConfirmationWorker] Failed to start worker",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("[ConfirmationWorker] Max retry attempts reached, confirmations will not be sent")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()

	return srv
}

// HandleConfirmationTask decodes a booking:confirmation task and hands it to
// the notification service. A malformed payload is not retried.
func HandleConfirmationTask(notifSvc notification.NotificationService, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseConfirmation(task)
		if err != nil {
			logger.Error("[ConfirmationHandler] Invalid payload", zap.Error(err))
			return fmt.Errorf("invalid confirmation payload: %v: %w", err, asynq.SkipRetry)
		}

		if err := notifSvc.SendBookingConfirmation(ctx, p); err != nil {
			logger.Warn("[ConfirmationHandler] Failed to send confirmation",
				zap.String("bookingId", p.BookingID), zap.Error(err))
			return err
		}
		return nil
	}
}

package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"labport/config"
	"labport/services/booking"
	"labport/services/tasks"

	"github.com/hibiken/asynq"
)

// queueRedisOpt builds the asynq Redis connection from app config.
func queueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// NewQueueClient returns an asynq client for enqueuing submission tasks.
func NewQueueClient() *asynq.Client {
	return asynq.NewClient(queueRedisOpt())
}

// InitSubmissionWorker runs the async worker in background. It finalizes
// pending booking submissions enqueued by the session service.
func InitSubmissionWorker(bookingSvc booking.BookingSessionService) {
	srv := asynq.NewServer(
		queueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSubmitBooking, handleSubmitBookingTask(bookingSvc))

	go func() {
		log.Println("[SubmissionWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[SubmissionWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[SubmissionWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleSubmitBookingTask(bookingSvc booking.BookingSessionService) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload tasks.SubmitBookingPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return err
		}
		record, err := bookingSvc.FinalizeSubmission(ctx, payload.SessionID)
		if err != nil {
			// A vanished or already-finished session is not retryable.
			if booking.IsFlowError(err) {
				log.Printf("[SubmissionWorker] dropping task for session %s: %v", payload.SessionID, err)
				return nil
			}
			return err
		}
		log.Printf("[SubmissionWorker] booking %s confirmed for session %s", record.ID, payload.SessionID)
		return nil
	}
}

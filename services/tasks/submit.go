package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeSubmitBooking = "booking:submit"

// SubmitBookingPayload identifies the session whose pending submission the
// worker should finalize.
type SubmitBookingPayload struct {
	SessionID string `json:"sessionId"`
}

func NewSubmitBookingTask(payload SubmitBookingPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSubmitBooking, b, asynq.MaxRetry(3)), nil
}

package tasks

import (
	"encoding/json"

	"pickbook/models"

	"github.com/hibiken/asynq"
)

const TypeSendBookingEmail = "email:bookingDetails"

func NewBookingEmailTask(payload models.BookingEmailPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendBookingEmail, b)
	opts := []asynq.Option{asynq.MaxRetry(3)}

	return task, opts, nil
}

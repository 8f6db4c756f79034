package tasks

import (
	"context"
	"encoding/json"

	"voyago/models"

	"github.com/hibiken/asynq"
)

// Task type names routed by the worker mux.
const (
	TypeBookingConfirmation = "email:booking_confirmation"
	TypePaymentConfirmation = "email:payment_confirmation"
)

// Submitter enqueues deferred work items. Services depend on this
// interface so the queue client can be swapped out in tests.
type Submitter interface {
	Submit(ctx context.Context, task *asynq.Task, opts ...asynq.Option) error
}

// AsynqSubmitter submits tasks through an asynq client.
type AsynqSubmitter struct {
	client *asynq.Client
}

// NewAsynqSubmitter builds a Submitter backed by the given Redis connection.
func NewAsynqSubmitter(redisOpt asynq.RedisClientOpt) *AsynqSubmitter {
	return &AsynqSubmitter{client: asynq.NewClient(redisOpt)}
}

// Submit enqueues the task for background execution.
func (s *AsynqSubmitter) Submit(ctx context.Context, task *asynq.Task, opts ...asynq.Option) error {
	_, err := s.client.EnqueueContext(ctx, task, opts...)
	return err
}

// Close releases the underlying queue connection.
func (s *AsynqSubmitter) Close() error {
	return s.client.Close()
}

// NewBookingConfirmationTask builds the work item for a deferred
// booking-confirmation email. The payload carries only the booking id.
func NewBookingConfirmationTask(bookingID string) (*asynq.Task, error) {
	b, err := json.Marshal(models.BookingConfirmationPayload{BookingID: bookingID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingConfirmation, b), nil
}

// NewPaymentConfirmationTask builds the work item for a deferred
// payment-confirmation email.
func NewPaymentConfirmationTask(paymentID string) (*asynq.Task, error) {
	b, err := json.Marshal(models.PaymentConfirmationPayload{PaymentID: paymentID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePaymentConfirmation, b), nil
}

package tasks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
)

const TypeExpirePayment = "payment:expire"

// ExpirePaymentPayload identifies the payment to fail if it is still pending.
type ExpirePaymentPayload struct {
	PaymentID string `json:"paymentId"`
}

// NewExpirePaymentTask builds a task that fires at fireAt. The task id is derived from
// the payment id so a payment is never scheduled twice.
func NewExpirePaymentTask(paymentID string, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(ExpirePaymentPayload{PaymentID: paymentID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeExpirePayment, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID("expire:" + paymentID),
		asynq.MaxRetry(5),
		asynq.Retention(24 * time.Hour),
	}
	return task, opts, nil
}

// ParseExpirePaymentPayload decodes a payment:expire task payload.
func ParseExpirePaymentPayload(task *asynq.Task) (ExpirePaymentPayload, error) {
	var p ExpirePaymentPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("invalid %s payload: %w", TypeExpirePayment, err)
	}
	if p.PaymentID == "" {
		return p, fmt.Errorf("invalid %s payload: missing paymentId", TypeExpirePayment)
	}
	return p, nil
}

// Scheduler enqueues delayed payment work.
type Scheduler interface {
	ScheduleExpiry(ctx context.Context, paymentID string, at time.Time) error
}

// AsynqScheduler enqueues tasks on the Redis-backed asynq queue.
type AsynqScheduler struct {
	Client *asynq.Client
}

// NewAsynqScheduler creates a scheduler using client.
func NewAsynqScheduler(client *asynq.Client) *AsynqScheduler {
	return &AsynqScheduler{Client: client}
}

// ScheduleExpiry enqueues a payment:expire task. A task already scheduled for the
// payment is not an error.
func (s *AsynqScheduler) ScheduleExpiry(ctx context.Context, paymentID string, at time.Time) error {
	task, opts, err := NewExpirePaymentTask(paymentID, at)
	if err != nil {
		return err
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return fmt.Errorf("failed to enqueue %s: %w", TypeExpirePayment, err)
	}
	return nil
}

package cron

import (
	"context"
	"fmt"
	"time"

	"cazpay/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// PaymentExpirer fails payments whose checkout window has closed.
type PaymentExpirer interface {
	ExpirePayment(ctx context.Context, paymentID string) error
}

// NewServeMux routes background tasks to their handlers.
func NewServeMux(expirer PaymentExpirer) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeExpirePayment, HandleExpirePaymentTask(expirer))
	return mux
}

// StartPaymentWorker runs the asynq worker in the background and returns the server so
// the caller can shut it down.
func StartPaymentWorker(redisOpts asynq.RedisClientOpt, concurrency int, expirer PaymentExpirer) (*asynq.Server, error) {
	if concurrency <= 0 {
		concurrency = 5
	}
	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: zap.L().Sugar().Named("asynq"),
		},
	)

	mux := NewServeMux(expirer)

	const maxAttempts = 5
	var err error
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		if err = srv.Start(mux); err == nil {
			zap.L().Info("payment worker started", zap.Int("concurrency", concurrency))
			return srv, nil
		}
		zap.L().Warn("payment worker failed to start",
			zap.Int("attempt", attempts),
			zap.Int("maxAttempts", maxAttempts),
			zap.Error(err),
		)
		time.Sleep(time.Duration(attempts*2) * time.Second)
	}
	return nil, fmt.Errorf("payment worker did not start: %w", err)
}

// HandleExpirePaymentTask fails the referenced payment if it is still pending.
func HandleExpirePaymentTask(expirer PaymentExpirer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseExpirePaymentPayload(task)
		if err != nil {
			zap.L().Error("dropping malformed task", zap.String("type", task.Type()), zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		if err := expirer.ExpirePayment(ctx, p.PaymentID); err != nil {
			zap.L().Error("payment expiry failed", zap.String("paymentId", p.PaymentID), zap.Error(err))
			return err
		}
		return nil
	}
}

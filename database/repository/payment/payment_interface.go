package paymentRepo

import (
	"context"
	"errors"
	"time"

	"cazpay/models"
)

// ErrPaymentNotFound is returned when no payment matches the lookup.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepository defines methods for payment record access.
type PaymentRepository interface {
	// Create inserts a new payment record.
	Create(ctx context.Context, payment *models.Payment) error
	// SetSessionID stores the hosted checkout session id on a payment.
	SetSessionID(ctx context.Context, id, sessionID string) error
	// GetByID retrieves a payment by its id.
	GetByID(ctx context.Context, id string) (*models.Payment, error)
	// GetBySessionID retrieves a payment by its checkout session id.
	GetBySessionID(ctx context.Context, sessionID string) (*models.Payment, error)
	// GetAll retrieves every payment, newest first.
	GetAll(ctx context.Context) ([]models.Payment, error)
	// MarkPaid moves a pending payment to paid. It reports false when the payment
	// was not pending, leaving it untouched.
	MarkPaid(ctx context.Context, id, sessionID, paymentIntentID string, at time.Time) (bool, error)
	// MarkFailed moves a pending payment to failed. It reports false when the
	// payment was not pending.
	MarkFailed(ctx context.Context, id, reason string, at time.Time) (bool, error)
}

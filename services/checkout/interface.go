package checkout

import (
	"context"
	"time"

	paymentRepo "cazpay/database/repository/payment"
	"cazpay/models"
	"cazpay/services/pricing"
	"cazpay/services/tasks"
)

// CheckoutService runs the pending -> hosted checkout -> webhook reconciliation flow.
type CheckoutService interface {
	CreateCheckout(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutResult, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
	GetSessionSummary(ctx context.Context, sessionID string) (*models.CheckoutSessionSummary, error)
	ExpirePayment(ctx context.Context, paymentID string) error
}

// DefaultCheckoutService implements CheckoutService. Dedupe and Scheduler are optional.
type DefaultCheckoutService struct {
	Payments   paymentRepo.PaymentRepository
	Pricing    pricing.PricingService
	Gateway    Gateway
	Dedupe     EventDeduper
	Scheduler  tasks.Scheduler
	BaseURL    string
	SessionTTL time.Duration
	Now        func() time.Time
}

// Stripe accepts checkout expiry between 30 minutes and 24 hours out.
const (
	minSessionTTL = 30 * time.Minute
	maxSessionTTL = 24 * time.Hour
	// expiryGrace leaves room for a late webhook before the sweeper fails the payment.
	expiryGrace = 15 * time.Minute
)

func (s *DefaultCheckoutService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *DefaultCheckoutService) sessionTTL() time.Duration {
	switch {
	case s.SessionTTL <= 0:
		return time.Hour
	case s.SessionTTL < minSessionTTL:
		return minSessionTTL
	case s.SessionTTL > maxSessionTTL:
		return maxSessionTTL
	}
	return s.SessionTTL
}

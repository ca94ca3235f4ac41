package checkout

import (
	"context"
	"time"
)

// SessionRequest describes the hosted checkout session to open for a payment.
type SessionRequest struct {
	PaymentID   string
	Email       string
	Zone        string
	Dates       []string
	UnitAmount  int64 // pence per day
	Quantity    int64 // number of days
	Currency    string
	SuccessURL  string
	CancelURL   string
	ExpiresAt   time.Time
	Idempotency string
}

// GatewaySession is the provider's view of a checkout session.
type GatewaySession struct {
	ID                string
	URL               string
	Status            string
	PaymentStatus     string
	PaymentIntentID   string
	CustomerEmail     string
	ClientReferenceID string
	AmountTotal       int64
	Currency          string
	Metadata          map[string]string
}

// GatewayEvent is a verified webhook notification.
type GatewayEvent struct {
	ID      string
	Type    string
	Session *GatewaySession
}

// Gateway is the hosted payment provider.
type Gateway interface {
	CreateSession(ctx context.Context, req SessionRequest) (*GatewaySession, error)
	GetSession(ctx context.Context, sessionID string) (*GatewaySession, error)
	// ConstructEvent verifies the signature header over payload and decodes the event.
	ConstructEvent(payload []byte, signature string) (*GatewayEvent, error)
}

// Webhook event types handled by the reconciler.
const (
	EventCheckoutCompleted          = "checkout.session.completed"
	EventCheckoutAsyncPaymentOK     = "checkout.session.async_payment_succeeded"
	EventCheckoutAsyncPaymentFailed = "checkout.session.async_payment_failed"
	EventCheckoutExpired            = "checkout.session.expired"
)

// Session payment_status values.
const (
	SessionPaymentPaid              = "paid"
	SessionPaymentUnpaid            = "unpaid"
	SessionPaymentNoPaymentRequired = "no_payment_required"
)

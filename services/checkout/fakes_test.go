package checkout

import (
	"context"
	"errors"
	"sync"
	"time"

	"cazpay/models"
)

type fakeGateway struct {
	CreateSessionFunc  func(ctx context.Context, req SessionRequest) (*GatewaySession, error)
	GetSessionFunc     func(ctx context.Context, sessionID string) (*GatewaySession, error)
	ConstructEventFunc func(payload []byte, signature string) (*GatewayEvent, error)

	requests []SessionRequest
}

func (f *fakeGateway) CreateSession(ctx context.Context, req SessionRequest) (*GatewaySession, error) {
	f.requests = append(f.requests, req)
	if f.CreateSessionFunc != nil {
		return f.CreateSessionFunc(ctx, req)
	}
	return &GatewaySession{ID: "cs_test_" + req.PaymentID, URL: "https://checkout.stripe.test/" + req.PaymentID}, nil
}

func (f *fakeGateway) GetSession(ctx context.Context, sessionID string) (*GatewaySession, error) {
	if f.GetSessionFunc != nil {
		return f.GetSessionFunc(ctx, sessionID)
	}
	return nil, ErrSessionNotFound
}

func (f *fakeGateway) ConstructEvent(payload []byte, signature string) (*GatewayEvent, error) {
	if f.ConstructEventFunc != nil {
		return f.ConstructEventFunc(payload, signature)
	}
	return nil, ErrInvalidSignature
}

type fakePricing struct {
	amount int64
	err    error
}

func (f *fakePricing) GetPrice(context.Context) (models.PriceSetting, error) {
	return models.PriceSetting{ID: models.PricingSettingsID, Amount: f.amount, Currency: models.Currency}, f.err
}

func (f *fakePricing) SetPrice(_ context.Context, amount int64) (models.PriceSetting, error) {
	f.amount = amount
	return models.PriceSetting{ID: models.PricingSettingsID, Amount: amount, Currency: models.Currency}, nil
}

type memoryDeduper struct {
	mu   sync.Mutex
	seen map[string]bool
}

func newMemoryDeduper() *memoryDeduper {
	return &memoryDeduper{seen: make(map[string]bool)}
}

func (d *memoryDeduper) FirstDelivery(_ context.Context, eventID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.seen[eventID] {
		return false, nil
	}
	d.seen[eventID] = true
	return true, nil
}

func (d *memoryDeduper) Forget(_ context.Context, eventID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.seen, eventID)
	return nil
}

type scheduled struct {
	paymentID string
	at        time.Time
}

type fakeScheduler struct {
	calls []scheduled
	err   error
}

func (f *fakeScheduler) ScheduleExpiry(_ context.Context, paymentID string, at time.Time) error {
	f.calls = append(f.calls, scheduled{paymentID: paymentID, at: at})
	return f.err
}

var errBoom = errors.New("boom")

package paymentRepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"cazpay/models"

	"github.com/google/uuid"
)

// MemoryPaymentRepo is an in-process PaymentRepository with the same transition
// semantics as the Mongo repository.
type MemoryPaymentRepo struct {
	mu       sync.RWMutex
	payments map[string]models.Payment
}

// NewMemoryPaymentRepo returns an empty in-memory repository.
func NewMemoryPaymentRepo() *MemoryPaymentRepo {
	return &MemoryPaymentRepo{payments: make(map[string]models.Payment)}
}

func (r *MemoryPaymentRepo) Create(_ context.Context, payment *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = now
	}
	payment.UpdatedAt = now
	r.payments[payment.ID] = clonePayment(*payment)
	return nil
}

func (r *MemoryPaymentRepo) SetSessionID(_ context.Context, id, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.payments[id]
	if !ok {
		return ErrPaymentNotFound
	}
	p.StripeSessionID = sessionID
	p.UpdatedAt = time.Now().UTC()
	r.payments[id] = p
	return nil
}

func (r *MemoryPaymentRepo) GetByID(_ context.Context, id string) (*models.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.payments[id]
	if !ok {
		return nil, ErrPaymentNotFound
	}
	out := clonePayment(p)
	return &out, nil
}

func (r *MemoryPaymentRepo) GetBySessionID(_ context.Context, sessionID string) (*models.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.payments {
		if sessionID != "" && p.StripeSessionID == sessionID {
			out := clonePayment(p)
			return &out, nil
		}
	}
	return nil, ErrPaymentNotFound
}

func (r *MemoryPaymentRepo) GetAll(_ context.Context) ([]models.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Payment, 0, len(r.payments))
	for _, p := range r.payments {
		out = append(out, clonePayment(p))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryPaymentRepo) MarkPaid(_ context.Context, id, sessionID, paymentIntentID string, at time.Time) (bool, error) {
	return r.transition(id, func(p *models.Payment) {
		p.Status = models.PaymentStatusPaid
		p.PaidAt = &at
		if sessionID != "" {
			p.StripeSessionID = sessionID
		}
		if paymentIntentID != "" {
			p.StripePaymentIntentID = paymentIntentID
		}
		p.UpdatedAt = at
	})
}

func (r *MemoryPaymentRepo) MarkFailed(_ context.Context, id, reason string, at time.Time) (bool, error) {
	return r.transition(id, func(p *models.Payment) {
		p.Status = models.PaymentStatusFailed
		p.FailureReason = reason
		p.FailedAt = &at
		p.UpdatedAt = at
	})
}

func (r *MemoryPaymentRepo) transition(id string, apply func(p *models.Payment)) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.payments[id]
	if !ok {
		return false, ErrPaymentNotFound
	}
	if !p.IsPending() {
		return false, nil
	}
	apply(&p)
	r.payments[id] = p
	return true, nil
}

func clonePayment(p models.Payment) models.Payment {
	p.SelectedDates = append([]string(nil), p.SelectedDates...)
	return p
}

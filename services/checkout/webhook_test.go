package checkout

import (
	"context"
	"testing"
	"time"

	paymentRepo "cazpay/database/repository/payment"
	"cazpay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingPaidRepo errors on MarkPaid until failures runs out.
type failingPaidRepo struct {
	*paymentRepo.MemoryPaymentRepo
	failures int
}

func (r *failingPaidRepo) MarkPaid(ctx context.Context, id, sessionID, piID string, at time.Time) (bool, error) {
	if r.failures > 0 {
		r.failures--
		return false, errBoom
	}
	return r.MemoryPaymentRepo.MarkPaid(ctx, id, sessionID, piID, at)
}

func seedPending(t *testing.T, repo paymentRepo.PaymentRepository, sessionID string) *models.Payment {
	t.Helper()
	p := &models.Payment{
		RegistrationNumber: "AB12CDE",
		SelectedDates:      []string{"2026-06-01"},
		PricePerDay:        1400,
		TotalAmount:        1400,
		Currency:           models.Currency,
		Status:             models.PaymentStatusPending,
	}
	require.NoError(t, repo.Create(context.Background(), p))
	if sessionID != "" {
		require.NoError(t, repo.SetSessionID(context.Background(), p.ID, sessionID))
	}
	return p
}

func eventGateway(events map[string]*GatewayEvent) *fakeGateway {
	return &fakeGateway{
		ConstructEventFunc: func(payload []byte, signature string) (*GatewayEvent, error) {
			if signature != "valid" {
				return nil, ErrInvalidSignature
			}
			ev, ok := events[string(payload)]
			if !ok {
				return &GatewayEvent{ID: "evt_other", Type: "customer.created"}, nil
			}
			return ev, nil
		},
	}
}

func completedEvent(id, paymentID, sessionID, status string) *GatewayEvent {
	return &GatewayEvent{
		ID:   id,
		Type: EventCheckoutCompleted,
		Session: &GatewaySession{
			ID:              sessionID,
			PaymentStatus:   status,
			PaymentIntentID: "pi_" + id,
			Metadata:        map[string]string{"paymentId": paymentID},
		},
	}
}

func TestHandleWebhookSignature(t *testing.T) {
	svc := newTestService(paymentRepo.NewMemoryPaymentRepo(), eventGateway(nil), 1400)

	err := svc.HandleWebhook(context.Background(), []byte("{}"), "")
	assert.ErrorIs(t, err, ErrMissingSignature)

	err = svc.HandleWebhook(context.Background(), []byte("{}"), "forged")
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestHandleWebhookMarksPaidOnce(t *testing.T) {
	for _, withDedupe := range []bool{true, false} {
		t.Run(map[bool]string{true: "with dedupe", false: "without dedupe"}[withDedupe], func(t *testing.T) {
			ctx := context.Background()
			repo := paymentRepo.NewMemoryPaymentRepo()
			p := seedPending(t, repo, "cs_1")

			gw := eventGateway(map[string]*GatewayEvent{
				"completed": completedEvent("evt_1", p.ID, "cs_1", SessionPaymentPaid),
			})
			svc := newTestService(repo, gw, 1400)
			if withDedupe {
				svc.Dedupe = newMemoryDeduper()
			}

			require.NoError(t, svc.HandleWebhook(ctx, []byte("completed"), "valid"))
			got, err := repo.GetByID(ctx, p.ID)
			require.NoError(t, err)
			assert.Equal(t, models.PaymentStatusPaid, got.Status)
			require.NotNil(t, got.PaidAt)
			assert.Equal(t, fixedNow, *got.PaidAt)
			assert.Equal(t, "pi_evt_1", got.StripePaymentIntentID)

			// Redelivery after a later clock tick changes nothing.
			svc.Now = func() time.Time { return fixedNow.Add(time.Hour) }
			require.NoError(t, svc.HandleWebhook(ctx, []byte("completed"), "valid"))
			again, err := repo.GetByID(ctx, p.ID)
			require.NoError(t, err)
			assert.Equal(t, models.PaymentStatusPaid, again.Status)
			assert.Equal(t, fixedNow, *again.PaidAt)
		})
	}
}

func TestHandleWebhookUnpaidLeavesPending(t *testing.T) {
	ctx := context.Background()
	repo := paymentRepo.NewMemoryPaymentRepo()
	p := seedPending(t, repo, "cs_1")
	gw := eventGateway(map[string]*GatewayEvent{
		"unpaid": completedEvent("evt_1", p.ID, "cs_1", SessionPaymentUnpaid),
	})
	svc := newTestService(repo, gw, 1400)

	require.NoError(t, svc.HandleWebhook(ctx, []byte("unpaid"), "valid"))
	got, _ := repo.GetByID(ctx, p.ID)
	assert.Equal(t, models.PaymentStatusPending, got.Status)
}

func TestHandleWebhookFailureEvents(t *testing.T) {
	cases := []struct {
		eventType string
		reason    string
	}{
		{EventCheckoutAsyncPaymentFailed, "async_payment_failed"},
		{EventCheckoutExpired, "session_expired"},
	}
	for _, tc := range cases {
		t.Run(tc.eventType, func(t *testing.T) {
			ctx := context.Background()
			repo := paymentRepo.NewMemoryPaymentRepo()
			p := seedPending(t, repo, "cs_1")
			gw := eventGateway(map[string]*GatewayEvent{
				"failed": {
					ID:      "evt_1",
					Type:    tc.eventType,
					Session: &GatewaySession{ID: "cs_1", ClientReferenceID: p.ID},
				},
			})
			svc := newTestService(repo, gw, 1400)

			require.NoError(t, svc.HandleWebhook(ctx, []byte("failed"), "valid"))
			got, _ := repo.GetByID(ctx, p.ID)
			assert.Equal(t, models.PaymentStatusFailed, got.Status)
			assert.Equal(t, tc.reason, got.FailureReason)
		})
	}
}

func TestHandleWebhookDoesNotDowngradePaid(t *testing.T) {
	ctx := context.Background()
	repo := paymentRepo.NewMemoryPaymentRepo()
	p := seedPending(t, repo, "cs_1")
	gw := eventGateway(map[string]*GatewayEvent{
		"paid":    completedEvent("evt_1", p.ID, "cs_1", SessionPaymentPaid),
		"expired": {ID: "evt_2", Type: EventCheckoutExpired, Session: &GatewaySession{ID: "cs_1", ClientReferenceID: p.ID}},
	})
	svc := newTestService(repo, gw, 1400)

	require.NoError(t, svc.HandleWebhook(ctx, []byte("paid"), "valid"))
	require.NoError(t, svc.HandleWebhook(ctx, []byte("expired"), "valid"))

	got, _ := repo.GetByID(ctx, p.ID)
	assert.Equal(t, models.PaymentStatusPaid, got.Status)
	assert.Empty(t, got.FailureReason)
}

func TestHandleWebhookFallsBackToSessionID(t *testing.T) {
	ctx := context.Background()
	repo := paymentRepo.NewMemoryPaymentRepo()
	p := seedPending(t, repo, "cs_lookup")
	gw := eventGateway(map[string]*GatewayEvent{
		"completed": {
			ID:      "evt_1",
			Type:    EventCheckoutCompleted,
			Session: &GatewaySession{ID: "cs_lookup", PaymentStatus: SessionPaymentPaid},
		},
	})
	svc := newTestService(repo, gw, 1400)

	require.NoError(t, svc.HandleWebhook(ctx, []byte("completed"), "valid"))
	got, _ := repo.GetByID(ctx, p.ID)
	assert.Equal(t, models.PaymentStatusPaid, got.Status)
}

func TestHandleWebhookIgnoresUnrelatedEvents(t *testing.T) {
	ctx := context.Background()
	repo := paymentRepo.NewMemoryPaymentRepo()
	p := seedPending(t, repo, "cs_1")
	svc := newTestService(repo, eventGateway(nil), 1400)

	require.NoError(t, svc.HandleWebhook(ctx, []byte("anything"), "valid"))
	got, _ := repo.GetByID(ctx, p.ID)
	assert.Equal(t, models.PaymentStatusPending, got.Status)
}

func TestHandleWebhookUnknownPaymentAcknowledged(t *testing.T) {
	repo := paymentRepo.NewMemoryPaymentRepo()
	gw := eventGateway(map[string]*GatewayEvent{
		"completed": completedEvent("evt_1", "missing", "cs_missing", SessionPaymentPaid),
	})
	svc := newTestService(repo, gw, 1400)

	assert.NoError(t, svc.HandleWebhook(context.Background(), []byte("completed"), "valid"))
}

func TestHandleWebhookStorageErrorReleasesEvent(t *testing.T) {
	ctx := context.Background()
	repo := &failingPaidRepo{MemoryPaymentRepo: paymentRepo.NewMemoryPaymentRepo(), failures: 1}
	p := seedPending(t, repo, "cs_1")
	gw := eventGateway(map[string]*GatewayEvent{
		"completed": completedEvent("evt_1", p.ID, "cs_1", SessionPaymentPaid),
	})
	dedupe := newMemoryDeduper()
	svc := newTestService(repo, gw, 1400)
	svc.Dedupe = dedupe

	require.NoError(t, svc.HandleWebhook(ctx, []byte("completed"), "valid"), "storage errors are acknowledged")
	got, _ := repo.GetByID(ctx, p.ID)
	assert.Equal(t, models.PaymentStatusPending, got.Status)
	assert.False(t, dedupe.seen["evt_1"], "failed event is released for a manual resend")

	require.NoError(t, svc.HandleWebhook(ctx, []byte("completed"), "valid"))
	got, _ = repo.GetByID(ctx, p.ID)
	assert.Equal(t, models.PaymentStatusPaid, got.Status)
}

package paymentRepo

import (
	"context"
	"testing"
	"time"

	"cazpay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPending(t *testing.T, repo *MemoryPaymentRepo, created time.Time) *models.Payment {
	t.Helper()
	p := &models.Payment{
		RegistrationNumber: "AB12CDE",
		SelectedDates:      []string{"2026-01-01"},
		Status:             models.PaymentStatusPending,
		CreatedAt:          created,
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestMemoryRepoTransitionsOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPaymentRepo()
	p := newPending(t, repo, time.Now())

	changed, err := repo.MarkPaid(ctx, p.ID, "cs_1", "pi_1", time.Now())
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = repo.MarkPaid(ctx, p.ID, "cs_1", "pi_1", time.Now())
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = repo.MarkFailed(ctx, p.ID, "expired", time.Now())
	require.NoError(t, err)
	assert.False(t, changed)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, got.Status)
	assert.Equal(t, "pi_1", got.StripePaymentIntentID)
	assert.Empty(t, got.FailureReason)
}

func TestMemoryRepoUnknownPayment(t *testing.T) {
	repo := NewMemoryPaymentRepo()
	_, err := repo.MarkPaid(context.Background(), "missing", "", "", time.Now())
	assert.ErrorIs(t, err, ErrPaymentNotFound)

	_, err = repo.GetBySessionID(context.Background(), "cs_missing")
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestMemoryRepoGetAllNewestFirst(t *testing.T) {
	repo := NewMemoryPaymentRepo()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	older := newPending(t, repo, base)
	newer := newPending(t, repo, base.Add(time.Hour))

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, newer.ID, all[0].ID)
	assert.Equal(t, older.ID, all[1].ID)
}

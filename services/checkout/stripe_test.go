package checkout

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWebhookSecret = "whsec_test_secret"

func signPayload(t *testing.T, secret string, payload []byte, ts time.Time) string {
	t.Helper()
	mac := hmac.New(sha256.New, []byte(secret))
	_, err := fmt.Fprintf(mac, "%d.%s", ts.Unix(), payload)
	require.NoError(t, err)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

const completedPayload = `{
  "id": "evt_test_1",
  "object": "event",
  "api_version": "2023-10-16",
  "type": "checkout.session.completed",
  "data": {
    "object": {
      "id": "cs_test_1",
      "object": "checkout.session",
      "payment_status": "paid",
      "status": "complete",
      "client_reference_id": "pay_1",
      "customer_email": "driver@example.com",
      "amount_total": 2800,
      "currency": "gbp",
      "payment_intent": "pi_test_1",
      "metadata": {"paymentId": "pay_1"}
    }
  }
}`

func TestStripeGatewayConstructEvent(t *testing.T) {
	gw := NewStripeGateway(testWebhookSecret)
	payload := []byte(completedPayload)

	ev, err := gw.ConstructEvent(payload, signPayload(t, testWebhookSecret, payload, time.Now()))
	require.NoError(t, err)
	assert.Equal(t, "evt_test_1", ev.ID)
	assert.Equal(t, EventCheckoutCompleted, ev.Type)
	require.NotNil(t, ev.Session)
	assert.Equal(t, "cs_test_1", ev.Session.ID)
	assert.Equal(t, SessionPaymentPaid, ev.Session.PaymentStatus)
	assert.Equal(t, "pi_test_1", ev.Session.PaymentIntentID)
	assert.Equal(t, "pay_1", paymentRef(ev.Session))
	assert.Equal(t, int64(2800), ev.Session.AmountTotal)
}

func TestStripeGatewayRejectsBadSignatures(t *testing.T) {
	gw := NewStripeGateway(testWebhookSecret)
	payload := []byte(completedPayload)

	_, err := gw.ConstructEvent(payload, "")
	assert.ErrorIs(t, err, ErrMissingSignature)

	_, err = gw.ConstructEvent(payload, signPayload(t, "whsec_other", payload, time.Now()))
	assert.ErrorIs(t, err, ErrInvalidSignature)

	_, err = gw.ConstructEvent(payload, signPayload(t, testWebhookSecret, payload, time.Now().Add(-time.Hour)))
	assert.ErrorIs(t, err, ErrInvalidSignature, "stale timestamps are refused")

	tampered := []byte(completedPayload[:len(completedPayload)-2] + " }")
	_, err = gw.ConstructEvent(tampered, signPayload(t, testWebhookSecret, payload, time.Now()))
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

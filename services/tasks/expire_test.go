package tasks

import (
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExpirePaymentTask(t *testing.T) {
	task, opts, err := NewExpirePaymentTask("pay_1", time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, TypeExpirePayment, task.Type())
	assert.Len(t, opts, 4)

	p, err := ParseExpirePaymentPayload(task)
	require.NoError(t, err)
	assert.Equal(t, "pay_1", p.PaymentID)
}

func TestParseExpirePaymentPayloadRejectsBadInput(t *testing.T) {
	_, err := ParseExpirePaymentPayload(asynq.NewTask(TypeExpirePayment, []byte("{")))
	assert.Error(t, err)

	_, err = ParseExpirePaymentPayload(asynq.NewTask(TypeExpirePayment, []byte(`{}`)))
	assert.Error(t, err)
}

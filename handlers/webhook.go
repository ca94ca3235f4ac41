package handlers

import (
	"errors"
	"io"
	"net/http"

	"cazpay/services/checkout"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxWebhookBodyBytes matches the limit Stripe recommends for event payloads.
const maxWebhookBodyBytes = int64(65536)

// WebhookHandler receives payment provider notifications.
type WebhookHandler struct {
	Service checkout.CheckoutService
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(svc checkout.CheckoutService) *WebhookHandler {
	return &WebhookHandler{Service: svc}
}

// StripeWebhook verifies the raw payload and reconciles the payment. Anything past
// signature verification is acknowledged with 200.
func (h *WebhookHandler) StripeWebhook(c *gin.Context) {
	logger := getLogger(c)

	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		logger.Warn("webhook body unreadable", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Webhook error"})
		return
	}

	err = h.Service.HandleWebhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	switch {
	case errors.Is(err, checkout.ErrMissingSignature):
		logger.Warn("webhook without signature")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing stripe signature"})
		return
	case err != nil:
		logger.Warn("webhook signature rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Webhook error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

package checkout

import (
	"context"
	"errors"

	paymentRepo "cazpay/database/repository/payment"

	"go.uber.org/zap"
)

// HandleWebhook verifies a provider notification and reconciles the payment it refers to.
// Only signature problems are returned; processing failures are logged so the provider
// receives an acknowledgement and does not retry.
func (s *DefaultCheckoutService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	if signature == "" {
		return ErrMissingSignature
	}
	event, err := s.Gateway.ConstructEvent(payload, signature)
	if err != nil {
		if errors.Is(err, ErrMissingSignature) || errors.Is(err, ErrInvalidSignature) {
			return err
		}
		zap.L().Error("webhook event could not be decoded", zap.Error(err))
		return nil
	}

	logger := zap.L().With(zap.String("eventId", event.ID), zap.String("type", event.Type))

	if event.Session == nil || !handledEvent(event.Type) {
		logger.Debug("webhook event ignored")
		return nil
	}

	if s.Dedupe != nil && event.ID != "" {
		first, err := s.Dedupe.FirstDelivery(ctx, event.ID)
		if err != nil {
			logger.Warn("event dedupe unavailable", zap.Error(err))
		} else if !first {
			logger.Info("duplicate webhook event acknowledged")
			return nil
		}
	}

	if err := s.reconcile(ctx, event); err != nil {
		logger.Error("webhook processing failed", zap.Error(err))
		// Released so an operator resend from the Stripe dashboard is not dropped as a duplicate.
		if s.Dedupe != nil && event.ID != "" {
			if ferr := s.Dedupe.Forget(ctx, event.ID); ferr != nil {
				logger.Warn("failed to release event id", zap.Error(ferr))
			}
		}
	}
	return nil
}

func handledEvent(eventType string) bool {
	switch eventType {
	case EventCheckoutCompleted, EventCheckoutAsyncPaymentOK, EventCheckoutAsyncPaymentFailed, EventCheckoutExpired:
		return true
	}
	return false
}

func (s *DefaultCheckoutService) reconcile(ctx context.Context, event *GatewayEvent) error {
	sess := event.Session
	paymentID, err := s.resolvePaymentID(ctx, sess)
	if err != nil {
		return err
	}

	logger := zap.L().With(zap.String("eventId", event.ID), zap.String("paymentId", paymentID))

	switch event.Type {
	case EventCheckoutCompleted:
		switch sess.PaymentStatus {
		case SessionPaymentPaid, SessionPaymentNoPaymentRequired:
			return s.markPaid(ctx, logger, paymentID, sess)
		case SessionPaymentUnpaid:
			// Delayed payment methods settle through async_payment_* events.
			logger.Info("checkout completed, payment not yet settled")
			return nil
		default:
			return s.markFailed(ctx, logger, paymentID, "payment_status_"+sess.PaymentStatus)
		}
	case EventCheckoutAsyncPaymentOK:
		return s.markPaid(ctx, logger, paymentID, sess)
	case EventCheckoutAsyncPaymentFailed:
		return s.markFailed(ctx, logger, paymentID, "async_payment_failed")
	case EventCheckoutExpired:
		return s.markFailed(ctx, logger, paymentID, "session_expired")
	}
	return nil
}

func (s *DefaultCheckoutService) resolvePaymentID(ctx context.Context, sess *GatewaySession) (string, error) {
	if id := paymentRef(sess); id != "" {
		return id, nil
	}
	if sess.ID == "" {
		return "", errors.New("event carries no payment reference")
	}
	payment, err := s.Payments.GetBySessionID(ctx, sess.ID)
	if err != nil {
		return "", err
	}
	return payment.ID, nil
}

func (s *DefaultCheckoutService) markPaid(ctx context.Context, logger *zap.Logger, paymentID string, sess *GatewaySession) error {
	changed, err := s.Payments.MarkPaid(ctx, paymentID, sess.ID, sess.PaymentIntentID, s.now())
	if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
		logger.Error("paid session has no matching payment")
		return nil
	}
	if err != nil {
		return err
	}
	if changed {
		logger.Info("payment marked paid", zap.String("sessionId", sess.ID))
	} else {
		logger.Info("payment already settled, paid event ignored")
	}
	return nil
}

func (s *DefaultCheckoutService) markFailed(ctx context.Context, logger *zap.Logger, paymentID, reason string) error {
	changed, err := s.Payments.MarkFailed(ctx, paymentID, reason, s.now())
	if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
		logger.Error("failed session has no matching payment")
		return nil
	}
	if err != nil {
		return err
	}
	if changed {
		logger.Info("payment marked failed", zap.String("reason", reason))
	}
	return nil
}

package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	paymentRepo "cazpay/database/repository/payment"
	"cazpay/models"

	"go.uber.org/zap"
)

// CreateCheckout validates the order, stores it as pending and opens a hosted checkout
// session for it.
func (s *DefaultCheckoutService) CreateCheckout(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutResult, error) {
	req, err := normalizeRequest(req)
	if err != nil {
		return nil, err
	}

	price, err := s.Pricing.GetPrice(ctx)
	if err != nil {
		zap.L().Error("price lookup failed, charging default", zap.Error(err), zap.Int64("pricePerDay", price.Amount))
	}

	now := s.now()
	payment := &models.Payment{
		RegistrationNumber:   req.RegistrationNumber,
		RegistrationLocation: req.RegistrationLocation,
		VehicleType:          req.VehicleType,
		CleanAirZone:         req.CleanAirZone,
		SelectedDates:        req.SelectedDates,
		Email:                req.Email,
		PricePerDay:          price.Amount,
		TotalAmount:          totalFor(len(req.SelectedDates), price.Amount),
		Currency:             models.Currency,
		Status:               models.PaymentStatusPending,
		CreatedAt:            now,
	}
	if err := s.Payments.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to save pending payment: %w", err)
	}

	expiresAt := now.Add(s.sessionTTL())
	base := strings.TrimRight(s.BaseURL, "/")
	sess, err := s.Gateway.CreateSession(ctx, SessionRequest{
		PaymentID:   payment.ID,
		Email:       payment.Email,
		Zone:        payment.CleanAirZone,
		Dates:       payment.SelectedDates,
		UnitAmount:  payment.PricePerDay,
		Quantity:    int64(payment.DateCount()),
		Currency:    payment.Currency,
		SuccessURL:  base + "/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   base + "/?canceled=true",
		ExpiresAt:   expiresAt,
		Idempotency: "checkout-" + payment.ID,
	})
	if err != nil {
		// No session means no expiry webhook will ever settle this record.
		if _, ferr := s.Payments.MarkFailed(ctx, payment.ID, "session_create_failed", s.now()); ferr != nil {
			zap.L().Error("failed to fail payment after session error", zap.String("paymentId", payment.ID), zap.Error(ferr))
		}
		return nil, fmt.Errorf("failed to create checkout session for payment %s: %w", payment.ID, err)
	}

	if err := s.Payments.SetSessionID(ctx, payment.ID, sess.ID); err != nil {
		return nil, fmt.Errorf("failed to store session id for payment %s: %w", payment.ID, err)
	}

	if s.Scheduler != nil {
		if err := s.Scheduler.ScheduleExpiry(ctx, payment.ID, expiresAt.Add(expiryGrace)); err != nil {
			zap.L().Warn("failed to schedule payment expiry", zap.String("paymentId", payment.ID), zap.Error(err))
		}
	}

	zap.L().Info("checkout session created",
		zap.String("paymentId", payment.ID),
		zap.String("sessionId", sess.ID),
		zap.Int("days", payment.DateCount()),
		zap.Int64("totalAmount", payment.TotalAmount),
	)
	return &models.CheckoutResult{
		PaymentID: payment.ID,
		SessionID: sess.ID,
		URL:       sess.URL,
	}, nil
}

// GetSessionSummary returns what the success page shows for a session.
func (s *DefaultCheckoutService) GetSessionSummary(ctx context.Context, sessionID string) (*models.CheckoutSessionSummary, error) {
	if sessionID == "" {
		return nil, ErrSessionNotFound
	}
	sess, err := s.Gateway.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	summary := &models.CheckoutSessionSummary{
		SessionID:     sess.ID,
		PaymentID:     paymentRef(sess),
		CustomerEmail: sess.CustomerEmail,
		PaymentStatus: sess.PaymentStatus,
		AmountTotal:   sess.AmountTotal,
		Currency:      strings.ToUpper(sess.Currency),
	}
	return summary, nil
}

// ExpirePayment fails a payment whose checkout window has closed. Settled payments are
// left as they are.
func (s *DefaultCheckoutService) ExpirePayment(ctx context.Context, paymentID string) error {
	changed, err := s.Payments.MarkFailed(ctx, paymentID, "expired", s.now())
	if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
		zap.L().Warn("expiry for unknown payment", zap.String("paymentId", paymentID))
		return nil
	}
	if err != nil {
		return err
	}
	if changed {
		zap.L().Info("pending payment expired", zap.String("paymentId", paymentID))
	}
	return nil
}

// paymentRef extracts our payment id from a session.
func paymentRef(sess *GatewaySession) string {
	if id := sess.Metadata["paymentId"]; id != "" {
		return id
	}
	return sess.ClientReferenceID
}

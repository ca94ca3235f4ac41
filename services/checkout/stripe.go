package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
)

// StripeGateway talks to Stripe Checkout. The API key is the package-global stripe.Key.
type StripeGateway struct {
	WebhookSecret string
}

// NewStripeGateway returns a gateway that verifies webhooks with webhookSecret.
func NewStripeGateway(webhookSecret string) *StripeGateway {
	return &StripeGateway{WebhookSecret: webhookSecret}
}

// CreateSession opens a hosted Checkout session in payment mode.
func (g *StripeGateway) CreateSession(ctx context.Context, req SessionRequest) (*GatewaySession, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(strings.ToLower(req.Currency)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String("Clean Air Zone Charge - " + req.Zone),
						Description: stripe.String("Dates: " + strings.Join(req.Dates, ", ")),
					},
					UnitAmount: stripe.Int64(req.UnitAmount),
				},
				Quantity: stripe.Int64(req.Quantity),
			},
		},
		CustomerEmail:     stripe.String(req.Email),
		ClientReferenceID: stripe.String(req.PaymentID),
		SuccessURL:        stripe.String(req.SuccessURL),
		CancelURL:         stripe.String(req.CancelURL),
	}
	if !req.ExpiresAt.IsZero() {
		params.ExpiresAt = stripe.Int64(req.ExpiresAt.Unix())
	}
	params.AddMetadata("paymentId", req.PaymentID)
	params.Context = ctx
	if req.Idempotency != "" {
		params.SetIdempotencyKey(req.Idempotency)
	}

	s, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe: create checkout session: %w", err)
	}
	return fromStripeSession(s), nil
}

// GetSession retrieves a Checkout session by id.
func (g *StripeGateway) GetSession(ctx context.Context, sessionID string) (*GatewaySession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := session.Get(sessionID, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == 404 {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("stripe: get checkout session: %w", err)
	}
	return fromStripeSession(s), nil
}

// ConstructEvent verifies the Stripe-Signature header and decodes checkout session events.
func (g *StripeGateway) ConstructEvent(payload []byte, signature string) (*GatewayEvent, error) {
	if signature == "" {
		return nil, ErrMissingSignature
	}
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.WebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	out := &GatewayEvent{ID: event.ID, Type: string(event.Type)}
	if strings.HasPrefix(out.Type, "checkout.session.") && event.Data != nil {
		var s stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
			return nil, fmt.Errorf("stripe: decode checkout session: %w", err)
		}
		out.Session = fromStripeSession(&s)
	}
	return out, nil
}

func fromStripeSession(s *stripe.CheckoutSession) *GatewaySession {
	out := &GatewaySession{
		ID:                s.ID,
		URL:               s.URL,
		Status:            string(s.Status),
		PaymentStatus:     string(s.PaymentStatus),
		CustomerEmail:     s.CustomerEmail,
		ClientReferenceID: s.ClientReferenceID,
		AmountTotal:       s.AmountTotal,
		Currency:          string(s.Currency),
		Metadata:          s.Metadata,
	}
	if out.CustomerEmail == "" && s.CustomerDetails != nil {
		out.CustomerEmail = s.CustomerDetails.Email
	}
	if s.PaymentIntent != nil {
		out.PaymentIntentID = s.PaymentIntent.ID
	}
	return out
}

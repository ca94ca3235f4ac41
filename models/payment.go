package models

import "time"

// Payment lifecycle states.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// Currency is the only currency charges are taken in.
const Currency = "GBP"

// Payment is a Clean Air Zone charge order. It is written as pending before the hosted
// checkout session is requested and reconciled by the Stripe webhook.
type Payment struct {
	ID                    string     `bson:"_id" json:"id"`
	RegistrationNumber    string     `bson:"registrationNumber" json:"registrationNumber"`
	RegistrationLocation  string     `bson:"registrationLocation" json:"registrationLocation"`
	VehicleType           string     `bson:"vehicleType" json:"vehicleType"`
	CleanAirZone          string     `bson:"cleanAirZone" json:"cleanAirZone"`
	SelectedDates         []string   `bson:"selectedDates" json:"selectedDates"`
	Email                 string     `bson:"email" json:"email"`
	PricePerDay           int64      `bson:"pricePerDay" json:"pricePerDay"` // pence
	TotalAmount           int64      `bson:"totalAmount" json:"totalAmount"` // pence
	Currency              string     `bson:"currency" json:"currency"`
	Status                string     `bson:"status" json:"status"`
	StripeSessionID       string     `bson:"stripeSessionId,omitempty" json:"stripeSessionId,omitempty"`
	StripePaymentIntentID string     `bson:"stripePaymentIntentId,omitempty" json:"stripePaymentIntentId,omitempty"`
	FailureReason         string     `bson:"failureReason,omitempty" json:"failureReason,omitempty"`
	CreatedAt             time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time  `bson:"updatedAt" json:"updatedAt"`
	PaidAt                *time.Time `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
	FailedAt              *time.Time `bson:"failedAt,omitempty" json:"failedAt,omitempty"`
}

// DateCount is the number of charge days on the order.
func (p Payment) DateCount() int {
	return len(p.SelectedDates)
}

// IsPending reports whether the payment can still transition.
func (p Payment) IsPending() bool {
	return p.Status == PaymentStatusPending
}

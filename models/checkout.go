package models

// CheckoutRequest is the body of the create-checkout endpoint. The binding tags are
// checked both when gin binds the body and again by the checkout service.
type CheckoutRequest struct {
	SelectedDates        []string `json:"selectedDates" binding:"required,min=1,max=100,dive,datetime=2006-01-02"`
	RegistrationNumber   string   `json:"registrationNumber" binding:"required"`
	RegistrationLocation string   `json:"registrationLocation" binding:"omitempty,oneof=UK Non-UK"`
	VehicleType          string   `json:"vehicleType" binding:"required"`
	CleanAirZone         string   `json:"cleanAirZone" binding:"required"`
	Email                string   `json:"email" binding:"required,email"`
}

// CheckoutResult is returned once the hosted session exists.
type CheckoutResult struct {
	PaymentID string `json:"id"`
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// CheckoutSessionSummary is what the success page shows about a session.
type CheckoutSessionSummary struct {
	SessionID     string `json:"sessionId"`
	PaymentID     string `json:"paymentId,omitempty"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	PaymentStatus string `json:"paymentStatus"`
	AmountTotal   int64  `json:"amountTotal"`
	Currency      string `json:"currency"`
}

// CheckoutOptions lists the values the form wizard may submit.
type CheckoutOptions struct {
	CleanAirZones         []string `json:"cleanAirZones"`
	VehicleTypes          []string `json:"vehicleTypes"`
	RegistrationLocations []string `json:"registrationLocations"`
	MaxDates              int      `json:"maxDates"`
	DateFormat            string   `json:"dateFormat"`
}

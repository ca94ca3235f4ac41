package models

import "time"

// Sortable order columns.
const (
	OrderSortRegistration = "registrationNumber"
	OrderSortEmail        = "email"
	OrderSortDateCount    = "dateCount"
	OrderSortTotal        = "totalAmount"
	OrderSortStatus       = "status"
	OrderSortCreatedAt    = "createdAt"
)

// OrderQuery is the admin listing filter and sort state.
type OrderQuery struct {
	Search string `form:"q" json:"q"`
	Status string `form:"status" json:"status"`
	SortBy string `form:"sort" json:"sort"`
	Desc   bool   `form:"-" json:"desc"`
}

// OrderView is a payment serialized for the admin listing.
type OrderView struct {
	ID                   string    `json:"id"`
	RegistrationNumber   string    `json:"registrationNumber"`
	RegistrationLocation string    `json:"registrationLocation"`
	VehicleType          string    `json:"vehicleType"`
	CleanAirZone         string    `json:"cleanAirZone"`
	SelectedDates        []string  `json:"selectedDates"`
	DateCount            int       `json:"dateCount"`
	Email                string    `json:"email"`
	TotalAmount          int64     `json:"totalAmount"`
	Total                string    `json:"total"`
	Currency             string    `json:"currency"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"createdAt"`
	StripeSessionID      string    `json:"stripeSessionId,omitempty"`
}

// OrderListing is the filtered, sorted view plus its summary figures.
type OrderListing struct {
	Orders         []OrderView `json:"orders"`
	Count          int         `json:"count"`
	Revenue        int64       `json:"revenue"`
	RevenueDisplay string      `json:"revenueDisplay"`
	Query          OrderQuery  `json:"query"`
}

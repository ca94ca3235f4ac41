package models

import "time"

// PricingSettingsID is the _id of the single price-per-day settings document.
const PricingSettingsID = "pricing"

// PriceSetting holds the per-day charge in pence.
type PriceSetting struct {
	ID        string    `bson:"_id" json:"-"`
	Amount    int64     `bson:"amount" json:"amount"`
	Currency  string    `bson:"currency" json:"currency"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

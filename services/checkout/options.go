package checkout

import "cazpay/models"

const (
	// MaxDates caps the number of charge days in one order.
	MaxDates = 100
	// DateLayout is the wire format of a selected date.
	DateLayout = "2006-01-02"
)

var cleanAirZones = []string{
	"Bath",
	"Birmingham",
	"Bradford",
	"Bristol",
	"Greater Manchester",
	"Portsmouth",
	"Sheffield",
	"Tyneside - Newcastle and Gateshead",
}

var vehicleTypes = []string{
	"Car",
	"Bus",
	"Coach",
	"Heavy Goods Vehicle",
	"Minibus",
	"Motorcycle",
	"Van",
}

var registrationLocations = []string{"UK", "Non-UK"}

// Options returns the values accepted by CreateCheckout.
func Options() models.CheckoutOptions {
	return models.CheckoutOptions{
		CleanAirZones:         append([]string(nil), cleanAirZones...),
		VehicleTypes:          append([]string(nil), vehicleTypes...),
		RegistrationLocations: append([]string(nil), registrationLocations...),
		MaxDates:              MaxDates,
		DateFormat:            "YYYY-MM-DD",
	}
}

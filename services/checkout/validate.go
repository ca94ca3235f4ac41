package checkout

import (
	"errors"
	"sort"
	"strings"

	"cazpay/models"

	"github.com/go-playground/validator/v10"
)

// validate reads the same "binding" tags gin's default validator uses.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

// normalizeRequest validates req and returns a cleaned copy with dates sorted ascending.
func normalizeRequest(req models.CheckoutRequest) (models.CheckoutRequest, error) {
	out := models.CheckoutRequest{
		RegistrationNumber:   strings.ToUpper(strings.Join(strings.Fields(req.RegistrationNumber), "")),
		RegistrationLocation: strings.TrimSpace(req.RegistrationLocation),
		VehicleType:          strings.TrimSpace(req.VehicleType),
		CleanAirZone:         strings.TrimSpace(req.CleanAirZone),
		Email:                strings.TrimSpace(req.Email),
	}
	for _, d := range req.SelectedDates {
		out.SelectedDates = append(out.SelectedDates, strings.TrimSpace(d))
	}
	if out.RegistrationLocation == "" {
		out.RegistrationLocation = "UK"
	}

	if err := validate.Struct(out); err != nil {
		if verr, ok := AsValidationError(err); ok {
			return out, verr
		}
		return out, err
	}

	dates, err := normalizeDates(out.SelectedDates)
	if err != nil {
		return out, err
	}
	out.SelectedDates = dates

	if !contains(vehicleTypes, out.VehicleType) {
		return out, ErrUnknownVehicleType
	}
	if !contains(cleanAirZones, out.CleanAirZone) {
		return out, ErrUnknownZone
	}
	return out, nil
}

// AsValidationError maps tag validation failures onto the checkout validation errors.
// The first failing field decides the message.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return nil, false
	}

	fe := fieldErrs[0]
	switch field := fe.StructField(); {
	case strings.HasPrefix(field, "SelectedDates"):
		switch fe.Tag() {
		case "max":
			return ErrTooManyDates, true
		case "datetime":
			return ErrInvalidDate, true
		}
		return ErrNoDates, true
	case field == "RegistrationNumber":
		return ErrMissingRegistration, true
	case field == "RegistrationLocation":
		return ErrInvalidLocation, true
	case field == "VehicleType":
		return ErrUnknownVehicleType, true
	case field == "CleanAirZone":
		return ErrUnknownZone, true
	case field == "Email":
		return ErrInvalidEmail, true
	}
	return newValidationError(fe.Field(), "Invalid value"), true
}

// normalizeDates rejects duplicates and sorts. Format and count are checked by the tags.
func normalizeDates(in []string) ([]string, error) {
	seen := make(map[string]struct{}, len(in))
	dates := make([]string, 0, len(in))
	for _, d := range in {
		if _, dup := seen[d]; dup {
			return nil, ErrDuplicateDate
		}
		seen[d] = struct{}{}
		dates = append(dates, d)
	}
	// YYYY-MM-DD sorts lexically in date order.
	sort.Strings(dates)
	return dates, nil
}

// totalFor is the charge for n days at pricePerDay pence.
func totalFor(n int, pricePerDay int64) int64 {
	return int64(n) * pricePerDay
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

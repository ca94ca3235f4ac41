package checkout

import "errors"

// ValidationError is returned for checkout input the server refuses to charge.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func newValidationError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg}
}

var (
	ErrNoDates             = newValidationError("selectedDates", "No dates selected")
	ErrTooManyDates        = newValidationError("selectedDates", "Too many dates selected")
	ErrInvalidDate         = newValidationError("selectedDates", "Dates must be formatted YYYY-MM-DD")
	ErrDuplicateDate       = newValidationError("selectedDates", "Each date may only be selected once")
	ErrMissingRegistration = newValidationError("registrationNumber", "Registration number is required")
	ErrInvalidLocation     = newValidationError("registrationLocation", "Registration location must be UK or Non-UK")
	ErrUnknownVehicleType  = newValidationError("vehicleType", "Unknown vehicle type")
	ErrUnknownZone         = newValidationError("cleanAirZone", "Unknown clean air zone")
	ErrInvalidEmail        = newValidationError("email", "A valid email address is required")
)

var (
	ErrMissingSignature = errors.New("missing stripe signature")
	ErrInvalidSignature = errors.New("invalid stripe signature")
	ErrSessionNotFound  = errors.New("checkout session not found")
)

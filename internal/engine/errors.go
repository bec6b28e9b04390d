package engine

import "errors"

// Validation errors surfaced to callers. The messages are part of the
// external contract: adapters return them verbatim in the error payload.
var (
	// ErrTooFewAerators is returned when fewer than two aerators are supplied.
	ErrTooFewAerators = errors.New("At least two aerators are required")

	// ErrInvalidFarmValue is returned when a farm field is not numeric.
	ErrInvalidFarmValue = errors.New("Invalid numeric value for farm inputs")

	// ErrInvalidFinancialValue is returned when a financial field is not numeric.
	ErrInvalidFinancialValue = errors.New("Invalid numeric value for financial inputs")

	// ErrInvalidAeratorValue is returned when an aerator field is not numeric.
	ErrInvalidAeratorValue = errors.New("Invalid numeric value for aerator specifications")

	// ErrNonPositiveTOD is returned when the farm's oxygen demand is not positive.
	ErrNonPositiveTOD = errors.New("TOD must be positive")

	// ErrAllZeroSOTR is returned when no aerator can transfer any oxygen.
	ErrAllZeroSOTR = errors.New("At least one aerator must have positive SOTR")
)

// MissingFieldError reports a required aerator field absent from the request.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "Missing required aerator field: " + e.Field
}

// IsValidationError reports whether err belongs to the input-validation
// taxonomy, as opposed to an internal fault. Adapters use this to pick the
// response status.
func IsValidationError(err error) bool {
	var missing *MissingFieldError
	if errors.As(err, &missing) {
		return true
	}
	return errors.Is(err, ErrTooFewAerators) ||
		errors.Is(err, ErrInvalidFarmValue) ||
		errors.Is(err, ErrInvalidFinancialValue) ||
		errors.Is(err, ErrInvalidAeratorValue) ||
		errors.Is(err, ErrNonPositiveTOD) ||
		errors.Is(err, ErrAllZeroSOTR)
}

package validation

import (
	"fmt"

	gberrors "github.com/vnykmshr/gobuf/pkg/common/errors"
)

// ValidateMinCapacity validates that a buffer capacity is at least minimum.
// Returns a ValidationError if the capacity is too small.
func ValidateMinCapacity(module, field string, value, minimum int) error {
	if value < minimum {
		return gberrors.NewValidationError(module, field, value,
			fmt.Sprintf("capacity must be at least %d", minimum)).
			WithHint(fmt.Sprintf("use %d or more bytes", minimum))
	}
	return nil
}

// ValidatePositive validates that an integer value is positive (> 0).
// Returns a ValidationError if the value is not positive.
func ValidatePositive(module, field string, value int) error {
	if value <= 0 {
		return gberrors.NewValidationError(module, field, value, "must be positive").
			WithHint("value must be greater than 0")
	}
	return nil
}

// ValidateNonNegative validates that an integer value is non-negative (>= 0).
// Returns a ValidationError if the value is negative.
func ValidateNonNegative(module, field string, value int) error {
	if value < 0 {
		return gberrors.NewValidationError(module, field, value, "cannot be negative").
			WithHint("use 0 or a positive value")
	}
	return nil
}

// ValidateNotNil validates that an interface value is not nil.
// Returns a ValidationError if the value is nil.
func ValidateNotNil(module, field string, value interface{}) error {
	if value == nil {
		return gberrors.NewValidationError(module, field, nil, "cannot be nil").
			WithHint("provide a valid " + field)
	}
	return nil
}

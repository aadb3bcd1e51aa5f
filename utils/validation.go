package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// FieldValidationError represents a validation error for a specific field
type FieldValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldValidationErrors represents multiple field validation errors
type FieldValidationErrors []FieldValidationError

// Error implements the error interface
func (e FieldValidationErrors) Error() string {
	var messages []string
	for _, err := range e {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks if the email is valid
func ValidateEmail(email string) (bool, string) {
	if !emailRegex.MatchString(email) {
		return false, "Invalid email format. Please enter a valid email address"
	}
	return true, ""
}

// ValidateDiscountValue checks a discount value against its type.
// Percentage discounts must lie in (0, 100]; fixed discounts must be
// positive.
func ValidateDiscountValue(discountType string, value float64) error {
	switch discountType {
	case "percentage":
		if value <= 0 || value > 100 {
			return fmt.Errorf("must be between 0 and 100")
		}
	case "fixed":
		if value <= 0 {
			return fmt.Errorf("must be greater than 0")
		}
	default:
		return fmt.Errorf("unknown discount type: %s", discountType)
	}
	return nil
}

// ValidateDateOrder checks that end does not precede start.
func ValidateDateOrder(start, end time.Time) error {
	if end.Before(start) {
		return fmt.Errorf("end date must not precede start date")
	}
	return nil
}

// ValidateMutualExclusion checks that at most one of two optional
// targets is set.
func ValidateMutualExclusion(first, second *uint, firstName, secondName string) error {
	if first != nil && second != nil {
		return fmt.Errorf("%s and %s cannot both be set", firstName, secondName)
	}
	return nil
}

// ValidateQuantity validates an ordered or received quantity
func ValidateQuantity(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be greater than 0")
	}
	return nil
}

// ValidateStringLength validates string length
func ValidateStringLength(str string, min, max int) error {
	length := len(strings.TrimSpace(str))
	if length < min {
		return fmt.Errorf("must be at least %d characters long", min)
	}
	if length > max {
		return fmt.Errorf("must not exceed %d characters", max)
	}
	return nil
}

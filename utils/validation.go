package utils

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(fmt.Sprintf("%s is required", fieldName))
	}
	return nil
}

// ValidatePositive checks if a number is positive
func ValidatePositive(value float64, fieldName string) error {
	if value <= 0 {
		return NewValidationError(fmt.Sprintf("%s must be positive", fieldName))
	}
	return nil
}

// ValidateNonNegative checks if a number is non-negative
func ValidateNonNegative(value float64, fieldName string) error {
	if value < 0 {
		return NewValidationError(fmt.Sprintf("%s cannot be negative", fieldName))
	}
	return nil
}

// ValidatePaymentMethod checks a payment method against the accepted set
func ValidatePaymentMethod(method string) error {
	for _, m := range PaymentMethods {
		if method == m {
			return nil
		}
	}
	return NewValidationError(fmt.Sprintf("unknown payment method %q", method))
}

// ValidateCategories checks that every category label is one of the four
// fixed fee categories
func ValidateCategories(categories []string) error {
	for _, c := range categories {
		valid := false
		for _, known := range FeeCategories {
			if NormalizeCategory(c) == known {
				valid = true
				break
			}
		}
		if !valid {
			return NewValidationError(fmt.Sprintf("unknown fee category %q", c))
		}
	}
	return nil
}

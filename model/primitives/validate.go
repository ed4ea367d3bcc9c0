package primitives

import (
	"math"

	householdcarbon "github.com/superdango/household-carbon"
)

// DaysPerYear annualizes daily quantities.
const DaysPerYear = 365

func nonNegative(field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return &householdcarbon.InvalidInputError{Field: field, Value: value, Reason: "must be a finite number"}
	}
	if value < 0 {
		return &householdcarbon.InvalidInputError{Field: field, Value: value, Reason: "must not be negative"}
	}
	return nil
}

func positive(field string, value float64) error {
	if err := nonNegative(field, value); err != nil {
		return err
	}
	if value == 0 {
		return &householdcarbon.InvalidInputError{Field: field, Value: value, Reason: "must be greater than 0"}
	}
	return nil
}

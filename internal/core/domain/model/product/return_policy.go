package product

import (
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
)

// ReturnPolicy is the product's return policy. Order lines snapshot it at
// order creation; the snapshot decides return eligibility for the whole
// order, immune to later product edits.
type ReturnPolicy int

const (
	// NoReturnAllowed means the item cannot be returned.
	NoReturnAllowed ReturnPolicy = iota

	// Replacement7Days allows exchanging the item within 7 days.
	Replacement7Days

	// Return7Days allows returning the item for a refund within 7 days.
	Return7Days
)

func getReturnPolicyStrings() map[ReturnPolicy]string {
	return map[ReturnPolicy]string{
		NoReturnAllowed:  "NONE",
		Replacement7Days: "REPLACEMENT_7",
		Return7Days:      "RETURN_7",
	}
}

// String returns the wire tag of the return policy.
func (p ReturnPolicy) String() string {
	if str, ok := getReturnPolicyStrings()[p]; ok {
		return str
	}
	return "NONE"
}

// Validate checks that the return policy is one of the defined variants.
// NoReturnAllowed is the zero value and valid.
func (p ReturnPolicy) Validate() error {
	if p < NoReturnAllowed || p > Return7Days {
		return errs.NewValueIsInvalidErrorWithCause("return policy is invalid",
			fmt.Errorf("%d is not a valid return policy", p))
	}
	return nil
}

// ParseReturnPolicy maps an external return policy string to a ReturnPolicy,
// case-insensitively. The empty string maps to NoReturnAllowed.
func ParseReturnPolicy(s string) (ReturnPolicy, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "NONE":
		return NoReturnAllowed, nil
	case "REPLACEMENT_7":
		return Replacement7Days, nil
	case "RETURN_7":
		return Return7Days, nil
	default:
		return NoReturnAllowed, errs.NewValueIsInvalidErrorWithCause("return policy is invalid",
			fmt.Errorf("%q is not a known return policy", s))
	}
}

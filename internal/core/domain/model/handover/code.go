// Package handover implements the custody-transfer codes that gate state
// transitions between two custody holders: the packing handover code, the
// delivery OTP, and the return OTP/handover code pair.
//
// A code is a short numeric shared secret. It is minted exactly once at the
// transition that creates the custody boundary and verified with a
// constant-time equality check. A mismatch leaves the code valid for further
// attempts; there is no expiry or attempt limit. A matched code is not
// explicitly invalidated: once the status has moved past the gate it can no
// longer unlock anything.
package handover

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"

	"storefront/internal/pkg/errs"
)

const (
	// DefaultLength is the number of digits in a generated code.
	DefaultLength = 4

	minLength = 4
	maxLength = 10
)

// ErrCodeIsNotConstructed indicates a Code was not created via Generate or CodeFromString.
var ErrCodeIsNotConstructed = errs.NewValueIsRequiredError("Code must be created via Generate or CodeFromString")

// Code is a short numeric custody-transfer code bound to one order and one
// specific transition. The zero value is invalid.
type Code struct {
	digits string
}

// Generate mints a new random code of the given number of digits using a
// cryptographically secure source. Leading zeros are preserved, so a 4-digit
// code ranges over "0000".."9999".
func Generate(length int) (Code, error) {
	if length < minLength || length > maxLength {
		return Code{}, errs.NewValueIsOutOfRangeError("code length", length, minLength, maxLength)
	}

	bound := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil)
	n, err := rand.Int(rand.Reader, bound)
	if err != nil {
		return Code{}, fmt.Errorf("generate handover code: %w", err)
	}

	return Code{digits: fmt.Sprintf("%0*d", length, n)}, nil
}

// CodeFromString reconstructs a code from its stored representation.
// Used when loading orders from persistence and when parsing operator input.
func CodeFromString(s string) (Code, error) {
	if s == "" {
		return Code{}, errs.NewValueIsRequiredError("code")
	}
	if len(s) < minLength || len(s) > maxLength {
		return Code{}, errs.NewValueIsOutOfRangeError("code length", len(s), minLength, maxLength)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return Code{}, errs.NewValueIsInvalidErrorWithCause("code",
				fmt.Errorf("%q is not numeric", s))
		}
	}
	return Code{digits: s}, nil
}

// String returns the code digits, including any leading zeros.
func (c Code) String() string {
	return c.digits
}

// Matches compares the caller-supplied input against the code in constant time.
func (c Code) Matches(input string) bool {
	if c.digits == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(c.digits), []byte(input)) == 1
}

// IsZero reports whether the code has not been minted.
func (c Code) IsZero() bool {
	return c.digits == ""
}

// Validate checks that the code was constructed through Generate or CodeFromString.
func (c Code) Validate() error {
	if c.digits == "" {
		return ErrCodeIsNotConstructed
	}
	return nil
}

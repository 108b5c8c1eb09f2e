package order

import (
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
)

// ReturnStatus tracks the nested return/refund workflow of one order. It is
// independent of the physical-return status chain: refund completion is an
// admin attestation, not a custody transfer.
type ReturnStatus int

const (
	// NoReturn means no return has been requested. This is the zero value;
	// unlike other enums in this package it is a legal stored state.
	NoReturn ReturnStatus = iota

	// ReturnPending means the customer requested a return and an admin
	// decision is outstanding.
	ReturnPending

	// ReturnApproved means an admin approved the return and the return
	// codes were minted.
	ReturnApproved

	// ReturnRejected means an admin rejected the return request.
	ReturnRejected

	// ReturnCompleted means the admin attested the refund was paid out.
	ReturnCompleted
)

func getReturnStatusStrings() map[ReturnStatus]string {
	return map[ReturnStatus]string{
		NoReturn:        "",
		ReturnPending:   "PENDING",
		ReturnApproved:  "APPROVED",
		ReturnRejected:  "REJECTED",
		ReturnCompleted: "COMPLETED",
	}
}

// String returns the wire tag of the return status; empty for NoReturn.
func (s ReturnStatus) String() string {
	if str, ok := getReturnStatusStrings()[s]; ok {
		return str
	}
	return ""
}

// Validate checks that the return status is one of the defined variants.
// NoReturn is valid: it is the state of every order without a return.
func (s ReturnStatus) Validate() error {
	if s < NoReturn || s > ReturnCompleted {
		return errs.NewValueIsInvalidErrorWithCause("return status is invalid",
			fmt.Errorf("%d is not a valid return status", s))
	}
	return nil
}

// ParseReturnStatus maps an external return status string to a ReturnStatus,
// case-insensitively. The empty string maps to NoReturn.
func ParseReturnStatus(s string) (ReturnStatus, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return NoReturn, nil
	case "PENDING":
		return ReturnPending, nil
	case "APPROVED":
		return ReturnApproved, nil
	case "REJECTED":
		return ReturnRejected, nil
	case "COMPLETED":
		return ReturnCompleted, nil
	default:
		return NoReturn, errs.NewValueIsInvalidErrorWithCause("return status is invalid",
			fmt.Errorf("%q is not a known return status", s))
	}
}

// ReturnType distinguishes what the customer wants back.
type ReturnType int

const (
	// NoReturnType is the zero value for orders without a return.
	NoReturnType ReturnType = iota

	// RefundReturn returns the goods for money.
	RefundReturn

	// ReplacementReturn exchanges the goods for a new unit.
	ReplacementReturn
)

func getReturnTypeStrings() map[ReturnType]string {
	return map[ReturnType]string{
		NoReturnType:      "",
		RefundReturn:      "REFUND",
		ReplacementReturn: "REPLACEMENT",
	}
}

// String returns the wire tag of the return type; empty for NoReturnType.
func (t ReturnType) String() string {
	if str, ok := getReturnTypeStrings()[t]; ok {
		return str
	}
	return ""
}

// Validate checks that the return type is Refund or Replacement.
func (t ReturnType) Validate() error {
	if t != RefundReturn && t != ReplacementReturn {
		return errs.NewValueIsInvalidErrorWithCause("return type is invalid",
			fmt.Errorf("%d is not a valid return type", t))
	}
	return nil
}

// ParseReturnType maps an external return type string to a ReturnType,
// case-insensitively.
func ParseReturnType(s string) (ReturnType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "REFUND":
		return RefundReturn, nil
	case "REPLACEMENT":
		return ReplacementReturn, nil
	default:
		return NoReturnType, errs.NewValueIsInvalidErrorWithCause("return type is invalid",
			fmt.Errorf("%q is not a known return type", s))
	}
}

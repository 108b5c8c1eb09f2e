package order

import (
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
)

// Source identifies which sales channel created an order. Point-of-sale
// orders are fulfilled on the spot: stock is reduced at creation and the
// order is born Delivered, skipping the packing/shipping chain.
type Source int

const (
	// UnknownSource represents an invalid or undefined source.
	UnknownSource Source = iota

	// Online orders come from the storefront checkout.
	Online

	// POS orders come from the in-store point-of-sale terminal.
	POS
)

func getSourceStrings() map[Source]string {
	return map[Source]string{
		UnknownSource: "UNKNOWN",
		Online:        "ONLINE",
		POS:           "POS",
	}
}

// String returns the channel tag of the source.
func (s Source) String() string {
	if str, ok := getSourceStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks that the source is one of the defined channels.
func (s Source) Validate() error {
	if s != Online && s != POS {
		return errs.NewValueIsInvalidErrorWithCause("source is invalid",
			fmt.Errorf("%d is not a valid source", s))
	}
	return nil
}

// ParseSource maps an external source string to a Source, case-insensitively.
func ParseSource(s string) (Source, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ONLINE":
		return Online, nil
	case "POS":
		return POS, nil
	default:
		return UnknownSource, errs.NewValueIsInvalidErrorWithCause("source is invalid",
			fmt.Errorf("%q is not a known source", s))
	}
}

// PaymentMethod is the closed set of payment instruments the engine
// recognizes. The engine treats payment amounts as opaque; the only method
// with behavioral weight is COD, which blocks delivery confirmation until
// cash collection is asserted.
type PaymentMethod int

const (
	// UnknownPayment represents an invalid or undefined payment method.
	UnknownPayment PaymentMethod = iota

	// COD is cash on delivery.
	COD

	// Card is an online or terminal card payment.
	Card

	// BankTransfer is a prepaid bank transfer.
	BankTransfer

	// Cash is an in-store cash payment (POS only).
	Cash
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		UnknownPayment: "UNKNOWN",
		COD:            "COD",
		Card:           "CARD",
		BankTransfer:   "BANK_TRANSFER",
		Cash:           "CASH",
	}
}

// String returns the wire tag of the payment method.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks that the payment method is one of the defined variants.
func (m PaymentMethod) Validate() error {
	if m <= UnknownPayment || m > Cash {
		return errs.NewValueIsInvalidErrorWithCause("payment method is invalid",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// ParsePaymentMethod maps an external payment method string to a
// PaymentMethod, case-insensitively.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	key := strings.ToUpper(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, " ", "_")

	switch key {
	case "COD", "CASH_ON_DELIVERY":
		return COD, nil
	case "CARD", "CREDIT_CARD", "DEBIT_CARD":
		return Card, nil
	case "BANK_TRANSFER":
		return BankTransfer, nil
	case "CASH":
		return Cash, nil
	default:
		return UnknownPayment, errs.NewValueIsInvalidErrorWithCause("payment method is invalid",
			fmt.Errorf("%q is not a known payment method", s))
	}
}

// IsCOD reports whether delivery confirmation requires a cash-collection assertion.
func (m PaymentMethod) IsCOD() bool {
	return m == COD
}

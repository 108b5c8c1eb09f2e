package order

import (
	"fmt"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// TransactionStatus tracks whether the order's money has moved.
type TransactionStatus int

const (
	// UnknownTransactionStatus represents an invalid or undefined status.
	UnknownTransactionStatus TransactionStatus = iota

	// TransactionPending means payment is expected but not yet collected (COD).
	TransactionPending

	// TransactionPaid means the payment was collected.
	TransactionPaid

	// TransactionRefunded means the payment was returned to the customer.
	TransactionRefunded
)

func getTransactionStatusStrings() map[TransactionStatus]string {
	return map[TransactionStatus]string{
		UnknownTransactionStatus: "UNKNOWN",
		TransactionPending:       "PENDING",
		TransactionPaid:          "PAID",
		TransactionRefunded:      "REFUNDED",
	}
}

// String returns the wire tag of the transaction status.
func (s TransactionStatus) String() string {
	if str, ok := getTransactionStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks that the transaction status is one of the defined variants.
func (s TransactionStatus) Validate() error {
	if s <= UnknownTransactionStatus || s > TransactionRefunded {
		return errs.NewValueIsInvalidErrorWithCause("transaction status is invalid",
			fmt.Errorf("%d is not a valid transaction status", s))
	}
	return nil
}

// ParseTransactionStatus maps an external transaction status string to a
// TransactionStatus, case-insensitively.
func ParseTransactionStatus(s string) (TransactionStatus, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PENDING":
		return TransactionPending, nil
	case "PAID":
		return TransactionPaid, nil
	case "REFUNDED":
		return TransactionRefunded, nil
	default:
		return UnknownTransactionStatus, errs.NewValueIsInvalidErrorWithCause("transaction status is invalid",
			fmt.Errorf("%q is not a known transaction status", s))
	}
}

// Transaction records the payment of one order. The engine treats amounts as
// opaque facts: it never charges or refunds money itself, it records what the
// acting staff attest happened.
type Transaction struct {
	id        kernel.UUID
	amount    float64
	method    PaymentMethod
	status    TransactionStatus
	createdAt time.Time

	isConstructed bool
}

// NewTransaction creates the payment record for a freshly placed order.
// COD starts Pending; every other method is Paid up front.
func NewTransaction(amount float64, method PaymentMethod) (Transaction, error) {
	status := TransactionPaid
	if method.IsCOD() {
		status = TransactionPending
	}
	return RestoreTransaction(kernel.NewUUID(), amount, method, status, time.Now().UTC())
}

// RestoreTransaction reconstructs a payment record from persistence.
func RestoreTransaction(
	id kernel.UUID,
	amount float64,
	method PaymentMethod,
	status TransactionStatus,
	createdAt time.Time,
) (Transaction, error) {
	if err := id.Validate(); err != nil {
		return Transaction{}, err
	}
	if amount < 0 {
		return Transaction{}, errs.NewValueIsInvalidErrorWithCause("transaction amount is invalid",
			fmt.Errorf("%f is negative", amount))
	}
	if err := method.Validate(); err != nil {
		return Transaction{}, err
	}
	if err := status.Validate(); err != nil {
		return Transaction{}, err
	}

	return Transaction{
		id:            id,
		amount:        amount,
		method:        method,
		status:        status,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the transaction was created through a constructor.
func (t Transaction) Validate() error {
	if !t.isConstructed {
		return errs.NewValueIsRequiredError("Transaction must be created via NewTransaction or RestoreTransaction")
	}
	return nil
}

// ID returns the transaction's unique identifier.
func (t Transaction) ID() kernel.UUID { return t.id }

// Amount returns the payment amount.
func (t Transaction) Amount() float64 { return t.amount }

// Method returns the payment method.
func (t Transaction) Method() PaymentMethod { return t.method }

// Status returns the current payment status.
func (t Transaction) Status() TransactionStatus { return t.status }

// CreatedAt returns when the payment record was created.
func (t Transaction) CreatedAt() time.Time { return t.createdAt }

// markPaid records that the money was collected (COD at the door).
func (t *Transaction) markPaid() {
	t.status = TransactionPaid
}

// markRefunded records that the money went back to the customer.
func (t *Transaction) markRefunded() {
	t.status = TransactionRefunded
}

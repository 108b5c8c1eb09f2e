package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to cancel an order before delivery.
// No actor role: customers cancel their own orders and staff cancel on their
// behalf through the same operation.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	note    string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order. The note is
// optional; the aggregate substitutes a default history note when empty.
func NewCancelOrderCommand(orderID kernel.UUID, note string) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return CancelOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.note = note
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.UUID { return c.orderID }

// Note returns the optional cancellation note.
func (c CancelOrderCommand) Note() string { return c.note }

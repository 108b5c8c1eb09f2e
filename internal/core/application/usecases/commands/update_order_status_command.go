package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents an administrative status move along the
// free edges of the lifecycle. Custody transitions are rejected here; they
// have their own verified operations.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status
	note    string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to move an order to a new
// status.
func NewUpdateOrderStatusCommand(orderID kernel.UUID, status order.Status, note string) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		status.Validate(),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	cmd.orderID = orderID
	cmd.status = status
	cmd.note = note
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to move.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }

// Status returns the requested target status.
func (c UpdateOrderStatusCommand) Status() order.Status { return c.status }

// Note returns the optional history note.
func (c UpdateOrderStatusCommand) Note() string { return c.note }

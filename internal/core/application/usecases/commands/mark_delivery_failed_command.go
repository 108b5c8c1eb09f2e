package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/staff"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrMarkDeliveryFailedCommandIsNotConstructed = errors.New(
	"MarkDeliveryFailedCommand must be created via NewMarkDeliveryFailedCommand constructor",
)

// MarkDeliveryFailedCommand represents a failed delivery attempt reported by
// the driver. The reason is mandatory; dispatch reads it to decide between a
// retry and a cancellation.
type MarkDeliveryFailedCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	reason    string
	actorRole staff.Role

	guard guard.ConstructorGuard
}

// NewMarkDeliveryFailedCommand creates a command to record a failed delivery
// attempt.
func NewMarkDeliveryFailedCommand(orderID kernel.UUID, reason string, actorRole staff.Role) (MarkDeliveryFailedCommand, error) {
	cmd := MarkDeliveryFailedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		actorRole.Validate(),
	); err != nil {
		return MarkDeliveryFailedCommand{}, err
	}
	if reason == "" {
		return MarkDeliveryFailedCommand{}, errs.NewValueIsRequiredError("reason")
	}

	cmd.orderID = orderID
	cmd.reason = reason
	cmd.actorRole = actorRole
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveryFailedCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveryFailedCommandIsNotConstructed)
}

// OrderID returns the order whose delivery attempt failed.
func (c MarkDeliveryFailedCommand) OrderID() kernel.UUID { return c.orderID }

// Reason returns the driver's explanation.
func (c MarkDeliveryFailedCommand) Reason() string { return c.reason }

// ActorRole returns the role of the staff member reporting the failure.
func (c MarkDeliveryFailedCommand) ActorRole() staff.Role { return c.actorRole }

package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/staff"
	"storefront/internal/pkg/guard"
)

var ErrUpdateRefundStatusCommandIsNotConstructed = errors.New(
	"UpdateRefundStatusCommand must be created via NewUpdateRefundStatusCommand constructor",
)

// UpdateRefundStatusCommand represents the admin attestation that the refund
// for a received return was paid out, and through which instrument.
type UpdateRefundStatusCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	refundMethod order.PaymentMethod
	actorRole    staff.Role

	guard guard.ConstructorGuard
}

// NewUpdateRefundStatusCommand creates a command to record a paid-out refund.
func NewUpdateRefundStatusCommand(
	orderID kernel.UUID,
	refundMethod order.PaymentMethod,
	actorRole staff.Role,
) (UpdateRefundStatusCommand, error) {
	cmd := UpdateRefundStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		refundMethod.Validate(),
		actorRole.Validate(),
	); err != nil {
		return UpdateRefundStatusCommand{}, err
	}

	cmd.orderID = orderID
	cmd.refundMethod = refundMethod
	cmd.actorRole = actorRole
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRefundStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRefundStatusCommandIsNotConstructed)
}

// OrderID returns the order being refunded.
func (c UpdateRefundStatusCommand) OrderID() kernel.UUID { return c.orderID }

// RefundMethod returns the instrument the money went back through.
func (c UpdateRefundStatusCommand) RefundMethod() order.PaymentMethod { return c.refundMethod }

// ActorRole returns the role of the staff member attesting the refund.
func (c UpdateRefundStatusCommand) ActorRole() staff.Role { return c.actorRole }

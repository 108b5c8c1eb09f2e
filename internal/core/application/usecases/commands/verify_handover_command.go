package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/staff"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrVerifyHandoverCommandIsNotConstructed = errors.New(
	"VerifyHandoverCommand must be created via NewVerifyHandoverCommand constructor",
)

// VerifyHandoverCommand represents the store-to-driver custody transfer: the
// shipment staff reads back the handover code the driver presents.
type VerifyHandoverCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	code      string
	actorRole staff.Role

	guard guard.ConstructorGuard
}

// NewVerifyHandoverCommand creates a command to confirm the package left the
// store with the delivery staff.
func NewVerifyHandoverCommand(orderID kernel.UUID, code string, actorRole staff.Role) (VerifyHandoverCommand, error) {
	cmd := VerifyHandoverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		actorRole.Validate(),
	); err != nil {
		return VerifyHandoverCommand{}, err
	}
	if code == "" {
		return VerifyHandoverCommand{}, errs.NewValueIsRequiredError("code")
	}

	cmd.orderID = orderID
	cmd.code = code
	cmd.actorRole = actorRole
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyHandoverCommand) Validate() error {
	return c.guard.Validate(ErrVerifyHandoverCommandIsNotConstructed)
}

// OrderID returns the order being handed over.
func (c VerifyHandoverCommand) OrderID() kernel.UUID { return c.orderID }

// Code returns the handover code presented by the delivery staff.
func (c VerifyHandoverCommand) Code() string { return c.code }

// ActorRole returns the role of the staff member confirming the handover.
func (c VerifyHandoverCommand) ActorRole() staff.Role { return c.actorRole }

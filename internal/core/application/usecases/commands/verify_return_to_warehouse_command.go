package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/staff"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrVerifyReturnToWarehouseCommandIsNotConstructed = errors.New(
	"VerifyReturnToWarehouseCommand must be created via NewVerifyReturnToWarehouseCommand constructor",
)

// VerifyReturnToWarehouseCommand represents the driver-to-warehouse custody
// transfer of a return: warehouse staff read back the return handover code
// the driver presents.
type VerifyReturnToWarehouseCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	code      string
	actorRole staff.Role

	guard guard.ConstructorGuard
}

// NewVerifyReturnToWarehouseCommand creates a command to confirm the return
// arrived at the warehouse.
func NewVerifyReturnToWarehouseCommand(
	orderID kernel.UUID,
	code string,
	actorRole staff.Role,
) (VerifyReturnToWarehouseCommand, error) {
	cmd := VerifyReturnToWarehouseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		actorRole.Validate(),
	); err != nil {
		return VerifyReturnToWarehouseCommand{}, err
	}
	if code == "" {
		return VerifyReturnToWarehouseCommand{}, errs.NewValueIsRequiredError("code")
	}

	cmd.orderID = orderID
	cmd.code = code
	cmd.actorRole = actorRole
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyReturnToWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrVerifyReturnToWarehouseCommandIsNotConstructed)
}

// OrderID returns the order whose return is being received.
func (c VerifyReturnToWarehouseCommand) OrderID() kernel.UUID { return c.orderID }

// Code returns the return handover code presented by the driver.
func (c VerifyReturnToWarehouseCommand) Code() string { return c.code }

// ActorRole returns the role of the staff member receiving the return.
func (c VerifyReturnToWarehouseCommand) ActorRole() staff.Role { return c.actorRole }

package commands

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/staff"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrUpdateReturnStatusCommandIsNotConstructed = errors.New(
	"UpdateReturnStatusCommand must be created via NewUpdateReturnStatusCommand constructor",
)

// UpdateReturnStatusCommand represents the admin decision on a pending return
// request: approve or reject.
type UpdateReturnStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	decision  order.ReturnStatus
	note      string
	actorRole staff.Role

	guard guard.ConstructorGuard
}

// NewUpdateReturnStatusCommand creates a command carrying the admin decision.
// Only ReturnApproved and ReturnRejected are accepted as decisions.
func NewUpdateReturnStatusCommand(
	orderID kernel.UUID,
	decision order.ReturnStatus,
	note string,
	actorRole staff.Role,
) (UpdateReturnStatusCommand, error) {
	cmd := UpdateReturnStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		actorRole.Validate(),
	); err != nil {
		return UpdateReturnStatusCommand{}, err
	}
	if decision != order.ReturnApproved && decision != order.ReturnRejected {
		return UpdateReturnStatusCommand{}, errs.NewValueIsInvalidErrorWithCause("return status is invalid",
			fmt.Errorf("%q is not a return decision", decision))
	}

	cmd.orderID = orderID
	cmd.decision = decision
	cmd.note = note
	cmd.actorRole = actorRole
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateReturnStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateReturnStatusCommandIsNotConstructed)
}

// OrderID returns the order whose return request is being decided.
func (c UpdateReturnStatusCommand) OrderID() kernel.UUID { return c.orderID }

// Decision returns the admin decision: ReturnApproved or ReturnRejected.
func (c UpdateReturnStatusCommand) Decision() order.ReturnStatus { return c.decision }

// Note returns the optional note recorded with a rejection.
func (c UpdateReturnStatusCommand) Note() string { return c.note }

// ActorRole returns the role of the staff member deciding.
func (c UpdateReturnStatusCommand) ActorRole() staff.Role { return c.actorRole }

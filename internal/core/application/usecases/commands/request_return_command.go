package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrRequestReturnCommandIsNotConstructed = errors.New(
	"RequestReturnCommand must be created via NewRequestReturnCommand constructor",
)

// RequestReturnCommand represents a customer asking to return a delivered
// order. No actor role: the request comes from the customer.
type RequestReturnCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	returnType order.ReturnType
	reason     string

	guard guard.ConstructorGuard
}

// NewRequestReturnCommand creates a command to open a return request.
func NewRequestReturnCommand(orderID kernel.UUID, returnType order.ReturnType, reason string) (RequestReturnCommand, error) {
	cmd := RequestReturnCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		returnType.Validate(),
	); err != nil {
		return RequestReturnCommand{}, err
	}
	if reason == "" {
		return RequestReturnCommand{}, errs.NewValueIsRequiredError("reason")
	}

	cmd.orderID = orderID
	cmd.returnType = returnType
	cmd.reason = reason
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestReturnCommand) Validate() error {
	return c.guard.Validate(ErrRequestReturnCommandIsNotConstructed)
}

// OrderID returns the order the customer wants to return.
func (c RequestReturnCommand) OrderID() kernel.UUID { return c.orderID }

// ReturnType returns whether the customer wants a refund or a replacement.
func (c RequestReturnCommand) ReturnType() order.ReturnType { return c.returnType }

// Reason returns the customer's explanation.
func (c RequestReturnCommand) Reason() string { return c.reason }

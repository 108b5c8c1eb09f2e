package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/staff"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrRestockProductCommandIsNotConstructed = errors.New(
	"RestockProductCommand must be created via NewRestockProductCommand constructor",
)

// RestockProductCommand represents a supplier delivery adding stock to a
// product. The quantity is a positive increment, not a new total.
type RestockProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	quantity  int
	actorRole staff.Role

	guard guard.ConstructorGuard
}

// NewRestockProductCommand creates a command to add stock to a product.
func NewRestockProductCommand(productID kernel.UUID, quantity int, actorRole staff.Role) (RestockProductCommand, error) {
	cmd := RestockProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productID.Validate(),
		actorRole.Validate(),
	); err != nil {
		return RestockProductCommand{}, err
	}
	if quantity <= 0 {
		return RestockProductCommand{}, errs.NewValueIsInvalidError("quantity must be greater than 0")
	}

	cmd.productID = productID
	cmd.quantity = quantity
	cmd.actorRole = actorRole
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RestockProductCommand) Validate() error {
	return c.guard.Validate(ErrRestockProductCommandIsNotConstructed)
}

// ProductID returns the product being restocked.
func (c RestockProductCommand) ProductID() kernel.UUID { return c.productID }

// Quantity returns the positive stock increment.
func (c RestockProductCommand) Quantity() int { return c.quantity }

// ActorRole returns the role of the staff member restocking.
func (c RestockProductCommand) ActorRole() staff.Role { return c.actorRole }

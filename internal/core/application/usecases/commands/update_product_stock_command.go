package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/staff"
	"storefront/internal/pkg/guard"
)

var ErrUpdateProductStockCommandIsNotConstructed = errors.New(
	"UpdateProductStockCommand must be created via NewUpdateProductStockCommand constructor",
)

// UpdateProductStockCommand represents an administrative stock override after
// a physical count. The quantity is the new absolute total.
type UpdateProductStockCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	quantity  int
	actorRole staff.Role

	guard guard.ConstructorGuard
}

// NewUpdateProductStockCommand creates a command to override a product's
// on-hand quantity.
func NewUpdateProductStockCommand(productID kernel.UUID, quantity int, actorRole staff.Role) (UpdateProductStockCommand, error) {
	cmd := UpdateProductStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productID.Validate(),
		actorRole.Validate(),
	); err != nil {
		return UpdateProductStockCommand{}, err
	}

	cmd.productID = productID
	cmd.quantity = quantity
	cmd.actorRole = actorRole
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductStockCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductStockCommandIsNotConstructed)
}

// ProductID returns the product whose stock is being overridden.
func (c UpdateProductStockCommand) ProductID() kernel.UUID { return c.productID }

// Quantity returns the new absolute on-hand count.
func (c UpdateProductStockCommand) Quantity() int { return c.quantity }

// ActorRole returns the role of the staff member overriding.
func (c UpdateProductStockCommand) ActorRole() staff.Role { return c.actorRole }

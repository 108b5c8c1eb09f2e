package commands

import (
	"errors"

	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/staff"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents adding a new product to the catalog. The
// opening quantity becomes the product's INITIAL_STOCK ledger row.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	name         string
	price        float64
	quantity     int
	returnPolicy product.ReturnPolicy
	actorRole    staff.Role

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a catalog product.
func NewCreateProductCommand(
	name string,
	price float64,
	quantity int,
	returnPolicy product.ReturnPolicy,
	actorRole staff.Role,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		returnPolicy.Validate(),
		actorRole.Validate(),
	); err != nil {
		return CreateProductCommand{}, err
	}
	if name == "" {
		return CreateProductCommand{}, errs.NewValueIsRequiredError("name")
	}

	cmd.name = name
	cmd.price = price
	cmd.quantity = quantity
	cmd.returnPolicy = returnPolicy
	cmd.actorRole = actorRole
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Name returns the product name.
func (c CreateProductCommand) Name() string { return c.name }

// Price returns the sale price.
func (c CreateProductCommand) Price() float64 { return c.price }

// Quantity returns the opening on-hand count.
func (c CreateProductCommand) Quantity() int { return c.quantity }

// ReturnPolicy returns the product's return policy.
func (c CreateProductCommand) ReturnPolicy() product.ReturnPolicy { return c.returnPolicy }

// ActorRole returns the role of the staff member creating the product.
func (c CreateProductCommand) ActorRole() staff.Role { return c.actorRole }

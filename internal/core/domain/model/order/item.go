package order

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"
)

// ErrItemIsNotConstructed indicates an Item was not created via NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is one order line. Name, price, and return policy are snapshots taken
// at order creation and immune to later product edits. The product reference
// is weak: it becomes nil if the product is later deleted, and the snapshot
// keeps the line meaningful.
type Item struct {
	id           kernel.UUID
	productID    *kernel.UUID
	name         string
	price        float64
	quantity     int
	returnPolicy product.ReturnPolicy

	isConstructed bool
}

// NewItem creates an order line snapshotting the product's current name,
// price, and return policy.
func NewItem(
	productID kernel.UUID,
	name string,
	price float64,
	quantity int,
	returnPolicy product.ReturnPolicy,
) (Item, error) {
	return RestoreItem(kernel.NewUUID(), &productID, name, price, quantity, returnPolicy)
}

// RestoreItem reconstructs an order line from persistence. The product
// reference may be nil when the product was deleted after the order was
// placed.
func RestoreItem(
	id kernel.UUID,
	productID *kernel.UUID,
	name string,
	price float64,
	quantity int,
	returnPolicy product.ReturnPolicy,
) (Item, error) {
	if err := id.Validate(); err != nil {
		return Item{}, err
	}
	if productID != nil {
		if err := productID.Validate(); err != nil {
			return Item{}, err
		}
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if price < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("item price is invalid",
			fmt.Errorf("%f is negative", price))
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("item quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if err := returnPolicy.Validate(); err != nil {
		return Item{}, err
	}

	return Item{
		id:            id,
		productID:     productID,
		name:          name,
		price:         price,
		quantity:      quantity,
		returnPolicy:  returnPolicy,
		isConstructed: true,
	}, nil
}

// Validate ensures the item was created through NewItem or RestoreItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (i Item) ID() kernel.UUID { return i.id }

// ProductID returns the weak product reference; nil if the product was deleted.
func (i Item) ProductID() *kernel.UUID { return i.productID }

// Name returns the product name snapshotted at order creation.
func (i Item) Name() string { return i.name }

// Price returns the unit price snapshotted at order creation.
func (i Item) Price() float64 { return i.price }

// Quantity returns the ordered quantity.
func (i Item) Quantity() int { return i.quantity }

// ReturnPolicy returns the policy snapshotted at order creation.
func (i Item) ReturnPolicy() product.ReturnPolicy { return i.returnPolicy }

// IsReturnable reports whether this line permits a return.
func (i Item) IsReturnable() bool {
	return i.returnPolicy != product.NoReturnAllowed
}

// Package product contains the product aggregate. Its quantity is the
// authoritative on-hand count; the inStock flag is derived from it on every
// write and never set independently. All quantity changes go through the
// stock ledger (see services.StockLedger), which produces the matching
// inventory entries.
package product

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Product is a catalog item with an authoritative on-hand quantity.
//
// Invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Price must not be negative
//   - inStock is always quantity > 0
//   - Quantity is only changed through ApplyChange / SetQuantity, which keep
//     inStock consistent and report the delta for the ledger
type Product struct {
	id           kernel.UUID
	name         string
	price        float64
	quantity     int
	inStock      bool
	returnPolicy ReturnPolicy

	isConstructed bool
}

// NewProduct creates a product with its initial on-hand quantity.
// The caller is responsible for writing the INITIAL_STOCK ledger entry.
func NewProduct(id kernel.UUID, name string, price float64, quantity int, returnPolicy ReturnPolicy) (*Product, error) {
	p := &Product{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setReturnPolicy(returnPolicy),
	); err != nil {
		return nil, err
	}

	p.quantity = quantity
	p.inStock = quantity > 0
	return p, nil
}

// RestoreProduct reconstructs a product from persistence. The stored inStock
// flag is ignored and re-derived from quantity.
func RestoreProduct(id kernel.UUID, name string, price float64, quantity int, returnPolicy ReturnPolicy) (*Product, error) {
	return NewProduct(id, name, price, quantity, returnPolicy)
}

// Validate ensures the product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID { return p.id }

// Name returns the product name.
func (p *Product) Name() string { return p.name }

// Price returns the current sale price.
func (p *Product) Price() float64 { return p.price }

// Quantity returns the authoritative on-hand count. It may be negative when
// overselling is permitted.
func (p *Product) Quantity() int { return p.quantity }

// InStock reports whether any stock is on hand. Always derived from quantity.
func (p *Product) InStock() bool { return p.inStock }

// ReturnPolicy returns the product's current return policy. Order lines
// snapshot it at order creation.
func (p *Product) ReturnPolicy() ReturnPolicy { return p.returnPolicy }

// ApplyChange adjusts the on-hand quantity by a signed delta and re-derives
// inStock. When allowNegative is false a reduction below zero is refused and
// the product is left unchanged.
//
// Returns the quantity before the change so the caller can build the ledger
// entry.
func (p *Product) ApplyChange(delta int, allowNegative bool) (int, error) {
	old := p.quantity
	next := old + delta

	if next < 0 && !allowNegative {
		return old, errs.NewPreconditionUnmetErrorWithCause("stock",
			fmt.Errorf("%s has %d on hand, change of %d would oversell", p.name, old, delta))
	}

	p.quantity = next
	p.inStock = next > 0
	return old, nil
}

// SetQuantity overrides the on-hand quantity to an absolute value
// (administrative adjustment) and re-derives inStock.
//
// Returns the quantity before the change so the caller can build the ledger
// entry.
func (p *Product) SetQuantity(quantity int) int {
	old := p.quantity
	p.quantity = quantity
	p.inStock = quantity > 0
	return old
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setReturnPolicy(policy ReturnPolicy) error {
	if err := policy.Validate(); err != nil {
		return err
	}
	p.returnPolicy = policy
	return nil
}

func (p *Product) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("%f is negative", price))
	}
	p.price = price
	return nil
}

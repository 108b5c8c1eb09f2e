package order

import (
	"storefront/internal/pkg/errs"
)

// Customer is the contact and shipping snapshot captured at order creation.
// Orders do not reference a user account: walk-in POS customers may have
// nothing but a name.
type Customer struct {
	name            string
	email           string
	phone           string
	shippingAddress string

	isConstructed bool
}

// NewCustomer creates a customer snapshot. Name is always required; a
// shipping address is required for online orders and validated by the order
// constructor.
func NewCustomer(name, email, phone, shippingAddress string) (Customer, error) {
	if name == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer name")
	}

	return Customer{
		name:            name,
		email:           email,
		phone:           phone,
		shippingAddress: shippingAddress,
		isConstructed:   true,
	}, nil
}

// Validate ensures the customer was created through NewCustomer.
func (c Customer) Validate() error {
	if !c.isConstructed {
		return errs.NewValueIsRequiredError("Customer must be created via NewCustomer")
	}
	return nil
}

// Name returns the customer's name.
func (c Customer) Name() string { return c.name }

// Email returns the customer's email; may be empty.
func (c Customer) Email() string { return c.email }

// Phone returns the customer's phone number; may be empty.
func (c Customer) Phone() string { return c.phone }

// ShippingAddress returns the delivery address; empty for POS orders.
func (c Customer) ShippingAddress() string { return c.shippingAddress }

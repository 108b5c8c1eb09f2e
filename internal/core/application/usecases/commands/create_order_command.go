package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/staff"
	"storefront/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
	ErrOrderLinesAreRequired  = errors.New("at least one order line is required")
	ErrLineQuantityIsInvalid  = errors.New("line quantity must be greater than 0")
)

// OrderLine is one requested line of a new order: which product and how many.
// Name, price, and return policy are not part of the request; they are
// snapshotted from the product inside the handler's transaction.
type OrderLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a request to place a new order, from either
// the storefront checkout (Online) or the in-store terminal (POS).
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    order.Online, staff.Admin,
//	    "Dana Reyes", "dana@example.com", "+15550100", "12 Harbor Street",
//	    []OrderLine{{ProductID: productID, Quantity: 2}},
//	    34.50, 2.50, 5.00, 0, order.COD,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	source          order.Source
	actorRole       staff.Role
	customerName    string
	customerEmail   string
	customerPhone   string
	shippingAddress string
	lines           []OrderLine
	total           float64
	taxAmount       float64
	shippingCost    float64
	discountAmount  float64
	paymentMethod   order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order. Validates the
// channel, the customer name, the lines, and the payment method; the deeper
// source-specific rules (shipping address, COD availability) live in the
// order aggregate.
func NewCreateOrderCommand(
	source order.Source,
	actorRole staff.Role,
	customerName, customerEmail, customerPhone, shippingAddress string,
	lines []OrderLine,
	total, taxAmount, shippingCost, discountAmount float64,
	paymentMethod order.PaymentMethod,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSource(source),
		cmd.setActorRole(source, actorRole),
		cmd.setCustomer(customerName, customerEmail, customerPhone, shippingAddress),
		cmd.setLines(lines),
		cmd.setCharges(total, taxAmount, shippingCost, discountAmount),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Source returns the sales channel the order comes from.
func (c CreateOrderCommand) Source() order.Source { return c.source }

// ActorRole returns the role of the staff member placing the order.
// UnknownRole for online orders, which the customer places themselves.
func (c CreateOrderCommand) ActorRole() staff.Role { return c.actorRole }

// CustomerName returns the customer's name.
func (c CreateOrderCommand) CustomerName() string { return c.customerName }

// CustomerEmail returns the customer's email.
func (c CreateOrderCommand) CustomerEmail() string { return c.customerEmail }

// CustomerPhone returns the customer's phone number.
func (c CreateOrderCommand) CustomerPhone() string { return c.customerPhone }

// ShippingAddress returns the delivery address.
func (c CreateOrderCommand) ShippingAddress() string { return c.shippingAddress }

// Lines returns the requested order lines.
func (c CreateOrderCommand) Lines() []OrderLine { return c.lines }

// Total returns the order total.
func (c CreateOrderCommand) Total() float64 { return c.total }

// TaxAmount returns the tax portion of the total.
func (c CreateOrderCommand) TaxAmount() float64 { return c.taxAmount }

// ShippingCost returns the shipping portion of the total.
func (c CreateOrderCommand) ShippingCost() float64 { return c.shippingCost }

// DiscountAmount returns the discount applied to the order.
func (c CreateOrderCommand) DiscountAmount() float64 { return c.discountAmount }

// PaymentMethod returns the payment instrument.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod { return c.paymentMethod }

func (c *CreateOrderCommand) setSource(source order.Source) error {
	if err := source.Validate(); err != nil {
		return err
	}
	c.source = source
	return nil
}

func (c *CreateOrderCommand) setActorRole(source order.Source, actorRole staff.Role) error {
	// Online orders are placed by the customer; no staff role involved.
	if source == order.POS {
		if err := actorRole.Validate(); err != nil {
			return err
		}
	}
	c.actorRole = actorRole
	return nil
}

func (c *CreateOrderCommand) setCustomer(name, email, phone, address string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}
	c.customerName = name
	c.customerEmail = email
	c.customerPhone = phone
	c.shippingAddress = address
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}
	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return err
		}
		if line.Quantity <= 0 {
			return ErrLineQuantityIsInvalid
		}
	}
	c.lines = lines
	return nil
}

func (c *CreateOrderCommand) setCharges(total, taxAmount, shippingCost, discountAmount float64) error {
	c.total = total
	c.taxAmount = taxAmount
	c.shippingCost = shippingCost
	c.discountAmount = discountAmount
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.paymentMethod = method
	return nil
}

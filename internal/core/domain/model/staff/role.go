// Package staff defines the closed set of operator roles and the capability
// checks that gate engine operations. Roles replace free-text role strings:
// every command carries the acting role, and handlers refuse operations the
// role is not entitled to perform.
package staff

import (
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
)

// Role identifies the kind of operator invoking an engine operation.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	UnknownRole Role = iota

	// Admin operates the back-office console: approves returns and refunds,
	// creates products, and adjusts stock.
	Admin

	// Shipment packs orders and hands them over to delivery staff.
	Shipment

	// Delivery carries orders to customers and collects delivery OTPs.
	Delivery

	// Warehouse receives returned goods back into stock.
	Warehouse

	// POS operates the in-store point-of-sale terminal.
	POS
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "Unknown",
		Admin:       "Admin",
		Shipment:    "Shipment",
		Delivery:    "Delivery",
		Warehouse:   "Warehouse",
		POS:         "POS",
	}
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// Validate checks that the role is one of the defined variants.
func (r Role) Validate() error {
	if r <= UnknownRole || r > POS {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// ParseRole maps an external role string to a Role, case-insensitively.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return Admin, nil
	case "shipment", "shipper":
		return Shipment, nil
	case "delivery", "courier":
		return Delivery, nil
	case "warehouse", "receiver":
		return Warehouse, nil
	case "pos":
		return POS, nil
	default:
		return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%q is not a known role", s))
	}
}

// CanManageReturns reports whether the role may approve or reject return
// requests and complete refunds.
func (r Role) CanManageReturns() bool {
	return r == Admin
}

// CanManageStock reports whether the role may create products, restock, or
// issue administrative stock adjustments.
func (r Role) CanManageStock() bool {
	return r == Admin
}

// CanPackOrders reports whether the role may assign orders to delivery staff
// and verify the packing handover.
func (r Role) CanPackOrders() bool {
	return r == Shipment || r == Admin
}

// CanDeliverOrders reports whether the role may verify delivery OTPs and mark
// deliveries failed.
func (r Role) CanDeliverOrders() bool {
	return r == Delivery || r == Admin
}

// CanReceiveReturns reports whether the role may verify goods returned to the
// warehouse.
func (r Role) CanReceiveReturns() bool {
	return r == Warehouse || r == Admin
}

// CanSellInStore reports whether the role may create point-of-sale orders.
func (r Role) CanSellInStore() bool {
	return r == POS || r == Admin
}

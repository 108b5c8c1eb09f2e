package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/staff"
	"storefront/internal/pkg/guard"
)

var ErrAssignOrderToDeliveryCommandIsNotConstructed = errors.New(
	"AssignOrderToDeliveryCommand must be created via NewAssignOrderToDeliveryCommand constructor",
)

// AssignOrderToDeliveryCommand represents the packing step: the order is
// picked from the shelf, stock is reduced, both staff members are assigned,
// and the handover code is minted.
type AssignOrderToDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	shipmentStaffID kernel.UUID
	deliveryStaffID kernel.UUID
	actorRole       staff.Role

	guard guard.ConstructorGuard
}

// NewAssignOrderToDeliveryCommand creates a command to pack an order and
// assign it for delivery.
func NewAssignOrderToDeliveryCommand(
	orderID, shipmentStaffID, deliveryStaffID kernel.UUID,
	actorRole staff.Role,
) (AssignOrderToDeliveryCommand, error) {
	cmd := AssignOrderToDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		shipmentStaffID.Validate(),
		deliveryStaffID.Validate(),
		actorRole.Validate(),
	); err != nil {
		return AssignOrderToDeliveryCommand{}, err
	}

	cmd.orderID = orderID
	cmd.shipmentStaffID = shipmentStaffID
	cmd.deliveryStaffID = deliveryStaffID
	cmd.actorRole = actorRole
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderToDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderToDeliveryCommandIsNotConstructed)
}

// OrderID returns the order to pack.
func (c AssignOrderToDeliveryCommand) OrderID() kernel.UUID { return c.orderID }

// ShipmentStaffID returns the staff member doing the packing.
func (c AssignOrderToDeliveryCommand) ShipmentStaffID() kernel.UUID { return c.shipmentStaffID }

// DeliveryStaffID returns the staff member who will carry the package.
func (c AssignOrderToDeliveryCommand) DeliveryStaffID() kernel.UUID { return c.deliveryStaffID }

// ActorRole returns the role of the staff member issuing the command.
func (c AssignOrderToDeliveryCommand) ActorRole() staff.Role { return c.actorRole }

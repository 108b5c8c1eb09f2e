package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/staff"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrVerifyReturnCollectionCommandIsNotConstructed = errors.New(
	"VerifyReturnCollectionCommand must be created via NewVerifyReturnCollectionCommand constructor",
)

// VerifyReturnCollectionCommand represents the customer-to-driver custody
// transfer of a return: the driver enters the return OTP the customer
// received on approval, optionally attaching a photo of the goods.
type VerifyReturnCollectionCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	otp       string
	imagePath string
	actorRole staff.Role

	guard guard.ConstructorGuard
}

// NewVerifyReturnCollectionCommand creates a command to confirm the return
// was collected from the customer.
func NewVerifyReturnCollectionCommand(
	orderID kernel.UUID,
	otp, imagePath string,
	actorRole staff.Role,
) (VerifyReturnCollectionCommand, error) {
	cmd := VerifyReturnCollectionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		actorRole.Validate(),
	); err != nil {
		return VerifyReturnCollectionCommand{}, err
	}
	if otp == "" {
		return VerifyReturnCollectionCommand{}, errs.NewValueIsRequiredError("otp")
	}

	cmd.orderID = orderID
	cmd.otp = otp
	cmd.imagePath = imagePath
	cmd.actorRole = actorRole
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyReturnCollectionCommand) Validate() error {
	return c.guard.Validate(ErrVerifyReturnCollectionCommandIsNotConstructed)
}

// OrderID returns the order whose return is being collected.
func (c VerifyReturnCollectionCommand) OrderID() kernel.UUID { return c.orderID }

// OTP returns the code the customer gave the driver.
func (c VerifyReturnCollectionCommand) OTP() string { return c.otp }

// ImagePath returns the stored path of the collected-goods photo, if any.
func (c VerifyReturnCollectionCommand) ImagePath() string { return c.imagePath }

// ActorRole returns the role of the staff member collecting the return.
func (c VerifyReturnCollectionCommand) ActorRole() staff.Role { return c.actorRole }

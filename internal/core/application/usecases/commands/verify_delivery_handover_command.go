package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/staff"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrVerifyDeliveryHandoverCommandIsNotConstructed = errors.New(
	"VerifyDeliveryHandoverCommand must be created via NewVerifyDeliveryHandoverCommand constructor",
)

// VerifyDeliveryHandoverCommand represents the driver-to-customer custody
// transfer: the driver enters the OTP the customer received at checkout,
// attests payment collection for COD, and attaches the proof photo.
type VerifyDeliveryHandoverCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	otp              string
	paymentCollected bool
	imagePath        string
	actorRole        staff.Role

	guard guard.ConstructorGuard
}

// NewVerifyDeliveryHandoverCommand creates a command to confirm delivery to
// the customer.
func NewVerifyDeliveryHandoverCommand(
	orderID kernel.UUID,
	otp string,
	paymentCollected bool,
	imagePath string,
	actorRole staff.Role,
) (VerifyDeliveryHandoverCommand, error) {
	cmd := VerifyDeliveryHandoverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		actorRole.Validate(),
	); err != nil {
		return VerifyDeliveryHandoverCommand{}, err
	}
	if otp == "" {
		return VerifyDeliveryHandoverCommand{}, errs.NewValueIsRequiredError("otp")
	}

	cmd.orderID = orderID
	cmd.otp = otp
	cmd.paymentCollected = paymentCollected
	cmd.imagePath = imagePath
	cmd.actorRole = actorRole
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyDeliveryHandoverCommand) Validate() error {
	return c.guard.Validate(ErrVerifyDeliveryHandoverCommandIsNotConstructed)
}

// OrderID returns the order being delivered.
func (c VerifyDeliveryHandoverCommand) OrderID() kernel.UUID { return c.orderID }

// OTP returns the code the customer gave the driver.
func (c VerifyDeliveryHandoverCommand) OTP() string { return c.otp }

// PaymentCollected reports whether the driver attested collecting the COD
// amount. Ignored for prepaid orders.
func (c VerifyDeliveryHandoverCommand) PaymentCollected() bool { return c.paymentCollected }

// ImagePath returns the stored path of the proof-of-delivery photo, if any.
func (c VerifyDeliveryHandoverCommand) ImagePath() string { return c.imagePath }

// ActorRole returns the role of the staff member confirming the delivery.
func (c VerifyDeliveryHandoverCommand) ActorRole() staff.Role { return c.actorRole }

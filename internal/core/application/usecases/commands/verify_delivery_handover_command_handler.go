package commands

import (
	"context"
)

// VerifyDeliveryHandoverCommandHandler confirms delivery to the customer.
// The COD and photo preconditions are checked before the OTP so a driver
// with the right code but missing attestations gets the actionable error.
type VerifyDeliveryHandoverCommandHandler struct {
	uowFactory   OrderUoWFactory
	requirePhoto bool
}

// NewVerifyDeliveryHandoverCommandHandler creates a handler for the delivery
// confirmation. requirePhoto makes the proof photo mandatory deployment-wide.
func NewVerifyDeliveryHandoverCommandHandler(uowFactory OrderUoWFactory, requirePhoto bool) VerifyDeliveryHandoverCommandHandler {
	return VerifyDeliveryHandoverCommandHandler{
		uowFactory:   uowFactory,
		requirePhoto: requirePhoto,
	}
}

// Handle processes the delivery confirmation command.
func (h VerifyDeliveryHandoverCommandHandler) Handle(ctx context.Context, cmd VerifyDeliveryHandoverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := requireRole(cmd.ActorRole().CanDeliverOrders(), cmd.ActorRole(), "confirm deliveries"); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err := aggregate.ConfirmDelivery(cmd.OTP(), cmd.PaymentCollected(), cmd.ImagePath(), h.requirePhoto); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
)

// VerifyHandoverCommandHandler confirms the store-to-driver custody transfer.
// A matching code moves the order to Shipped; a mismatch leaves the order
// untouched and the code valid for another attempt.
type VerifyHandoverCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewVerifyHandoverCommandHandler creates a handler for the handover check.
func NewVerifyHandoverCommandHandler(uowFactory OrderUoWFactory) VerifyHandoverCommandHandler {
	return VerifyHandoverCommandHandler{uowFactory: uowFactory}
}

// Handle processes the handover verification command.
func (h VerifyHandoverCommandHandler) Handle(ctx context.Context, cmd VerifyHandoverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := requireRole(cmd.ActorRole().CanPackOrders(), cmd.ActorRole(), "verify handovers"); err != nil {
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

	if err := aggregate.VerifyHandover(cmd.Code()); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

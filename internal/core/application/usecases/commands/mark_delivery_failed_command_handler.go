package commands

import (
	"context"
)

// MarkDeliveryFailedCommandHandler records a failed delivery attempt. The
// order stays stock-committed: the goods are still in the driver's bag, not
// back on the shelf.
type MarkDeliveryFailedCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkDeliveryFailedCommandHandler creates a handler for delivery failures.
func NewMarkDeliveryFailedCommandHandler(uowFactory OrderUoWFactory) MarkDeliveryFailedCommandHandler {
	return MarkDeliveryFailedCommandHandler{uowFactory: uowFactory}
}

// Handle processes the delivery failure command.
func (h MarkDeliveryFailedCommandHandler) Handle(ctx context.Context, cmd MarkDeliveryFailedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := requireRole(cmd.ActorRole().CanDeliverOrders(), cmd.ActorRole(), "report delivery failures"); err != nil {
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

	if err := aggregate.MarkDeliveryFailed(cmd.Reason()); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

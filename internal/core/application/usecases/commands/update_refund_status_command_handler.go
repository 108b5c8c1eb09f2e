package commands

import (
	"context"
)

// UpdateRefundStatusCommandHandler records the refund payout for an order
// with a return on file. The payout may land at any point of the return
// chain; the order reaches the terminal Refunded status once the goods are
// back at the warehouse.
type UpdateRefundStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateRefundStatusCommandHandler creates a handler for refund payouts.
func NewUpdateRefundStatusCommandHandler(uowFactory OrderUoWFactory) UpdateRefundStatusCommandHandler {
	return UpdateRefundStatusCommandHandler{uowFactory: uowFactory}
}

// Handle processes the refund payout command.
func (h UpdateRefundStatusCommandHandler) Handle(ctx context.Context, cmd UpdateRefundStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := requireRole(cmd.ActorRole().CanManageReturns(), cmd.ActorRole(), "record refunds"); err != nil {
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

	if err := aggregate.CompleteRefund(cmd.RefundMethod()); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

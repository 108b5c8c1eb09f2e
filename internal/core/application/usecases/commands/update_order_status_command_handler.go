package commands

import (
	"context"

	"storefront/internal/core/domain/services"
)

// UpdateOrderStatusCommandHandler moves an order along a free edge of the
// lifecycle. Free edges include the move to Cancelled, so the handler still
// applies the stock effect of the transition.
type UpdateOrderStatusCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	ledger     services.StockLedger
}

// NewUpdateOrderStatusCommandHandler creates a handler for administrative
// status moves.
func NewUpdateOrderStatusCommandHandler(uowFactory FulfillmentUoWFactory, ledger services.StockLedger) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
	}
}

// Handle processes the status move command.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
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

	from := aggregate.Status()
	if err := aggregate.UpdateStatus(cmd.Status(), cmd.Note()); err != nil {
		return err
	}

	if err := applyStockEffect(ctx, uow, h.ledger, aggregate, from, aggregate.Status()); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

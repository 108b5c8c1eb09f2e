package commands

import (
	"context"

	"storefront/internal/core/domain/services"
)

// CancelOrderCommandHandler cancels an order. When the order was already
// stock-committed the cancellation restocks every line with a CANCELLED_ORDER
// ledger row; a cancellation before packing touches no stock.
type CancelOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	ledger     services.StockLedger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory FulfillmentUoWFactory, ledger services.StockLedger) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
	}
}

// Handle processes the cancellation command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	if err := aggregate.Cancel(cmd.Note()); err != nil {
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

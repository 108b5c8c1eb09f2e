package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
)

// AssignOrderToDeliveryCommandHandler packs an order: status to Packed, one
// reducing ONLINE_SALE_PACKED ledger row per line, handover code minted.
// Order write, product writes, and ledger rows share one transaction.
//
// A retried packing request is answered with success and changes nothing:
// the status guard inside the transaction is what prevents a double stock
// reduction from a racing or re-sent request.
type AssignOrderToDeliveryCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	ledger     services.StockLedger
	codeLength int
}

// NewAssignOrderToDeliveryCommandHandler creates a handler for the packing
// operation. codeLength is the number of digits in the minted handover code.
func NewAssignOrderToDeliveryCommandHandler(
	uowFactory FulfillmentUoWFactory,
	ledger services.StockLedger,
	codeLength int,
) AssignOrderToDeliveryCommandHandler {
	return AssignOrderToDeliveryCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
		codeLength: codeLength,
	}
}

// Handle processes the packing command.
func (h AssignOrderToDeliveryCommandHandler) Handle(ctx context.Context, cmd AssignOrderToDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := requireRole(cmd.ActorRole().CanPackOrders(), cmd.ActorRole(), "pack orders"); err != nil {
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
	err = aggregate.Pack(cmd.ShipmentStaffID(), cmd.DeliveryStaffID(), h.codeLength)
	if errors.Is(err, order.ErrOrderAlreadyPacked) {
		// Retried request: the first packing already reduced the stock.
		return nil
	}
	if err != nil {
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

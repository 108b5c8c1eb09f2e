package commands

import (
	"context"

	"storefront/internal/core/domain/services"
)

// VerifyReturnToWarehouseCommandHandler confirms the returned goods arrived
// at the warehouse. This is where the return restocks: one RETURN ledger row
// per line, in the same transaction as the status move. Lines
// whose product was deleted in the meantime are skipped.
type VerifyReturnToWarehouseCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	ledger     services.StockLedger
}

// NewVerifyReturnToWarehouseCommandHandler creates a handler for the
// warehouse receipt check.
func NewVerifyReturnToWarehouseCommandHandler(
	uowFactory FulfillmentUoWFactory,
	ledger services.StockLedger,
) VerifyReturnToWarehouseCommandHandler {
	return VerifyReturnToWarehouseCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
	}
}

// Handle processes the warehouse receipt command.
func (h VerifyReturnToWarehouseCommandHandler) Handle(ctx context.Context, cmd VerifyReturnToWarehouseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := requireRole(cmd.ActorRole().CanReceiveReturns(), cmd.ActorRole(), "receive returns"); err != nil {
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
	if err := aggregate.VerifyReturnToWarehouse(cmd.Code()); err != nil {
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

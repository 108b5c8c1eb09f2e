package commands

import (
	"context"

	"storefront/internal/core/domain/services"
)

// UpdateProductStockCommandHandler overrides a product's on-hand quantity
// after a physical count. The ADJUSTMENT ledger row records the signed
// difference, so the sum invariant survives the override. A row is written
// even when the count confirms the stored quantity.
type UpdateProductStockCommandHandler struct {
	uowFactory ProductUoWFactory
	ledger     services.StockLedger
}

// NewUpdateProductStockCommandHandler creates a handler for stock overrides.
func NewUpdateProductStockCommandHandler(uowFactory ProductUoWFactory, ledger services.StockLedger) UpdateProductStockCommandHandler {
	return UpdateProductStockCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
	}
}

// Handle processes the stock override command.
func (h UpdateProductStockCommandHandler) Handle(ctx context.Context, cmd UpdateProductStockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := requireRole(cmd.ActorRole().CanManageStock(), cmd.ActorRole(), "override stock"); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	entry, err := h.ledger.Override(aggregate, cmd.Quantity())
	if err != nil {
		return err
	}

	if err := uow.ProductRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err := uow.InventoryRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"storefront/internal/core/domain/services"
)

// RestockProductCommandHandler records a supplier delivery: quantity up, one
// RESTOCK ledger row, one transaction.
type RestockProductCommandHandler struct {
	uowFactory ProductUoWFactory
	ledger     services.StockLedger
}

// NewRestockProductCommandHandler creates a handler for restocking.
func NewRestockProductCommandHandler(uowFactory ProductUoWFactory, ledger services.StockLedger) RestockProductCommandHandler {
	return RestockProductCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
	}
}

// Handle processes the restock command.
func (h RestockProductCommandHandler) Handle(ctx context.Context, cmd RestockProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := requireRole(cmd.ActorRole().CanManageStock(), cmd.ActorRole(), "restock products"); err != nil {
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

	entry, err := h.ledger.Restock(aggregate, cmd.Quantity())
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

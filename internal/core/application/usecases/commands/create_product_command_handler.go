package commands

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/services"
)

// CreateProductCommandHandler adds a product to the catalog and opens its
// ledger with an INITIAL_STOCK row, both in one transaction. Every product's
// history therefore sums from zero.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	ledger     services.StockLedger
}

// NewCreateProductCommandHandler creates a handler for product creation.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory, ledger services.StockLedger) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
	}
}

// Handle processes the product creation command. Returns the ID of the new
// product.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}
	if err := requireRole(cmd.ActorRole().CanManageStock(), cmd.ActorRole(), "create products"); err != nil {
		return kernel.UUID{}, err
	}

	aggregate, err := product.NewProduct(
		kernel.NewUUID(), cmd.Name(), cmd.Price(), cmd.Quantity(), cmd.ReturnPolicy(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	entry, err := h.ledger.InitialEntry(aggregate)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ProductRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err := uow.InventoryRepository().Add(ctx, entry); err != nil {
		return kernel.UUID{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}

package commands

import (
	"context"

	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"
)

// CreateOrderCommandHandler handles order placement for both channels.
//
// Online orders start Pending with no stock effect; the reduction happens
// later at packing. POS orders are fulfilled on the spot, so the handler
// reduces stock immediately with a POS_SALE ledger row, all in the same
// transaction that inserts the order.
type CreateOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	ledger     services.StockLedger
	codeLength int
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// codeLength is the number of digits in the minted delivery OTP.
func NewCreateOrderCommandHandler(
	uowFactory FulfillmentUoWFactory,
	ledger services.StockLedger,
	codeLength int,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
		codeLength: codeLength,
	}
}

// Handle processes the order placement command. Snapshots product name,
// price, and return policy into the order lines, creates the aggregate, and
// for POS orders reduces stock. Returns the ID of the created order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}
	if cmd.Source() == order.POS {
		if err := requireRole(cmd.ActorRole().CanSellInStore(), cmd.ActorRole(), "create POS orders"); err != nil {
			return kernel.UUID{}, err
		}
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	items, products, err := h.buildItems(ctx, uow, cmd.Lines())
	if err != nil {
		return kernel.UUID{}, err
	}

	customer, err := order.NewCustomer(
		cmd.CustomerName(), cmd.CustomerEmail(), cmd.CustomerPhone(), cmd.ShippingAddress(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	aggregate, err := order.NewOrder(
		cmd.Source(), customer, items,
		cmd.Total(), cmd.TaxAmount(), cmd.ShippingCost(), cmd.DiscountAmount(),
		cmd.PaymentMethod(), h.codeLength,
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if cmd.Source() == order.POS {
		entries, err := h.ledger.ApplyOrderEffect(order.EffectReduce, inventory.PosSale, items, products)
		if err != nil {
			return kernel.UUID{}, err
		}
		for _, p := range products {
			if err := uow.ProductRepository().Update(ctx, p); err != nil {
				return kernel.UUID{}, err
			}
		}
		if err := uow.InventoryRepository().AddAll(ctx, entries); err != nil {
			return kernel.UUID{}, err
		}
	}

	if err := uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}

// buildItems loads every requested product and snapshots it into an order
// line. A line for a product that does not exist fails the whole command.
func (h CreateOrderCommandHandler) buildItems(
	ctx context.Context,
	uow FulfillmentUoW,
	lines []OrderLine,
) ([]order.Item, []*product.Product, error) {
	ids := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}

	products, err := uow.ProductRepository().GetMany(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	byID := make(map[string]*product.Product, len(products))
	for _, p := range products {
		byID[p.ID().String()] = p
	}

	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		p, ok := byID[line.ProductID.String()]
		if !ok {
			return nil, nil, errs.NewObjectNotFoundError("product", line.ProductID)
		}

		item, err := order.NewItem(p.ID(), p.Name(), p.Price(), line.Quantity, p.ReturnPolicy())
		if err != nil {
			return nil, nil, err
		}
		items = append(items, item)
	}

	return items, products, nil
}

package commands

import (
	"context"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/staff"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"
)

// applyStockEffect performs the ledger side of a status transition inside the
// caller's open transaction. It is a no-op for transitions without a stock
// effect, so handlers can call it unconditionally after every move.
func applyStockEffect(
	ctx context.Context,
	uow FulfillmentUoW,
	ledger services.StockLedger,
	aggregate *order.Order,
	from, to order.Status,
) error {
	effect, changeType := order.TransitionStockEffect(from, to)
	if effect == order.EffectNone {
		return nil
	}

	ids := make([]kernel.UUID, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		if item.ProductID() != nil {
			ids = append(ids, *item.ProductID())
		}
	}

	products, err := uow.ProductRepository().GetMany(ctx, ids)
	if err != nil {
		return err
	}

	entries, err := ledger.ApplyOrderEffect(effect, changeType, aggregate.Items(), products)
	if err != nil {
		return err
	}

	for _, p := range products {
		if err := uow.ProductRepository().Update(ctx, p); err != nil {
			return err
		}
	}

	return uow.InventoryRepository().AddAll(ctx, entries)
}

// requireRole turns a failed capability check into the precondition error the
// HTTP layer maps to 422. The action string names the operation the role was
// not allowed to perform.
func requireRole(allowed bool, role staff.Role, action string) error {
	if allowed {
		return nil
	}
	return errs.NewPreconditionUnmetErrorWithCause("role",
		fmt.Errorf("role %s cannot %s", role, action))
}

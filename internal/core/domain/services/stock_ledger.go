package services

import (
	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"
)

// StockLedger is the domain service that changes product quantities and
// produces the matching inventory entries. It is the only writer of both
// sides, which keeps the ledger invariant intact: the sum of a product's
// entries always equals its current quantity.
//
// Business rules:
//   - Every quantity change yields exactly one entry
//   - Reducing below zero is refused unless overselling is allowed
//   - Entries snapshot the product name at write time
type StockLedger struct {
	allowNegative bool
}

// NewStockLedger creates a stock ledger service. allowNegative permits
// quantities below zero (backorder mode); entries are written either way.
func NewStockLedger(allowNegative bool) StockLedger {
	return StockLedger{allowNegative: allowNegative}
}

// ApplyOrderEffect changes stock for every line of an order in the direction
// the status transition demands and returns the ledger entries to persist.
//
// Products are matched to items by ID. A missing product fails a reduction
// (goods cannot leave a shelf that does not exist) but is skipped on a
// restock: an item whose product was deleted after the sale has no shelf to
// go back to, and the order itself must still complete.
//
// On any error the returned entries are nil; the caller rolls back the
// transaction, so partially applied product changes never become visible.
func (s StockLedger) ApplyOrderEffect(
	effect order.StockEffect,
	changeType inventory.ChangeType,
	items []order.Item,
	products []*product.Product,
) ([]inventory.Entry, error) {
	if effect == order.EffectNone {
		return nil, nil
	}

	byID := make(map[string]*product.Product, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		byID[p.ID().String()] = p
	}

	entries := make([]inventory.Entry, 0, len(items))
	for _, item := range items {
		if item.ProductID() == nil {
			if effect == order.EffectRestock {
				continue
			}
			return nil, errs.NewObjectNotFoundError("product", item.Name())
		}

		p, ok := byID[item.ProductID().String()]
		if !ok {
			if effect == order.EffectRestock {
				continue
			}
			return nil, errs.NewObjectNotFoundError("product", item.ProductID())
		}

		delta := item.Quantity()
		if effect == order.EffectReduce {
			delta = -delta
		}

		entry, err := s.applyDelta(p, delta, changeType)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Restock adds goods to the shelf and returns the RESTOCK entry.
func (s StockLedger) Restock(p *product.Product, quantity int) (inventory.Entry, error) {
	if quantity <= 0 {
		return inventory.Entry{}, errs.NewValueIsInvalidError("restock quantity must be positive")
	}
	return s.applyDelta(p, quantity, inventory.Restock)
}

// Override sets the on-hand quantity to an absolute value (administrative
// stock correction) and returns the ADJUSTMENT entry. An override to the
// current quantity still writes an entry: the correction happened, even if
// it changed nothing.
func (s StockLedger) Override(p *product.Product, quantity int) (inventory.Entry, error) {
	if err := p.Validate(); err != nil {
		return inventory.Entry{}, err
	}

	old := p.SetQuantity(quantity)
	return inventory.NewEntry(p.ID(), p.Name(), old, quantity, inventory.Adjustment)
}

// InitialEntry returns the INITIAL_STOCK entry for a freshly created product.
func (s StockLedger) InitialEntry(p *product.Product) (inventory.Entry, error) {
	if err := p.Validate(); err != nil {
		return inventory.Entry{}, err
	}
	return inventory.NewEntry(p.ID(), p.Name(), 0, p.Quantity(), inventory.InitialStock)
}

func (s StockLedger) applyDelta(p *product.Product, delta int, changeType inventory.ChangeType) (inventory.Entry, error) {
	if err := p.Validate(); err != nil {
		return inventory.Entry{}, err
	}

	old, err := p.ApplyChange(delta, s.allowNegative)
	if err != nil {
		return inventory.Entry{}, err
	}

	return inventory.NewEntry(p.ID(), p.Name(), old, p.Quantity(), changeType)
}

package ports

import (
	"context"

	"storefront/internal/core/domain/model/inventory"
)

// InventoryRepository defines the persistence contract for the stock ledger.
// The ledger is append-only: entries are added and read, never updated or
// deleted.
type InventoryRepository interface {
	// Add persists one ledger entry.
	Add(ctx context.Context, entry inventory.Entry) error

	// AddAll persists a batch of ledger entries in order.
	AddAll(ctx context.Context, entries []inventory.Entry) error
}

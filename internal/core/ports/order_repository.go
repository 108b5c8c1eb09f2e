// Package ports defines the contracts between the domain layer and
// infrastructure: repositories, the unit of work, and the event publisher.
// Adapters implement them, handlers depend on them, and the composition root
// wires the two together.
package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are stored with their items, history, and transaction; a loaded
// aggregate is always complete.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. History rows
	// are append-only: new entries are inserted, existing rows never change.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status,
	// newest first.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetAllPendingOlderThan retrieves Pending orders created before the
	// cutoff. Used by the stale-order job to find abandoned checkouts.
	GetAllPendingOlderThan(ctx context.Context, cutoffMinutes int) ([]*order.Order, error)
}

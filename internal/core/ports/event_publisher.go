package ports

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// OrderEventPublisher publishes order lifecycle events to the message broker.
// The unit of work calls it after a successful commit for every order
// aggregate the transaction touched, so consumers only ever see durable
// state.
type OrderEventPublisher interface {
	// PublishOrderChanged emits an order.changed event for the aggregate.
	PublishOrderChanged(ctx context.Context, aggregate *order.Order) error

	// Close flushes buffered messages and releases the broker connection.
	Close() error
}

// Package kafka publishes order lifecycle events to a Kafka topic. The
// engine emits one order.changed event per committed transaction that
// touched an order; consumers (notifications, analytics) react off the hot
// path.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const producerName = "storefront"

// OrderEventPublisher implements ports.OrderEventPublisher on a kafka-go
// writer.
type OrderEventPublisher struct {
	writer *kafka.Writer
}

// NewOrderEventPublisher creates a publisher writing order.changed events to
// the given topic. Messages are keyed by order ID so all events of one order
// land in one partition, in order.
func NewOrderEventPublisher(brokers []string, topic string) *OrderEventPublisher {
	return &OrderEventPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

// orderChangedEvent is the wire envelope of an order.changed message.
type orderChangedEvent struct {
	EventID    string             `json:"event_id"`
	EventType  string             `json:"event_type"`
	OccurredAt time.Time          `json:"occurred_at"`
	Producer   string             `json:"producer"`
	Payload    orderChangedDetail `json:"payload"`
}

type orderChangedDetail struct {
	OrderID      string  `json:"order_id"`
	Source       string  `json:"source"`
	Status       string  `json:"status"`
	ReturnStatus string  `json:"return_status,omitempty"`
	Total        float64 `json:"total"`
	CustomerName string  `json:"customer_name"`
}

// PublishOrderChanged emits an order.changed event for the aggregate.
func (p *OrderEventPublisher) PublishOrderChanged(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	event := orderChangedEvent{
		EventID:    uuid.NewString(),
		EventType:  "order.changed",
		OccurredAt: time.Now().UTC(),
		Producer:   producerName,
		Payload: orderChangedDetail{
			OrderID:      aggregate.ID().String(),
			Source:       aggregate.Source().String(),
			Status:       aggregate.Status().String(),
			ReturnStatus: aggregate.ReturnStatus().String(),
			Total:        aggregate.Total(),
			CustomerName: aggregate.Customer().Name(),
		},
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order.changed event: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(aggregate.ID().String()),
		Value: value,
		Time:  event.OccurredAt,
	})
}

// Close flushes buffered messages and releases the broker connection.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}

// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain aggregates and read the database
// directly, shaping rows into response structs for the transport layer.
package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its lines and full audit trail.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	detail, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// GetOrderQueryResponse is the full read model of one order.
type GetOrderQueryResponse struct {
	ID              kernel.UUID
	Source          string
	Status          string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	Total           float64
	TaxAmount       float64
	ShippingCost    float64
	DiscountAmount  float64
	PaymentMethod   string
	PaymentStatus   string
	ReturnStatus    string
	ReturnType      string
	ReturnReason    string
	FailureReason   string
	DeliveryImage   string
	ReturnImage     string
	CreatedAt       time.Time
	Items           []OrderItemResponse
	History         []OrderHistoryResponse
}

// OrderItemResponse is one line of the order read model. ProductID is nil
// when the product was deleted after the sale.
type OrderItemResponse struct {
	ID        kernel.UUID
	ProductID *kernel.UUID
	Name      string
	Price     float64
	Quantity  int
}

// OrderHistoryResponse is one audit-trail row. The handler returns history
// newest first.
type OrderHistoryResponse struct {
	Status     string
	Note       string
	OccurredAt time.Time
}

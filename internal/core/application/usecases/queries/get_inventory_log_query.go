package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetInventoryLogQueryIsNotConstructed = errors.New(
	"GetInventoryLogQuery must be created via NewGetInventoryLogQuery constructor",
)

// GetInventoryLogQuery retrieves the stock ledger of one product, the full
// explanation of how its quantity got to where it is.
type GetInventoryLogQuery struct {
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetInventoryLogQuery creates a query for one product's ledger.
func NewGetInventoryLogQuery(productID kernel.UUID) (GetInventoryLogQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetInventoryLogQuery{}, err
	}
	return GetInventoryLogQuery{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetInventoryLogQuery) Validate() error {
	return q.guard.Validate(ErrGetInventoryLogQueryIsNotConstructed)
}

// ProductID returns the product whose ledger is requested.
func (q GetInventoryLogQuery) ProductID() kernel.UUID { return q.productID }

// GetInventoryLogQueryResponse is one ledger row.
type GetInventoryLogQueryResponse struct {
	ID          kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	OldQuantity int
	NewQuantity int
	Change      int
	ChangeType  string
	OccurredAt  time.Time
}

package queries

import (
	"context"

	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetInventoryLogQueryHandler retrieves a product's stock ledger from the
// database.
type GetInventoryLogQueryHandler struct {
	db *gorm.DB
}

// NewGetInventoryLogQueryHandler creates a handler for ledger queries.
func NewGetInventoryLogQueryHandler(db *gorm.DB) GetInventoryLogQueryHandler {
	return GetInventoryLogQueryHandler{db: db}
}

// Handle executes the query. Entries are returned newest first. A product
// with no ledger rows yields an empty slice, not an error: the caller cannot
// distinguish a missing product from a product with a silent history here.
func (h GetInventoryLogQueryHandler) Handle(
	ctx context.Context,
	query GetInventoryLogQuery,
) ([]GetInventoryLogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			product_name,
			old_quantity,
			new_quantity,
			change,
			change_type,
			occurred_at
		FROM inventory_log
		WHERE product_id = ?
		ORDER BY occurred_at DESC
	`, query.ProductID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]GetInventoryLogQueryResponse, 0)
	for rows.Next() {
		var resp GetInventoryLogQueryResponse
		var id, productID uuid.UUID
		var changeType int

		err = rows.Scan(
			&id,
			&productID,
			&resp.ProductName,
			&resp.OldQuantity,
			&resp.NewQuantity,
			&resp.Change,
			&changeType,
			&resp.OccurredAt,
		)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.ProductID, err = kernel.UUIDFromBytes(productID[:])
		if err != nil {
			return nil, err
		}
		resp.ChangeType = inventory.ChangeType(changeType).String()

		entries = append(entries, resp)
	}

	return entries, rows.Err()
}

package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersByStatusQueryHandler retrieves order summaries from the database.
type GetOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStatusQueryHandler creates a handler for status-filtered
// order lists.
func NewGetOrdersByStatusQueryHandler(db *gorm.DB) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db}
}

// Handle executes the query. Results are sorted newest first.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]GetOrdersByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.source,
			o.status,
			o.customer_name,
			o.total,
			o.created_at,
			COUNT(i.id) AS item_count
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.status = ?
		GROUP BY o.id, o.source, o.status, o.customer_name, o.total, o.created_at
		ORDER BY o.created_at DESC
	`, int(query.Status())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersByStatusQueryResponse, 0)
	for rows.Next() {
		var resp GetOrdersByStatusQueryResponse
		var id uuid.UUID
		var source, status int

		err = rows.Scan(
			&id,
			&source,
			&status,
			&resp.CustomerName,
			&resp.Total,
			&resp.CreatedAt,
			&resp.ItemCount,
		)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.Source = order.Source(source).String()
		resp.Status = order.Status(status).String()

		orders = append(orders, resp)
	}

	return orders, rows.Err()
}

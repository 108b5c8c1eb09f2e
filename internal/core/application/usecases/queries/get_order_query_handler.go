package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order read model from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when no such
// order exists. History is returned newest first.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp, err := h.loadOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.Items, err = h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.History, err = h.loadHistory(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) loadOrder(ctx context.Context, orderID kernel.UUID) (GetOrderQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			source,
			status,
			customer_name,
			customer_email,
			customer_phone,
			shipping_address,
			total,
			tax_amount,
			shipping_cost,
			discount_amount,
			transaction_method,
			transaction_status,
			return_status,
			return_type,
			return_reason,
			failure_reason,
			delivery_image,
			return_image,
			created_at
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	var resp GetOrderQueryResponse
	var id uuid.UUID
	var source, status, paymentMethod, paymentStatus, returnStatus, returnType int
	var createdAt time.Time

	err := row.Scan(
		&id,
		&source,
		&status,
		&resp.CustomerName,
		&resp.CustomerEmail,
		&resp.CustomerPhone,
		&resp.ShippingAddress,
		&resp.Total,
		&resp.TaxAmount,
		&resp.ShippingCost,
		&resp.DiscountAmount,
		&paymentMethod,
		&paymentStatus,
		&returnStatus,
		&returnType,
		&resp.ReturnReason,
		&resp.FailureReason,
		&resp.DeliveryImage,
		&resp.ReturnImage,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", orderID.String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.Source = order.Source(source).String()
	resp.Status = order.Status(status).String()
	resp.PaymentMethod = order.PaymentMethod(paymentMethod).String()
	resp.PaymentStatus = order.TransactionStatus(paymentStatus).String()
	resp.ReturnStatus = order.ReturnStatus(returnStatus).String()
	resp.ReturnType = order.ReturnType(returnType).String()
	resp.CreatedAt = createdAt

	return resp, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			name,
			price,
			quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var item OrderItemResponse
		var id uuid.UUID
		var productID *uuid.UUID

		if err = rows.Scan(&id, &productID, &item.Name, &item.Price, &item.Quantity); err != nil {
			return nil, err
		}

		item.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		if productID != nil {
			pid, pidErr := kernel.UUIDFromBytes((*productID)[:])
			if pidErr != nil {
				return nil, pidErr
			}
			item.ProductID = &pid
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

func (h GetOrderQueryHandler) loadHistory(ctx context.Context, orderID kernel.UUID) ([]OrderHistoryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			note,
			occurred_at
		FROM order_history
		WHERE order_id = ?
		ORDER BY seq DESC
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]OrderHistoryResponse, 0)
	for rows.Next() {
		var entry OrderHistoryResponse
		var status int

		if err = rows.Scan(&status, &entry.Note, &entry.OccurredAt); err != nil {
			return nil, err
		}

		entry.Status = order.Status(status).String()
		history = append(history, entry)
	}

	return history, rows.Err()
}

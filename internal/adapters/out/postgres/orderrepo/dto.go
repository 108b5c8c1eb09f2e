// Package orderrepo maps order aggregates to their relational representation.
// An order spans three tables: the order row itself with the embedded payment
// transaction, the order_items rows, and the append-only order_history rows.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/handover"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Source              int            `gorm:"type:int;not null"`
	Status              int            `gorm:"type:int;not null;index"`
	CustomerName        string         `gorm:"type:varchar(255);not null"`
	CustomerEmail       string         `gorm:"type:varchar(255)"`
	CustomerPhone       string         `gorm:"type:varchar(64)"`
	ShippingAddress     string         `gorm:"type:text"`
	Total               float64        `gorm:"not null"`
	TaxAmount           float64        `gorm:"not null"`
	ShippingCost        float64        `gorm:"not null"`
	DiscountAmount      float64        `gorm:"not null"`
	Transaction         TransactionDTO `gorm:"embedded;embeddedPrefix:transaction_"`
	AssignedShipmentID  *uuid.UUID     `gorm:"type:uuid;index"`
	AssignedDeliveryID  *uuid.UUID     `gorm:"type:uuid;index"`
	HandoverCode        string         `gorm:"type:varchar(16)"`
	DeliveryOTP         string         `gorm:"type:varchar(16)"`
	ReturnOTP           string         `gorm:"type:varchar(16)"`
	ReturnHandoverCode  string         `gorm:"type:varchar(16)"`
	ReturnStatus        int            `gorm:"type:int;not null"`
	ReturnType          int            `gorm:"type:int;not null"`
	ReturnReason        string         `gorm:"type:text"`
	RefundPaymentMethod int            `gorm:"type:int;not null"`
	FailureReason       string         `gorm:"type:text"`
	DeliveryImage       string         `gorm:"type:text"`
	ReturnImage         string         `gorm:"type:text"`
	CreatedAt           time.Time      `gorm:"not null;index"`
	Items               []ItemDTO      `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History             []HistoryDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// TransactionDTO represents the payment transaction embedded in the order row.
// Orders and their transaction are strictly one-to-one.
type TransactionDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;not null"`
	Amount    float64   `gorm:"not null"`
	Method    int       `gorm:"type:int;not null"`
	Status    int       `gorm:"type:int;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// ItemDTO represents one order line. ProductID is nullable: deleting a
// product must not destroy the sales record that references it.
type ItemDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductID    *uuid.UUID `gorm:"type:uuid;index"`
	Name         string     `gorm:"type:varchar(255);not null"`
	Price        float64    `gorm:"not null"`
	Quantity     int        `gorm:"type:int;not null"`
	ReturnPolicy int        `gorm:"type:int;not null"`
}

// TableName overrides GORM's default naming to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

// HistoryDTO represents one audit-trail row. The sequence number within the
// order is the key, so re-saving an aggregate can never rewrite history.
type HistoryDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq        int       `gorm:"type:int;primaryKey"`
	Status     int       `gorm:"type:int;not null"`
	Note       string    `gorm:"type:text"`
	OccurredAt time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "order_history".
func (HistoryDTO) TableName() string {
	return "order_history"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		var productID *uuid.UUID
		if id := item.ProductID(); id != nil {
			raw := id.Bytes()
			productID = &raw
		}

		items = append(items, ItemDTO{
			ID:           item.ID().Bytes(),
			OrderID:      orderID,
			ProductID:    productID,
			Name:         item.Name(),
			Price:        item.Price(),
			Quantity:     item.Quantity(),
			ReturnPolicy: int(item.ReturnPolicy()),
		})
	}

	history := make([]HistoryDTO, 0, len(aggregate.History()))
	for seq, entry := range aggregate.History() {
		history = append(history, HistoryDTO{
			OrderID:    orderID,
			Seq:        seq,
			Status:     int(entry.Status()),
			Note:       entry.Note(),
			OccurredAt: entry.OccurredAt(),
		})
	}

	return OrderDTO{
		ID:              orderID,
		Source:          int(aggregate.Source()),
		Status:          int(aggregate.Status()),
		CustomerName:    aggregate.Customer().Name(),
		CustomerEmail:   aggregate.Customer().Email(),
		CustomerPhone:   aggregate.Customer().Phone(),
		ShippingAddress: aggregate.Customer().ShippingAddress(),
		Total:           aggregate.Total(),
		TaxAmount:       aggregate.TaxAmount(),
		ShippingCost:    aggregate.ShippingCost(),
		DiscountAmount:  aggregate.DiscountAmount(),
		Transaction: TransactionDTO{
			ID:        aggregate.Transaction().ID().Bytes(),
			Amount:    aggregate.Transaction().Amount(),
			Method:    int(aggregate.Transaction().Method()),
			Status:    int(aggregate.Transaction().Status()),
			CreatedAt: aggregate.Transaction().CreatedAt(),
		},
		AssignedShipmentID:  uuidPtr(aggregate.AssignedShipment()),
		AssignedDeliveryID:  uuidPtr(aggregate.AssignedDelivery()),
		HandoverCode:        aggregate.HandoverCode().String(),
		DeliveryOTP:         aggregate.DeliveryOTP().String(),
		ReturnOTP:           aggregate.ReturnOTP().String(),
		ReturnHandoverCode:  aggregate.ReturnHandoverCode().String(),
		ReturnStatus:        int(aggregate.ReturnStatus()),
		ReturnType:          int(aggregate.ReturnType()),
		ReturnReason:        aggregate.ReturnReason(),
		RefundPaymentMethod: int(aggregate.RefundPaymentMethod()),
		FailureReason:       aggregate.FailureReason(),
		DeliveryImage:       aggregate.DeliveryImage(),
		ReturnImage:         aggregate.ReturnImage(),
		CreatedAt:           aggregate.CreatedAt(),
		Items:               items,
		History:             history,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
// History rows must already be ordered by sequence number.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.CustomerName, dto.CustomerEmail, dto.CustomerPhone, dto.ShippingAddress)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	history := make([]order.HistoryEntry, 0, len(dto.History))
	for _, historyDTO := range dto.History {
		entry, historyErr := order.RestoreHistoryEntry(
			order.Status(historyDTO.Status), historyDTO.Note, historyDTO.OccurredAt,
		)
		if historyErr != nil {
			return nil, historyErr
		}
		history = append(history, entry)
	}

	transactionID, err := kernel.UUIDFromBytes(dto.Transaction.ID[:])
	if err != nil {
		return nil, err
	}
	transaction, err := order.RestoreTransaction(
		transactionID,
		dto.Transaction.Amount,
		order.PaymentMethod(dto.Transaction.Method),
		order.TransactionStatus(dto.Transaction.Status),
		dto.Transaction.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	assignedShipmentID, err := kernelUUIDPtr(dto.AssignedShipmentID)
	if err != nil {
		return nil, err
	}
	assignedDeliveryID, err := kernelUUIDPtr(dto.AssignedDeliveryID)
	if err != nil {
		return nil, err
	}

	handoverCode, err := codeFromColumn(dto.HandoverCode)
	if err != nil {
		return nil, err
	}
	deliveryOTP, err := codeFromColumn(dto.DeliveryOTP)
	if err != nil {
		return nil, err
	}
	returnOTP, err := codeFromColumn(dto.ReturnOTP)
	if err != nil {
		return nil, err
	}
	returnHandoverCode, err := codeFromColumn(dto.ReturnHandoverCode)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		order.Source(dto.Source),
		order.Status(dto.Status),
		customer,
		items,
		dto.Total, dto.TaxAmount, dto.ShippingCost, dto.DiscountAmount,
		transaction,
		assignedShipmentID, assignedDeliveryID,
		handoverCode, deliveryOTP, returnOTP, returnHandoverCode,
		order.ReturnStatus(dto.ReturnStatus),
		order.ReturnType(dto.ReturnType),
		dto.ReturnReason,
		order.PaymentMethod(dto.RefundPaymentMethod),
		dto.FailureReason, dto.DeliveryImage, dto.ReturnImage,
		history,
		dto.CreatedAt,
	)
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Item{}, err
	}

	productID, err := kernelUUIDPtr(dto.ProductID)
	if err != nil {
		return order.Item{}, err
	}

	return order.RestoreItem(id, productID, dto.Name, dto.Price, dto.Quantity,
		product.ReturnPolicy(dto.ReturnPolicy))
}

func uuidPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func kernelUUIDPtr(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

// codeFromColumn reconstructs a handover code from its stored digits.
// The empty string means the code was never minted.
func codeFromColumn(s string) (handover.Code, error) {
	if s == "" {
		return handover.Code{}, nil
	}
	return handover.CodeFromString(s)
}

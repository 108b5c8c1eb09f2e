// Package inventory defines the append-only stock ledger. Every change to a
// product's on-hand quantity is recorded as one immutable Entry; summing the
// changes of a product's entries from its creation yields its current
// quantity.
package inventory

import (
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ChangeType classifies why a ledger entry was written. Each type has exactly
// one producer in the engine.
type ChangeType int

const (
	// UnknownChange represents an invalid or undefined change type.
	UnknownChange ChangeType = iota

	// InitialStock is written once when a product is created.
	InitialStock

	// Restock is written by the additive restock operation.
	Restock

	// Adjustment is written by the administrative stock override.
	Adjustment

	// PosSale is written when a point-of-sale order is created.
	PosSale

	// OnlineSalePacked is written when an online order is packed.
	OnlineSalePacked

	// Return is written when returned goods are received back into the warehouse.
	Return

	// CancelledOrder is written when a stock-committed order is cancelled.
	CancelledOrder
)

func getChangeTypeStrings() map[ChangeType]string {
	return map[ChangeType]string{
		UnknownChange:    "UNKNOWN",
		InitialStock:     "INITIAL_STOCK",
		Restock:          "RESTOCK",
		Adjustment:       "ADJUSTMENT",
		PosSale:          "POS_SALE",
		OnlineSalePacked: "ONLINE_SALE_PACKED",
		Return:           "RETURN",
		CancelledOrder:   "CANCELLED_ORDER",
	}
}

// String returns the ledger tag of the change type.
func (t ChangeType) String() string {
	if s, ok := getChangeTypeStrings()[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// Validate checks that the change type is one of the defined variants.
func (t ChangeType) Validate() error {
	if t <= UnknownChange || t > CancelledOrder {
		return errs.NewValueIsInvalidErrorWithCause("change type is invalid",
			fmt.Errorf("%d is not a valid change type", t))
	}
	return nil
}

// ErrEntryIsNotConstructed indicates an Entry was not created via NewEntry or RestoreEntry.
var ErrEntryIsNotConstructed = errs.NewValueIsRequiredError("Entry must be created via NewEntry or RestoreEntry")

// Entry is one immutable row of the stock ledger. It captures the product's
// quantity before and after the change together with the signed delta, so the
// ledger is auditable without replaying it.
//
// Invariant: OldQuantity + Change == NewQuantity.
type Entry struct {
	id          kernel.UUID
	productID   kernel.UUID
	productName string
	oldQuantity int
	newQuantity int
	change      int
	changeType  ChangeType
	occurredAt  time.Time

	isConstructed bool
}

// NewEntry creates a ledger entry for a stock change that just happened.
// The product name is snapshotted so the ledger stays readable after the
// product is renamed or deleted.
func NewEntry(
	productID kernel.UUID,
	productName string,
	oldQuantity, newQuantity int,
	changeType ChangeType,
) (Entry, error) {
	return RestoreEntry(
		kernel.NewUUID(),
		productID,
		productName,
		oldQuantity,
		newQuantity,
		newQuantity-oldQuantity,
		changeType,
		time.Now().UTC(),
	)
}

// RestoreEntry reconstructs an entry from persistence, re-checking the
// delta invariant.
func RestoreEntry(
	id kernel.UUID,
	productID kernel.UUID,
	productName string,
	oldQuantity, newQuantity, change int,
	changeType ChangeType,
	occurredAt time.Time,
) (Entry, error) {
	if err := id.Validate(); err != nil {
		return Entry{}, err
	}
	if err := productID.Validate(); err != nil {
		return Entry{}, err
	}
	if productName == "" {
		return Entry{}, errs.NewValueIsRequiredError("product name")
	}
	if err := changeType.Validate(); err != nil {
		return Entry{}, err
	}
	if oldQuantity+change != newQuantity {
		return Entry{}, errs.NewValueIsInvalidErrorWithCause("entry is inconsistent",
			fmt.Errorf("%d + %d != %d", oldQuantity, change, newQuantity))
	}
	if occurredAt.IsZero() {
		return Entry{}, errs.NewValueIsRequiredError("occurredAt")
	}

	return Entry{
		id:            id,
		productID:     productID,
		productName:   productName,
		oldQuantity:   oldQuantity,
		newQuantity:   newQuantity,
		change:        change,
		changeType:    changeType,
		occurredAt:    occurredAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the entry was created through NewEntry or RestoreEntry.
func (e Entry) Validate() error {
	if !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e Entry) ID() kernel.UUID { return e.id }

// ProductID returns the product the entry belongs to.
func (e Entry) ProductID() kernel.UUID { return e.productID }

// ProductName returns the product name snapshotted at write time.
func (e Entry) ProductName() string { return e.productName }

// OldQuantity returns the product quantity before the change.
func (e Entry) OldQuantity() int { return e.oldQuantity }

// NewQuantity returns the product quantity after the change.
func (e Entry) NewQuantity() int { return e.newQuantity }

// Change returns the signed quantity delta.
func (e Entry) Change() int { return e.change }

// ChangeType returns why the entry was written.
func (e Entry) ChangeType() ChangeType { return e.changeType }

// OccurredAt returns when the change was recorded.
func (e Entry) OccurredAt() time.Time { return e.occurredAt }

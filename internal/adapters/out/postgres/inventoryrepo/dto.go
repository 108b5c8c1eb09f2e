// Package inventoryrepo maps stock ledger entries to their relational
// representation. The ledger table is append-only.
package inventoryrepo

import (
	"time"

	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EntryDTO represents one row of the stock ledger. The product name is
// denormalized so the log stays readable after a product is deleted.
type EntryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductName string    `gorm:"type:varchar(255);not null"`
	OldQuantity int       `gorm:"type:int;not null"`
	NewQuantity int       `gorm:"type:int;not null"`
	Change      int       `gorm:"type:int;not null"`
	ChangeType  int       `gorm:"type:int;not null"`
	OccurredAt  time.Time `gorm:"not null;index"`
}

// TableName overrides GORM's default naming to use "inventory_log".
func (EntryDTO) TableName() string {
	return "inventory_log"
}

func fromDomain(entry inventory.Entry) EntryDTO {
	return EntryDTO{
		ID:          entry.ID().Bytes(),
		ProductID:   entry.ProductID().Bytes(),
		ProductName: entry.ProductName(),
		OldQuantity: entry.OldQuantity(),
		NewQuantity: entry.NewQuantity(),
		Change:      entry.Change(),
		ChangeType:  int(entry.ChangeType()),
		OccurredAt:  entry.OccurredAt(),
	}
}

func toDomain(dto EntryDTO) (inventory.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return inventory.Entry{}, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return inventory.Entry{}, err
	}

	return inventory.RestoreEntry(
		id, productID, dto.ProductName,
		dto.OldQuantity, dto.NewQuantity, dto.Change,
		inventory.ChangeType(dto.ChangeType),
		dto.OccurredAt,
	)
}

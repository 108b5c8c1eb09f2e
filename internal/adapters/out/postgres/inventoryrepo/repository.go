package inventoryrepo

import (
	"context"

	"storefront/internal/core/domain/model/inventory"

	"gorm.io/gorm"
)

// GormInventoryRepository implements InventoryRepository using GORM. It only
// ever inserts: ledger rows are immutable once written.
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// Add persists one ledger entry.
func (r *GormInventoryRepository) Add(ctx context.Context, entry inventory.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AddAll persists a batch of ledger entries in order.
func (r *GormInventoryRepository) AddAll(ctx context.Context, entries []inventory.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	dtos := make([]EntryDTO, 0, len(entries))
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(entry))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

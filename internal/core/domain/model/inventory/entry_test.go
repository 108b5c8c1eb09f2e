package inventory_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeType_String(t *testing.T) {
	testCases := []struct {
		changeType inventory.ChangeType
		expected   string
	}{
		{inventory.InitialStock, "INITIAL_STOCK"},
		{inventory.Restock, "RESTOCK"},
		{inventory.Adjustment, "ADJUSTMENT"},
		{inventory.PosSale, "POS_SALE"},
		{inventory.OnlineSalePacked, "ONLINE_SALE_PACKED"},
		{inventory.Return, "RETURN"},
		{inventory.CancelledOrder, "CANCELLED_ORDER"},
		{inventory.UnknownChange, "UNKNOWN"},
		{inventory.ChangeType(42), "UNKNOWN"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.changeType.String())
	}
}

func TestChangeType_Validate(t *testing.T) {
	t.Run("accepts defined types", func(t *testing.T) {
		valid := []inventory.ChangeType{
			inventory.InitialStock,
			inventory.Restock,
			inventory.Adjustment,
			inventory.PosSale,
			inventory.OnlineSalePacked,
			inventory.Return,
			inventory.CancelledOrder,
		}
		for _, ct := range valid {
			require.NoError(t, ct.Validate(), ct.String())
		}
	})

	t.Run("rejects unknown and out-of-range", func(t *testing.T) {
		require.Error(t, inventory.UnknownChange.Validate())
		require.Error(t, inventory.ChangeType(-1).Validate())
		require.Error(t, inventory.ChangeType(100).Validate())
	})
}

func TestNewEntry(t *testing.T) {
	productID := kernel.NewUUID()

	t.Run("records a reduction", func(t *testing.T) {
		entry, err := inventory.NewEntry(productID, "Ceramic Mug", 10, 7, inventory.OnlineSalePacked)

		require.NoError(t, err)
		require.NoError(t, entry.Validate())
		assert.Equal(t, 10, entry.OldQuantity())
		assert.Equal(t, 7, entry.NewQuantity())
		assert.Equal(t, -3, entry.Change())
		assert.Equal(t, inventory.OnlineSalePacked, entry.ChangeType())
		assert.Equal(t, "Ceramic Mug", entry.ProductName())
		assert.False(t, entry.OccurredAt().IsZero())
	})

	t.Run("records a restock", func(t *testing.T) {
		entry, err := inventory.NewEntry(productID, "Ceramic Mug", 7, 10, inventory.CancelledOrder)

		require.NoError(t, err)
		assert.Equal(t, 3, entry.Change())
	})

	t.Run("allows negative resulting quantities", func(t *testing.T) {
		entry, err := inventory.NewEntry(productID, "Ceramic Mug", 1, -2, inventory.PosSale)

		require.NoError(t, err)
		assert.Equal(t, -3, entry.Change())
		assert.Equal(t, -2, entry.NewQuantity())
	})

	t.Run("rejects empty product name", func(t *testing.T) {
		_, err := inventory.NewEntry(productID, "", 10, 7, inventory.OnlineSalePacked)
		require.Error(t, err)
	})

	t.Run("rejects invalid change type", func(t *testing.T) {
		_, err := inventory.NewEntry(productID, "Ceramic Mug", 10, 7, inventory.UnknownChange)
		require.Error(t, err)
	})

	t.Run("rejects zero product id", func(t *testing.T) {
		_, err := inventory.NewEntry(kernel.UUID{}, "Ceramic Mug", 10, 7, inventory.Adjustment)
		require.Error(t, err)
	})
}

func TestRestoreEntry(t *testing.T) {
	productID := kernel.NewUUID()
	now := time.Now().UTC()

	t.Run("restores a consistent entry", func(t *testing.T) {
		entry, err := inventory.RestoreEntry(
			kernel.NewUUID(), productID, "Ceramic Mug", 10, 7, -3, inventory.OnlineSalePacked, now)

		require.NoError(t, err)
		assert.Equal(t, now, entry.OccurredAt())
	})

	t.Run("rejects inconsistent delta", func(t *testing.T) {
		_, err := inventory.RestoreEntry(
			kernel.NewUUID(), productID, "Ceramic Mug", 10, 7, -5, inventory.OnlineSalePacked, now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "inconsistent")
	})

	t.Run("rejects zero timestamp", func(t *testing.T) {
		_, err := inventory.RestoreEntry(
			kernel.NewUUID(), productID, "Ceramic Mug", 10, 7, -3, inventory.OnlineSalePacked, time.Time{})
		require.Error(t, err)
	})
}

func TestEntry_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var entry inventory.Entry
		require.Error(t, entry.Validate())
	})
}

package order_test

import (
	"testing"

	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Unknown, "Unknown"},
		{order.Pending, "Pending"},
		{order.Processing, "Processing"},
		{order.Packed, "Packed"},
		{order.Handover, "Handover"},
		{order.Shipped, "Shipped"},
		{order.PickedCarrier, "PickedCarrier"},
		{order.InTransit, "InTransit"},
		{order.OutForDelivery, "OutForDelivery"},
		{order.Delivered, "Delivered"},
		{order.DeliveryFailed, "DeliveryFailed"},
		{order.Cancelled, "Cancelled"},
		{order.ReturnRequested, "ReturnRequested"},
		{order.ReturnProcessing, "ReturnProcessing"},
		{order.ReturnedWithDriver, "ReturnedWithDriver"},
		{order.Returned, "Returned"},
		{order.Refunded, "Refunded"},
		{order.Status(99), "Unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should pass for defined statuses", func(t *testing.T) {
		for s := order.Pending; s <= order.Refunded; s++ {
			assert.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should fail for unknown and out of range", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(-1).Validate())
		require.Error(t, order.Status(99).Validate())
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse canonical names case-insensitively", func(t *testing.T) {
		s, err := order.ParseStatus("ouT_for_DELIVERY")

		require.NoError(t, err)
		assert.Equal(t, order.OutForDelivery, s)
	})

	t.Run("should accept legacy synonyms", func(t *testing.T) {
		testCases := map[string]order.Status{
			"confirmed":             order.Processing,
			"ready_to_ship":         order.Packed,
			"Delivered to Customer": order.Delivered,
			"canceled":              order.Cancelled,
			"picked by carrier":     order.PickedCarrier,
		}
		for input, expected := range testCases {
			s, err := order.ParseStatus(input)
			require.NoError(t, err, input)
			assert.Equal(t, expected, s, input)
		}
	})

	t.Run("should fail for unknown status", func(t *testing.T) {
		_, err := order.ParseStatus("teleported")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status is invalid")
	})
}

func TestStatus_IsStockCommitted(t *testing.T) {
	committed := []order.Status{
		order.Packed, order.Handover, order.Shipped, order.PickedCarrier,
		order.InTransit, order.OutForDelivery, order.Delivered,
		order.DeliveryFailed, order.ReturnedWithDriver,
	}
	uncommitted := []order.Status{
		order.Pending, order.Processing, order.Cancelled,
		order.ReturnRequested, order.ReturnProcessing, order.Returned, order.Refunded,
	}

	for _, s := range committed {
		assert.True(t, s.IsStockCommitted(), s.String())
	}
	for _, s := range uncommitted {
		assert.False(t, s.IsStockCommitted(), s.String())
	}
}

func TestStatus_CanMoveFreely(t *testing.T) {
	t.Run("should allow non-custody edges", func(t *testing.T) {
		assert.True(t, order.Pending.CanMoveFreely(order.Processing))
		assert.True(t, order.Processing.CanMoveFreely(order.Pending))
		assert.True(t, order.Packed.CanMoveFreely(order.Handover))
		assert.True(t, order.Shipped.CanMoveFreely(order.InTransit))
		assert.True(t, order.DeliveryFailed.CanMoveFreely(order.OutForDelivery))
		assert.True(t, order.Delivered.CanMoveFreely(order.Cancelled))
	})

	t.Run("should reject gated and backward edges", func(t *testing.T) {
		assert.False(t, order.Pending.CanMoveFreely(order.Packed))
		assert.False(t, order.Packed.CanMoveFreely(order.Shipped))
		assert.False(t, order.OutForDelivery.CanMoveFreely(order.Delivered))
		assert.False(t, order.Delivered.CanMoveFreely(order.ReturnRequested))
		assert.False(t, order.InTransit.CanMoveFreely(order.Shipped))
		assert.False(t, order.Returned.CanMoveFreely(order.Refunded))
	})

	t.Run("terminal states have no exits", func(t *testing.T) {
		for s := order.Pending; s <= order.Refunded; s++ {
			assert.False(t, order.Cancelled.CanMoveFreely(s))
			assert.False(t, order.Refunded.CanMoveFreely(s))
		}
	})
}

func TestStatus_CanCancel(t *testing.T) {
	t.Run("should allow cancel through delivery", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Processing, order.Packed, order.Handover,
			order.Shipped, order.PickedCarrier, order.InTransit,
			order.OutForDelivery, order.Delivered, order.DeliveryFailed,
		} {
			assert.True(t, s.CanCancel(), s.String())
		}
	})

	t.Run("should refuse cancel once the return chain starts", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Cancelled, order.ReturnRequested,
			order.ReturnProcessing, order.ReturnedWithDriver,
			order.Returned, order.Refunded,
		} {
			assert.False(t, s.CanCancel(), s.String())
		}
	})
}

func TestTransitionStockEffect(t *testing.T) {
	t.Run("packing reduces stock once", func(t *testing.T) {
		effect, changeType := order.TransitionStockEffect(order.Pending, order.Packed)
		assert.Equal(t, order.EffectReduce, effect)
		assert.Equal(t, inventory.OnlineSalePacked, changeType)

		effect, changeType = order.TransitionStockEffect(order.Processing, order.Packed)
		assert.Equal(t, order.EffectReduce, effect)
		assert.Equal(t, inventory.OnlineSalePacked, changeType)
	})

	t.Run("cancelling a stock-committed order restocks", func(t *testing.T) {
		for _, from := range []order.Status{
			order.Packed, order.Handover, order.Shipped, order.InTransit,
			order.OutForDelivery, order.Delivered, order.DeliveryFailed,
		} {
			effect, changeType := order.TransitionStockEffect(from, order.Cancelled)
			assert.Equal(t, order.EffectRestock, effect, from.String())
			assert.Equal(t, inventory.CancelledOrder, changeType, from.String())
		}
	})

	t.Run("cancelling before packing never touches the ledger", func(t *testing.T) {
		for _, from := range []order.Status{order.Pending, order.Processing} {
			effect, _ := order.TransitionStockEffect(from, order.Cancelled)
			assert.Equal(t, order.EffectNone, effect, from.String())
		}
	})

	t.Run("warehouse receipt of a return restocks", func(t *testing.T) {
		effect, changeType := order.TransitionStockEffect(order.ReturnedWithDriver, order.Returned)
		assert.Equal(t, order.EffectRestock, effect)
		assert.Equal(t, inventory.Return, changeType)

		// Receipt of an already refunded return lands directly on Refunded
		// and must still restock exactly once.
		effect, changeType = order.TransitionStockEffect(order.ReturnedWithDriver, order.Refunded)
		assert.Equal(t, order.EffectRestock, effect)
		assert.Equal(t, inventory.Return, changeType)
	})

	t.Run("plain moves have no effect", func(t *testing.T) {
		moves := [][2]order.Status{
			{order.Pending, order.Processing},
			{order.Packed, order.Handover},
			{order.Shipped, order.InTransit},
			{order.OutForDelivery, order.Delivered},
			{order.Delivered, order.ReturnRequested},
			{order.Returned, order.Refunded},
		}
		for _, m := range moves {
			effect, changeType := order.TransitionStockEffect(m[0], m[1])
			assert.Equal(t, order.EffectNone, effect)
			assert.Equal(t, inventory.UnknownChange, changeType)
		}
	})
}

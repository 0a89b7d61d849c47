package order_test

import (
	"testing"

	"crumbsy/internal/core/domain/model/order"
	"crumbsy/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	valid := []order.Status{
		order.Posted,
		order.BakerAssigned,
		order.InProgress,
		order.OutForDelivery,
		order.Delivered,
		order.Cancelled,
	}
	for _, s := range valid {
		t.Run(s.String(), func(t *testing.T) {
			require.NoError(t, s.Validate())
		})
	}

	t.Run("unknown_is_invalid", func(t *testing.T) {
		require.ErrorIs(t, order.Unknown.Validate(), errs.ErrValueIsInvalid)
	})

	t.Run("out_of_range_is_invalid", func(t *testing.T) {
		require.ErrorIs(t, order.Status(42).Validate(), errs.ErrValueIsInvalid)
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "posted", order.Posted.String())
	assert.Equal(t, "baker-assigned", order.BakerAssigned.String())
	assert.Equal(t, "in-progress", order.InProgress.String())
	assert.Equal(t, "out-for-delivery", order.OutForDelivery.String())
	assert.Equal(t, "delivered", order.Delivered.String())
	assert.Equal(t, "cancelled", order.Cancelled.String())
	assert.Equal(t, "unknown", order.Unknown.String())
	assert.Equal(t, "unknown", order.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round_trips_valid_statuses", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Posted,
			order.BakerAssigned,
			order.InProgress,
			order.OutForDelivery,
			order.Delivered,
			order.Cancelled,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects_unknown_strings", func(t *testing.T) {
		_, err := order.StatusFromString("shipped")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.StatusFromString("unknown")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Posted.IsTerminal())
	assert.False(t, order.BakerAssigned.IsTerminal())
	assert.False(t, order.InProgress.IsTerminal())
	assert.False(t, order.OutForDelivery.IsTerminal())
}

// TestStatus_CanTransitionTo pins the full edge set of the lifecycle machine:
// no guarded path may jump, e.g., posted straight to delivered.
func TestStatus_CanTransitionTo(t *testing.T) {
	all := []order.Status{
		order.Posted,
		order.BakerAssigned,
		order.InProgress,
		order.OutForDelivery,
		order.Delivered,
		order.Cancelled,
	}

	edges := map[order.Status][]order.Status{
		order.Posted:         {order.BakerAssigned, order.Cancelled},
		order.BakerAssigned:  {order.Posted, order.InProgress, order.Cancelled},
		order.InProgress:     {order.OutForDelivery},
		order.OutForDelivery: {order.Delivered},
		order.Delivered:      {},
		order.Cancelled:      {},
	}

	for from, allowed := range edges {
		allowedSet := make(map[order.Status]bool, len(allowed))
		for _, s := range allowed {
			allowedSet[s] = true
		}

		for _, to := range all {
			assert.Equal(t, allowedSet[to], from.CanTransitionTo(to),
				"transition %s -> %s", from, to)
		}
	}
}

package parcel_test

import (
	"testing"

	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/core/domain/model/parcel"
	"github.com/kikis202/spot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected parcel.Status
	}{
		{"PENDING", parcel.StatusPending},
		{"IN_TRANSIT", parcel.StatusInTransit},
		{"OUT_FOR_DELIVERY", parcel.StatusOutForDelivery},
		{"FAILED_ATTEMPT", parcel.StatusFailedAttempt},
		{"AWAITING_PICKUP", parcel.StatusAwaitingPickup},
		{"DELIVERED", parcel.StatusDelivered},
		{"CANCELLED", parcel.StatusCancelled},
		{"RETURNED", parcel.StatusReturned},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			status, err := parcel.StatusFromString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, status)
			assert.Equal(t, tt.input, status.String())
		})
	}

	t.Run("should reject unknown strings", func(t *testing.T) {
		for _, input := range []string{"", "pending", "SHIPPED", "UNKNOWN"} {
			status, err := parcel.StatusFromString(input)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, input)
			assert.Equal(t, parcel.StatusUnknown, status)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	terminal := []parcel.Status{
		parcel.StatusDelivered, parcel.StatusCancelled, parcel.StatusReturned,
	}
	active := []parcel.Status{
		parcel.StatusPending, parcel.StatusInTransit, parcel.StatusOutForDelivery,
		parcel.StatusFailedAttempt, parcel.StatusAwaitingPickup,
	}

	for _, s := range terminal {
		assert.True(t, s.IsTerminal(), s.String())
	}
	for _, s := range active {
		assert.False(t, s.IsTerminal(), s.String())
	}
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should allow transitions between active states", func(t *testing.T) {
		next, err := parcel.StatusPending.TransitionTo(parcel.StatusInTransit)
		require.NoError(t, err)
		assert.Equal(t, parcel.StatusInTransit, next)

		next, err = parcel.StatusFailedAttempt.TransitionTo(parcel.StatusOutForDelivery)
		require.NoError(t, err)
		assert.Equal(t, parcel.StatusOutForDelivery, next)
	})

	t.Run("should allow entering a terminal state", func(t *testing.T) {
		next, err := parcel.StatusOutForDelivery.TransitionTo(parcel.StatusDelivered)
		require.NoError(t, err)
		assert.Equal(t, parcel.StatusDelivered, next)
	})

	t.Run("should reject leaving a terminal state", func(t *testing.T) {
		for _, from := range []parcel.Status{
			parcel.StatusDelivered, parcel.StatusCancelled, parcel.StatusReturned,
		} {
			next, err := from.TransitionTo(parcel.StatusPending)
			require.ErrorIs(t, err, errs.ErrPreconditionFailed, from.String())
			assert.Contains(t, err.Error(), "terminal")
			assert.Equal(t, parcel.StatusUnknown, next)
		}
	})

	t.Run("should reject undefined target", func(t *testing.T) {
		next, err := parcel.StatusPending.TransitionTo(parcel.StatusUnknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, parcel.StatusUnknown, next)
	})
}

func TestSizeFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected parcel.Size
	}{
		{"SMALL", parcel.SizeSmall},
		{"MEDIUM", parcel.SizeMedium},
		{"LARGE", parcel.SizeLarge},
		{"XLARGE", parcel.SizeXLarge},
		{"CUSTOM", parcel.SizeCustom},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			size, err := parcel.SizeFromString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, size)
			assert.Equal(t, tt.input, size.String())
		})
	}

	t.Run("should reject unknown strings", func(t *testing.T) {
		size, err := parcel.SizeFromString("XXL")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, parcel.SizeUnknown, size)
	})
}

func TestNewUpdate(t *testing.T) {
	t.Run("should create audit entry", func(t *testing.T) {
		parcelID := kernel.NewUUID()

		u, err := parcel.NewUpdate(parcelID, parcel.StatusInTransit, "Parcel picked up")

		require.NoError(t, err)
		assert.NoError(t, u.Validate())
		assert.True(t, u.ParcelID().IsEqual(parcelID))
		assert.Equal(t, parcel.StatusInTransit, u.Status())
		assert.Equal(t, "Parcel picked up", u.Title())
		assert.False(t, u.CreatedAt().IsZero())
	})

	t.Run("should require title", func(t *testing.T) {
		u, err := parcel.NewUpdate(kernel.NewUUID(), parcel.StatusPending, "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, u)
	})
}

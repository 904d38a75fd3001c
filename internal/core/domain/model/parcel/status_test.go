package parcel_test

import (
	"fmt"
	"testing"

	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	cases := map[parcel.Status]string{
		parcel.StatusPending:        "Pending",
		parcel.StatusAwaitingPickup: "Awaiting Pickup",
		parcel.StatusInTransit:      "In Transit",
		parcel.StatusDelivered:      "Delivered",
		parcel.StatusUnknown:        "Unknown",
		parcel.Status(99):           "Unknown",
	}

	for status, expected := range cases {
		t.Run(fmt.Sprintf("should render %d as %s", int(status), expected), func(t *testing.T) {
			assert.Equal(t, expected, status.String())
		})
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round-trip all valid statuses", func(t *testing.T) {
		for _, status := range []parcel.Status{
			parcel.StatusPending,
			parcel.StatusAwaitingPickup,
			parcel.StatusInTransit,
			parcel.StatusDelivered,
		} {
			parsed, err := parcel.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unrecognized values", func(t *testing.T) {
		for _, s := range []string{"", "Unknown", "pending", "Lost"} {
			_, err := parcel.StatusFromString(s)
			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate defined statuses", func(t *testing.T) {
		for _, status := range []parcel.Status{
			parcel.StatusPending,
			parcel.StatusAwaitingPickup,
			parcel.StatusInTransit,
			parcel.StatusDelivered,
		} {
			require.NoError(t, status.Validate())
		}
	})

	t.Run("should reject Unknown and out-of-range values", func(t *testing.T) {
		for _, status := range []parcel.Status{
			parcel.StatusUnknown,
			parcel.Status(-1),
			parcel.Status(5),
		} {
			err := status.Validate()
			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("should walk the full lifecycle", func(t *testing.T) {
		s, err := parcel.StatusPending.AwaitPickup()
		require.NoError(t, err)
		assert.Equal(t, parcel.StatusAwaitingPickup, s)

		s, err = s.StartTransit()
		require.NoError(t, err)
		assert.Equal(t, parcel.StatusInTransit, s)

		s, err = s.Deliver()
		require.NoError(t, err)
		assert.Equal(t, parcel.StatusDelivered, s)
	})

	t.Run("should only accept from Pending", func(t *testing.T) {
		for _, status := range []parcel.Status{
			parcel.StatusAwaitingPickup,
			parcel.StatusInTransit,
			parcel.StatusDelivered,
		} {
			_, err := status.AwaitPickup()
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
		}
	})

	t.Run("should only start transit from Awaiting Pickup", func(t *testing.T) {
		for _, status := range []parcel.Status{
			parcel.StatusPending,
			parcel.StatusInTransit,
			parcel.StatusDelivered,
		} {
			_, err := status.StartTransit()
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
		}
	})

	t.Run("should only deliver from In Transit", func(t *testing.T) {
		for _, status := range []parcel.Status{
			parcel.StatusPending,
			parcel.StatusAwaitingPickup,
			parcel.StatusDelivered,
		} {
			_, err := status.Deliver()
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
		}
	})

	t.Run("should treat Delivered as terminal", func(t *testing.T) {
		_, err := parcel.StatusDelivered.Deliver()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})
}

package carrier_test

import (
	"testing"

	"parcelmarket/internal/core/domain/model/carrier"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCarrier(t *testing.T) *carrier.Carrier {
	t.Helper()

	c, err := carrier.NewCarrier(kernel.NewUUID(), "Anan", "0898765432", "Motorcycle", "1AB-2345")
	require.NoError(t, err)
	return c
}

func TestNewCarrier(t *testing.T) {
	t.Run("should create available carrier", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := carrier.NewCarrier(id, "Anan", "0898765432", "Motorcycle", "1AB-2345")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Anan", c.Name())
		assert.True(t, c.IsAvailable())
	})

	t.Run("should fail with missing fields", func(t *testing.T) {
		_, err := carrier.NewCarrier(kernel.NewUUID(), "", "", "Motorcycle", "1AB-2345")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "phone")
	})
}

func TestCarrier_ApplyPatch(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }

	t.Run("should update only fields present in the patch", func(t *testing.T) {
		c := newTestCarrier(t)

		err := c.ApplyPatch(carrier.ProfilePatch{
			Phone:       strPtr("0811111111"),
			IsAvailable: boolPtr(false),
		})

		require.NoError(t, err)
		assert.Equal(t, "0811111111", c.Phone())
		assert.False(t, c.IsAvailable())
		assert.Equal(t, "Anan", c.Name(), "absent fields keep their values")
		assert.Equal(t, "Motorcycle", c.VehicleType())
	})

	t.Run("should reject an empty patch", func(t *testing.T) {
		c := newTestCarrier(t)

		err := c.ApplyPatch(carrier.ProfilePatch{})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject blanking a field and apply nothing", func(t *testing.T) {
		c := newTestCarrier(t)

		err := c.ApplyPatch(carrier.ProfilePatch{
			Name:  strPtr(""),
			Phone: strPtr("0822222222"),
		})

		require.Error(t, err)
		assert.Equal(t, "Anan", c.Name())
		assert.Equal(t, "0898765432", c.Phone(), "no field of a rejected patch may apply")
	})

	t.Run("should toggle availability both ways", func(t *testing.T) {
		c := newTestCarrier(t)

		require.NoError(t, c.ApplyPatch(carrier.ProfilePatch{IsAvailable: boolPtr(false)}))
		assert.False(t, c.IsAvailable())

		require.NoError(t, c.ApplyPatch(carrier.ProfilePatch{IsAvailable: boolPtr(true)}))
		assert.True(t, c.IsAvailable())
	})
}

func TestRestoreCarrier(t *testing.T) {
	c, err := carrier.RestoreCarrier(kernel.NewUUID(), "Anan", "0898765432",
		"Truck", "2CD-6789", false)

	require.NoError(t, err)
	assert.False(t, c.IsAvailable())
	assert.Equal(t, "Truck", c.VehicleType())
}

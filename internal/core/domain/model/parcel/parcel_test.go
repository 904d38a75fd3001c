package parcel_test

import (
	"testing"
	"time"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParcel(t *testing.T) *parcel.Parcel {
	t.Helper()

	p, err := parcel.NewParcel(
		kernel.NewUUID(), kernel.NewUUID(),
		parcel.NewTrackingNumber(),
		"Somchai", "0812345678",
		parcel.ItemElectronics,
		kernel.NewUUID(), kernel.NewUUID(),
		nil, 0, nil, 0,
		time.Now(),
	)
	require.NoError(t, err)
	return p
}

func TestNewParcel(t *testing.T) {
	validID := kernel.NewUUID()
	validSender := kernel.NewUUID()
	validOrigin := kernel.NewUUID()
	validDest := kernel.NewUUID()
	tn := parcel.NewTrackingNumber()
	now := time.Now()

	t.Run("should create Pending parcel with valid parameters", func(t *testing.T) {
		packageTypeID := kernel.NewUUID()
		planID := kernel.NewUUID()

		p, err := parcel.NewParcel(validID, validSender, tn, "Somchai", "0812345678",
			parcel.ItemFood, validOrigin, validDest, &packageTypeID, 25, &planID, 40, now)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(validID))
		assert.True(t, p.SenderID().IsEqual(validSender))
		assert.True(t, p.TrackingNumber().IsEqual(tn))
		assert.Equal(t, parcel.StatusPending, p.Status())
		assert.Equal(t, 25.0, p.PackagePrice())
		assert.Equal(t, 40.0, p.ServiceFee())
		assert.Nil(t, p.Weight())
		assert.Nil(t, p.Price())
		assert.Nil(t, p.EstimatedDelivery())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		p, err := parcel.NewParcel(invalidID, validSender, tn, "Somchai", "0812345678",
			parcel.ItemFood, validOrigin, validDest, nil, 0, nil, 0, now)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with missing receiver details", func(t *testing.T) {
		_, err := parcel.NewParcel(validID, validSender, tn, "", "0812345678",
			parcel.ItemFood, validOrigin, validDest, nil, 0, nil, 0, now)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = parcel.NewParcel(validID, validSender, tn, "Somchai", "",
			parcel.ItemFood, validOrigin, validDest, nil, 0, nil, 0, now)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with invalid item type", func(t *testing.T) {
		_, err := parcel.NewParcel(validID, validSender, tn, "Somchai", "0812345678",
			parcel.ItemType("Livestock"), validOrigin, validDest, nil, 0, nil, 0, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with zero tracking number", func(t *testing.T) {
		var zeroTN parcel.TrackingNumber

		_, err := parcel.NewParcel(validID, validSender, zeroTN, "Somchai", "0812345678",
			parcel.ItemFood, validOrigin, validDest, nil, 0, nil, 0, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with negative fees", func(t *testing.T) {
		_, err := parcel.NewParcel(validID, validSender, tn, "Somchai", "0812345678",
			parcel.ItemFood, validOrigin, validDest, nil, -1, nil, 0, now)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = parcel.NewParcel(validID, validSender, tn, "Somchai", "0812345678",
			parcel.ItemFood, validOrigin, validDest, nil, 0, nil, -5, now)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := parcel.NewParcel(invalidID, validSender, tn, "", "",
			parcel.ItemType("x"), validOrigin, validDest, nil, -1, nil, 0, now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "receiverName")
		assert.Contains(t, err.Error(), "itemType")
	})
}

func TestParcel_Validate(t *testing.T) {
	t.Run("should reject nil and zero-value parcels", func(t *testing.T) {
		var nilParcel *parcel.Parcel
		assert.ErrorIs(t, nilParcel.Validate(), parcel.ErrParcelIsNotConstructed)

		var zeroParcel parcel.Parcel
		assert.ErrorIs(t, zeroParcel.Validate(), parcel.ErrParcelIsNotConstructed)
	})
}

func TestParcel_AwaitPickup(t *testing.T) {
	t.Run("should move Pending parcel to Awaiting Pickup", func(t *testing.T) {
		p := newTestParcel(t)

		require.NoError(t, p.AwaitPickup())
		assert.Equal(t, parcel.StatusAwaitingPickup, p.Status())
	})

	t.Run("should fail on second accept", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.AwaitPickup())

		err := p.AwaitPickup()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})
}

func TestParcel_RecordMeasurements(t *testing.T) {
	dims, err := parcel.NewDimensions(30, 20, 10)
	require.NoError(t, err)
	eta := time.Now().AddDate(0, 0, 3)

	t.Run("should record measurements and start transit", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.AwaitPickup())

		require.NoError(t, p.RecordMeasurements(2.5, dims, 216, eta))

		assert.Equal(t, parcel.StatusInTransit, p.Status())
		require.NotNil(t, p.Weight())
		assert.Equal(t, 2.5, *p.Weight())
		require.NotNil(t, p.Price())
		assert.Equal(t, 216.0, *p.Price())
		require.NotNil(t, p.Dimensions())
		assert.Equal(t, 6000.0, p.Dimensions().Volume())
		require.NotNil(t, p.EstimatedDelivery())
		assert.True(t, p.EstimatedDelivery().Equal(eta))
	})

	t.Run("should be write-once", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.AwaitPickup())
		require.NoError(t, p.RecordMeasurements(2.5, dims, 216, eta))

		err := p.RecordMeasurements(3, dims, 250, eta)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
		assert.Equal(t, 2.5, *p.Weight())
		assert.Equal(t, 216.0, *p.Price())
	})

	t.Run("should fail before carrier accepted", func(t *testing.T) {
		p := newTestParcel(t)

		err := p.RecordMeasurements(2.5, dims, 216, eta)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
		assert.Equal(t, parcel.StatusPending, p.Status())
	})

	t.Run("should reject weight below minimum", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.AwaitPickup())

		err := p.RecordMeasurements(0.05, dims, 216, eta)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Nil(t, p.Weight())
	})

	t.Run("should reject negative price", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.AwaitPickup())

		err := p.RecordMeasurements(2.5, dims, -1, eta)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestParcel_Deliver(t *testing.T) {
	dims, _ := parcel.NewDimensions(30, 20, 10)

	t.Run("should deliver parcel in transit", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.AwaitPickup())
		require.NoError(t, p.RecordMeasurements(1, dims, 100, time.Now()))

		require.NoError(t, p.Deliver())
		assert.Equal(t, parcel.StatusDelivered, p.Status())
	})

	t.Run("should fail before measurements", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.AwaitPickup())

		err := p.Deliver()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})
}

func TestParcel_MarkInTransit(t *testing.T) {
	dims, _ := parcel.NewDimensions(30, 20, 10)

	t.Run("should promote awaiting pickup parcel", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.AwaitPickup())

		require.NoError(t, p.MarkInTransit())
		assert.Equal(t, parcel.StatusInTransit, p.Status())
	})

	t.Run("should keep parcel already in transit", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.AwaitPickup())
		require.NoError(t, p.RecordMeasurements(1, dims, 100, time.Now()))

		require.NoError(t, p.MarkInTransit())
		assert.Equal(t, parcel.StatusInTransit, p.Status())
	})

	t.Run("should fail for pending parcel", func(t *testing.T) {
		p := newTestParcel(t)

		err := p.MarkInTransit()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})

	t.Run("should fail for delivered parcel", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.AwaitPickup())
		require.NoError(t, p.RecordMeasurements(1, dims, 100, time.Now()))
		require.NoError(t, p.Deliver())

		err := p.MarkInTransit()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})
}

func TestRestoreParcel(t *testing.T) {
	t.Run("should restore parcel with measurement data", func(t *testing.T) {
		weight := 2.5
		price := 216.0
		dims, _ := parcel.NewDimensions(30, 20, 10)
		eta := time.Now().AddDate(0, 0, 3)

		p, err := parcel.RestoreParcel(
			kernel.NewUUID(), kernel.NewUUID(),
			parcel.NewTrackingNumber(),
			"Somchai", "0812345678",
			parcel.ItemFrozen,
			kernel.NewUUID(), kernel.NewUUID(),
			nil, 0, nil, 0,
			parcel.StatusInTransit,
			&weight, &dims, &price, &eta,
			time.Now(),
		)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, parcel.StatusInTransit, p.Status())
		assert.Equal(t, 2.5, *p.Weight())
		assert.Equal(t, 216.0, *p.Price())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := parcel.RestoreParcel(
			kernel.NewUUID(), kernel.NewUUID(),
			parcel.NewTrackingNumber(),
			"Somchai", "0812345678",
			parcel.ItemFrozen,
			kernel.NewUUID(), kernel.NewUUID(),
			nil, 0, nil, 0,
			parcel.StatusUnknown,
			nil, nil, nil, nil,
			time.Now(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

package commands

import (
	"errors"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

var ErrSubmitMeasurementsCommandIsNotConstructed = errors.New(
	"SubmitMeasurementsCommand must be created via NewSubmitMeasurementsCommand constructor",
)

const minMeasuredWeightKg = 0.1

// SubmitMeasurementsCommand is the assigned carrier's pickup report: the
// measured weight and, for sender-supplied packaging, the measured
// dimensions. Parcels shipped in a selected package take their dimensions
// from the package type, so dimensions stay nil.
type SubmitMeasurementsCommand struct { //nolint:recvcheck //using for validation
	parcelID   kernel.UUID
	carrierID  kernel.UUID
	weight     float64
	dimensions *parcel.Dimensions

	guard guard.ConstructorGuard
}

// NewSubmitMeasurementsCommand validates and builds the pickup report.
func NewSubmitMeasurementsCommand(
	parcelID, carrierID kernel.UUID, weight float64, dimensions *parcel.Dimensions,
) (SubmitMeasurementsCommand, error) {
	cmd := SubmitMeasurementsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setCarrierID(carrierID),
		cmd.setWeight(weight),
	); err != nil {
		return SubmitMeasurementsCommand{}, err
	}

	cmd.dimensions = dimensions
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitMeasurementsCommand) Validate() error {
	return c.guard.Validate(ErrSubmitMeasurementsCommandIsNotConstructed)
}

func (c SubmitMeasurementsCommand) ParcelID() kernel.UUID          { return c.parcelID }
func (c SubmitMeasurementsCommand) CarrierID() kernel.UUID         { return c.carrierID }
func (c SubmitMeasurementsCommand) Weight() float64                { return c.weight }
func (c SubmitMeasurementsCommand) Dimensions() *parcel.Dimensions { return c.dimensions }

func (c *SubmitMeasurementsCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *SubmitMeasurementsCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("carrierID", err)
	}
	c.carrierID = carrierID
	return nil
}

func (c *SubmitMeasurementsCommand) setWeight(weight float64) error {
	if weight < minMeasuredWeightKg {
		return errs.NewValueIsOutOfRangeError("weight", weight, minMeasuredWeightKg, nil)
	}
	c.weight = weight
	return nil
}

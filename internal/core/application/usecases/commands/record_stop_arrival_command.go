package commands

import (
	"errors"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

var ErrRecordStopArrivalCommandIsNotConstructed = errors.New(
	"RecordStopArrivalCommand must be created via NewRecordStopArrivalCommand constructor",
)

// RecordStopArrivalCommand is the assigned carrier's check-in at a route
// stop, reporting whether the arrival beat the planned ETA.
type RecordStopArrivalCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	carrierID kernel.UUID
	stopID    kernel.UUID
	isLate    bool

	guard guard.ConstructorGuard
}

// NewRecordStopArrivalCommand validates and builds the check-in.
func NewRecordStopArrivalCommand(
	parcelID, carrierID, stopID kernel.UUID, isLate bool,
) (RecordStopArrivalCommand, error) {
	cmd := RecordStopArrivalCommand{
		isLate: isLate,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setCarrierID(carrierID),
		cmd.setStopID(stopID),
	); err != nil {
		return RecordStopArrivalCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordStopArrivalCommand) Validate() error {
	return c.guard.Validate(ErrRecordStopArrivalCommandIsNotConstructed)
}

func (c RecordStopArrivalCommand) ParcelID() kernel.UUID  { return c.parcelID }
func (c RecordStopArrivalCommand) CarrierID() kernel.UUID { return c.carrierID }
func (c RecordStopArrivalCommand) StopID() kernel.UUID    { return c.stopID }
func (c RecordStopArrivalCommand) IsLate() bool           { return c.isLate }

func (c *RecordStopArrivalCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *RecordStopArrivalCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("carrierID", err)
	}
	c.carrierID = carrierID
	return nil
}

func (c *RecordStopArrivalCommand) setStopID(stopID kernel.UUID) error {
	if err := stopID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("stopID", err)
	}
	c.stopID = stopID
	return nil
}

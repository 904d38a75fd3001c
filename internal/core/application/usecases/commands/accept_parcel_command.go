package commands

import (
	"errors"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

var ErrAcceptParcelCommandIsNotConstructed = errors.New(
	"AcceptParcelCommand must be created via NewAcceptParcelCommand constructor",
)

// AcceptParcelCommand is a carrier's claim on a broadcast parcel. Under
// concurrent claims at most one carrier wins; the rest get a precondition
// failure.
type AcceptParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	carrierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptParcelCommand validates and builds the claim.
func NewAcceptParcelCommand(parcelID, carrierID kernel.UUID) (AcceptParcelCommand, error) {
	cmd := AcceptParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setCarrierID(carrierID),
	); err != nil {
		return AcceptParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptParcelCommand) Validate() error {
	return c.guard.Validate(ErrAcceptParcelCommandIsNotConstructed)
}

func (c AcceptParcelCommand) ParcelID() kernel.UUID  { return c.parcelID }
func (c AcceptParcelCommand) CarrierID() kernel.UUID { return c.carrierID }

func (c *AcceptParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *AcceptParcelCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("carrierID", err)
	}
	c.carrierID = carrierID
	return nil
}

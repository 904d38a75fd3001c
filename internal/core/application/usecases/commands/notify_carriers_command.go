package commands

import (
	"errors"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

var ErrNotifyCarriersCommandIsNotConstructed = errors.New(
	"NotifyCarriersCommand must be created via NewNotifyCarriersCommand constructor",
)

// NotifyCarriersCommand broadcasts a sender's pending parcel to every
// available carrier. Re-broadcasting is idempotent: the parcel's assignment
// row is created at most once.
type NotifyCarriersCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	senderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewNotifyCarriersCommand validates and builds the broadcast request.
func NewNotifyCarriersCommand(parcelID, senderID kernel.UUID) (NotifyCarriersCommand, error) {
	cmd := NotifyCarriersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setSenderID(senderID),
	); err != nil {
		return NotifyCarriersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c NotifyCarriersCommand) Validate() error {
	return c.guard.Validate(ErrNotifyCarriersCommandIsNotConstructed)
}

func (c NotifyCarriersCommand) ParcelID() kernel.UUID { return c.parcelID }
func (c NotifyCarriersCommand) SenderID() kernel.UUID { return c.senderID }

func (c *NotifyCarriersCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *NotifyCarriersCommand) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("senderID", err)
	}
	c.senderID = senderID
	return nil
}

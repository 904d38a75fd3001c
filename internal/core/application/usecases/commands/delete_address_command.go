package commands

import (
	"errors"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

var ErrDeleteAddressCommandIsNotConstructed = errors.New(
	"DeleteAddressCommand must be created via NewDeleteAddressCommand constructor",
)

// DeleteAddressCommand removes an entry from a sender's address book.
type DeleteAddressCommand struct { //nolint:recvcheck //using for validation
	userLocationID kernel.UUID
	userID         kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteAddressCommand validates and builds the deletion request.
func NewDeleteAddressCommand(userLocationID, userID kernel.UUID) (DeleteAddressCommand, error) {
	cmd := DeleteAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserLocationID(userLocationID),
		cmd.setUserID(userID),
	); err != nil {
		return DeleteAddressCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteAddressCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAddressCommandIsNotConstructed)
}

func (c DeleteAddressCommand) UserLocationID() kernel.UUID { return c.userLocationID }
func (c DeleteAddressCommand) UserID() kernel.UUID         { return c.userID }

func (c *DeleteAddressCommand) setUserLocationID(userLocationID kernel.UUID) error {
	if err := userLocationID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("userLocationID", err)
	}
	c.userLocationID = userLocationID
	return nil
}

func (c *DeleteAddressCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("userID", err)
	}
	c.userID = userID
	return nil
}

package commands

import (
	"errors"

	"parcelmarket/internal/core/domain/model/geo"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

var ErrAddAddressCommandIsNotConstructed = errors.New(
	"AddAddressCommand must be created via NewAddAddressCommand constructor",
)

// AddAddressCommand saves a labeled address into a sender's address book.
type AddAddressCommand struct { //nolint:recvcheck //using for validation
	userLocationID kernel.UUID
	userID         kernel.UUID
	name           string
	address        geo.Address

	guard guard.ConstructorGuard
}

// NewAddAddressCommand validates and builds the address-book entry request.
func NewAddAddressCommand(
	userLocationID, userID kernel.UUID, name string, address geo.Address,
) (AddAddressCommand, error) {
	cmd := AddAddressCommand{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserLocationID(userLocationID),
		cmd.setUserID(userID),
		cmd.setName(name),
	); err != nil {
		return AddAddressCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddAddressCommand) Validate() error {
	return c.guard.Validate(ErrAddAddressCommandIsNotConstructed)
}

func (c AddAddressCommand) UserLocationID() kernel.UUID { return c.userLocationID }
func (c AddAddressCommand) UserID() kernel.UUID         { return c.userID }
func (c AddAddressCommand) Name() string                { return c.name }
func (c AddAddressCommand) Address() geo.Address        { return c.address }

func (c *AddAddressCommand) setUserLocationID(userLocationID kernel.UUID) error {
	if err := userLocationID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("userLocationID", err)
	}
	c.userLocationID = userLocationID
	return nil
}

func (c *AddAddressCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("userID", err)
	}
	c.userID = userID
	return nil
}

func (c *AddAddressCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

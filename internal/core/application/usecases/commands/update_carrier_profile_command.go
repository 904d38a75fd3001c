package commands

import (
	"errors"

	"parcelmarket/internal/core/domain/model/carrier"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

var ErrUpdateCarrierProfileCommandIsNotConstructed = errors.New(
	"UpdateCarrierProfileCommand must be created via NewUpdateCarrierProfileCommand constructor",
)

// UpdateCarrierProfileCommand partially updates a carrier profile. Only the
// fields present in the patch change; at least one must be set.
type UpdateCarrierProfileCommand struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID
	patch     carrier.ProfilePatch

	guard guard.ConstructorGuard
}

// NewUpdateCarrierProfileCommand validates and builds the profile update.
func NewUpdateCarrierProfileCommand(
	carrierID kernel.UUID, patch carrier.ProfilePatch,
) (UpdateCarrierProfileCommand, error) {
	cmd := UpdateCarrierProfileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCarrierID(carrierID),
		cmd.setPatch(patch),
	); err != nil {
		return UpdateCarrierProfileCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCarrierProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCarrierProfileCommandIsNotConstructed)
}

func (c UpdateCarrierProfileCommand) CarrierID() kernel.UUID      { return c.carrierID }
func (c UpdateCarrierProfileCommand) Patch() carrier.ProfilePatch { return c.patch }

func (c *UpdateCarrierProfileCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("carrierID", err)
	}
	c.carrierID = carrierID
	return nil
}

func (c *UpdateCarrierProfileCommand) setPatch(patch carrier.ProfilePatch) error {
	if patch.IsEmpty() {
		return errs.NewValueIsRequiredError("patch")
	}
	c.patch = patch
	return nil
}

package commands

import (
	"errors"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

var ErrUpdateParcelStatusCommandIsNotConstructed = errors.New(
	"UpdateParcelStatusCommand must be created via NewUpdateParcelStatusCommand constructor",
)

// UpdateParcelStatusCommand is the assigned carrier's free-form status
// report. It is gated by the route: all warehouse stops must be resolved
// first. A "Delivered" status is the terminal transition.
type UpdateParcelStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID    kernel.UUID
	carrierID   kernel.UUID
	eventType   string
	status      string
	description string

	guard guard.ConstructorGuard
}

// NewUpdateParcelStatusCommand validates and builds the status report.
func NewUpdateParcelStatusCommand(
	parcelID, carrierID kernel.UUID, eventType, status, description string,
) (UpdateParcelStatusCommand, error) {
	cmd := UpdateParcelStatusCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setCarrierID(carrierID),
		cmd.setEvent(eventType, status),
	); err != nil {
		return UpdateParcelStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelStatusCommandIsNotConstructed)
}

func (c UpdateParcelStatusCommand) ParcelID() kernel.UUID  { return c.parcelID }
func (c UpdateParcelStatusCommand) CarrierID() kernel.UUID { return c.carrierID }
func (c UpdateParcelStatusCommand) EventType() string      { return c.eventType }
func (c UpdateParcelStatusCommand) Status() string         { return c.status }
func (c UpdateParcelStatusCommand) Description() string    { return c.description }

func (c *UpdateParcelStatusCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *UpdateParcelStatusCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("carrierID", err)
	}
	c.carrierID = carrierID
	return nil
}

func (c *UpdateParcelStatusCommand) setEvent(eventType, status string) error {
	if eventType == "" {
		return errs.NewValueIsRequiredError("eventType")
	}
	if status == "" {
		return errs.NewValueIsRequiredError("status")
	}
	c.eventType = eventType
	c.status = status
	return nil
}

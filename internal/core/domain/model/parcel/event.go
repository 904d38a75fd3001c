package parcel

import (
	"errors"
	"time"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

var ErrShipmentEventIsNotConstructed = errors.New(
	"ShipmentEvent must be created via NewShipmentEvent constructor")

// ShipmentEvent is one immutable entry in a parcel's tracking history. Events
// are append-only; a recorded event is never edited or deleted.
type ShipmentEvent struct {
	id          kernel.UUID
	parcelID    kernel.UUID
	eventType   string
	status      string
	description string
	locationID  *kernel.UUID
	occurredAt  time.Time

	guard guard.ConstructorGuard
}

// NewShipmentEvent records a tracking event. The optional locationID points at
// the stop or warehouse where the event happened.
func NewShipmentEvent(
	id, parcelID kernel.UUID,
	eventType, status, description string,
	locationID *kernel.UUID,
	occurredAt time.Time,
) (*ShipmentEvent, error) {
	if err := errors.Join(id.Validate(), parcelID.Validate()); err != nil {
		return nil, err
	}
	if eventType == "" {
		return nil, errs.NewValueIsRequiredError("eventType")
	}
	if status == "" {
		return nil, errs.NewValueIsRequiredError("status")
	}
	if locationID != nil {
		if err := locationID.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("locationID", err)
		}
	}

	return &ShipmentEvent{
		id:          id,
		parcelID:    parcelID,
		eventType:   eventType,
		status:      status,
		description: description,
		locationID:  locationID,
		occurredAt:  occurredAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreShipmentEvent reconstructs an event from persistence.
func RestoreShipmentEvent(
	id, parcelID kernel.UUID,
	eventType, status, description string,
	locationID *kernel.UUID,
	occurredAt time.Time,
) (*ShipmentEvent, error) {
	return NewShipmentEvent(id, parcelID, eventType, status, description, locationID, occurredAt)
}

func (e *ShipmentEvent) Validate() error {
	if e == nil {
		return ErrShipmentEventIsNotConstructed
	}
	return e.guard.Validate(ErrShipmentEventIsNotConstructed)
}

func (e *ShipmentEvent) ID() kernel.UUID { return e.id }
func (e *ShipmentEvent) ParcelID() kernel.UUID { return e.parcelID }
func (e *ShipmentEvent) EventType() string { return e.eventType }
func (e *ShipmentEvent) Status() string { return e.status }
func (e *ShipmentEvent) Description() string { return e.description }
func (e *ShipmentEvent) LocationID() *kernel.UUID { return e.locationID }
func (e *ShipmentEvent) OccurredAt() time.Time { return e.occurredAt }

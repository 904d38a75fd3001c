package route

import (
	"errors"
	"fmt"
	"time"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

var ErrStopIsNotConstructed = errors.New("Stop must be created via NewStop constructor")

// StopType distinguishes the three kinds of route stops.
type StopType string

const (
	StopOrigin      StopType = "Origin"
	StopWarehouse   StopType = "Warehouse"
	StopDestination StopType = "Destination"
)

func (t StopType) Validate() error {
	switch t {
	case StopOrigin, StopWarehouse, StopDestination:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"stopType", fmt.Errorf("%q is not a valid stop type", string(t)))
	}
}

func (t StopType) String() string {
	return string(t)
}

// StopStatus tracks whether the carrier has reached a stop and whether the
// arrival beat the planned ETA.
type StopStatus string

const (
	StopPending   StopStatus = "Pending"
	StopCompleted StopStatus = "Completed"
	StopLate      StopStatus = "Late"
)

func (s StopStatus) Validate() error {
	switch s {
	case StopPending, StopCompleted, StopLate:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"stopStatus", fmt.Errorf("%q is not a valid stop status", string(s)))
	}
}

func (s StopStatus) String() string {
	return string(s)
}

// IsResolved reports whether the carrier has checked in at the stop.
func (s StopStatus) IsResolved() bool {
	return s == StopCompleted || s == StopLate
}

// Stop is one waypoint on a parcel's route. Stops are created Pending with a
// planned ETA and resolve to Completed or Late exactly once when the carrier
// checks in. Warehouse stops carry the ID of the warehouse they pass through.
type Stop struct {
	id          kernel.UUID
	sequence    int
	stopType    StopType
	locationID  kernel.UUID
	warehouseID *kernel.UUID
	eta         time.Time
	status      StopStatus
	arrivedAt   *time.Time

	guard guard.ConstructorGuard
}

// NewStop creates a Pending stop. Sequence numbering starts at 1 with the
// origin. warehouseID is required for warehouse stops and forbidden otherwise.
func NewStop(
	id kernel.UUID, sequence int, stopType StopType, locationID kernel.UUID,
	warehouseID *kernel.UUID, eta time.Time,
) (*Stop, error) {
	if err := errors.Join(id.Validate(), stopType.Validate(), locationID.Validate()); err != nil {
		return nil, err
	}
	if sequence < 1 {
		return nil, errs.NewValueIsOutOfRangeError("sequence", sequence, 1, nil)
	}
	if stopType == StopWarehouse && warehouseID == nil {
		return nil, errs.NewValueIsRequiredError("warehouseID")
	}
	if stopType != StopWarehouse && warehouseID != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"warehouseID", fmt.Errorf("%s stops cannot reference a warehouse", stopType))
	}
	if warehouseID != nil {
		if err := warehouseID.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("warehouseID", err)
		}
	}

	return &Stop{
		id:          id,
		sequence:    sequence,
		stopType:    stopType,
		locationID:  locationID,
		warehouseID: warehouseID,
		eta:         eta,
		status:      StopPending,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreStop reconstructs a stop from persistence.
func RestoreStop(
	id kernel.UUID, sequence int, stopType StopType, locationID kernel.UUID,
	warehouseID *kernel.UUID, eta time.Time, status StopStatus, arrivedAt *time.Time,
) (*Stop, error) {
	s, err := NewStop(id, sequence, stopType, locationID, warehouseID, eta)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	s.status = status
	s.arrivedAt = arrivedAt
	return s, nil
}

func (s *Stop) Validate() error {
	if s == nil {
		return ErrStopIsNotConstructed
	}
	return s.guard.Validate(ErrStopIsNotConstructed)
}

func (s *Stop) ID() kernel.UUID { return s.id }
func (s *Stop) Sequence() int { return s.sequence }
func (s *Stop) Type() StopType { return s.stopType }
func (s *Stop) LocationID() kernel.UUID { return s.locationID }
func (s *Stop) WarehouseID() *kernel.UUID { return s.warehouseID }
func (s *Stop) ETA() time.Time { return s.eta }
func (s *Stop) Status() StopStatus { return s.status }
func (s *Stop) ArrivedAt() *time.Time { return s.arrivedAt }

// arrive resolves the stop to Completed or Late. One-way: a second arrival
// fails.
func (s *Stop) arrive(at time.Time, isLate bool) error {
	if s.status.IsResolved() {
		return errs.NewPreconditionFailedError(
			fmt.Sprintf("stop %s was already visited", s.id))
	}

	if isLate {
		s.status = StopLate
	} else {
		s.status = StopCompleted
	}
	s.arrivedAt = &at
	return nil
}

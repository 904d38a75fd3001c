package parcel

import (
	"errors"
	"fmt"
	"time"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

var ErrAssignmentIsNotConstructed = errors.New(
	"Assignment must be created via NewAssignment constructor")

// AssignmentStatus tracks whether a broadcast offer was claimed.
type AssignmentStatus int

const (
	AssignmentUnknown AssignmentStatus = iota
	AssignmentPending
	AssignmentAccepted
)

func (s AssignmentStatus) String() string {
	switch s {
	case AssignmentPending:
		return "Pending"
	case AssignmentAccepted:
		return "Accepted"
	default:
		return "Unknown"
	}
}

func (s AssignmentStatus) Validate() error {
	if s != AssignmentPending && s != AssignmentAccepted {
		return errs.NewValueIsInvalidErrorWithCause(
			"assignmentStatus", fmt.Errorf("%d is not a valid assignment status", s))
	}
	return nil
}

// Assignment is the single claimable offer of a parcel to the carrier pool.
// One Pending assignment exists per parcel; the first carrier to Accept it
// wins. Under concurrent accepts the row is locked, so the loser observes
// Accepted and gets a precondition error.
type Assignment struct {
	id        kernel.UUID
	parcelID  kernel.UUID
	carrierID *kernel.UUID
	status    AssignmentStatus
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewAssignment creates a Pending assignment with no carrier.
func NewAssignment(id, parcelID kernel.UUID, createdAt time.Time) (*Assignment, error) {
	if err := errors.Join(id.Validate(), parcelID.Validate()); err != nil {
		return nil, err
	}

	return &Assignment{
		id:        id,
		parcelID:  parcelID,
		status:    AssignmentPending,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreAssignment reconstructs an assignment from persistence.
func RestoreAssignment(
	id, parcelID kernel.UUID, carrierID *kernel.UUID, status AssignmentStatus, createdAt time.Time,
) (*Assignment, error) {
	a, err := NewAssignment(id, parcelID, createdAt)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if carrierID != nil {
		if err := carrierID.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("carrierID", err)
		}
	}

	a.status = status
	a.carrierID = carrierID
	return a, nil
}

func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

func (a *Assignment) ID() kernel.UUID { return a.id }
func (a *Assignment) ParcelID() kernel.UUID { return a.parcelID }
func (a *Assignment) CarrierID() *kernel.UUID { return a.carrierID }
func (a *Assignment) Status() AssignmentStatus { return a.status }
func (a *Assignment) CreatedAt() time.Time { return a.createdAt }

// Accept claims the assignment for a carrier. Fails with a precondition error
// if the assignment was already accepted.
func (a *Assignment) Accept(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("carrierID", err)
	}
	if a.status != AssignmentPending {
		return errs.NewPreconditionFailedError("parcel was already accepted by another carrier")
	}

	a.status = AssignmentAccepted
	a.carrierID = &carrierID
	return nil
}

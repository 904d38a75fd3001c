package parcel

import (
	"fmt"

	"parcelmarket/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
//
// State transitions:
//
//	Pending ──> Awaiting Pickup ──> In Transit ──> Delivered
//
// A parcel stays Pending indefinitely if no carrier ever accepts it. Each
// transition is one-way; Delivered is terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status: the parcel waits for a carrier.
	StatusPending

	// StatusAwaitingPickup means a carrier accepted and will pick up the
	// parcel. Measurements have not been submitted yet.
	StatusAwaitingPickup

	// StatusInTransit means the parcel was picked up, measured, and charged.
	StatusInTransit

	// StatusDelivered is the terminal status.
	StatusDelivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "Unknown",
		StatusPending:        "Pending",
		StatusAwaitingPickup: "Awaiting Pickup",
		StatusInTransit:      "In Transit",
		StatusDelivered:      "Delivered",
	}
}

// StatusFromString resolves the wire representation ("Awaiting Pickup") back
// to a Status. Returns StatusUnknown with an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid parcel status", s))
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// AwaitPickup transitions Pending -> Awaiting Pickup (carrier accepted).
func (s Status) AwaitPickup() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewPreconditionFailedError(
			fmt.Sprintf("%s is not a valid status to accept", s))
	}
	return StatusAwaitingPickup, nil
}

// StartTransit transitions Awaiting Pickup -> In Transit (measurements
// submitted and the delivery price charged).
func (s Status) StartTransit() (Status, error) {
	if s != StatusAwaitingPickup {
		return 0, errs.NewPreconditionFailedError(
			fmt.Sprintf("%s is not a valid status to start transit", s))
	}
	return StatusInTransit, nil
}

// Deliver transitions In Transit -> Delivered. Terminal.
func (s Status) Deliver() (Status, error) {
	if s != StatusInTransit {
		return 0, errs.NewPreconditionFailedError(
			fmt.Sprintf("%s is not a valid status to deliver", s))
	}
	return StatusDelivered, nil
}

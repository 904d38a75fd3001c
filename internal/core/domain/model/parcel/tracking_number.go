package parcel

import (
	"fmt"
	"math/rand/v2"
	"regexp"

	"parcelmarket/internal/pkg/errs"
)

const (
	trackingNumberLength  = 12
	trackingNumberCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var trackingNumberPattern = regexp.MustCompile(`^[A-Z0-9]{12}$`)

// TrackingNumber is the public, globally unique identifier of a parcel:
// 12 characters drawn from [A-Z0-9]. Uniqueness is enforced by a unique
// database constraint; callers retry generation on a collision.
type TrackingNumber struct {
	value string
}

// NewTrackingNumber generates a random tracking number.
func NewTrackingNumber() TrackingNumber {
	b := make([]byte, trackingNumberLength)
	for i := range b {
		b[i] = trackingNumberCharset[rand.IntN(len(trackingNumberCharset))] //nolint:gosec // not a secret
	}
	return TrackingNumber{value: string(b)}
}

// TrackingNumberFromString validates a wire value.
func TrackingNumberFromString(s string) (TrackingNumber, error) {
	if !trackingNumberPattern.MatchString(s) {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"trackingNumber", fmt.Errorf("%q does not match 12-char [A-Z0-9] format", s))
	}
	return TrackingNumber{value: s}, nil
}

func (t TrackingNumber) String() string {
	return t.value
}

func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}

// Validate returns an error for the zero value or a malformed number.
func (t TrackingNumber) Validate() error {
	if !trackingNumberPattern.MatchString(t.value) {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	return nil
}

// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries bypass the domain model and read via SQL into purpose-built
// response structs.
package queries

import (
	"errors"
	"time"

	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/pkg/guard"
)

var ErrTrackParcelQueryIsNotConstructed = errors.New(
	"TrackParcelQuery must be created via NewTrackParcelQuery constructor",
)

// TrackParcelQuery is the public tracking lookup. Anyone holding a tracking
// number may call it, so the response carries no prices and no party
// identifiers.
type TrackParcelQuery struct {
	trackingNumber parcel.TrackingNumber

	guard guard.ConstructorGuard
}

// NewTrackParcelQuery creates a tracking lookup for the given number.
func NewTrackParcelQuery(trackingNumber parcel.TrackingNumber) (TrackParcelQuery, error) {
	if err := trackingNumber.Validate(); err != nil {
		return TrackParcelQuery{}, err
	}

	return TrackParcelQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackParcelQuery) Validate() error {
	return q.guard.Validate(ErrTrackParcelQueryIsNotConstructed)
}

func (q TrackParcelQuery) TrackingNumber() parcel.TrackingNumber {
	return q.trackingNumber
}

// TrackParcelQueryResponse is the public view of a shipment.
type TrackParcelQueryResponse struct {
	TrackingNumber    string
	Status            string
	EstimatedDelivery *time.Time
	CreatedAt         time.Time
	Events            []TrackParcelEvent
}

// TrackParcelEvent is one entry of the public event timeline.
type TrackParcelEvent struct {
	EventType   string
	Status      string
	Description string
	OccurredAt  time.Time
}

package ports

import (
	"context"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel. Fails on a tracking number collision, which
	// callers resolve by regenerating and retrying.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByTrackingNumber retrieves a parcel by its public tracking number.
	GetByTrackingNumber(ctx context.Context, trackingNumber parcel.TrackingNumber) (*parcel.Parcel, error)

	// ListPending retrieves all parcels still waiting for a carrier.
	ListPending(ctx context.Context) ([]*parcel.Parcel, error)
}

// AssignmentRepository defines the persistence contract for parcel
// assignments. A parcel has at most one assignment.
type AssignmentRepository interface {
	// Add persists a new assignment.
	Add(ctx context.Context, aggregate *parcel.Assignment) error

	// Update persists changes to an existing assignment.
	Update(ctx context.Context, aggregate *parcel.Assignment) error

	// GetByParcel retrieves the assignment of a parcel.
	GetByParcel(ctx context.Context, parcelID kernel.UUID) (*parcel.Assignment, error)

	// GetByParcelForUpdate retrieves the assignment of a parcel with a row
	// lock held until the surrounding transaction ends. Serializes
	// concurrent accept attempts so at most one carrier wins.
	GetByParcelForUpdate(ctx context.Context, parcelID kernel.UUID) (*parcel.Assignment, error)
}

// EventRepository defines the persistence contract for the append-only
// shipment event log. Events are never updated or deleted.
type EventRepository interface {
	// Add appends a shipment event.
	Add(ctx context.Context, event *parcel.ShipmentEvent) error

	// ListByParcel retrieves a parcel's events in chronological order.
	ListByParcel(ctx context.Context, parcelID kernel.UUID) ([]*parcel.ShipmentEvent, error)
}

package ports

import (
	"context"

	"parcelmarket/internal/core/domain/model/geo"
	"parcelmarket/internal/core/domain/model/kernel"
)

// LocationRepository defines the persistence contract for deduplicated
// locations and the user address book built on them.
type LocationRepository interface {
	// GetOrCreate returns the existing location with the same address tuple
	// or persists the given one. The address tuple carries a unique
	// constraint; a concurrent insert race resolves by fetching the row the
	// winner created.
	GetOrCreate(ctx context.Context, location *geo.Location) (*geo.Location, error)

	// Get retrieves a location by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*geo.Location, error)

	// Delete removes a location row. Callers must check ReferenceCount
	// first; the two calls run in the same transaction.
	Delete(ctx context.Context, id kernel.UUID) error

	// ReferenceCount counts rows referencing the location across user
	// addresses, parcel endpoints, warehouses and route stops.
	ReferenceCount(ctx context.Context, locationID kernel.UUID) (int64, error)

	// AddUserLocation persists an address-book entry.
	AddUserLocation(ctx context.Context, userLocation *geo.UserLocation) error

	// GetUserLocation retrieves an address-book entry by its identifier.
	GetUserLocation(ctx context.Context, id kernel.UUID) (*geo.UserLocation, error)

	// ListUserLocations retrieves a user's address book.
	ListUserLocations(ctx context.Context, userID kernel.UUID) ([]*geo.UserLocation, error)

	// DeleteUserLocation removes an address-book entry.
	DeleteUserLocation(ctx context.Context, id kernel.UUID) error
}

package ports

import (
	"context"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for route aggregates and
// their stops.
type RouteRepository interface {
	// Add persists a new route with all its stops.
	Add(ctx context.Context, aggregate *route.Route) error

	// Update persists changes to a route and its stops.
	Update(ctx context.Context, aggregate *route.Route) error

	// GetByParcel retrieves the route planned for a parcel.
	GetByParcel(ctx context.Context, parcelID kernel.UUID) (*route.Route, error)
}

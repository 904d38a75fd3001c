package route

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

var ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")

// RouteStatus tracks route progress as a whole.
type RouteStatus string

const (
	RoutePlanning  RouteStatus = "Planning"
	RouteCompleted RouteStatus = "Completed"
)

func (s RouteStatus) Validate() error {
	switch s {
	case RoutePlanning, RouteCompleted:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"routeStatus", fmt.Errorf("%q is not a valid route status", string(s)))
	}
}

func (s RouteStatus) String() string {
	return string(s)
}

// Route is the planned path of a parcel: an ordered list of stops starting at
// the origin, passing through zero or more warehouses and ending at the
// destination. The route gates status updates: while any warehouse stop is
// still Pending, only stop arrivals may advance the parcel.
type Route struct {
	id       kernel.UUID
	parcelID kernel.UUID
	status   RouteStatus
	stops    []*Stop

	guard guard.ConstructorGuard
}

// NewRoute creates a Planning route over the given stops. Stops are sorted by
// sequence; the first must be the origin and the last the destination.
func NewRoute(id, parcelID kernel.UUID, stops []*Stop) (*Route, error) {
	if err := errors.Join(id.Validate(), parcelID.Validate()); err != nil {
		return nil, err
	}
	if len(stops) < 2 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"stops", fmt.Errorf("a route needs at least 2 stops, got %d", len(stops)))
	}

	sorted := make([]*Stop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Sequence() < sorted[j].Sequence() })

	for _, s := range sorted {
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}
	if sorted[0].Type() != StopOrigin {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"stops", errors.New("the first stop must be the origin"))
	}
	if sorted[len(sorted)-1].Type() != StopDestination {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"stops", errors.New("the last stop must be the destination"))
	}

	return &Route{
		id:       id,
		parcelID: parcelID,
		status:   RoutePlanning,
		stops:    sorted,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// RestoreRoute reconstructs a route from persistence.
func RestoreRoute(id, parcelID kernel.UUID, status RouteStatus, stops []*Stop) (*Route, error) {
	r, err := NewRoute(id, parcelID, stops)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	r.status = status
	return r, nil
}

func (r *Route) Validate() error {
	if r == nil {
		return ErrRouteIsNotConstructed
	}
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

func (r *Route) ID() kernel.UUID { return r.id }
func (r *Route) ParcelID() kernel.UUID { return r.parcelID }
func (r *Route) Status() RouteStatus { return r.status }

// Stops returns the stops in sequence order. The slice is a copy; the stops
// themselves are shared.
func (r *Route) Stops() []*Stop {
	out := make([]*Stop, len(r.stops))
	copy(out, r.stops)
	return out
}

// StopByID finds a stop on this route.
func (r *Route) StopByID(stopID kernel.UUID) (*Stop, error) {
	for _, s := range r.stops {
		if s.ID().IsEqual(stopID) {
			return s, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("stopID", stopID)
}

// RecordArrival resolves the stop to Completed or Late and returns it. When
// the arrival leaves no Pending stops, the route flips to Completed. Fails if
// the stop is not on this route or was already visited.
func (r *Route) RecordArrival(stopID kernel.UUID, at time.Time, isLate bool) (*Stop, error) {
	stop, err := r.StopByID(stopID)
	if err != nil {
		return nil, err
	}
	if err := stop.arrive(at, isLate); err != nil {
		return nil, err
	}

	if r.allStopsResolved() {
		r.status = RouteCompleted
	}
	return stop, nil
}

// HasPendingWarehouseStops reports whether any warehouse stop is still
// Pending. While true, general status updates on the parcel are blocked.
func (r *Route) HasPendingWarehouseStops() bool {
	for _, s := range r.stops {
		if s.Type() == StopWarehouse && !s.Status().IsResolved() {
			return true
		}
	}
	return false
}

func (r *Route) allStopsResolved() bool {
	for _, s := range r.stops {
		if !s.Status().IsResolved() {
			return false
		}
	}
	return true
}

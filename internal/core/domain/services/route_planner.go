package services

import (
	"math/rand/v2"
	"time"

	"parcelmarket/internal/core/domain/model/catalog"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/route"
	"parcelmarket/internal/pkg/errs"
)

const (
	minWarehouseStops = 2
	maxWarehouseStops = 4

	originStopLeadTime = 2 * time.Hour
	stopSpacing        = 6 * time.Hour
)

// RouteStopPlanner builds the ordered stop list for a new parcel: the origin,
// a random selection of active warehouses and the destination. Random routing
// simulates a multi-hop network without geographic optimization; the ETA
// spacing is a fixed heuristic.
type RouteStopPlanner struct{}

// NewRouteStopPlanner creates a RouteStopPlanner.
func NewRouteStopPlanner() RouteStopPlanner {
	return RouteStopPlanner{}
}

// PlanStops produces the stop list for a parcel traveling from origin to
// destination. Given n candidate warehouses, it picks a uniform K in
// [min(2,n), min(4,n)] distinct warehouses uniformly at random. ETAs: origin
// at now+2h, each subsequent stop at now + 6h * sequence.
func (p RouteStopPlanner) PlanStops(
	originLocationID, destLocationID kernel.UUID,
	warehouses []catalog.Warehouse,
	now time.Time,
) ([]*route.Stop, error) {
	if err := originLocationID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("originLocationID", err)
	}
	if err := destLocationID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("destLocationID", err)
	}

	selected := p.sampleWarehouses(warehouses)

	stops := make([]*route.Stop, 0, len(selected)+2)
	origin, err := route.NewStop(kernel.NewUUID(), 1, route.StopOrigin,
		originLocationID, nil, now.Add(originStopLeadTime))
	if err != nil {
		return nil, err
	}
	stops = append(stops, origin)

	seq := 2
	for _, w := range selected {
		warehouseID := w.ID
		stop, err := route.NewStop(kernel.NewUUID(), seq, route.StopWarehouse,
			w.LocationID, &warehouseID, now.Add(time.Duration(seq)*stopSpacing))
		if err != nil {
			return nil, err
		}
		stops = append(stops, stop)
		seq++
	}

	dest, err := route.NewStop(kernel.NewUUID(), seq, route.StopDestination,
		destLocationID, nil, now.Add(time.Duration(seq)*stopSpacing))
	if err != nil {
		return nil, err
	}
	return append(stops, dest), nil
}

// sampleWarehouses draws K distinct warehouses uniformly without replacement,
// with K uniform in [min(2,n), min(4,n)]. An empty candidate list yields a
// direct origin-to-destination route.
func (p RouteStopPlanner) sampleWarehouses(warehouses []catalog.Warehouse) []catalog.Warehouse {
	n := len(warehouses)
	if n == 0 {
		return nil
	}

	low := min(minWarehouseStops, n)
	high := min(maxWarehouseStops, n)
	k := low + rand.IntN(high-low+1) //nolint:gosec // routing randomness, not security

	shuffled := make([]catalog.Warehouse, n)
	copy(shuffled, warehouses)
	rand.Shuffle(n, func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:k]
}

// Package routerepo provides data transfer objects and mapping functions for
// route persistence. A route row owns its ordered stop rows; both are loaded
// and saved together because the route aggregate decides completion from the
// full stop list.
package routerepo

import (
	"time"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// RouteDTO represents the database structure for persisting route aggregates.
type RouteDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Status   string
	Stops    []StopDTO `gorm:"foreignKey:RouteID"`
}

func (RouteDTO) TableName() string {
	return "routes"
}

// StopDTO represents one waypoint row of a route.
type StopDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RouteID     uuid.UUID `gorm:"type:uuid;index"`
	Sequence    int
	StopType    string
	LocationID  uuid.UUID  `gorm:"type:uuid;index"`
	WarehouseID *uuid.UUID `gorm:"type:uuid"`
	Eta         time.Time
	Status      string
	ArrivedAt   *time.Time
}

func (StopDTO) TableName() string {
	return "route_stops"
}

func fromDomain(r *route.Route) RouteDTO {
	stops := r.Stops()
	stopDTOs := make([]StopDTO, 0, len(stops))
	for _, s := range stops {
		var warehouseID *uuid.UUID
		if id := s.WarehouseID(); id != nil {
			raw := id.Bytes()
			warehouseID = &raw
		}

		stopDTOs = append(stopDTOs, StopDTO{
			ID:          s.ID().Bytes(),
			RouteID:     r.ID().Bytes(),
			Sequence:    s.Sequence(),
			StopType:    s.Type().String(),
			LocationID:  s.LocationID().Bytes(),
			WarehouseID: warehouseID,
			Eta:         s.ETA(),
			Status:      s.Status().String(),
			ArrivedAt:   s.ArrivedAt(),
		})
	}

	return RouteDTO{
		ID:       r.ID().Bytes(),
		ParcelID: r.ParcelID().Bytes(),
		Status:   r.Status().String(),
		Stops:    stopDTOs,
	}
}

func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	stops := make([]*route.Stop, 0, len(dto.Stops))
	for _, sd := range dto.Stops {
		stop, stopErr := stopToDomain(sd)
		if stopErr != nil {
			return nil, stopErr
		}
		stops = append(stops, stop)
	}

	return route.RestoreRoute(id, parcelID, route.RouteStatus(dto.Status), stops)
}

func stopToDomain(dto StopDTO) (*route.Stop, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	locationID, err := kernel.UUIDFromBytes(dto.LocationID[:])
	if err != nil {
		return nil, err
	}

	var warehouseID *kernel.UUID
	if dto.WarehouseID != nil {
		wID, wErr := kernel.UUIDFromBytes((*dto.WarehouseID)[:])
		if wErr != nil {
			return nil, wErr
		}
		warehouseID = &wID
	}

	return route.RestoreStop(
		id, dto.Sequence, route.StopType(dto.StopType), locationID,
		warehouseID, dto.Eta, route.StopStatus(dto.Status), dto.ArrivedAt)
}

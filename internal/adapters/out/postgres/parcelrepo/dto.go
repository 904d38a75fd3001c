// Package parcelrepo provides data transfer objects and mapping functions for
// the parcel aggregate cluster: the parcel itself, its single claimable
// assignment and the append-only shipment event log.
package parcelrepo

import (
	"time"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. The tracking number carries a unique index; callers retry
// creation on a collision.
type ParcelDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	SenderID       uuid.UUID `gorm:"type:uuid;index"`
	TrackingNumber string    `gorm:"uniqueIndex"`

	ReceiverName  string
	ReceiverPhone string
	ItemType      string

	OriginLocationID      uuid.UUID `gorm:"type:uuid;index"`
	DestinationLocationID uuid.UUID `gorm:"type:uuid;index"`

	PackageTypeID  *uuid.UUID `gorm:"type:uuid"`
	PackagePrice   float64
	DeliveryPlanID *uuid.UUID `gorm:"type:uuid"`
	ServiceFee     float64

	Weight            *float64
	DimX              *float64
	DimY              *float64
	DimZ              *float64
	Price             *float64
	EstimatedDelivery *time.Time

	Status    string `gorm:"index"`
	CreatedAt time.Time
}

func (ParcelDTO) TableName() string {
	return "parcels"
}

// AssignmentDTO represents the single claimable offer row of a parcel.
// Status is stored as the domain's integer code; the unique index on
// parcel_id guarantees at most one assignment per parcel.
type AssignmentDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ParcelID  uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	CarrierID *uuid.UUID `gorm:"type:uuid;index"`
	Status    int
	CreatedAt time.Time
}

func (AssignmentDTO) TableName() string {
	return "assignments"
}

// EventDTO represents one immutable tracking history entry.
type EventDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID    uuid.UUID `gorm:"type:uuid;index"`
	EventType   string
	Status      string
	Description string
	LocationID  *uuid.UUID `gorm:"type:uuid"`
	OccurredAt  time.Time  `gorm:"index"`
}

func (EventDTO) TableName() string {
	return "shipment_events"
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalUUIDFromBytes(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parcelFromDomain(p *parcel.Parcel) ParcelDTO {
	dto := ParcelDTO{
		ID:                    p.ID().Bytes(),
		SenderID:              p.SenderID().Bytes(),
		TrackingNumber:        p.TrackingNumber().String(),
		ReceiverName:          p.ReceiverName(),
		ReceiverPhone:         p.ReceiverPhone(),
		ItemType:              p.ItemType().String(),
		OriginLocationID:      p.OriginLocationID().Bytes(),
		DestinationLocationID: p.DestLocationID().Bytes(),
		PackageTypeID:         optionalUUID(p.PackageTypeID()),
		PackagePrice:          p.PackagePrice(),
		DeliveryPlanID:        optionalUUID(p.DeliveryPlanID()),
		ServiceFee:            p.ServiceFee(),
		Weight:                p.Weight(),
		Price:                 p.Price(),
		EstimatedDelivery:     p.EstimatedDelivery(),
		Status:                p.Status().String(),
		CreatedAt:             p.CreatedAt(),
	}

	if dims := p.Dimensions(); dims != nil {
		x, y, z := dims.X(), dims.Y(), dims.Z()
		dto.DimX, dto.DimY, dto.DimZ = &x, &y, &z
	}

	return dto
}

func parcelToDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}
	originID, err := kernel.UUIDFromBytes(dto.OriginLocationID[:])
	if err != nil {
		return nil, err
	}
	destID, err := kernel.UUIDFromBytes(dto.DestinationLocationID[:])
	if err != nil {
		return nil, err
	}
	packageTypeID, err := optionalUUIDFromBytes(dto.PackageTypeID)
	if err != nil {
		return nil, err
	}
	deliveryPlanID, err := optionalUUIDFromBytes(dto.DeliveryPlanID)
	if err != nil {
		return nil, err
	}

	trackingNumber, err := parcel.TrackingNumberFromString(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}
	itemType, err := parcel.ItemTypeFromString(dto.ItemType)
	if err != nil {
		return nil, err
	}
	status, err := parcel.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var dimensions *parcel.Dimensions
	if dto.DimX != nil && dto.DimY != nil && dto.DimZ != nil {
		dims, dimErr := parcel.NewDimensions(*dto.DimX, *dto.DimY, *dto.DimZ)
		if dimErr != nil {
			return nil, dimErr
		}
		dimensions = &dims
	}

	return parcel.RestoreParcel(
		id, senderID, trackingNumber,
		dto.ReceiverName, dto.ReceiverPhone, itemType,
		originID, destID,
		packageTypeID, dto.PackagePrice, deliveryPlanID, dto.ServiceFee,
		status, dto.Weight, dimensions, dto.Price, dto.EstimatedDelivery,
		dto.CreatedAt,
	)
}

func assignmentFromDomain(a *parcel.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:        a.ID().Bytes(),
		ParcelID:  a.ParcelID().Bytes(),
		CarrierID: optionalUUID(a.CarrierID()),
		Status:    int(a.Status()),
		CreatedAt: a.CreatedAt(),
	}
}

func assignmentToDomain(dto AssignmentDTO) (*parcel.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}
	carrierID, err := optionalUUIDFromBytes(dto.CarrierID)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreAssignment(
		id, parcelID, carrierID, parcel.AssignmentStatus(dto.Status), dto.CreatedAt)
}

func eventFromDomain(e *parcel.ShipmentEvent) EventDTO {
	return EventDTO{
		ID:          e.ID().Bytes(),
		ParcelID:    e.ParcelID().Bytes(),
		EventType:   e.EventType(),
		Status:      e.Status(),
		Description: e.Description(),
		LocationID:  optionalUUID(e.LocationID()),
		OccurredAt:  e.OccurredAt(),
	}
}

func eventToDomain(dto EventDTO) (*parcel.ShipmentEvent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}
	locationID, err := optionalUUIDFromBytes(dto.LocationID)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreShipmentEvent(
		id, parcelID, dto.EventType, dto.Status, dto.Description, locationID, dto.OccurredAt)
}

// Package carrierrepo provides data transfer objects and mapping functions
// for carrier profile persistence.
package carrierrepo

import (
	"parcelmarket/internal/core/domain/model/carrier"
	"parcelmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CarrierDTO represents the database structure for persisting carrier
// profiles. is_available is indexed because broadcasts filter on it.
type CarrierDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Phone        string
	VehicleType  string
	LicensePlate string
	IsAvailable  bool `gorm:"index"`
}

func (CarrierDTO) TableName() string {
	return "carriers"
}

func fromDomain(c *carrier.Carrier) CarrierDTO {
	return CarrierDTO{
		ID:           c.ID().Bytes(),
		Name:         c.Name(),
		Phone:        c.Phone(),
		VehicleType:  c.VehicleType(),
		LicensePlate: c.LicensePlate(),
		IsAvailable:  c.IsAvailable(),
	}
}

func toDomain(dto CarrierDTO) (*carrier.Carrier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return carrier.RestoreCarrier(
		id, dto.Name, dto.Phone, dto.VehicleType, dto.LicensePlate, dto.IsAvailable)
}

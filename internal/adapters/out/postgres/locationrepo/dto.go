// Package locationrepo provides data transfer objects and mapping functions
// for deduplicated locations and the user address book built on them.
package locationrepo

import (
	"parcelmarket/internal/core/domain/model/geo"
	"parcelmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// LocationDTO represents one deduplicated physical place. The composite
// unique index over the address tuple is what makes deduplication hold under
// concurrent inserts.
type LocationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Address     string    `gorm:"uniqueIndex:idx_location_tuple"`
	District    string    `gorm:"uniqueIndex:idx_location_tuple"`
	Subdistrict string    `gorm:"uniqueIndex:idx_location_tuple"`
	Province    string    `gorm:"uniqueIndex:idx_location_tuple"`
	Country     string    `gorm:"uniqueIndex:idx_location_tuple"`
}

func (LocationDTO) TableName() string {
	return "locations"
}

// UserLocationDTO represents one address-book entry.
type UserLocationDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;index"`
	LocationID uuid.UUID `gorm:"type:uuid;index"`
	Name       string
}

func (UserLocationDTO) TableName() string {
	return "user_locations"
}

func locationFromDomain(l *geo.Location) LocationDTO {
	addr := l.Address()
	return LocationDTO{
		ID:          l.ID().Bytes(),
		Address:     addr.Address,
		District:    addr.District,
		Subdistrict: addr.Subdistrict,
		Province:    addr.Province,
		Country:     addr.Country,
	}
}

func locationToDomain(dto LocationDTO) (*geo.Location, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return geo.RestoreLocation(id, geo.Address{
		Address:     dto.Address,
		District:    dto.District,
		Subdistrict: dto.Subdistrict,
		Province:    dto.Province,
		Country:     dto.Country,
	})
}

func userLocationFromDomain(ul *geo.UserLocation) UserLocationDTO {
	return UserLocationDTO{
		ID:         ul.ID().Bytes(),
		UserID:     ul.UserID().Bytes(),
		LocationID: ul.LocationID().Bytes(),
		Name:       ul.Name(),
	}
}

func userLocationToDomain(dto UserLocationDTO) (*geo.UserLocation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	locationID, err := kernel.UUIDFromBytes(dto.LocationID[:])
	if err != nil {
		return nil, err
	}

	return geo.RestoreUserLocation(id, userID, locationID, dto.Name)
}

package locationrepo

import (
	"context"
	"errors"

	"parcelmarket/internal/core/domain/model/geo"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormLocationRepository implements LocationRepository using GORM.
type GormLocationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormLocationRepository creates a new GORM location repository.
func NewGormLocationRepository(db *gorm.DB, tracker aggregateTracker) *GormLocationRepository {
	return &GormLocationRepository{
		db:      db,
		tracker: tracker,
	}
}

// GetOrCreate returns the location with the same address tuple, inserting it
// first if absent. The insert uses ON CONFLICT DO NOTHING so that losing a
// concurrent race does not abort the caller's transaction; the loser fetches
// the row the winner created.
func (r *GormLocationRepository) GetOrCreate(
	ctx context.Context, location *geo.Location,
) (*geo.Location, error) {
	if err := location.Validate(); err != nil {
		return nil, err
	}

	dto := locationFromDomain(location)

	existing, err := r.findByTuple(ctx, dto)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return r.findByTuple(ctx, dto)
	}

	r.tracker.TrackAggregate(location.ID(), location)
	return location, nil
}

func (r *GormLocationRepository) findByTuple(
	ctx context.Context, dto LocationDTO,
) (*geo.Location, error) {
	var found LocationDTO
	err := r.db.WithContext(ctx).First(&found,
		"address = ? AND district = ? AND subdistrict = ? AND province = ? AND country = ?",
		dto.Address, dto.District, dto.Subdistrict, dto.Province, dto.Country).Error
	if err != nil {
		return nil, err
	}

	return locationToDomain(found)
}

// Get retrieves a location by ID.
func (r *GormLocationRepository) Get(ctx context.Context, id kernel.UUID) (*geo.Location, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("location", id.String())
		}
		return nil, err
	}

	return locationToDomain(dto)
}

// Delete removes a location row. Callers check ReferenceCount first in the
// same transaction.
func (r *GormLocationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&LocationDTO{}, "id = ?", id.Bytes()).Error
}

// ReferenceCount counts rows referencing the location across user addresses,
// parcel endpoints, warehouses and route stops.
func (r *GormLocationRepository) ReferenceCount(
	ctx context.Context, locationID kernel.UUID,
) (int64, error) {
	if err := locationID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM user_locations WHERE location_id = @id) +
			(SELECT COUNT(*) FROM parcels
				WHERE origin_location_id = @id OR destination_location_id = @id) +
			(SELECT COUNT(*) FROM warehouses WHERE location_id = @id) +
			(SELECT COUNT(*) FROM route_stops WHERE location_id = @id)
	`, map[string]any{"id": locationID.Bytes()}).Scan(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// AddUserLocation persists an address-book entry.
func (r *GormLocationRepository) AddUserLocation(
	ctx context.Context, userLocation *geo.UserLocation,
) error {
	if err := userLocation.Validate(); err != nil {
		return err
	}

	dto := userLocationFromDomain(userLocation)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(userLocation.ID(), userLocation)
	return nil
}

// GetUserLocation retrieves an address-book entry by ID.
func (r *GormLocationRepository) GetUserLocation(
	ctx context.Context, id kernel.UUID,
) (*geo.UserLocation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserLocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("userLocation", id.String())
		}
		return nil, err
	}

	return userLocationToDomain(dto)
}

// ListUserLocations retrieves a user's address book.
func (r *GormLocationRepository) ListUserLocations(
	ctx context.Context, userID kernel.UUID,
) ([]*geo.UserLocation, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []UserLocationDTO
	err := r.db.WithContext(ctx).Find(&dtos, "user_id = ?", userID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	userLocations := make([]*geo.UserLocation, 0, len(dtos))
	for _, dto := range dtos {
		ul, err := userLocationToDomain(dto)
		if err != nil {
			return nil, err
		}
		userLocations = append(userLocations, ul)
	}

	return userLocations, nil
}

// DeleteUserLocation removes an address-book entry.
func (r *GormLocationRepository) DeleteUserLocation(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&UserLocationDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("userLocation", id.String())
	}

	return nil
}

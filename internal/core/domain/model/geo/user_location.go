package geo

import (
	"errors"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

var ErrUserLocationIsNotConstructed = errors.New(
	"UserLocation must be created via NewUserLocation constructor")

// UserLocation links a sender to a Location under a user-chosen label
// ("Home", "Office"). Deleting the last reference to a Location triggers the
// reference-counted Location cleanup.
type UserLocation struct {
	id         kernel.UUID
	userID     kernel.UUID
	locationID kernel.UUID
	name       string

	guard guard.ConstructorGuard
}

// NewUserLocation creates an address-book entry for a user.
func NewUserLocation(id, userID, locationID kernel.UUID, name string) (*UserLocation, error) {
	if err := errors.Join(id.Validate(), userID.Validate(), locationID.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &UserLocation{
		id:         id,
		userID:     userID,
		locationID: locationID,
		name:       name,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreUserLocation reconstructs an entry from persistence.
func RestoreUserLocation(id, userID, locationID kernel.UUID, name string) (*UserLocation, error) {
	return NewUserLocation(id, userID, locationID, name)
}

func (ul *UserLocation) Validate() error {
	if ul == nil {
		return ErrUserLocationIsNotConstructed
	}
	return ul.guard.Validate(ErrUserLocationIsNotConstructed)
}

func (ul *UserLocation) ID() kernel.UUID { return ul.id }
func (ul *UserLocation) UserID() kernel.UUID { return ul.userID }
func (ul *UserLocation) LocationID() kernel.UUID { return ul.locationID }
func (ul *UserLocation) Name() string { return ul.name }

// Rename updates the user-chosen label.
func (ul *UserLocation) Rename(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	ul.name = name
	return nil
}

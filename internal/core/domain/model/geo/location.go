package geo

import (
	"errors"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

var (
	// ErrLocationIsNotConstructed is returned when a Location was not created
	// via NewLocation or RestoreLocation.
	ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")
)

// Address is the value object identifying a physical place. Locations are
// deduplicated by the exact tuple: two addresses with identical fields always
// resolve to the same Location row.
type Address struct {
	Address     string
	District    string
	Subdistrict string
	Province    string
	Country     string
}

// NewAddress validates and normalizes an address tuple. Country defaults to
// "Thailand" when empty, matching how senders enter domestic addresses.
func NewAddress(address, district, subdistrict, province, country string) (Address, error) {
	if address == "" {
		return Address{}, errs.NewValueIsRequiredError("address")
	}
	if district == "" {
		return Address{}, errs.NewValueIsRequiredError("district")
	}
	if subdistrict == "" {
		return Address{}, errs.NewValueIsRequiredError("subdistrict")
	}
	if province == "" {
		return Address{}, errs.NewValueIsRequiredError("province")
	}
	if country == "" {
		country = "Thailand"
	}

	return Address{
		Address:     address,
		District:    district,
		Subdistrict: subdistrict,
		Province:    province,
		Country:     country,
	}, nil
}

// Location is an aggregate representing a deduplicated physical place shared
// by user address books, parcels, warehouses, and route stops. A Location may
// be deleted only when no referencing row of any of those kinds remains.
type Location struct {
	id      kernel.UUID
	address Address

	guard guard.ConstructorGuard
}

// NewLocation creates a Location for a validated address.
func NewLocation(id kernel.UUID, address Address) (*Location, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if address.Address == "" || address.Province == "" {
		return nil, errs.NewValueIsRequiredError("address")
	}

	return &Location{
		id:      id,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// RestoreLocation reconstructs a Location from persistence.
func RestoreLocation(id kernel.UUID, address Address) (*Location, error) {
	return NewLocation(id, address)
}

// Validate ensures the Location was created through a constructor.
func (l *Location) Validate() error {
	if l == nil {
		return ErrLocationIsNotConstructed
	}
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l *Location) ID() kernel.UUID {
	return l.id
}

func (l *Location) Address() Address {
	return l.address
}

// Province is a convenience accessor used by pricing and routing.
func (l *Location) Province() string {
	return l.address.Province
}

package carrier

import (
	"errors"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

var ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier constructor")

// Carrier is a delivery driver registered on the marketplace. Availability
// controls whether the carrier receives new parcel broadcasts; it does not
// affect parcels already accepted.
type Carrier struct {
	id           kernel.UUID
	name         string
	phone        string
	vehicleType  string
	licensePlate string
	isAvailable  bool

	guard guard.ConstructorGuard
}

// NewCarrier registers a carrier. New carriers start available.
func NewCarrier(id kernel.UUID, name, phone, vehicleType, licensePlate string) (*Carrier, error) {
	c := &Carrier{
		isAvailable: true,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
		c.setVehicle(vehicleType, licensePlate),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCarrier reconstructs a carrier from persistence.
func RestoreCarrier(
	id kernel.UUID, name, phone, vehicleType, licensePlate string, isAvailable bool,
) (*Carrier, error) {
	c, err := NewCarrier(id, name, phone, vehicleType, licensePlate)
	if err != nil {
		return nil, err
	}

	c.isAvailable = isAvailable
	return c, nil
}

func (c *Carrier) Validate() error {
	if c == nil {
		return ErrCarrierIsNotConstructed
	}
	return c.guard.Validate(ErrCarrierIsNotConstructed)
}

func (c *Carrier) ID() kernel.UUID { return c.id }
func (c *Carrier) Name() string { return c.name }
func (c *Carrier) Phone() string { return c.phone }
func (c *Carrier) VehicleType() string { return c.vehicleType }
func (c *Carrier) LicensePlate() string { return c.licensePlate }
func (c *Carrier) IsAvailable() bool { return c.isAvailable }

// ProfilePatch is a partial profile update. Nil fields keep their current
// values; present fields are validated before any of them is applied.
type ProfilePatch struct {
	Name         *string
	Phone        *string
	VehicleType  *string
	LicensePlate *string
	IsAvailable  *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p ProfilePatch) IsEmpty() bool {
	return p.Name == nil && p.Phone == nil && p.VehicleType == nil &&
		p.LicensePlate == nil && p.IsAvailable == nil
}

// ApplyPatch updates the profile fields named in the patch. The patch is
// applied atomically: any invalid field rejects the whole patch.
func (c *Carrier) ApplyPatch(patch ProfilePatch) error {
	if patch.IsEmpty() {
		return errs.NewValueIsRequiredError("patch")
	}

	var errList []error
	if patch.Name != nil && *patch.Name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if patch.Phone != nil && *patch.Phone == "" {
		errList = append(errList, errs.NewValueIsRequiredError("phone"))
	}
	if patch.VehicleType != nil && *patch.VehicleType == "" {
		errList = append(errList, errs.NewValueIsRequiredError("vehicleType"))
	}
	if patch.LicensePlate != nil && *patch.LicensePlate == "" {
		errList = append(errList, errs.NewValueIsRequiredError("licensePlate"))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	if patch.Name != nil {
		c.name = *patch.Name
	}
	if patch.Phone != nil {
		c.phone = *patch.Phone
	}
	if patch.VehicleType != nil {
		c.vehicleType = *patch.VehicleType
	}
	if patch.LicensePlate != nil {
		c.licensePlate = *patch.LicensePlate
	}
	if patch.IsAvailable != nil {
		c.isAvailable = *patch.IsAvailable
	}
	return nil
}

func (c *Carrier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Carrier) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Carrier) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

func (c *Carrier) setVehicle(vehicleType, licensePlate string) error {
	if vehicleType == "" {
		return errs.NewValueIsRequiredError("vehicleType")
	}
	if licensePlate == "" {
		return errs.NewValueIsRequiredError("licensePlate")
	}
	c.vehicleType = vehicleType
	c.licensePlate = licensePlate
	return nil
}

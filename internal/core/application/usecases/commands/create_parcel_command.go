package commands

import (
	"errors"

	"parcelmarket/internal/core/domain/model/geo"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand is a sender's request to register a new shipment. The
// origin comes from the sender's address book; the destination is a raw
// address deduplicated into the location table on the fly.
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID             kernel.UUID
	senderID             kernel.UUID
	trackingNumber       parcel.TrackingNumber
	receiverName         string
	receiverPhone        string
	itemType             parcel.ItemType
	originUserLocationID kernel.UUID
	destAddress          geo.Address
	packageTypeID        *kernel.UUID
	deliveryPlanID       *kernel.UUID
	serviceIDs           []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand validates and builds the creation request.
func NewCreateParcelCommand(
	parcelID, senderID kernel.UUID,
	trackingNumber parcel.TrackingNumber,
	receiverName, receiverPhone string,
	itemType parcel.ItemType,
	originUserLocationID kernel.UUID,
	destAddress geo.Address,
	packageTypeID, deliveryPlanID *kernel.UUID,
	serviceIDs []kernel.UUID,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setSenderID(senderID),
		cmd.setTrackingNumber(trackingNumber),
		cmd.setReceiver(receiverName, receiverPhone),
		cmd.setItemType(itemType),
		cmd.setOriginUserLocationID(originUserLocationID),
		cmd.setDestAddress(destAddress),
		cmd.setCatalogRefs(packageTypeID, deliveryPlanID, serviceIDs),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

func (c CreateParcelCommand) ParcelID() kernel.UUID { return c.parcelID }
func (c CreateParcelCommand) SenderID() kernel.UUID { return c.senderID }
func (c CreateParcelCommand) TrackingNumber() parcel.TrackingNumber { return c.trackingNumber }
func (c CreateParcelCommand) ReceiverName() string { return c.receiverName }
func (c CreateParcelCommand) ReceiverPhone() string { return c.receiverPhone }
func (c CreateParcelCommand) ItemType() parcel.ItemType { return c.itemType }
func (c CreateParcelCommand) OriginUserLocationID() kernel.UUID { return c.originUserLocationID }
func (c CreateParcelCommand) DestAddress() geo.Address { return c.destAddress }
func (c CreateParcelCommand) PackageTypeID() *kernel.UUID { return c.packageTypeID }
func (c CreateParcelCommand) DeliveryPlanID() *kernel.UUID { return c.deliveryPlanID }
func (c CreateParcelCommand) ServiceIDs() []kernel.UUID { return c.serviceIDs }

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *CreateParcelCommand) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("senderID", err)
	}
	c.senderID = senderID
	return nil
}

func (c *CreateParcelCommand) setTrackingNumber(trackingNumber parcel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	c.trackingNumber = trackingNumber
	return nil
}

func (c *CreateParcelCommand) setReceiver(name, phone string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("receiverName")
	}
	if phone == "" {
		return errs.NewValueIsRequiredError("receiverPhone")
	}
	c.receiverName = name
	c.receiverPhone = phone
	return nil
}

func (c *CreateParcelCommand) setItemType(itemType parcel.ItemType) error {
	if err := itemType.Validate(); err != nil {
		return err
	}
	c.itemType = itemType
	return nil
}

func (c *CreateParcelCommand) setOriginUserLocationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("originUserLocationID", err)
	}
	c.originUserLocationID = id
	return nil
}

func (c *CreateParcelCommand) setDestAddress(addr geo.Address) error {
	if addr.Address == "" || addr.Province == "" {
		return errs.NewValueIsRequiredError("destAddress")
	}
	c.destAddress = addr
	return nil
}

func (c *CreateParcelCommand) setCatalogRefs(
	packageTypeID, deliveryPlanID *kernel.UUID, serviceIDs []kernel.UUID,
) error {
	if packageTypeID != nil {
		if err := packageTypeID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("packageTypeID", err)
		}
	}
	if deliveryPlanID != nil {
		if err := deliveryPlanID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("deliveryPlanID", err)
		}
	}
	for _, id := range serviceIDs {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("serviceIDs", err)
		}
	}
	c.packageTypeID = packageTypeID
	c.deliveryPlanID = deliveryPlanID
	c.serviceIDs = serviceIDs
	return nil
}

package parcel

import (
	"errors"
	"time"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

const minWeightKg = 0.1

var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

// Parcel is the aggregate root of a shipment. It owns the lifecycle status,
// the receiver contact details, the origin and destination location references
// and the measurement data submitted by the carrier at pickup.
//
// Invariants:
//   - Measurements are write-once: RecordMeasurements fails if weight is set.
//   - Status transitions follow Pending -> Awaiting Pickup -> In Transit ->
//     Delivered, each one-way.
//   - Package fees and service fees are fixed at creation; the delivery price
//     is fixed when measurements are recorded.
type Parcel struct {
	id             kernel.UUID
	senderID       kernel.UUID
	trackingNumber TrackingNumber

	receiverName  string
	receiverPhone string
	itemType      ItemType

	originLocationID kernel.UUID
	destLocationID   kernel.UUID

	packageTypeID  *kernel.UUID
	packagePrice   float64
	deliveryPlanID *kernel.UUID
	serviceFee     float64

	weight            *float64
	dimensions        *Dimensions
	price             *float64
	estimatedDelivery *time.Time

	status    Status
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewParcel creates a Pending parcel. Fees passed here were already quoted by
// the pricing engine; the delivery price itself stays unset until the carrier
// submits measurements.
func NewParcel(
	id, senderID kernel.UUID,
	trackingNumber TrackingNumber,
	receiverName, receiverPhone string,
	itemType ItemType,
	originLocationID, destLocationID kernel.UUID,
	packageTypeID *kernel.UUID,
	packagePrice float64,
	deliveryPlanID *kernel.UUID,
	serviceFee float64,
	createdAt time.Time,
) (*Parcel, error) {
	p := &Parcel{
		status:    StatusPending,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setSenderID(senderID),
		p.setTrackingNumber(trackingNumber),
		p.setReceiver(receiverName, receiverPhone),
		p.setItemType(itemType),
		p.setLocations(originLocationID, destLocationID),
		p.setPackageType(packageTypeID, packagePrice),
		p.setDeliveryPlan(deliveryPlanID),
		p.setServiceFee(serviceFee),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a parcel from persistence without re-running
// creation-time business rules. Field validity is still checked.
func RestoreParcel(
	id, senderID kernel.UUID,
	trackingNumber TrackingNumber,
	receiverName, receiverPhone string,
	itemType ItemType,
	originLocationID, destLocationID kernel.UUID,
	packageTypeID *kernel.UUID,
	packagePrice float64,
	deliveryPlanID *kernel.UUID,
	serviceFee float64,
	status Status,
	weight *float64,
	dimensions *Dimensions,
	price *float64,
	estimatedDelivery *time.Time,
	createdAt time.Time,
) (*Parcel, error) {
	p, err := NewParcel(id, senderID, trackingNumber, receiverName, receiverPhone,
		itemType, originLocationID, destLocationID, packageTypeID, packagePrice,
		deliveryPlanID, serviceFee, createdAt)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	p.status = status
	p.weight = weight
	p.dimensions = dimensions
	p.price = price
	p.estimatedDelivery = estimatedDelivery
	return p, nil
}

// Validate ensures the parcel was created via NewParcel or RestoreParcel.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Parcel) ID() kernel.UUID { return p.id }
func (p *Parcel) SenderID() kernel.UUID { return p.senderID }
func (p *Parcel) TrackingNumber() TrackingNumber { return p.trackingNumber }
func (p *Parcel) ReceiverName() string { return p.receiverName }
func (p *Parcel) ReceiverPhone() string { return p.receiverPhone }
func (p *Parcel) ItemType() ItemType { return p.itemType }
func (p *Parcel) OriginLocationID() kernel.UUID { return p.originLocationID }
func (p *Parcel) DestLocationID() kernel.UUID { return p.destLocationID }
func (p *Parcel) PackageTypeID() *kernel.UUID { return p.packageTypeID }
func (p *Parcel) PackagePrice() float64 { return p.packagePrice }
func (p *Parcel) DeliveryPlanID() *kernel.UUID { return p.deliveryPlanID }
func (p *Parcel) ServiceFee() float64 { return p.serviceFee }
func (p *Parcel) Weight() *float64 { return p.weight }
func (p *Parcel) Dimensions() *Dimensions { return p.dimensions }
func (p *Parcel) Price() *float64 { return p.price }
func (p *Parcel) EstimatedDelivery() *time.Time { return p.estimatedDelivery }
func (p *Parcel) Status() Status { return p.status }
func (p *Parcel) CreatedAt() time.Time { return p.createdAt }

// AwaitPickup marks the parcel as accepted by a carrier.
func (p *Parcel) AwaitPickup() error {
	newStatus, err := p.status.AwaitPickup()
	if err != nil {
		return err
	}
	p.status = newStatus
	return nil
}

// RecordMeasurements stores the weight, dimensions, final delivery price and
// the delivery estimate, and moves the parcel to In Transit. Measurements are
// write-once: a second call fails regardless of status.
func (p *Parcel) RecordMeasurements(
	weight float64, dimensions Dimensions, price float64, estimatedDelivery time.Time,
) error {
	if p.weight != nil {
		return errs.NewPreconditionFailedError("measurements were already submitted")
	}
	if weight < minWeightKg {
		return errs.NewValueIsOutOfRangeError("weight", weight, minWeightKg, nil)
	}
	if price < 0 {
		return errs.NewValueIsOutOfRangeError("price", price, 0, nil)
	}

	newStatus, err := p.status.StartTransit()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.weight = &weight
	p.dimensions = &dimensions
	p.price = &price
	p.estimatedDelivery = &estimatedDelivery
	return nil
}

// Deliver marks the parcel as delivered. Valid only from In Transit.
func (p *Parcel) Deliver() error {
	newStatus, err := p.status.Deliver()
	if err != nil {
		return err
	}
	p.status = newStatus
	return nil
}

// MarkInTransit moves the parcel to In Transit on a non-terminal carrier
// status report. Reports on a parcel that is already moving are no-ops;
// reports on a Delivered parcel fail because Delivered is terminal.
func (p *Parcel) MarkInTransit() error {
	if p.status == StatusInTransit {
		return nil
	}

	newStatus, err := p.status.StartTransit()
	if err != nil {
		return err
	}
	p.status = newStatus
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("senderID", err)
	}
	p.senderID = senderID
	return nil
}

func (p *Parcel) setTrackingNumber(tn TrackingNumber) error {
	if err := tn.Validate(); err != nil {
		return err
	}
	p.trackingNumber = tn
	return nil
}

func (p *Parcel) setReceiver(name, phone string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("receiverName")
	}
	if phone == "" {
		return errs.NewValueIsRequiredError("receiverPhone")
	}
	p.receiverName = name
	p.receiverPhone = phone
	return nil
}

func (p *Parcel) setItemType(itemType ItemType) error {
	if err := itemType.Validate(); err != nil {
		return err
	}
	p.itemType = itemType
	return nil
}

func (p *Parcel) setLocations(originID, destID kernel.UUID) error {
	if err := originID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("originLocationID", err)
	}
	if err := destID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("destLocationID", err)
	}
	p.originLocationID = originID
	p.destLocationID = destID
	return nil
}

func (p *Parcel) setPackageType(packageTypeID *kernel.UUID, packagePrice float64) error {
	if packageTypeID != nil {
		if err := packageTypeID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("packageTypeID", err)
		}
	}
	if packagePrice < 0 {
		return errs.NewValueIsOutOfRangeError("packagePrice", packagePrice, 0, nil)
	}
	p.packageTypeID = packageTypeID
	p.packagePrice = packagePrice
	return nil
}

func (p *Parcel) setDeliveryPlan(deliveryPlanID *kernel.UUID) error {
	if deliveryPlanID != nil {
		if err := deliveryPlanID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("deliveryPlanID", err)
		}
	}
	p.deliveryPlanID = deliveryPlanID
	return nil
}

func (p *Parcel) setServiceFee(serviceFee float64) error {
	if serviceFee < 0 {
		return errs.NewValueIsOutOfRangeError("serviceFee", serviceFee, 0, nil)
	}
	p.serviceFee = serviceFee
	return nil
}

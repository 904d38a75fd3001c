package catalog

import "parcelmarket/internal/core/domain/model/kernel"

// Province is a pricing region with its base delivery price and the default
// delivery time for shipments terminating there.
type Province struct {
	ID           kernel.UUID
	Name         string
	BasePrice    float64
	DeliveryDays int
}

// ProvincePair overrides the base price and delivery time for a specific
// origin-destination province combination.
type ProvincePair struct {
	OriginProvince string
	DestProvince   string
	Price          float64
	DeliveryDays   int
}

// DeliveryPlan is a service tier. Fast plans add a surcharge and cut days off
// the delivery estimate.
type DeliveryPlan struct {
	ID                    kernel.UUID
	Name                  string
	FastDeliveryFee       float64
	DeliveryDaysReduction int
	IsActive              bool
}

// OptionalService is an add-on (insurance, fragile handling) charged at
// parcel creation.
type OptionalService struct {
	ID         kernel.UUID
	Name       string
	ServiceFee float64
	IsActive   bool
}

// PackageType is a purchasable packaging option with fixed dimensions.
type PackageType struct {
	ID       kernel.UUID
	Name     string
	Type     string
	Size     string
	DimX     float64
	DimY     float64
	DimZ     float64
	Price    float64
	IsActive bool
}

// Bank is a supported deposit source for balance topups.
type Bank struct {
	ID       kernel.UUID
	Name     string
	IsActive bool
}

// Warehouse is a transit hub that route planning can insert as an
// intermediate stop.
type Warehouse struct {
	ID         kernel.UUID
	Name       string
	Code       string
	LocationID kernel.UUID
	IsActive   bool
}

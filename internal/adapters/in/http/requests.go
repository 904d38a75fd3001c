package http

import "time"

// Request payloads. Structural constraints live in validator tags; domain
// rules stay in the core and surface through the error mapping.

// AddressPayload is the wire form of a postal address. Country is optional
// and defaults to Thailand in the domain.
type AddressPayload struct {
	Address     string `json:"address" validate:"required"`
	District    string `json:"district" validate:"required"`
	Subdistrict string `json:"subdistrict" validate:"required"`
	Province    string `json:"province" validate:"required"`
	Country     string `json:"country"`
}

// DimensionsPayload carries package dimensions in centimeters.
type DimensionsPayload struct {
	X float64 `json:"x" validate:"gt=0"`
	Y float64 `json:"y" validate:"gt=0"`
	Z float64 `json:"z" validate:"gt=0"`
}

// CreateParcelRequest is the body of POST /api/v1/parcels.
type CreateParcelRequest struct {
	ReceiverName         string         `json:"receiver_name" validate:"required"`
	ReceiverPhone        string         `json:"receiver_phone" validate:"required"`
	ItemType             string         `json:"item_type" validate:"required"`
	OriginUserLocationID string         `json:"origin_user_location_id" validate:"required,uuid"`
	Destination          AddressPayload `json:"destination"`
	PackageTypeID        *string        `json:"package_type_id" validate:"omitempty,uuid"`
	DeliveryPlanID       *string        `json:"delivery_plan_id" validate:"omitempty,uuid"`
	ServiceIDs           []string       `json:"service_ids" validate:"dive,uuid"`
}

// CreateParcelResponse returns the identifiers a sender needs to follow up.
type CreateParcelResponse struct {
	ParcelID       string `json:"parcel_id"`
	TrackingNumber string `json:"tracking_number"`
}

// SubmitMeasurementsRequest is the body of POST /api/v1/parcels/:parcelID/measurements.
type SubmitMeasurementsRequest struct {
	Weight     float64            `json:"weight" validate:"required,gt=0"`
	Dimensions *DimensionsPayload `json:"dimensions"`
}

// UpdateParcelStatusRequest is the body of POST /api/v1/parcels/:parcelID/status.
// When stop_id is present the report is a route-stop arrival; otherwise it is
// a free-form status transition.
type UpdateParcelStatusRequest struct {
	StopID      *string `json:"stop_id" validate:"omitempty,uuid"`
	IsLate      bool    `json:"is_late"`
	EventType   string  `json:"event_type" validate:"required_without=StopID"`
	Status      string  `json:"status" validate:"required_without=StopID"`
	Description string  `json:"description"`
}

// TopupBalanceRequest is the body of POST /api/v1/balance/topup.
type TopupBalanceRequest struct {
	BankID string  `json:"bank_id" validate:"required,uuid"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// AddAddressRequest is the body of POST /api/v1/addresses.
type AddAddressRequest struct {
	Name    string         `json:"name" validate:"required"`
	Address AddressPayload `json:"address"`
}

// AddAddressResponse returns the identifier of the new address book entry.
type AddAddressResponse struct {
	UserLocationID string `json:"user_location_id"`
}

// UpdateCarrierProfileRequest is the body of PATCH /api/v1/carriers/profile.
// Absent fields keep their current values.
type UpdateCarrierProfileRequest struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	VehicleType  *string `json:"vehicle_type"`
	LicensePlate *string `json:"license_plate"`
	IsAvailable  *bool   `json:"is_available"`
}

// TrackParcelResponse is the public tracking view.
type TrackParcelResponse struct {
	TrackingNumber    string             `json:"tracking_number"`
	Status            string             `json:"status"`
	EstimatedDelivery *time.Time         `json:"estimated_delivery,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	Events            []TrackParcelEvent `json:"events"`
}

// TrackParcelEvent is one entry of the public event timeline.
type TrackParcelEvent struct {
	EventType   string    `json:"event_type"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// AvailableParcel is one marketplace listing visible to carriers.
type AvailableParcel struct {
	ParcelID            string    `json:"parcel_id"`
	TrackingNumber      string    `json:"tracking_number"`
	ItemType            string    `json:"item_type"`
	ReceiverName        string    `json:"receiver_name"`
	OriginProvince      string    `json:"origin_province"`
	DestinationProvince string    `json:"destination_province"`
	CreatedAt           time.Time `json:"created_at"`
}

// BalanceResponse is the current wallet balance.
type BalanceResponse struct {
	UserID  string  `json:"user_id"`
	Balance float64 `json:"balance"`
}

// Transaction is one wallet movement.
type Transaction struct {
	TransactionID string    `json:"transaction_id"`
	Type          string    `json:"type"`
	Amount        float64   `json:"amount"`
	Description   string    `json:"description,omitempty"`
	ParcelID      *string   `json:"parcel_id,omitempty"`
	BankID        *string   `json:"bank_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

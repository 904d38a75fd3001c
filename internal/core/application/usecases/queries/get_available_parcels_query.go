package queries

import (
	"time"
)

// GetAvailableParcelsQuery lists parcels open for carriers to claim. It
// requires no parameters, so the constructor cannot fail and there is no
// guard.
type GetAvailableParcelsQuery struct{}

// NewGetAvailableParcelsQuery creates the marketplace listing query.
func NewGetAvailableParcelsQuery() GetAvailableParcelsQuery {
	return GetAvailableParcelsQuery{}
}

// AvailableParcelResponse is one claimable parcel in the marketplace feed.
// Origin and destination are shown at province granularity only; the full
// addresses are revealed after a carrier accepts.
type AvailableParcelResponse struct {
	ParcelID            string
	TrackingNumber      string
	ItemType            string
	ReceiverName        string
	OriginProvince      string
	DestinationProvince string
	CreatedAt           time.Time
}

package ports

import (
	"context"

	"parcelmarket/internal/core/domain/model/carrier"
	"parcelmarket/internal/core/domain/model/kernel"
)

// CarrierRepository defines the persistence contract for carrier profiles.
type CarrierRepository interface {
	// Add persists a new carrier.
	Add(ctx context.Context, aggregate *carrier.Carrier) error

	// Update persists changes to a carrier profile.
	Update(ctx context.Context, aggregate *carrier.Carrier) error

	// Get retrieves a carrier by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error)

	// ListAvailable retrieves all carriers currently accepting broadcasts.
	ListAvailable(ctx context.Context) ([]*carrier.Carrier, error)
}

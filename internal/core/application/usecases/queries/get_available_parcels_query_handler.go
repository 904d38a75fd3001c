package queries

import (
	"context"

	"parcelmarket/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableParcelsQueryHandler reads the marketplace feed. A parcel is
// claimable while it is still pending and its broadcast assignment has not
// been accepted by anyone.
type GetAvailableParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableParcelsQueryHandler creates a handler for the marketplace
// feed.
func NewGetAvailableParcelsQueryHandler(db *gorm.DB) GetAvailableParcelsQueryHandler {
	return GetAvailableParcelsQueryHandler{db: db}
}

// Handle returns every claimable parcel, oldest first.
//
// Example:
//
//	handler := queries.NewGetAvailableParcelsQueryHandler(db)
//	parcels, err := handler.Handle(ctx, queries.NewGetAvailableParcelsQuery())
func (h GetAvailableParcelsQueryHandler) Handle(
	ctx context.Context,
	_ GetAvailableParcelsQuery,
) ([]AvailableParcelResponse, error) {
	parcels := make([]AvailableParcelResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.tracking_number,
			p.item_type,
			p.receiver_name,
			origin.province,
			destination.province,
			p.created_at
		FROM parcels p
		JOIN assignments a ON a.parcel_id = p.id
		JOIN locations origin ON origin.id = p.origin_location_id
		JOIN locations destination ON destination.id = p.destination_location_id
		WHERE p.status = 'Pending' AND a.status = ?
		ORDER BY p.created_at
	`, int(parcel.AssignmentPending)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response AvailableParcelResponse
		var parcelID uuid.UUID

		err = rows.Scan(
			&parcelID,
			&response.TrackingNumber,
			&response.ItemType,
			&response.ReceiverName,
			&response.OriginProvince,
			&response.DestinationProvince,
			&response.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		response.ParcelID = parcelID.String()
		parcels = append(parcels, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}

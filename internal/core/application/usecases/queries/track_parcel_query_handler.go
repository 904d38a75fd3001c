package queries

import (
	"context"
	"database/sql"
	"errors"

	"parcelmarket/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrackParcelQueryHandler resolves a tracking number to the public shipment
// view. Uses direct SQL for read performance; the delivery price is
// deliberately never selected.
type TrackParcelQueryHandler struct {
	db *gorm.DB
}

// NewTrackParcelQueryHandler creates a handler for tracking lookups.
func NewTrackParcelQueryHandler(db *gorm.DB) TrackParcelQueryHandler {
	return TrackParcelQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ErrObjectNotFound when no parcel
// carries the tracking number. Events come back in chronological order.
func (h TrackParcelQueryHandler) Handle(
	ctx context.Context,
	query TrackParcelQuery,
) (*TrackParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var response TrackParcelQueryResponse
	var parcelID uuid.UUID
	var estimatedDelivery sql.NullTime

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			status,
			estimated_delivery,
			created_at
		FROM parcels
		WHERE tracking_number = ?
	`, query.TrackingNumber().String()).Row()

	err := row.Scan(
		&parcelID,
		&response.TrackingNumber,
		&response.Status,
		&estimatedDelivery,
		&response.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError(
				"trackingNumber", query.TrackingNumber().String())
		}
		return nil, err
	}
	if estimatedDelivery.Valid {
		response.EstimatedDelivery = &estimatedDelivery.Time
	}

	events, err := h.loadEvents(ctx, parcelID)
	if err != nil {
		return nil, err
	}
	response.Events = events

	return &response, nil
}

func (h TrackParcelQueryHandler) loadEvents(
	ctx context.Context, parcelID uuid.UUID,
) ([]TrackParcelEvent, error) {
	events := make([]TrackParcelEvent, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			event_type,
			status,
			description,
			occurred_at
		FROM shipment_events
		WHERE parcel_id = ?
		ORDER BY occurred_at
	`, parcelID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var event TrackParcelEvent
		var description sql.NullString

		err = rows.Scan(
			&event.EventType,
			&event.Status,
			&description,
			&event.OccurredAt,
		)
		if err != nil {
			return nil, err
		}

		event.Description = description.String
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

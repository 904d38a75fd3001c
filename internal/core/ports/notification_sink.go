package ports

import (
	"context"

	"parcelmarket/internal/core/domain/model/kernel"
)

// NotificationSink receives lifecycle events to surface to users. Delivery is
// fire-and-forget from the core's point of view; a failed notification never
// rolls back the transition that produced it.
type NotificationSink interface {
	// NotifySender records a notification for the parcel's sender.
	NotifySender(ctx context.Context, senderID kernel.UUID, kind, message string) error

	// NotifyCarrier records a notification for a carrier.
	NotifyCarrier(ctx context.Context, carrierID kernel.UUID, kind, message string) error
}

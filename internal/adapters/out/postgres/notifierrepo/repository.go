// Package notifierrepo persists user notifications. Notifications are
// best-effort from the core's point of view: command handlers call the sink
// after commit and ignore the result, so a failed insert never rolls back the
// transition that produced it.
package notifierrepo

import (
	"context"
	"time"

	"parcelmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationDTO represents one stored notification row.
type NotificationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipientID uuid.UUID `gorm:"type:uuid;index"`
	Audience    string
	Kind        string
	Message     string
	CreatedAt   time.Time
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

// GormNotificationSink implements NotificationSink by writing notification
// rows outside any unit of work.
type GormNotificationSink struct {
	db *gorm.DB
}

// NewGormNotificationSink creates a notification sink over the shared
// connection.
func NewGormNotificationSink(db *gorm.DB) *GormNotificationSink {
	return &GormNotificationSink{db: db}
}

// NotifySender records a notification for the parcel's sender.
func (s *GormNotificationSink) NotifySender(
	ctx context.Context, senderID kernel.UUID, kind, message string,
) error {
	return s.store(ctx, senderID, "sender", kind, message)
}

// NotifyCarrier records a notification for a carrier.
func (s *GormNotificationSink) NotifyCarrier(
	ctx context.Context, carrierID kernel.UUID, kind, message string,
) error {
	return s.store(ctx, carrierID, "carrier", kind, message)
}

func (s *GormNotificationSink) store(
	ctx context.Context, recipientID kernel.UUID, audience, kind, message string,
) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}

	dto := NotificationDTO{
		ID:          uuid.New(),
		RecipientID: recipientID.Bytes(),
		Audience:    audience,
		Kind:        kind,
		Message:     message,
		CreatedAt:   time.Now(),
	}
	return s.db.WithContext(ctx).Create(&dto).Error
}

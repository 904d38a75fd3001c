package commands

import (
	"context"
	"fmt"
	"time"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/core/ports"
	"parcelmarket/internal/pkg/errs"
)

const deliveredStatus = "Delivered"

// UpdateParcelStatusCommandHandler records free-form status events once the
// route allows it. A pending warehouse stop blocks the update: the parcel
// must physically pass every checkpoint before a terminal status is
// accepted.
type UpdateParcelStatusCommandHandler struct {
	uowFactory RouteProgressUoWFactory
	notifier   ports.NotificationSink
}

// NewUpdateParcelStatusCommandHandler creates the handler.
func NewUpdateParcelStatusCommandHandler(
	uowFactory RouteProgressUoWFactory, notifier ports.NotificationSink,
) UpdateParcelStatusCommandHandler {
	return UpdateParcelStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the status report.
func (h *UpdateParcelStatusCommandHandler) Handle(ctx context.Context, cmd UpdateParcelStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	target, err := loadParcelForCarrier(ctx, uow, cmd.ParcelID(), cmd.CarrierID())
	if err != nil {
		return err
	}

	parcelRoute, err := uow.RouteRepository().GetByParcel(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}
	if parcelRoute.HasPendingWarehouseStops() {
		return errs.NewPreconditionFailedError(
			"all warehouse stops must be visited before updating the status")
	}

	if cmd.Status() == deliveredStatus {
		if err = target.Deliver(); err != nil {
			return err
		}
	} else if err = target.MarkInTransit(); err != nil {
		return err
	}
	if err = uow.ParcelRepository().Update(ctx, target); err != nil {
		return err
	}

	event, err := parcel.NewShipmentEvent(kernel.NewUUID(), target.ID(),
		cmd.EventType(), cmd.Status(), cmd.Description(), nil, time.Now())
	if err != nil {
		return err
	}
	if err = uow.EventRepository().Add(ctx, event); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.NotifySender(ctx, target.SenderID(), "ParcelStatus",
		fmt.Sprintf("Parcel %s is now %s", target.TrackingNumber(), cmd.Status()))
	return nil
}

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

// RecordStopArrivalCommandHandler advances a parcel along its route: the
// reported stop resolves to Completed or Late and a Warehouse Arrival event
// is logged at that stop's location.
type RecordStopArrivalCommandHandler struct {
	uowFactory RouteProgressUoWFactory
	notifier   ports.NotificationSink
}

// NewRecordStopArrivalCommandHandler creates the handler.
func NewRecordStopArrivalCommandHandler(
	uowFactory RouteProgressUoWFactory, notifier ports.NotificationSink,
) RecordStopArrivalCommandHandler {
	return RecordStopArrivalCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the check-in.
func (h *RecordStopArrivalCommandHandler) Handle(ctx context.Context, cmd RecordStopArrivalCommand) error {
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

	now := time.Now()
	stop, err := parcelRoute.RecordArrival(cmd.StopID(), now, cmd.IsLate())
	if err != nil {
		return err
	}
	if err = uow.RouteRepository().Update(ctx, parcelRoute); err != nil {
		return err
	}

	stopLocationID := stop.LocationID()
	event, err := parcel.NewShipmentEvent(kernel.NewUUID(), target.ID(),
		"Warehouse Arrival", target.Status().String(),
		fmt.Sprintf("Arrived at stop %d (%s)", stop.Sequence(), stop.Status()),
		&stopLocationID, now)
	if err != nil {
		return err
	}
	if err = uow.EventRepository().Add(ctx, event); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.NotifySender(ctx, target.SenderID(), "ParcelProgress",
		fmt.Sprintf("Parcel %s passed stop %d", target.TrackingNumber(), stop.Sequence()))
	return nil
}

// loadParcelForCarrier enforces that the caller is the assigned carrier of an
// accepted parcel.
func loadParcelForCarrier(
	ctx context.Context, uow RouteProgressUoW, parcelID, carrierID kernel.UUID,
) (*parcel.Parcel, error) {
	assignment, err := uow.AssignmentRepository().GetByParcel(ctx, parcelID)
	if err != nil {
		return nil, err
	}
	if assignment.Status() != parcel.AssignmentAccepted {
		return nil, errs.NewPreconditionFailedError("parcel has not been accepted")
	}
	if assignment.CarrierID() == nil || !assignment.CarrierID().IsEqual(carrierID) {
		return nil, errs.NewUnauthorizedError("parcel is assigned to another carrier")
	}

	return uow.ParcelRepository().Get(ctx, parcelID)
}

package commands

import (
	"context"
	"fmt"
	"time"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/core/ports"
)

// AcceptParcelCommandHandler resolves the accept race. The assignment row is
// read under a row lock, so concurrent claims serialize: the first carrier
// flips it to Accepted, every later claim observes that and fails without
// mutating anything.
type AcceptParcelCommandHandler struct {
	uowFactory AcceptParcelUoWFactory
	notifier   ports.NotificationSink
}

// NewAcceptParcelCommandHandler creates the handler.
func NewAcceptParcelCommandHandler(
	uowFactory AcceptParcelUoWFactory, notifier ports.NotificationSink,
) AcceptParcelCommandHandler {
	return AcceptParcelCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the claim.
func (h *AcceptParcelCommandHandler) Handle(ctx context.Context, cmd AcceptParcelCommand) error {
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

	assignment, err := uow.AssignmentRepository().GetByParcelForUpdate(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}
	if err = assignment.Accept(cmd.CarrierID()); err != nil {
		return err
	}

	target, err := uow.ParcelRepository().Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}
	if err = target.AwaitPickup(); err != nil {
		return err
	}

	if err = uow.AssignmentRepository().Update(ctx, assignment); err != nil {
		return err
	}
	if err = uow.ParcelRepository().Update(ctx, target); err != nil {
		return err
	}

	originID := target.OriginLocationID()
	event, err := parcel.NewShipmentEvent(kernel.NewUUID(), target.ID(),
		"Accepted", target.Status().String(), "Carrier accepted the parcel", &originID, time.Now())
	if err != nil {
		return err
	}
	if err = uow.EventRepository().Add(ctx, event); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.NotifySender(ctx, target.SenderID(), "ParcelAccepted",
		fmt.Sprintf("Parcel %s was accepted by a carrier", target.TrackingNumber()))
	return nil
}

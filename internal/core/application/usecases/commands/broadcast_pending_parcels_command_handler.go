package commands

import (
	"context"
	"fmt"

	"parcelmarket/internal/core/domain/model/carrier"
	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/core/ports"
)

// BroadcastPendingParcelsCommandHandler walks all pending parcels, ensures
// each has its assignment row and re-notifies every available carrier.
// Safe to run repeatedly.
type BroadcastPendingParcelsCommandHandler struct {
	uowFactory BroadcastUoWFactory
	notifier   ports.NotificationSink
}

// NewBroadcastPendingParcelsCommandHandler creates the handler.
func NewBroadcastPendingParcelsCommandHandler(
	uowFactory BroadcastUoWFactory, notifier ports.NotificationSink,
) BroadcastPendingParcelsCommandHandler {
	return BroadcastPendingParcelsCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the re-broadcast command.
func (h *BroadcastPendingParcelsCommandHandler) Handle(
	ctx context.Context, cmd BroadcastPendingParcelsCommand,
) error {
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

	pending, err := uow.ParcelRepository().ListPending(ctx)
	if err != nil {
		return err
	}

	for _, p := range pending {
		if err = ensureAssignment(ctx, uow.AssignmentRepository(), p.ID()); err != nil {
			return err
		}
	}

	carriers, err := uow.CarrierRepository().ListAvailable(ctx)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifyAll(ctx, pending, carriers)
	return nil
}

func (h *BroadcastPendingParcelsCommandHandler) notifyAll(
	ctx context.Context, pending []*parcel.Parcel, carriers []*carrier.Carrier,
) {
	for _, p := range pending {
		message := fmt.Sprintf("Parcel %s is available for pickup", p.TrackingNumber())
		for _, c := range carriers {
			_ = h.notifier.NotifyCarrier(ctx, c.ID(), "ParcelAvailable", message)
		}
	}
}

package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parcelmarket/internal/core/domain/model/carrier"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/core/ports"
	"parcelmarket/internal/pkg/errs"
)

// NotifyCarriersCommandHandler broadcasts a pending parcel to the carrier
// pool and ensures exactly one Pending assignment row exists for it.
type NotifyCarriersCommandHandler struct {
	uowFactory BroadcastUoWFactory
	notifier   ports.NotificationSink
}

// NewNotifyCarriersCommandHandler creates the handler.
func NewNotifyCarriersCommandHandler(
	uowFactory BroadcastUoWFactory, notifier ports.NotificationSink,
) NotifyCarriersCommandHandler {
	return NotifyCarriersCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the broadcast command.
func (h *NotifyCarriersCommandHandler) Handle(ctx context.Context, cmd NotifyCarriersCommand) error {
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

	target, err := uow.ParcelRepository().Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}
	if !target.SenderID().IsEqual(cmd.SenderID()) {
		return errs.NewUnauthorizedError("parcel belongs to another sender")
	}
	if target.Status() != parcel.StatusPending {
		return errs.NewPreconditionFailedError(
			fmt.Sprintf("%s is not a valid status to broadcast", target.Status()))
	}

	if err = ensureAssignment(ctx, uow.AssignmentRepository(), target.ID()); err != nil {
		return err
	}

	carriers, err := uow.CarrierRepository().ListAvailable(ctx)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.broadcast(ctx, target, carriers)
	return nil
}

func (h *NotifyCarriersCommandHandler) broadcast(
	ctx context.Context, target *parcel.Parcel, carriers []*carrier.Carrier,
) {
	message := fmt.Sprintf("Parcel %s is available for pickup", target.TrackingNumber())
	for _, c := range carriers {
		_ = h.notifier.NotifyCarrier(ctx, c.ID(), "ParcelAvailable", message)
	}
}

// ensureAssignment creates the Pending assignment row if none exists yet.
// Re-broadcasting an already-pending parcel does not duplicate it.
func ensureAssignment(ctx context.Context, repo ports.AssignmentRepository, parcelID kernel.UUID) error {
	_, err := repo.GetByParcel(ctx, parcelID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	assignment, err := parcel.NewAssignment(kernel.NewUUID(), parcelID, time.Now())
	if err != nil {
		return err
	}
	return repo.Add(ctx, assignment)
}

package commands

import (
	"context"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/ports"
	"parcelmarket/internal/pkg/errs"
)

// DeleteAddressCommandHandler removes an address-book entry. When the entry
// held the last reference to its location the location row is removed as
// well, so unused places do not accumulate.
type DeleteAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

// NewDeleteAddressCommandHandler creates the handler.
func NewDeleteAddressCommandHandler(uowFactory AddressUoWFactory) DeleteAddressCommandHandler {
	return DeleteAddressCommandHandler{uowFactory: uowFactory}
}

// Handle processes the deletion.
func (h *DeleteAddressCommandHandler) Handle(ctx context.Context, cmd DeleteAddressCommand) error {
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

	locationRepo := uow.LocationRepository()
	userLocation, err := locationRepo.GetUserLocation(ctx, cmd.UserLocationID())
	if err != nil {
		return err
	}
	if !userLocation.UserID().IsEqual(cmd.UserID()) {
		return errs.NewUnauthorizedError("address belongs to another user")
	}

	if err = locationRepo.DeleteUserLocation(ctx, userLocation.ID()); err != nil {
		return err
	}
	if err = h.cleanupLocation(ctx, locationRepo, userLocation.LocationID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *DeleteAddressCommandHandler) cleanupLocation(
	ctx context.Context, repo ports.LocationRepository, locationID kernel.UUID,
) error {
	refs, err := repo.ReferenceCount(ctx, locationID)
	if err != nil {
		return err
	}
	if refs > 0 {
		return nil
	}
	return repo.Delete(ctx, locationID)
}

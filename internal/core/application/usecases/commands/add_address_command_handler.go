package commands

import (
	"context"

	"parcelmarket/internal/core/domain/model/geo"
	"parcelmarket/internal/core/domain/model/kernel"
)

// AddAddressCommandHandler saves an address-book entry. The underlying
// location is deduplicated: identical address tuples share one Location row.
type AddAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

// NewAddAddressCommandHandler creates the handler.
func NewAddAddressCommandHandler(uowFactory AddressUoWFactory) AddAddressCommandHandler {
	return AddAddressCommandHandler{uowFactory: uowFactory}
}

// Handle processes the request.
func (h *AddAddressCommandHandler) Handle(ctx context.Context, cmd AddAddressCommand) error {
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

	location, err := geo.NewLocation(kernel.NewUUID(), cmd.Address())
	if err != nil {
		return err
	}
	location, err = uow.LocationRepository().GetOrCreate(ctx, location)
	if err != nil {
		return err
	}

	userLocation, err := geo.NewUserLocation(
		cmd.UserLocationID(), cmd.UserID(), location.ID(), cmd.Name())
	if err != nil {
		return err
	}
	if err = uow.LocationRepository().AddUserLocation(ctx, userLocation); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

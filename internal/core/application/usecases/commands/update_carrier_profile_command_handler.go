package commands

import (
	"context"
)

// UpdateCarrierProfileCommandHandler applies a partial profile update to a
// carrier. Validation is all-or-nothing: a single bad field rejects the
// whole patch.
type UpdateCarrierProfileCommandHandler struct {
	uowFactory CarrierUoWFactory
}

// NewUpdateCarrierProfileCommandHandler creates the handler.
func NewUpdateCarrierProfileCommandHandler(uowFactory CarrierUoWFactory) UpdateCarrierProfileCommandHandler {
	return UpdateCarrierProfileCommandHandler{uowFactory: uowFactory}
}

// Handle processes the profile update.
func (h *UpdateCarrierProfileCommandHandler) Handle(ctx context.Context, cmd UpdateCarrierProfileCommand) error {
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

	target, err := uow.CarrierRepository().Get(ctx, cmd.CarrierID())
	if err != nil {
		return err
	}
	if err = target.ApplyPatch(cmd.Patch()); err != nil {
		return err
	}
	if err = uow.CarrierRepository().Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

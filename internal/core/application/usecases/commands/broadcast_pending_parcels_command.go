package commands

import (
	"errors"

	"parcelmarket/internal/pkg/guard"
)

var ErrBroadcastPendingParcelsCommandIsNotConstructed = errors.New(
	"BroadcastPendingParcelsCommand must be created via NewBroadcastPendingParcelsCommand constructor",
)

// BroadcastPendingParcelsCommand re-broadcasts every parcel still waiting for
// a carrier. Issued periodically by the background job so parcels that missed
// their first broadcast keep reaching newly available carriers.
type BroadcastPendingParcelsCommand struct {
	guard guard.ConstructorGuard
}

// NewBroadcastPendingParcelsCommand creates the command.
func NewBroadcastPendingParcelsCommand() BroadcastPendingParcelsCommand {
	return BroadcastPendingParcelsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c BroadcastPendingParcelsCommand) Validate() error {
	return c.guard.Validate(ErrBroadcastPendingParcelsCommandIsNotConstructed)
}

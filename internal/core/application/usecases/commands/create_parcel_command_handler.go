package commands

import (
	"context"
	"fmt"
	"time"

	"parcelmarket/internal/core/domain/model/geo"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/ledger"
	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/core/domain/model/route"
	"parcelmarket/internal/core/domain/services"
	"parcelmarket/internal/core/ports"
	"parcelmarket/internal/pkg/errs"
)

// CreateParcelCommandHandler registers a new shipment: it resolves the origin
// from the sender's address book, deduplicates the destination into the
// location table, charges packaging and service fees, plans the route and
// records the initial shipment event. Everything commits atomically; the fee
// charge and the parcel never diverge.
type CreateParcelCommandHandler struct {
	uowFactory CreateParcelUoWFactory
	catalog    ports.CatalogRepository
	pricing    *services.PricingEngine
	planner    services.RouteStopPlanner
	notifier   ports.NotificationSink
}

// NewCreateParcelCommandHandler creates the handler.
func NewCreateParcelCommandHandler(
	uowFactory CreateParcelUoWFactory,
	catalog ports.CatalogRepository,
	pricing *services.PricingEngine,
	planner services.RouteStopPlanner,
	notifier ports.NotificationSink,
) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		pricing:    pricing,
		planner:    planner,
		notifier:   notifier,
	}
}

// Handle processes the creation command.
func (h *CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, serviceFee, err := h.pricing.ServiceFees(ctx, cmd.ServiceIDs())
	if err != nil {
		return err
	}

	var packagePrice float64
	if cmd.PackageTypeID() != nil {
		packageType, err := h.catalog.PackageTypeByID(ctx, *cmd.PackageTypeID())
		if err != nil {
			return err
		}
		if !packageType.IsActive {
			return errs.NewValueIsInvalidError("packageTypeID")
		}
		packagePrice = packageType.Price
	}

	warehouses, err := h.catalog.ActiveWarehouses(ctx)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now()

	originLocationID, err := h.resolveOrigin(ctx, uow, cmd)
	if err != nil {
		return err
	}
	destLocationID, err := h.resolveDestination(ctx, uow, cmd.DestAddress())
	if err != nil {
		return err
	}

	newParcel, err := parcel.NewParcel(
		cmd.ParcelID(), cmd.SenderID(), cmd.TrackingNumber(),
		cmd.ReceiverName(), cmd.ReceiverPhone(), cmd.ItemType(),
		originLocationID, destLocationID,
		cmd.PackageTypeID(), packagePrice, cmd.DeliveryPlanID(), serviceFee, now)
	if err != nil {
		return err
	}

	if err = h.chargeCreationFees(ctx, uow, newParcel, packagePrice+serviceFee, now); err != nil {
		return err
	}

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return err
	}

	originID := originLocationID
	event, err := parcel.NewShipmentEvent(kernel.NewUUID(), newParcel.ID(),
		"Created", newParcel.Status().String(), "Parcel registered", &originID, now)
	if err != nil {
		return err
	}
	if err = uow.EventRepository().Add(ctx, event); err != nil {
		return err
	}

	stops, err := h.planner.PlanStops(originLocationID, destLocationID, warehouses, now)
	if err != nil {
		return err
	}
	parcelRoute, err := route.NewRoute(kernel.NewUUID(), newParcel.ID(), stops)
	if err != nil {
		return err
	}
	if err = uow.RouteRepository().Add(ctx, parcelRoute); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Notification failure never unwinds a committed creation.
	_ = h.notifier.NotifySender(ctx, cmd.SenderID(), "ParcelCreated",
		fmt.Sprintf("Parcel %s registered", newParcel.TrackingNumber()))
	return nil
}

// resolveOrigin loads the sender's address book entry and enforces ownership.
func (h *CreateParcelCommandHandler) resolveOrigin(
	ctx context.Context, uow CreateParcelUoW, cmd CreateParcelCommand,
) (kernel.UUID, error) {
	userLocation, err := uow.LocationRepository().GetUserLocation(ctx, cmd.OriginUserLocationID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if !userLocation.UserID().IsEqual(cmd.SenderID()) {
		return kernel.UUID{}, errs.NewUnauthorizedError("origin address belongs to another user")
	}
	return userLocation.LocationID(), nil
}

// resolveDestination dedups the destination address into the location table.
func (h *CreateParcelCommandHandler) resolveDestination(
	ctx context.Context, uow CreateParcelUoW, addr geo.Address,
) (kernel.UUID, error) {
	location, err := geo.NewLocation(kernel.NewUUID(), addr)
	if err != nil {
		return kernel.UUID{}, err
	}
	location, err = uow.LocationRepository().GetOrCreate(ctx, location)
	if err != nil {
		return kernel.UUID{}, err
	}
	return location.ID(), nil
}

// chargeCreationFees debits packaging and service fees under a row lock on
// the sender's account. A zero total skips the ledger entirely.
func (h *CreateParcelCommandHandler) chargeCreationFees(
	ctx context.Context, uow CreateParcelUoW, newParcel *parcel.Parcel, total float64, now time.Time,
) error {
	if total <= 0 {
		return nil
	}

	ledgerRepo := uow.LedgerRepository()
	account, err := ledgerRepo.AccountForUpdate(ctx, newParcel.SenderID())
	if err != nil {
		return err
	}

	parcelID := newParcel.ID()
	tx, err := account.Debit(total, ledger.TransactionPackage,
		"Packaging and optional services", &parcelID, now)
	if err != nil {
		return err
	}

	if err = ledgerRepo.UpdateAccount(ctx, account); err != nil {
		return err
	}
	return ledgerRepo.AddTransaction(ctx, tx)
}

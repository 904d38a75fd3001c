package commands

import (
	"context"
	"fmt"
	"time"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/ledger"
	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/core/domain/services"
	"parcelmarket/internal/core/ports"
	"parcelmarket/internal/pkg/errs"
)

// SubmitMeasurementsCommandHandler fixes a parcel's economic terms at pickup:
// it prices the shipment from the measured weight and dimensions, charges the
// sender the delivery price under a row lock, and moves the parcel to
// In Transit. Measurements are write-once, so a retry after success fails
// without a second charge.
type SubmitMeasurementsCommandHandler struct {
	uowFactory SubmitMeasurementsUoWFactory
	catalog    ports.CatalogRepository
	pricing    *services.PricingEngine
	notifier   ports.NotificationSink
}

// NewSubmitMeasurementsCommandHandler creates the handler.
func NewSubmitMeasurementsCommandHandler(
	uowFactory SubmitMeasurementsUoWFactory,
	catalog ports.CatalogRepository,
	pricing *services.PricingEngine,
	notifier ports.NotificationSink,
) SubmitMeasurementsCommandHandler {
	return SubmitMeasurementsCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		pricing:    pricing,
		notifier:   notifier,
	}
}

// Handle processes the pickup report.
func (h *SubmitMeasurementsCommandHandler) Handle(
	ctx context.Context, cmd SubmitMeasurementsCommand,
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

	target, err := h.loadAssignedParcel(ctx, uow, cmd)
	if err != nil {
		return err
	}

	dims, err := h.resolveDimensions(ctx, target, cmd.Dimensions())
	if err != nil {
		return err
	}

	originProvince, destProvince, err := h.resolveProvinces(ctx, uow, target)
	if err != nil {
		return err
	}

	now := time.Now()
	quote := h.pricing.QuoteWithPlan(ctx, cmd.Weight(), dims.X(), dims.Y(), dims.Z(),
		originProvince, destProvince, target.DeliveryPlanID(), now)

	if err = target.RecordMeasurements(cmd.Weight(), dims, quote.Price, quote.EstimatedDelivery); err != nil {
		return err
	}

	if err = h.chargeDelivery(ctx, uow, target, quote.Price, now); err != nil {
		return err
	}

	if err = uow.ParcelRepository().Update(ctx, target); err != nil {
		return err
	}

	originID := target.OriginLocationID()
	event, err := parcel.NewShipmentEvent(kernel.NewUUID(), target.ID(),
		"Picked Up", target.Status().String(), "Parcel measured and picked up", &originID, now)
	if err != nil {
		return err
	}
	if err = uow.EventRepository().Add(ctx, event); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	total := quote.Price + target.PackagePrice() + target.ServiceFee()
	_ = h.notifier.NotifySender(ctx, target.SenderID(), "ParcelPickedUp",
		fmt.Sprintf("Parcel %s picked up, total charges %.2f", target.TrackingNumber(), total))
	return nil
}

// loadAssignedParcel enforces that the caller is the carrier who accepted the
// parcel.
func (h *SubmitMeasurementsCommandHandler) loadAssignedParcel(
	ctx context.Context, uow SubmitMeasurementsUoW, cmd SubmitMeasurementsCommand,
) (*parcel.Parcel, error) {
	assignment, err := uow.AssignmentRepository().GetByParcel(ctx, cmd.ParcelID())
	if err != nil {
		return nil, err
	}
	if assignment.Status() != parcel.AssignmentAccepted {
		return nil, errs.NewPreconditionFailedError("parcel has not been accepted")
	}
	if assignment.CarrierID() == nil || !assignment.CarrierID().IsEqual(cmd.CarrierID()) {
		return nil, errs.NewUnauthorizedError("parcel is assigned to another carrier")
	}

	return uow.ParcelRepository().Get(ctx, cmd.ParcelID())
}

// resolveDimensions takes fixed dimensions from the selected package type or
// requires measured ones from the carrier.
func (h *SubmitMeasurementsCommandHandler) resolveDimensions(
	ctx context.Context, target *parcel.Parcel, measured *parcel.Dimensions,
) (parcel.Dimensions, error) {
	if packageTypeID := target.PackageTypeID(); packageTypeID != nil {
		packageType, err := h.catalog.PackageTypeByID(ctx, *packageTypeID)
		if err != nil {
			return parcel.Dimensions{}, err
		}
		return parcel.NewDimensions(packageType.DimX, packageType.DimY, packageType.DimZ)
	}

	if measured == nil {
		return parcel.Dimensions{}, errs.NewValueIsRequiredError("dimensions")
	}
	return *measured, nil
}

func (h *SubmitMeasurementsCommandHandler) resolveProvinces(
	ctx context.Context, uow SubmitMeasurementsUoW, target *parcel.Parcel,
) (string, string, error) {
	locationRepo := uow.LocationRepository()

	origin, err := locationRepo.Get(ctx, target.OriginLocationID())
	if err != nil {
		return "", "", err
	}
	dest, err := locationRepo.Get(ctx, target.DestLocationID())
	if err != nil {
		return "", "", err
	}
	return origin.Province(), dest.Province(), nil
}

// chargeDelivery debits the delivery price under a row lock on the sender's
// account. Packaging and service fees were charged at creation.
func (h *SubmitMeasurementsCommandHandler) chargeDelivery(
	ctx context.Context, uow SubmitMeasurementsUoW, target *parcel.Parcel, price float64, now time.Time,
) error {
	ledgerRepo := uow.LedgerRepository()
	account, err := ledgerRepo.AccountForUpdate(ctx, target.SenderID())
	if err != nil {
		return err
	}

	parcelID := target.ID()
	tx, err := account.Debit(price, ledger.TransactionParcel, "Delivery charge", &parcelID, now)
	if err != nil {
		return err
	}

	if err = ledgerRepo.UpdateAccount(ctx, account); err != nil {
		return err
	}
	return ledgerRepo.AddTransaction(ctx, tx)
}

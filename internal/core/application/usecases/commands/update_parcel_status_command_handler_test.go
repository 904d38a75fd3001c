package commands_test

import (
	"testing"
	"time"

	"parcelmarket/internal/core/application/usecases/commands"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/core/domain/model/route"
	"parcelmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestRoute builds an origin -> warehouse -> destination route for parcelID.
func newTestRoute(t *testing.T, parcelID kernel.UUID) *route.Route {
	t.Helper()

	now := time.Now()
	origin, err := route.NewStop(kernel.NewUUID(), 1, route.StopOrigin, kernel.NewUUID(), nil, now)
	require.NoError(t, err)
	warehouseID := kernel.NewUUID()
	warehouse, err := route.NewStop(
		kernel.NewUUID(), 2, route.StopWarehouse, kernel.NewUUID(), &warehouseID, now.Add(6*time.Hour))
	require.NoError(t, err)
	dest, err := route.NewStop(
		kernel.NewUUID(), 3, route.StopDestination, kernel.NewUUID(), nil, now.Add(12*time.Hour))
	require.NoError(t, err)

	r, err := route.NewRoute(kernel.NewUUID(), parcelID, []*route.Stop{origin, warehouse, dest})
	require.NoError(t, err)
	return r
}

// resolveAllStops marks every stop on the route as visited.
func resolveAllStops(t *testing.T, r *route.Route) {
	t.Helper()

	for _, s := range r.Stops() {
		_, err := r.RecordArrival(s.ID(), time.Now(), false)
		require.NoError(t, err)
	}
}

func TestUpdateParcelStatusCommandHandler_Handle_BlockedByWarehouseStop(t *testing.T) {
	ctx := t.Context()
	senderID := kernel.NewUUID()
	carrierID := kernel.NewUUID()

	target := restoreTestParcel(t, senderID, parcel.StatusAwaitingPickup)
	assignment := acceptedTestAssignment(t, target.ID(), carrierID)
	parcelRoute := newTestRoute(t, target.ID())

	cmd, err := commands.NewUpdateParcelStatusCommand(
		target.ID(), carrierID, "Delivery", "Delivered", "Dropped at door")
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	assignmentRepo := new(MockAssignmentRepository)
	routeRepo := new(MockRouteRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("GetByParcel", ctx, target.ID()).Return(assignment, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("GetByParcel", ctx, target.ID()).Return(parcelRoute, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRouteProgressUoWFactory)
	factory.On("Create").Return(uow).Once()
	notifier := new(MockNotificationSink)

	handler := commands.NewUpdateParcelStatusCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
	assert.Equal(t, parcel.StatusAwaitingPickup, target.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
	notifier.AssertNotCalled(t, "NotifySender")
}

func TestUpdateParcelStatusCommandHandler_Handle_Delivered(t *testing.T) {
	ctx := t.Context()
	senderID := kernel.NewUUID()
	carrierID := kernel.NewUUID()

	weight := 2.0
	price := 112.0
	dims, err := parcel.NewDimensions(10, 10, 10)
	require.NoError(t, err)
	eta := time.Now().AddDate(0, 0, 2)
	target, err := parcel.RestoreParcel(
		kernel.NewUUID(), senderID, parcel.NewTrackingNumber(),
		"Somsak", "0812345678", parcel.ItemClothing,
		kernel.NewUUID(), kernel.NewUUID(),
		nil, 25.0, nil, 0,
		parcel.StatusInTransit, &weight, &dims, &price, &eta, time.Now(),
	)
	require.NoError(t, err)

	assignment := acceptedTestAssignment(t, target.ID(), carrierID)
	parcelRoute := newTestRoute(t, target.ID())
	resolveAllStops(t, parcelRoute)

	cmd, err := commands.NewUpdateParcelStatusCommand(
		target.ID(), carrierID, "Delivery", "Delivered", "Dropped at door")
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	assignmentRepo := new(MockAssignmentRepository)
	routeRepo := new(MockRouteRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("GetByParcel", ctx, target.ID()).Return(assignment, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Twice(),
		parcelRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("GetByParcel", ctx, target.ID()).Return(parcelRoute, nil).Once(),
		parcelRepo.On("Update", ctx, target).Return(nil).Once(),
		uow.On("EventRepository").Return(eventRepo).Once(),
		eventRepo.On("Add", ctx, mock.AnythingOfType("*parcel.ShipmentEvent")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRouteProgressUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationSink)
	notifier.On("NotifySender", ctx, senderID, "ParcelStatus", mock.AnythingOfType("string")).
		Return(nil).Once()

	handler := commands.NewUpdateParcelStatusCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.StatusDelivered, target.Status())
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestUpdateParcelStatusCommandHandler_Handle_NonTerminalStatus(t *testing.T) {
	ctx := t.Context()
	senderID := kernel.NewUUID()
	carrierID := kernel.NewUUID()

	target := restoreTestParcel(t, senderID, parcel.StatusInTransit)
	assignment := acceptedTestAssignment(t, target.ID(), carrierID)
	parcelRoute := newTestRoute(t, target.ID())
	resolveAllStops(t, parcelRoute)

	cmd, err := commands.NewUpdateParcelStatusCommand(
		target.ID(), carrierID, "Checkpoint", "In Transit", "Passed sorting hub")
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	assignmentRepo := new(MockAssignmentRepository)
	routeRepo := new(MockRouteRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("GetByParcel", ctx, target.ID()).Return(assignment, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Twice(),
		parcelRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("GetByParcel", ctx, target.ID()).Return(parcelRoute, nil).Once(),
		parcelRepo.On("Update", ctx, target).Return(nil).Once(),
		uow.On("EventRepository").Return(eventRepo).Once(),
		eventRepo.On("Add", ctx, mock.AnythingOfType("*parcel.ShipmentEvent")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRouteProgressUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationSink)
	notifier.On("NotifySender", ctx, senderID, "ParcelStatus", mock.AnythingOfType("string")).
		Return(nil).Once()

	handler := commands.NewUpdateParcelStatusCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	// An In Transit parcel stays In Transit; the report appends an event.
	assert.Equal(t, parcel.StatusInTransit, target.Status())
	uow.AssertExpectations(t)
}

func TestUpdateParcelStatusCommandHandler_Handle_NonTerminalStatus_StartsTransit(t *testing.T) {
	ctx := t.Context()
	senderID := kernel.NewUUID()
	carrierID := kernel.NewUUID()

	target := restoreTestParcel(t, senderID, parcel.StatusAwaitingPickup)
	assignment := acceptedTestAssignment(t, target.ID(), carrierID)
	parcelRoute := newTestRoute(t, target.ID())
	resolveAllStops(t, parcelRoute)

	cmd, err := commands.NewUpdateParcelStatusCommand(
		target.ID(), carrierID, "Checkpoint", "Out for Delivery", "Left the hub")
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	assignmentRepo := new(MockAssignmentRepository)
	routeRepo := new(MockRouteRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("GetByParcel", ctx, target.ID()).Return(assignment, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Twice(),
		parcelRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("GetByParcel", ctx, target.ID()).Return(parcelRoute, nil).Once(),
		parcelRepo.On("Update", ctx, target).Return(nil).Once(),
		uow.On("EventRepository").Return(eventRepo).Once(),
		eventRepo.On("Add", ctx, mock.AnythingOfType("*parcel.ShipmentEvent")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRouteProgressUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationSink)
	notifier.On("NotifySender", ctx, senderID, "ParcelStatus", mock.AnythingOfType("string")).
		Return(nil).Once()

	handler := commands.NewUpdateParcelStatusCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	// Any non-terminal report moves an Awaiting Pickup parcel to In Transit.
	assert.Equal(t, parcel.StatusInTransit, target.Status())
	uow.AssertExpectations(t)
}

func TestNewUpdateParcelStatusCommand_RequiresEventTypeAndStatus(t *testing.T) {
	_, err := commands.NewUpdateParcelStatusCommand(
		kernel.NewUUID(), kernel.NewUUID(), "", "Delivered", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewUpdateParcelStatusCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Delivery", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

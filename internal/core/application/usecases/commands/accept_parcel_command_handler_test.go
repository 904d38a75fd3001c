package commands_test

import (
	"testing"
	"time"

	"parcelmarket/internal/core/application/usecases/commands"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAcceptParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	senderID := kernel.NewUUID()
	carrierID := kernel.NewUUID()

	target := restoreTestParcel(t, senderID, parcel.StatusPending)
	assignment, err := parcel.NewAssignment(kernel.NewUUID(), target.ID(), time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewAcceptParcelCommand(target.ID(), carrierID)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	assignmentRepo := new(MockAssignmentRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Twice(),
		assignmentRepo.On("GetByParcelForUpdate", ctx, target.ID()).Return(assignment, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Twice(),
		parcelRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		assignmentRepo.On("Update", ctx, mock.AnythingOfType("*parcel.Assignment")).Return(nil).Once(),
		parcelRepo.On("Update", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("EventRepository").Return(eventRepo).Once(),
		eventRepo.On("Add", ctx, mock.AnythingOfType("*parcel.ShipmentEvent")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAcceptParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationSink)
	notifier.On("NotifySender", ctx, senderID, "ParcelAccepted", mock.AnythingOfType("string")).
		Return(nil).Once()

	handler := commands.NewAcceptParcelCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.AssignmentAccepted, assignment.Status())
	require.NotNil(t, assignment.CarrierID())
	assert.True(t, assignment.CarrierID().IsEqual(carrierID))
	assert.Equal(t, parcel.StatusAwaitingPickup, target.Status())
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptParcelCommandHandler_Handle_AlreadyAccepted(t *testing.T) {
	ctx := t.Context()
	senderID := kernel.NewUUID()
	firstCarrierID := kernel.NewUUID()
	secondCarrierID := kernel.NewUUID()

	target := restoreTestParcel(t, senderID, parcel.StatusAwaitingPickup)
	assignment := acceptedTestAssignment(t, target.ID(), firstCarrierID)

	cmd, err := commands.NewAcceptParcelCommand(target.ID(), secondCarrierID)
	require.NoError(t, err)

	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("GetByParcelForUpdate", ctx, target.ID()).Return(assignment, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAcceptParcelUoWFactory)
	factory.On("Create").Return(uow).Once()
	notifier := new(MockNotificationSink)

	handler := commands.NewAcceptParcelCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
	// The losing carrier must not overwrite the winner.
	require.NotNil(t, assignment.CarrierID())
	assert.True(t, assignment.CarrierID().IsEqual(firstCarrierID))
	notifier.AssertNotCalled(t, "NotifySender")
	uow.AssertNotCalled(t, "Commit")
}

func TestAcceptParcelCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AcceptParcelCommand{} // not constructed properly

	factory := new(MockAcceptParcelUoWFactory)
	notifier := new(MockNotificationSink)

	handler := commands.NewAcceptParcelCommandHandler(factory, notifier)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAcceptParcelCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestAcceptParcelCommandHandler_Handle_AssignmentNotFound(t *testing.T) {
	ctx := t.Context()
	parcelID := kernel.NewUUID()

	cmd, err := commands.NewAcceptParcelCommand(parcelID, kernel.NewUUID())
	require.NoError(t, err)

	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("GetByParcelForUpdate", ctx, parcelID).
			Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAcceptParcelUoWFactory)
	factory.On("Create").Return(uow).Once()
	notifier := new(MockNotificationSink)

	handler := commands.NewAcceptParcelCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

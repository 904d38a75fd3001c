package commands_test

import (
	"testing"

	"parcelmarket/internal/core/application/usecases/commands"
	"parcelmarket/internal/core/domain/model/catalog"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/ledger"
	"parcelmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTopupBalanceCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	bankID := kernel.NewUUID()

	cmd, err := commands.NewTopupBalanceCommand(userID, bankID, 500)
	require.NoError(t, err)

	account, err := ledger.RestoreAccount(kernel.NewUUID(), userID, 100)
	require.NoError(t, err)

	catalogRepo := new(MockCatalogRepository)
	catalogRepo.On("BankByID", ctx, bankID).
		Return(&catalog.Bank{ID: bankID, Name: "Krung Thai", IsActive: true}, nil).Once()

	ledgerRepo := new(MockLedgerRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
		ledgerRepo.On("AccountForUpdate", ctx, userID).Return(account, nil).Once(),
		ledgerRepo.On("UpdateAccount", ctx, account).Return(nil).Once(),
		ledgerRepo.On("AddTransaction", ctx, mock.AnythingOfType("*ledger.Transaction")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationSink)
	notifier.On("NotifySender", ctx, userID, "BalanceTopup", mock.AnythingOfType("string")).
		Return(nil).Once()

	handler := commands.NewTopupBalanceCommandHandler(factory, catalogRepo, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.InDelta(t, 600.00, account.Balance(), 0.001)
	ledgerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestTopupBalanceCommandHandler_Handle_CreatesAccountOnFirstTopup(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	bankID := kernel.NewUUID()

	cmd, err := commands.NewTopupBalanceCommand(userID, bankID, 250)
	require.NoError(t, err)

	catalogRepo := new(MockCatalogRepository)
	catalogRepo.On("BankByID", ctx, bankID).
		Return(&catalog.Bank{ID: bankID, Name: "Krung Thai", IsActive: true}, nil).Once()

	ledgerRepo := new(MockLedgerRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
		ledgerRepo.On("AccountForUpdate", ctx, userID).Return(nil, errs.ErrObjectNotFound).Once(),
		ledgerRepo.On("AddAccount", ctx, mock.AnythingOfType("*ledger.Account")).Return(nil).Once(),
		ledgerRepo.On("UpdateAccount", ctx, mock.AnythingOfType("*ledger.Account")).Return(nil).Once(),
		ledgerRepo.On("AddTransaction", ctx, mock.AnythingOfType("*ledger.Transaction")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationSink)
	notifier.On("NotifySender", ctx, userID, "BalanceTopup", mock.AnythingOfType("string")).
		Return(nil).Once()

	handler := commands.NewTopupBalanceCommandHandler(factory, catalogRepo, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	ledgerRepo.AssertExpectations(t)

	// The created account carries the credited amount.
	updateCall := ledgerRepo.Calls[2]
	created := updateCall.Arguments[1].(*ledger.Account)
	assert.True(t, created.UserID().IsEqual(userID))
	assert.InDelta(t, 250.00, created.Balance(), 0.001)
}

func TestTopupBalanceCommandHandler_Handle_InactiveBank(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	bankID := kernel.NewUUID()

	cmd, err := commands.NewTopupBalanceCommand(userID, bankID, 500)
	require.NoError(t, err)

	catalogRepo := new(MockCatalogRepository)
	catalogRepo.On("BankByID", ctx, bankID).
		Return(&catalog.Bank{ID: bankID, Name: "Closed Bank", IsActive: false}, nil).Once()

	factory := new(MockLedgerUoWFactory)
	notifier := new(MockNotificationSink)

	handler := commands.NewTopupBalanceCommandHandler(factory, catalogRepo, notifier)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestNewTopupBalanceCommand_InvalidAmount(t *testing.T) {
	_, err := commands.NewTopupBalanceCommand(kernel.NewUUID(), kernel.NewUUID(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = commands.NewTopupBalanceCommand(kernel.NewUUID(), kernel.NewUUID(), -10)
	require.Error(t, err)
}

func TestNewTopupBalanceCommand_ZeroIDs(t *testing.T) {
	_, err := commands.NewTopupBalanceCommand(kernel.UUID{}, kernel.NewUUID(), 100)
	require.Error(t, err)

	_, err = commands.NewTopupBalanceCommand(kernel.NewUUID(), kernel.UUID{}, 100)
	require.Error(t, err)
}

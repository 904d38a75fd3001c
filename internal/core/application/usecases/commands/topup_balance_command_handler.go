package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/ledger"
	"parcelmarket/internal/core/ports"
	"parcelmarket/internal/pkg/errs"
)

// TopupBalanceCommandHandler credits a user's balance from a simulated bank
// deposit. The account row is created lazily on the first topup.
type TopupBalanceCommandHandler struct {
	uowFactory LedgerUoWFactory
	catalog    ports.CatalogRepository
	notifier   ports.NotificationSink
}

// NewTopupBalanceCommandHandler creates the handler.
func NewTopupBalanceCommandHandler(
	uowFactory LedgerUoWFactory, catalog ports.CatalogRepository, notifier ports.NotificationSink,
) TopupBalanceCommandHandler {
	return TopupBalanceCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		notifier:   notifier,
	}
}

// Handle processes the deposit.
func (h *TopupBalanceCommandHandler) Handle(ctx context.Context, cmd TopupBalanceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	bank, err := h.catalog.BankByID(ctx, cmd.BankID())
	if err != nil {
		return err
	}
	if !bank.IsActive {
		return errs.NewValueIsInvalidError("bankID")
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ledgerRepo := uow.LedgerRepository()
	account, err := ledgerRepo.AccountForUpdate(ctx, cmd.UserID())
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
		if account, err = ledger.NewAccount(kernel.NewUUID(), cmd.UserID()); err != nil {
			return err
		}
		if err = ledgerRepo.AddAccount(ctx, account); err != nil {
			return err
		}
	}

	bankID := cmd.BankID()
	tx, err := account.Credit(cmd.Amount(), &bankID, time.Now())
	if err != nil {
		return err
	}

	if err = ledgerRepo.UpdateAccount(ctx, account); err != nil {
		return err
	}
	if err = ledgerRepo.AddTransaction(ctx, tx); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.NotifySender(ctx, cmd.UserID(), "BalanceTopup",
		fmt.Sprintf("Balance topped up by %.2f via %s", tx.Amount(), bank.Name))
	return nil
}

package ports

import (
	"context"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/ledger"
)

// LedgerRepository defines the persistence contract for accounts and their
// transaction history. Balance mutations and transaction inserts always
// happen in the same unit of work.
type LedgerRepository interface {
	// AddAccount persists a new account.
	AddAccount(ctx context.Context, account *ledger.Account) error

	// Account retrieves a user's account without locking.
	Account(ctx context.Context, userID kernel.UUID) (*ledger.Account, error)

	// AccountForUpdate retrieves a user's account with a row lock held until
	// the surrounding transaction ends. Serializes concurrent debits so the
	// sufficiency check never runs against a stale balance.
	AccountForUpdate(ctx context.Context, userID kernel.UUID) (*ledger.Account, error)

	// UpdateAccount persists the account's balance.
	UpdateAccount(ctx context.Context, account *ledger.Account) error

	// AddTransaction appends a ledger entry. Entries are immutable.
	AddTransaction(ctx context.Context, tx *ledger.Transaction) error

	// TransactionsByUser retrieves a user's ledger entries, newest first.
	TransactionsByUser(ctx context.Context, userID kernel.UUID) ([]*ledger.Transaction, error)

	// SumSignedAmounts computes the signed sum of a user's ledger entries.
	// Used to verify the conservation invariant against the cached balance.
	SumSignedAmounts(ctx context.Context, userID kernel.UUID) (float64, error)
}

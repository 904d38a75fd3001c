package ledger

import (
	"errors"
	"math"
	"time"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

var ErrAccountIsNotConstructed = errors.New(
	"Account must be created via NewAccount constructor")

// Account is a user's prepaid balance. Every balance change goes through
// Credit or Debit, each of which yields the matching Transaction so the
// ledger and the cached balance move together in one unit of work.
type Account struct {
	id      kernel.UUID
	userID  kernel.UUID
	balance float64

	guard guard.ConstructorGuard
}

// NewAccount creates an account with a zero balance.
func NewAccount(id, userID kernel.UUID) (*Account, error) {
	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return nil, err
	}

	return &Account{
		id:     id,
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// RestoreAccount reconstructs an account from persistence.
func RestoreAccount(id, userID kernel.UUID, balance float64) (*Account, error) {
	a, err := NewAccount(id, userID)
	if err != nil {
		return nil, err
	}
	if balance < 0 {
		return nil, errs.NewValueIsOutOfRangeError("balance", balance, 0, nil)
	}

	a.balance = balance
	return a, nil
}

func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

func (a *Account) ID() kernel.UUID { return a.id }
func (a *Account) UserID() kernel.UUID { return a.userID }
func (a *Account) Balance() float64 { return a.balance }

// Credit deposits amount and returns the Topup transaction. bankID records
// the deposit source.
func (a *Account) Credit(amount float64, bankID *kernel.UUID, now time.Time) (*Transaction, error) {
	if amount <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("amount", amount, 0, nil)
	}

	tx, err := NewTransaction(kernel.NewUUID(), a.userID, TransactionTopup,
		roundMoney(amount), "Balance topup", nil, bankID, now)
	if err != nil {
		return nil, err
	}

	a.balance = roundMoney(a.balance + tx.Amount())
	return tx, nil
}

// Debit withdraws amount and returns the charge transaction. Fails with an
// InsufficientBalanceError carrying the required and current amounts when the
// balance cannot cover the charge; the balance is left untouched.
func (a *Account) Debit(
	amount float64, txType TransactionType, description string, parcelID *kernel.UUID, now time.Time,
) (*Transaction, error) {
	if amount <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("amount", amount, 0, nil)
	}
	if txType == TransactionTopup {
		return nil, errs.NewValueIsInvalidError("transactionType")
	}

	amount = roundMoney(amount)
	if a.balance < amount {
		return nil, errs.NewInsufficientBalanceError(amount, a.balance)
	}

	tx, err := NewTransaction(kernel.NewUUID(), a.userID, txType, amount,
		description, parcelID, nil, now)
	if err != nil {
		return nil, err
	}

	a.balance = roundMoney(a.balance - amount)
	return tx, nil
}

// roundMoney rounds to 2 decimal places, the precision of all monetary
// amounts in the system.
func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

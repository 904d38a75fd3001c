package ledger

import (
	"errors"
	"fmt"
	"time"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

var ErrTransactionIsNotConstructed = errors.New(
	"Transaction must be created via NewTransaction constructor")

// TransactionType classifies ledger entries. Topup credits the account;
// Package and Parcel debit it.
type TransactionType string

const (
	// TransactionTopup is a balance deposit.
	TransactionTopup TransactionType = "Topup"
	// TransactionPackage covers packaging and optional service fees charged
	// at parcel creation.
	TransactionPackage TransactionType = "Package"
	// TransactionParcel is the delivery price charged when the carrier
	// submits measurements.
	TransactionParcel TransactionType = "Parcel"
)

func (t TransactionType) Validate() error {
	switch t {
	case TransactionTopup, TransactionPackage, TransactionParcel:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"transactionType", fmt.Errorf("%q is not a valid transaction type", string(t)))
	}
}

func (t TransactionType) String() string {
	return string(t)
}

// Transaction is one immutable ledger entry. The amount is always positive;
// the sign is derived from the type.
type Transaction struct {
	id          kernel.UUID
	userID      kernel.UUID
	txType      TransactionType
	amount      float64
	description string
	parcelID    *kernel.UUID
	bankID      *kernel.UUID
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewTransaction records a ledger entry. parcelID links charges to the parcel
// they pay for; bankID records the deposit source of a topup.
func NewTransaction(
	id, userID kernel.UUID,
	txType TransactionType,
	amount float64,
	description string,
	parcelID, bankID *kernel.UUID,
	createdAt time.Time,
) (*Transaction, error) {
	if err := errors.Join(id.Validate(), userID.Validate(), txType.Validate()); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("amount", amount, 0, nil)
	}
	if parcelID != nil {
		if err := parcelID.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("parcelID", err)
		}
	}
	if bankID != nil {
		if err := bankID.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("bankID", err)
		}
	}

	return &Transaction{
		id:          id,
		userID:      userID,
		txType:      txType,
		amount:      amount,
		description: description,
		parcelID:    parcelID,
		bankID:      bankID,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreTransaction reconstructs a ledger entry from persistence.
func RestoreTransaction(
	id, userID kernel.UUID,
	txType TransactionType,
	amount float64,
	description string,
	parcelID, bankID *kernel.UUID,
	createdAt time.Time,
) (*Transaction, error) {
	return NewTransaction(id, userID, txType, amount, description, parcelID, bankID, createdAt)
}

func (t *Transaction) Validate() error {
	if t == nil {
		return ErrTransactionIsNotConstructed
	}
	return t.guard.Validate(ErrTransactionIsNotConstructed)
}

func (t *Transaction) ID() kernel.UUID { return t.id }
func (t *Transaction) UserID() kernel.UUID { return t.userID }
func (t *Transaction) Type() TransactionType { return t.txType }
func (t *Transaction) Amount() float64 { return t.amount }
func (t *Transaction) Description() string { return t.description }
func (t *Transaction) ParcelID() *kernel.UUID { return t.parcelID }
func (t *Transaction) BankID() *kernel.UUID { return t.bankID }
func (t *Transaction) CreatedAt() time.Time { return t.createdAt }

// SignedAmount returns the balance effect of the entry: positive for topups,
// negative for charges. The sum of signed amounts over a user's entries must
// equal the account balance.
func (t *Transaction) SignedAmount() float64 {
	if t.txType == TransactionTopup {
		return t.amount
	}
	return -t.amount
}

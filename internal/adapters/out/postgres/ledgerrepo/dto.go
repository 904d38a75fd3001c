// Package ledgerrepo provides data transfer objects and mapping functions for
// account and transaction persistence. Balance updates and ledger inserts
// always run inside the same unit of work, so the cached balance and the sum
// of signed transaction amounts stay equal.
package ledgerrepo

import (
	"time"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/ledger"

	"github.com/google/uuid"
)

// AccountDTO represents the cached balance row of a user.
type AccountDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID  uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Balance float64
}

func (AccountDTO) TableName() string {
	return "accounts"
}

// TransactionDTO represents one immutable ledger entry. The amount is always
// positive; the sign follows from the type.
type TransactionDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Type        string
	Amount      float64
	Description string
	ParcelID    *uuid.UUID `gorm:"type:uuid"`
	BankID      *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time  `gorm:"index"`
}

func (TransactionDTO) TableName() string {
	return "transactions"
}

func accountFromDomain(a *ledger.Account) AccountDTO {
	return AccountDTO{
		ID:      a.ID().Bytes(),
		UserID:  a.UserID().Bytes(),
		Balance: a.Balance(),
	}
}

func accountToDomain(dto AccountDTO) (*ledger.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return ledger.RestoreAccount(id, userID, dto.Balance)
}

func transactionFromDomain(t *ledger.Transaction) TransactionDTO {
	var parcelID, bankID *uuid.UUID
	if id := t.ParcelID(); id != nil {
		raw := id.Bytes()
		parcelID = &raw
	}
	if id := t.BankID(); id != nil {
		raw := id.Bytes()
		bankID = &raw
	}

	return TransactionDTO{
		ID:          t.ID().Bytes(),
		UserID:      t.UserID().Bytes(),
		Type:        t.Type().String(),
		Amount:      t.Amount(),
		Description: t.Description(),
		ParcelID:    parcelID,
		BankID:      bankID,
		CreatedAt:   t.CreatedAt(),
	}
}

func transactionToDomain(dto TransactionDTO) (*ledger.Transaction, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var parcelID, bankID *kernel.UUID
	if dto.ParcelID != nil {
		pID, pErr := kernel.UUIDFromBytes((*dto.ParcelID)[:])
		if pErr != nil {
			return nil, pErr
		}
		parcelID = &pID
	}
	if dto.BankID != nil {
		bID, bErr := kernel.UUIDFromBytes((*dto.BankID)[:])
		if bErr != nil {
			return nil, bErr
		}
		bankID = &bID
	}

	return ledger.RestoreTransaction(
		id, userID, ledger.TransactionType(dto.Type), dto.Amount,
		dto.Description, parcelID, bankID, dto.CreatedAt)
}

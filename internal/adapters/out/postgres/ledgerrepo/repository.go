package ledgerrepo

import (
	"context"
	"errors"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/ledger"
	"parcelmarket/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormLedgerRepository implements LedgerRepository using GORM.
type GormLedgerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormLedgerRepository creates a new GORM ledger repository.
func NewGormLedgerRepository(db *gorm.DB, tracker aggregateTracker) *GormLedgerRepository {
	return &GormLedgerRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddAccount persists a new account.
func (r *GormLedgerRepository) AddAccount(ctx context.Context, account *ledger.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}

	dto := accountFromDomain(account)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(account.ID(), account)
	return nil
}

// Account retrieves a user's account without locking.
func (r *GormLedgerRepository) Account(
	ctx context.Context, userID kernel.UUID,
) (*ledger.Account, error) {
	return r.account(ctx, userID, false)
}

// AccountForUpdate retrieves a user's account with a FOR UPDATE row lock held
// until the surrounding transaction ends. Concurrent debits serialize on this
// lock, so the sufficiency check never runs against a stale balance.
func (r *GormLedgerRepository) AccountForUpdate(
	ctx context.Context, userID kernel.UUID,
) (*ledger.Account, error) {
	return r.account(ctx, userID, true)
}

func (r *GormLedgerRepository) account(
	ctx context.Context, userID kernel.UUID, forUpdate bool,
) (*ledger.Account, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto AccountDTO
	if err := tx.First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", userID.String())
		}
		return nil, err
	}

	return accountToDomain(dto)
}

// UpdateAccount persists the account's balance. Update is used instead of
// Updates because a balance of exactly zero must still be written.
func (r *GormLedgerRepository) UpdateAccount(ctx context.Context, account *ledger.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}

	dto := accountFromDomain(account)
	result := r.db.WithContext(ctx).Model(&AccountDTO{}).
		Where("id = ?", dto.ID).
		Update("balance", dto.Balance)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(account.ID(), account)
	return nil
}

// AddTransaction appends a ledger entry.
func (r *GormLedgerRepository) AddTransaction(ctx context.Context, tx *ledger.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	dto := transactionFromDomain(tx)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// TransactionsByUser retrieves a user's ledger entries, newest first.
func (r *GormLedgerRepository) TransactionsByUser(
	ctx context.Context, userID kernel.UUID,
) ([]*ledger.Transaction, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TransactionDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "user_id = ?", userID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	transactions := make([]*ledger.Transaction, 0, len(dtos))
	for _, dto := range dtos {
		t, err := transactionToDomain(dto)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	return transactions, nil
}

// SumSignedAmounts computes the signed sum of a user's ledger entries:
// topups count positive, charges negative. The result must equal the cached
// account balance.
func (r *GormLedgerRepository) SumSignedAmounts(
	ctx context.Context, userID kernel.UUID,
) (float64, error) {
	if err := userID.Validate(); err != nil {
		return 0, err
	}

	var sum float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE -amount END), 0)
		FROM transactions
		WHERE user_id = ?
	`, ledger.TransactionTopup.String(), userID.Bytes()).Scan(&sum).Error
	if err != nil {
		return 0, err
	}

	return sum, nil
}

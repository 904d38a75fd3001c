package queries

import (
	"errors"
	"time"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/guard"
)

var ErrGetTransactionsQueryIsNotConstructed = errors.New(
	"GetTransactionsQuery must be created via NewGetTransactionsQuery constructor",
)

// GetTransactionsQuery reads the wallet history of one user.
type GetTransactionsQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTransactionsQuery creates a transaction history lookup for the given
// user.
func NewGetTransactionsQuery(userID kernel.UUID) (GetTransactionsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetTransactionsQuery{}, err
	}

	return GetTransactionsQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTransactionsQuery) Validate() error {
	return q.guard.Validate(ErrGetTransactionsQueryIsNotConstructed)
}

func (q GetTransactionsQuery) UserID() kernel.UUID { return q.userID }

// TransactionResponse is one wallet movement. Amount is always positive;
// Type says whether money came in or went out.
type TransactionResponse struct {
	TransactionID string
	Type          string
	Amount        float64
	Description   string
	ParcelID      *string
	BankID        *string
	CreatedAt     time.Time
}

package queries

import (
	"errors"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/guard"
)

var ErrGetBalanceQueryIsNotConstructed = errors.New(
	"GetBalanceQuery must be created via NewGetBalanceQuery constructor",
)

// GetBalanceQuery reads the wallet balance of one user.
type GetBalanceQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBalanceQuery creates a balance lookup for the given user.
func NewGetBalanceQuery(userID kernel.UUID) (GetBalanceQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetBalanceQuery{}, err
	}

	return GetBalanceQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetBalanceQueryIsNotConstructed)
}

func (q GetBalanceQuery) UserID() kernel.UUID { return q.userID }

// GetBalanceQueryResponse carries the current wallet balance.
type GetBalanceQueryResponse struct {
	UserID  string
	Balance float64
}

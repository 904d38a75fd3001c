package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

// GetBalanceQueryHandler reads a user's wallet balance.
type GetBalanceQueryHandler struct {
	db *gorm.DB
}

// NewGetBalanceQueryHandler creates a handler for balance lookups.
func NewGetBalanceQueryHandler(db *gorm.DB) GetBalanceQueryHandler {
	return GetBalanceQueryHandler{db: db}
}

// Handle returns the user's balance. A user who has never topped up or been
// charged has no account row yet; that reads as a zero balance, not an error.
func (h GetBalanceQueryHandler) Handle(
	ctx context.Context,
	query GetBalanceQuery,
) (*GetBalanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	response := GetBalanceQueryResponse{UserID: query.UserID().String()}

	row := h.db.WithContext(ctx).Raw(`
		SELECT balance
		FROM accounts
		WHERE user_id = ?
	`, query.UserID().Bytes()).Row()

	err := row.Scan(&response.Balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &response, nil
		}
		return nil, err
	}

	return &response, nil
}

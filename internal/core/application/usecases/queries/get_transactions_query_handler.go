package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTransactionsQueryHandler reads a user's wallet history.
type GetTransactionsQueryHandler struct {
	db *gorm.DB
}

// NewGetTransactionsQueryHandler creates a handler for transaction history
// lookups.
func NewGetTransactionsQueryHandler(db *gorm.DB) GetTransactionsQueryHandler {
	return GetTransactionsQueryHandler{db: db}
}

// Handle returns the user's transactions, newest first. A user with no
// account yet gets an empty list.
//
// Example:
//
//	query, err := queries.NewGetTransactionsQuery(userID)
//	if err != nil {
//		return err
//	}
//	history, err := handler.Handle(ctx, query)
func (h GetTransactionsQueryHandler) Handle(
	ctx context.Context,
	query GetTransactionsQuery,
) ([]TransactionResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	transactions := make([]TransactionResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			type,
			amount,
			description,
			parcel_id,
			bank_id,
			created_at
		FROM transactions
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response TransactionResponse
		var transactionID uuid.UUID
		var description sql.NullString
		var parcelID, bankID uuid.NullUUID

		err = rows.Scan(
			&transactionID,
			&response.Type,
			&response.Amount,
			&description,
			&parcelID,
			&bankID,
			&response.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		response.TransactionID = transactionID.String()
		response.Description = description.String
		if parcelID.Valid {
			s := parcelID.UUID.String()
			response.ParcelID = &s
		}
		if bankID.Valid {
			s := bankID.UUID.String()
			response.BankID = &s
		}

		transactions = append(transactions, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return transactions, nil
}

package repository

import (
	"context"

	"fintrack/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionRepository struct {
	db *pgxpool.Pool
}

func NewTransactionRepository(db *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create inserts a new transaction, filling in the assigned id and timestamp
func (r *TransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO transactions (user_id, title, amount, category)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		tx.UserID, tx.Title, tx.Amount, tx.Category,
	).Scan(&tx.ID, &tx.CreatedAt)
}

// GetByUserID returns all transactions for a user, most recent first.
// The id tiebreak keeps the order deterministic for rows created within the
// same timestamp.
func (r *TransactionRepository) GetByUserID(ctx context.Context, userID string) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, title, amount, category, created_at
		 FROM transactions
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRows(rows)
}

// Delete removes a transaction and returns the removed row.
// Returns pgx.ErrNoRows when the id does not exist.
func (r *TransactionRepository) Delete(ctx context.Context, id int64) (*domain.Transaction, error) {
	var tx domain.Transaction
	err := r.db.QueryRow(ctx,
		`DELETE FROM transactions
		 WHERE id = $1
		 RETURNING id, user_id, title, amount, category, created_at`,
		id,
	).Scan(&tx.ID, &tx.UserID, &tx.Title, &tx.Amount, &tx.Category, &tx.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// SummaryByUserID aggregates balance/income/expense in a single query so the
// row set never has to be loaded into memory.
func (r *TransactionRepository) SummaryByUserID(ctx context.Context, userID string) (*domain.Summary, error) {
	var s domain.Summary
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0),
		        COALESCE(SUM(amount) FILTER (WHERE amount > 0), 0),
		        COALESCE(SUM(amount) FILTER (WHERE amount < 0), 0)
		 FROM transactions
		 WHERE user_id = $1`,
		userID,
	).Scan(&s.Balance, &s.Income, &s.Expense)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Helper to scan rows into a Transaction slice
func scanRows(rows pgx.Rows) ([]domain.Transaction, error) {
	result := []domain.Transaction{}

	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Title, &tx.Amount, &tx.Category, &tx.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, tx)
	}

	return result, rows.Err()
}

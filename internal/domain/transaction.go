package domain

import (
	"errors"
	"time"
)

var (
	// ErrValidation marks missing or malformed input on a request.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a lookup or delete for an id that does not exist.
	ErrNotFound = errors.New("transaction not found")
)

// Transaction is a single monetary record owned by a user. Positive amounts
// are income, negative amounts are expenses. Records are immutable once
// created.
type Transaction struct {
	ID        int64     `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId"`
	Title     string    `db:"title" json:"title"`
	Amount    float64   `db:"amount" json:"amount"`
	Category  string    `db:"category" json:"category"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Summary is the derived balance/income/expense triple for one user.
// Expense keeps the raw sign of the underlying amounts, so it is zero or
// negative.
type Summary struct {
	Balance float64 `json:"balance"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

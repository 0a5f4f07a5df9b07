package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fintrack/internal/domain"
	"fintrack/internal/logger"

	"github.com/jackc/pgx/v5"
)

// TransactionStore is the persistence surface the service needs. Implemented
// by repository.TransactionRepository.
type TransactionStore interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	GetByUserID(ctx context.Context, userID string) ([]domain.Transaction, error)
	Delete(ctx context.Context, id int64) (*domain.Transaction, error)
	SummaryByUserID(ctx context.Context, userID string) (*domain.Summary, error)
}

// TransactionService implements create/list/delete/summary over the store.
type TransactionService struct {
	store TransactionStore
}

func NewTransactionService(store TransactionStore) *TransactionService {
	return &TransactionService{store: store}
}

// CreateInput carries the client-supplied fields of a new transaction.
// Amount is a pointer so a missing field is distinguishable from zero.
type CreateInput struct {
	UserID   string   `json:"userId"`
	Title    string   `json:"title"`
	Amount   *float64 `json:"amount"`
	Category string   `json:"category"`
}

// Create validates the input and persists a new transaction. Repeated calls
// create distinct records.
func (s *TransactionService) Create(ctx context.Context, in CreateInput) (*domain.Transaction, error) {
	if strings.TrimSpace(in.UserID) == "" {
		return nil, fmt.Errorf("%w: userId is required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if in.Amount == nil {
		return nil, fmt.Errorf("%w: amount is required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.Category) == "" {
		return nil, fmt.Errorf("%w: category is required", domain.ErrValidation)
	}

	tx := &domain.Transaction{
		UserID:   in.UserID,
		Title:    in.Title,
		Amount:   *in.Amount,
		Category: in.Category,
	}
	if err := s.store.Create(ctx, tx); err != nil {
		logger.Error("create transaction failed", "user_id", in.UserID, "error", err)
		return nil, err
	}
	return tx, nil
}

// ListByUser returns the user's transactions, most recent first. A user with
// no transactions gets an empty slice, not an error.
func (s *TransactionService) ListByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	txs, err := s.store.GetByUserID(ctx, userID)
	if err != nil {
		logger.Error("list transactions failed", "user_id", userID, "error", err)
		return nil, err
	}
	return txs, nil
}

// Delete removes a transaction by id and returns the removed record.
// Deleting an id that does not exist yields ErrNotFound.
func (s *TransactionService) Delete(ctx context.Context, id int64) (*domain.Transaction, error) {
	tx, err := s.store.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		logger.Error("delete transaction failed", "id", id, "error", err)
		return nil, err
	}
	return tx, nil
}

// Summary computes the balance/income/expense triple for a user. A user with
// no transactions gets all zeros.
func (s *TransactionService) Summary(ctx context.Context, userID string) (*domain.Summary, error) {
	sum, err := s.store.SummaryByUserID(ctx, userID)
	if err != nil {
		logger.Error("summary failed", "user_id", userID, "error", err)
		return nil, err
	}
	return sum, nil
}

package client

import (
	"context"
	"sync"

	"fintrack/internal/domain"
	"fintrack/internal/logger"

	"golang.org/x/sync/errgroup"
)

// Notifier receives user-visible outcomes of feed actions.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

type logNotifier struct{}

func (logNotifier) Success(msg string) { logger.Info(msg) }
func (logNotifier) Error(msg string)   { logger.Error(msg) }

// Feed coordinates a user's transaction list and summary for a client UI.
// Load failures only reach the log; delete failures reach the notifier.
type Feed struct {
	api      *Client
	userID   string
	notifier Notifier

	mu           sync.Mutex
	transactions []domain.Transaction
	summary      domain.Summary
	isLoading    bool
}

// NewFeed binds a feed to one user. A nil notifier falls back to the logger.
// The feed starts in the loading state until the first Load completes.
func NewFeed(api *Client, userID string, notifier Notifier) *Feed {
	if notifier == nil {
		notifier = logNotifier{}
	}
	return &Feed{
		api:       api,
		userID:    userID,
		notifier:  notifier,
		isLoading: true,
	}
}

// Load refreshes the transaction list and the summary concurrently. Both
// fetches run to completion even if one fails, so a summary outage cannot
// abort the list refresh. Whatever happens, the loading flag clears before
// Load returns. A feed without a user id loads nothing.
func (f *Feed) Load(ctx context.Context) error {
	if f.userID == "" {
		return nil
	}

	f.setLoading(true)
	defer f.setLoading(false)

	var g errgroup.Group

	g.Go(func() error {
		txs, err := f.api.ListTransactions(ctx, f.userID)
		if err != nil {
			return err
		}
		f.mu.Lock()
		f.transactions = txs
		f.mu.Unlock()
		return nil
	})

	g.Go(func() error {
		sum, err := f.api.GetSummary(ctx, f.userID)
		if err != nil {
			return err
		}
		f.mu.Lock()
		f.summary = *sum
		f.mu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("loading wallet data failed", "user_id", f.userID, "error", err)
		return err
	}
	return nil
}

// DeleteTransaction removes one transaction and refreshes the feed. The user
// hears about the outcome either way.
func (f *Feed) DeleteTransaction(ctx context.Context, id int64) error {
	if _, err := f.api.DeleteTransaction(ctx, id); err != nil {
		f.notifier.Error("Failed to delete transaction: " + err.Error())
		return err
	}

	if err := f.Load(ctx); err != nil {
		logger.Warn("refresh after delete failed", "user_id", f.userID, "error", err)
	}

	f.notifier.Success("Transaction deleted successfully")
	return nil
}

// Transactions returns a copy of the current list.
func (f *Feed) Transactions() []domain.Transaction {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Transaction, len(f.transactions))
	copy(out, f.transactions)
	return out
}

// Summary returns the current balance/income/expense triple.
func (f *Feed) Summary() domain.Summary {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.summary
}

// IsLoading reports whether a Load is in flight (true before the first Load).
func (f *Feed) IsLoading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.isLoading
}

func (f *Feed) setLoading(v bool) {
	f.mu.Lock()
	f.isLoading = v
	f.mu.Unlock()
}

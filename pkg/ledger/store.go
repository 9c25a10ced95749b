package ledger

import (
	"context"
	"time"
)

// Store persists accounts and the append-only transaction log.
//
// Balance mutations must be single conditional statements so that concurrent
// writers to one account serialize on the row and never drive it negative.
type Store interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, txStore Store) error) error
	// GetOrCreateAccount is idempotent under concurrency; weeklyFreeReset seeds new rows only.
	GetOrCreateAccount(ctx context.Context, userID UserID, weeklyFreeReset time.Time) (CreditAccount, error)
	// FindAccount returns ErrAccountNotFound when the user has no account.
	FindAccount(ctx context.Context, userID UserID) (CreditAccount, error)
	ApplyCredit(ctx context.Context, accountID AccountID, amount Credits, counter LifetimeCounter) (BalanceChange, error)
	// ApplyDebit returns ErrInsufficientCredits without touching the row when balance < amount.
	ApplyDebit(ctx context.Context, accountID AccountID, amount Credits) (BalanceChange, error)
	ResetWeeklyFreeIfDue(ctx context.Context, accountID AccountID, now time.Time, nextReset time.Time) error
	// IncrementWeeklyFree returns ErrWeeklyLimitReached when used >= limit.
	IncrementWeeklyFree(ctx context.Context, accountID AccountID, limit int) (CreditAccount, error)
	// InsertTransaction returns ErrDuplicateIdempotencyKey on a replayed key.
	InsertTransaction(ctx context.Context, transaction CreditTransaction) error
	ListTransactions(ctx context.Context, userID UserID, filter TransactionFilter) ([]CreditTransaction, int64, error)
	SummarizeTransactions(ctx context.Context, accountID AccountID) (LedgerSummary, error)
	ListAccounts(ctx context.Context, afterUserID string, limit int) ([]CreditAccount, error)
}

// TransactionFilter selects one page of a user's history.
type TransactionFilter struct {
	Type   *TransactionType
	Offset int
	Limit  int
}

// LedgerSummary aggregates the transaction log of one account.
type LedgerSummary struct {
	AmountSum         Credits
	TransactionCount  int64
	InconsistentCount int64
}

// BalanceCache is a best-effort cache of account balances.
//
// Invalidate advances the user's generation. SetBalance stores balance only
// while the generation still equals the one read before the balance was
// loaded, so a fill that raced a commit is dropped.
type BalanceCache interface {
	GetBalance(ctx context.Context, userID UserID) (Credits, bool, error)
	Generation(ctx context.Context, userID UserID) (int64, error)
	SetBalance(ctx context.Context, userID UserID, balance Credits, generation int64) error
	Invalidate(ctx context.Context, userID UserID) error
}

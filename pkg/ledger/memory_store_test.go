package ledger

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/MarkoPoloResearchLab/creditledger/internal/clock"
)

var testEpoch = time.Date(2024, time.March, 6, 12, 0, 0, 0, time.UTC)

// memoryStore is an in-process Store; WithTx serializes transactions and
// restores a snapshot when fn fails.
type memoryStore struct {
	txMutex      sync.Mutex
	dataMutex    sync.Mutex
	accounts     map[string]CreditAccount
	transactions []CreditTransaction
	idempotency  map[string]struct{}
	insertErr    error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		accounts:    make(map[string]CreditAccount),
		idempotency: make(map[string]struct{}),
	}
}

type memorySnapshot struct {
	accounts     map[string]CreditAccount
	transactions []CreditTransaction
	idempotency  map[string]struct{}
}

func (store *memoryStore) snapshot() memorySnapshot {
	store.dataMutex.Lock()
	defer store.dataMutex.Unlock()
	accounts := make(map[string]CreditAccount, len(store.accounts))
	for key, account := range store.accounts {
		accounts[key] = account
	}
	idempotency := make(map[string]struct{}, len(store.idempotency))
	for key := range store.idempotency {
		idempotency[key] = struct{}{}
	}
	return memorySnapshot{
		accounts:     accounts,
		transactions: append([]CreditTransaction(nil), store.transactions...),
		idempotency:  idempotency,
	}
}

func (store *memoryStore) restore(snapshot memorySnapshot) {
	store.dataMutex.Lock()
	defer store.dataMutex.Unlock()
	store.accounts = snapshot.accounts
	store.transactions = snapshot.transactions
	store.idempotency = snapshot.idempotency
}

func (store *memoryStore) WithTx(ctx context.Context, fn func(ctx context.Context, txStore Store) error) error {
	store.txMutex.Lock()
	defer store.txMutex.Unlock()
	snapshot := store.snapshot()
	if err := fn(ctx, store); err != nil {
		store.restore(snapshot)
		return err
	}
	return nil
}

func (store *memoryStore) GetOrCreateAccount(ctx context.Context, userID UserID, weeklyFreeReset time.Time) (CreditAccount, error) {
	store.dataMutex.Lock()
	defer store.dataMutex.Unlock()
	if account, ok := store.accounts[userID.String()]; ok {
		return account, nil
	}
	accountID, err := GenerateAccountID()
	if err != nil {
		return CreditAccount{}, err
	}
	account := CreditAccount{ID: accountID, UserID: userID, WeeklyFreeReset: weeklyFreeReset}
	store.accounts[userID.String()] = account
	return account, nil
}

func (store *memoryStore) FindAccount(ctx context.Context, userID UserID) (CreditAccount, error) {
	store.dataMutex.Lock()
	defer store.dataMutex.Unlock()
	account, ok := store.accounts[userID.String()]
	if !ok {
		return CreditAccount{}, ErrAccountNotFound
	}
	return account, nil
}

func (store *memoryStore) accountByID(accountID AccountID) (string, CreditAccount, bool) {
	for key, account := range store.accounts {
		if account.ID == accountID {
			return key, account, true
		}
	}
	return "", CreditAccount{}, false
}

func (store *memoryStore) ApplyCredit(ctx context.Context, accountID AccountID, amount Credits, counter LifetimeCounter) (BalanceChange, error) {
	store.dataMutex.Lock()
	defer store.dataMutex.Unlock()
	key, account, ok := store.accountByID(accountID)
	if !ok {
		return BalanceChange{}, ErrAccountNotFound
	}
	change := BalanceChange{Before: account.Balance, After: account.Balance + amount}
	account.Balance = change.After
	switch counter {
	case CounterPurchased:
		account.TotalPurchased += amount
	case CounterGranted:
		account.TotalGranted += amount
	case CounterRefunded:
		account.TotalRefunded += amount
	default:
		return BalanceChange{}, ErrInvalidTransactionType
	}
	store.accounts[key] = account
	return change, nil
}

func (store *memoryStore) ApplyDebit(ctx context.Context, accountID AccountID, amount Credits) (BalanceChange, error) {
	store.dataMutex.Lock()
	defer store.dataMutex.Unlock()
	key, account, ok := store.accountByID(accountID)
	if !ok {
		return BalanceChange{}, ErrAccountNotFound
	}
	if account.Balance < amount {
		return BalanceChange{}, ErrInsufficientCredits
	}
	change := BalanceChange{Before: account.Balance, After: account.Balance - amount}
	account.Balance = change.After
	account.TotalUsed += amount
	store.accounts[key] = account
	return change, nil
}

func (store *memoryStore) ResetWeeklyFreeIfDue(ctx context.Context, accountID AccountID, now time.Time, nextReset time.Time) error {
	store.dataMutex.Lock()
	defer store.dataMutex.Unlock()
	key, account, ok := store.accountByID(accountID)
	if !ok {
		return ErrAccountNotFound
	}
	if !account.WeeklyFreeReset.After(now) {
		account.WeeklyFreeUsed = 0
		account.WeeklyFreeReset = nextReset
		store.accounts[key] = account
	}
	return nil
}

func (store *memoryStore) IncrementWeeklyFree(ctx context.Context, accountID AccountID, limit int) (CreditAccount, error) {
	store.dataMutex.Lock()
	defer store.dataMutex.Unlock()
	key, account, ok := store.accountByID(accountID)
	if !ok {
		return CreditAccount{}, ErrAccountNotFound
	}
	if account.WeeklyFreeUsed >= limit {
		return CreditAccount{}, ErrWeeklyLimitReached
	}
	account.WeeklyFreeUsed++
	store.accounts[key] = account
	return account, nil
}

func (store *memoryStore) InsertTransaction(ctx context.Context, transaction CreditTransaction) error {
	store.dataMutex.Lock()
	defer store.dataMutex.Unlock()
	if store.insertErr != nil {
		return store.insertErr
	}
	if transaction.IdempotencyKey != "" {
		key := transaction.AccountID.String() + "|" + transaction.IdempotencyKey
		if _, exists := store.idempotency[key]; exists {
			return ErrDuplicateIdempotencyKey
		}
		store.idempotency[key] = struct{}{}
	}
	store.transactions = append(store.transactions, transaction)
	return nil
}

func (store *memoryStore) ListTransactions(ctx context.Context, userID UserID, filter TransactionFilter) ([]CreditTransaction, int64, error) {
	store.dataMutex.Lock()
	defer store.dataMutex.Unlock()
	var matching []CreditTransaction
	for _, transaction := range store.transactions {
		if transaction.UserID != userID {
			continue
		}
		if filter.Type != nil && transaction.Type != *filter.Type {
			continue
		}
		matching = append(matching, transaction)
	}
	sort.SliceStable(matching, func(left, right int) bool {
		if !matching[left].CreatedAt.Equal(matching[right].CreatedAt) {
			return matching[left].CreatedAt.After(matching[right].CreatedAt)
		}
		return matching[left].ID.String() > matching[right].ID.String()
	})
	total := int64(len(matching))
	if filter.Offset >= len(matching) {
		return nil, total, nil
	}
	end := filter.Offset + filter.Limit
	if end > len(matching) {
		end = len(matching)
	}
	return append([]CreditTransaction(nil), matching[filter.Offset:end]...), total, nil
}

func (store *memoryStore) SummarizeTransactions(ctx context.Context, accountID AccountID) (LedgerSummary, error) {
	store.dataMutex.Lock()
	defer store.dataMutex.Unlock()
	var summary LedgerSummary
	for _, transaction := range store.transactions {
		if transaction.AccountID != accountID {
			continue
		}
		summary.AmountSum += transaction.Amount
		summary.TransactionCount++
		if !transaction.Consistent() {
			summary.InconsistentCount++
		}
	}
	return summary, nil
}

func (store *memoryStore) ListAccounts(ctx context.Context, afterUserID string, limit int) ([]CreditAccount, error) {
	store.dataMutex.Lock()
	defer store.dataMutex.Unlock()
	keys := make([]string, 0, len(store.accounts))
	for key := range store.accounts {
		if key > afterUserID {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	if len(keys) > limit {
		keys = keys[:limit]
	}
	accounts := make([]CreditAccount, 0, len(keys))
	for _, key := range keys {
		accounts = append(accounts, store.accounts[key])
	}
	return accounts, nil
}

func (store *memoryStore) corruptBalance(userID UserID, balance Credits) {
	store.dataMutex.Lock()
	defer store.dataMutex.Unlock()
	account := store.accounts[userID.String()]
	account.Balance = balance
	store.accounts[userID.String()] = account
}

// failingStore fails every call with err.
type failingStore struct {
	err error
}

func (store failingStore) WithTx(ctx context.Context, fn func(ctx context.Context, txStore Store) error) error {
	return fn(ctx, store)
}

func (store failingStore) GetOrCreateAccount(context.Context, UserID, time.Time) (CreditAccount, error) {
	return CreditAccount{}, store.err
}

func (store failingStore) FindAccount(context.Context, UserID) (CreditAccount, error) {
	return CreditAccount{}, store.err
}

func (store failingStore) ApplyCredit(context.Context, AccountID, Credits, LifetimeCounter) (BalanceChange, error) {
	return BalanceChange{}, store.err
}

func (store failingStore) ApplyDebit(context.Context, AccountID, Credits) (BalanceChange, error) {
	return BalanceChange{}, store.err
}

func (store failingStore) ResetWeeklyFreeIfDue(context.Context, AccountID, time.Time, time.Time) error {
	return store.err
}

func (store failingStore) IncrementWeeklyFree(context.Context, AccountID, int) (CreditAccount, error) {
	return CreditAccount{}, store.err
}

func (store failingStore) InsertTransaction(context.Context, CreditTransaction) error {
	return store.err
}

func (store failingStore) ListTransactions(context.Context, UserID, TransactionFilter) ([]CreditTransaction, int64, error) {
	return nil, 0, store.err
}

func (store failingStore) SummarizeTransactions(context.Context, AccountID) (LedgerSummary, error) {
	return LedgerSummary{}, store.err
}

func (store failingStore) ListAccounts(context.Context, string, int) ([]CreditAccount, error) {
	return nil, store.err
}

func mustNewService(test *testing.T, store Store, options ...ServiceOption) (*Service, *clock.Fake) {
	test.Helper()
	fakeClock := clock.NewFake(testEpoch)
	service, err := NewService(store, fakeClock, options...)
	if err != nil {
		test.Fatalf("new service: %v", err)
	}
	return service, fakeClock
}

func mustUserID(test *testing.T, raw string) UserID {
	test.Helper()
	value, err := NewUserID(raw)
	if err != nil {
		test.Fatalf("user id: %v", err)
	}
	return value
}

func mustAddCredits(test *testing.T, service *Service, userID UserID, amount Credits, transactionType TransactionType) CreditTransaction {
	test.Helper()
	transaction, err := service.AddCredits(context.Background(), AddCreditsRequest{
		UserID:      userID,
		Amount:      amount,
		Type:        transactionType,
		Description: "test credit",
	})
	if err != nil {
		test.Fatalf("add credits: %v", err)
	}
	return transaction
}

func mustBalance(test *testing.T, service *Service, userID UserID) Credits {
	test.Helper()
	balance, err := service.GetBalance(context.Background(), userID)
	if err != nil {
		test.Fatalf("balance: %v", err)
	}
	return balance
}

func expectError(test *testing.T, err error, target error) {
	test.Helper()
	if !errors.Is(err, target) {
		test.Fatalf("expected %v, got %v", target, err)
	}
}

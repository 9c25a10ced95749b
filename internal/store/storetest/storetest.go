// Package storetest holds the conformance suite every ledger.Store backend runs.
package storetest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MarkoPoloResearchLab/creditledger/internal/clock"
	"github.com/MarkoPoloResearchLab/creditledger/pkg/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Factory returns an empty, migrated store for one subtest.
type Factory func(test *testing.T) ledger.Store

var suiteEpoch = time.Date(2024, time.March, 6, 12, 0, 0, 0, time.UTC)

// Run executes the conformance suite against stores produced by factory.
func Run(test *testing.T, factory Factory) {
	test.Run("GetOrCreateAccountIsIdempotent", func(test *testing.T) { testGetOrCreateIdempotent(test, factory(test)) })
	test.Run("ConcurrentGetOrCreateCreatesOneRow", func(test *testing.T) { testConcurrentGetOrCreate(test, factory(test)) })
	test.Run("FindAccountMissing", func(test *testing.T) { testFindAccountMissing(test, factory(test)) })
	test.Run("CreditAndDebitSnapshots", func(test *testing.T) { testCreditAndDebit(test, factory(test)) })
	test.Run("DebitNeverOverdraws", func(test *testing.T) { testDebitNeverOverdraws(test, factory(test)) })
	test.Run("ConcurrentDeductionsExactlyOneFails", func(test *testing.T) { testConcurrentDeductions(test, factory(test)) })
	test.Run("IdempotencyKeyRollsBack", func(test *testing.T) { testIdempotencyKey(test, factory(test)) })
	test.Run("WeeklyFreeWindow", func(test *testing.T) { testWeeklyFree(test, factory(test)) })
	test.Run("HistoryOrderingAndUsageFields", func(test *testing.T) { testHistory(test, factory(test)) })
	test.Run("ReconcileMatchesLog", func(test *testing.T) { testReconcile(test, factory(test)) })
	test.Run("ListAccountsPaginates", func(test *testing.T) { testListAccounts(test, factory(test)) })
}

func newService(test *testing.T, store ledger.Store) (*ledger.Service, *clock.Fake) {
	test.Helper()
	fakeClock := clock.NewFake(suiteEpoch)
	service, err := ledger.NewService(store, fakeClock)
	require.NoError(test, err)
	return service, fakeClock
}

func uniqueUser(test *testing.T, label string) ledger.UserID {
	test.Helper()
	userID, err := ledger.NewUserID(label + "-" + uuid.NewString())
	require.NoError(test, err)
	return userID
}

func testGetOrCreateIdempotent(test *testing.T, store ledger.Store) {
	ctx := context.Background()
	userID := uniqueUser(test, "idempotent")
	reset := ledger.NextMonday(suiteEpoch)
	first, err := store.GetOrCreateAccount(ctx, userID, reset)
	require.NoError(test, err)
	second, err := store.GetOrCreateAccount(ctx, userID, reset.AddDate(0, 0, 7))
	require.NoError(test, err)
	require.Equal(test, first.ID, second.ID)
	require.True(test, second.WeeklyFreeReset.Equal(reset), "existing rows keep their reset time")
	require.Equal(test, ledger.Credits(0), second.Balance)
	require.Equal(test, 0, second.WeeklyFreeUsed)
}

func testConcurrentGetOrCreate(test *testing.T, store ledger.Store) {
	const workers = 8
	ctx := context.Background()
	userID := uniqueUser(test, "concurrent-create")
	reset := ledger.NextMonday(suiteEpoch)

	var waitGroup sync.WaitGroup
	ids := make(chan ledger.AccountID, workers)
	errs := make(chan error, workers)
	for index := 0; index < workers; index++ {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			account, err := store.GetOrCreateAccount(ctx, userID, reset)
			if err != nil {
				errs <- err
				return
			}
			ids <- account.ID
		}()
	}
	waitGroup.Wait()
	close(ids)
	close(errs)
	for err := range errs {
		require.NoError(test, err)
	}
	seen := map[ledger.AccountID]struct{}{}
	for accountID := range ids {
		seen[accountID] = struct{}{}
	}
	require.Len(test, seen, 1)
}

func testFindAccountMissing(test *testing.T, store ledger.Store) {
	_, err := store.FindAccount(context.Background(), uniqueUser(test, "missing"))
	require.ErrorIs(test, err, ledger.ErrAccountNotFound)
}

func testCreditAndDebit(test *testing.T, store ledger.Store) {
	ctx := context.Background()
	account, err := store.GetOrCreateAccount(ctx, uniqueUser(test, "credit-debit"), ledger.NextMonday(suiteEpoch))
	require.NoError(test, err)

	change, err := store.ApplyCredit(ctx, account.ID, 100, ledger.CounterPurchased)
	require.NoError(test, err)
	require.Equal(test, ledger.BalanceChange{Before: 0, After: 100}, change)

	change, err = store.ApplyCredit(ctx, account.ID, 5, ledger.CounterGranted)
	require.NoError(test, err)
	require.Equal(test, ledger.BalanceChange{Before: 100, After: 105}, change)

	change, err = store.ApplyDebit(ctx, account.ID, 40)
	require.NoError(test, err)
	require.Equal(test, ledger.BalanceChange{Before: 105, After: 65}, change)

	_, err = store.ApplyCredit(ctx, account.ID, 1, ledger.CounterUsed)
	require.ErrorIs(test, err, ledger.ErrInvalidTransactionType)

	reloaded, err := store.FindAccount(ctx, account.UserID)
	require.NoError(test, err)
	require.Equal(test, ledger.Credits(65), reloaded.Balance)
	require.Equal(test, ledger.Credits(100), reloaded.TotalPurchased)
	require.Equal(test, ledger.Credits(5), reloaded.TotalGranted)
	require.Equal(test, ledger.Credits(40), reloaded.TotalUsed)
}

func testDebitNeverOverdraws(test *testing.T, store ledger.Store) {
	ctx := context.Background()
	account, err := store.GetOrCreateAccount(ctx, uniqueUser(test, "overdraw"), ledger.NextMonday(suiteEpoch))
	require.NoError(test, err)
	_, err = store.ApplyCredit(ctx, account.ID, 10, ledger.CounterGranted)
	require.NoError(test, err)

	_, err = store.ApplyDebit(ctx, account.ID, 11)
	require.ErrorIs(test, err, ledger.ErrInsufficientCredits)

	reloaded, err := store.FindAccount(ctx, account.UserID)
	require.NoError(test, err)
	require.Equal(test, ledger.Credits(10), reloaded.Balance)
	require.Equal(test, ledger.Credits(0), reloaded.TotalUsed)

	unknownID, err := ledger.GenerateAccountID()
	require.NoError(test, err)
	_, err = store.ApplyDebit(ctx, unknownID, 1)
	require.ErrorIs(test, err, ledger.ErrAccountNotFound)
}

func testConcurrentDeductions(test *testing.T, store ledger.Store) {
	const workers = 10
	ctx := context.Background()
	service, _ := newService(test, store)
	userID := uniqueUser(test, "race")
	_, err := service.AddCredits(ctx, ledger.AddCreditsRequest{UserID: userID, Amount: workers - 1, Type: ledger.TransactionAdminGrant})
	require.NoError(test, err)

	var waitGroup sync.WaitGroup
	errs := make(chan error, workers)
	for index := 0; index < workers; index++ {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			_, err := service.DeductCredits(ctx, ledger.DeductCreditsRequest{
				UserID:     userID,
				Amount:     1,
				RawCostEUR: decimal.RequireFromString("0.04"),
			})
			errs <- err
		}()
	}
	waitGroup.Wait()
	close(errs)

	failures := 0
	for err := range errs {
		if err != nil {
			require.ErrorIs(test, err, ledger.ErrInsufficientCredits)
			failures++
		}
	}
	require.Equal(test, 1, failures)

	balance, err := service.GetBalance(ctx, userID)
	require.NoError(test, err)
	require.Equal(test, ledger.Credits(0), balance)

	reconciliation, err := service.ReconcileAccount(ctx, userID)
	require.NoError(test, err)
	require.Equal(test, int64(workers), reconciliation.TransactionCount)
}

func testIdempotencyKey(test *testing.T, store ledger.Store) {
	ctx := context.Background()
	service, _ := newService(test, store)
	userID := uniqueUser(test, "idempotency")
	request := ledger.AddCreditsRequest{
		UserID:         userID,
		Amount:         30,
		Type:           ledger.TransactionPackPurchase,
		Metadata:       ledger.Metadata{Purchase: &ledger.PurchaseMetadata{PackID: "starter", PaymentReference: "pi_1"}},
		IdempotencyKey: "purchase:pi_1",
	}
	_, err := service.AddCredits(ctx, request)
	require.NoError(test, err)
	_, err = service.AddCredits(ctx, request)
	require.ErrorIs(test, err, ledger.ErrDuplicateIdempotencyKey)

	account, err := store.FindAccount(ctx, userID)
	require.NoError(test, err)
	require.Equal(test, ledger.Credits(30), account.Balance)
	require.Equal(test, ledger.Credits(30), account.TotalPurchased)

	withoutKey := request
	withoutKey.IdempotencyKey = ""
	_, err = service.AddCredits(ctx, withoutKey)
	require.NoError(test, err)
	_, err = service.AddCredits(ctx, withoutKey)
	require.NoError(test, err, "transactions without a key never collide")
}

func testWeeklyFree(test *testing.T, store ledger.Store) {
	ctx := context.Background()
	service, fakeClock := newService(test, store)
	userID := uniqueUser(test, "weekly")

	remaining, err := service.HasWeeklyFreeRemaining(ctx, userID)
	require.NoError(test, err)
	require.True(test, remaining)

	account, err := service.ConsumeWeeklyFree(ctx, userID)
	require.NoError(test, err)
	require.Equal(test, 1, account.WeeklyFreeUsed)
	require.True(test, account.WeeklyFreeReset.Equal(ledger.NextMonday(suiteEpoch)))

	_, err = service.ConsumeWeeklyFree(ctx, userID)
	require.ErrorIs(test, err, ledger.ErrWeeklyLimitReached)

	fakeClock.Set(ledger.NextMonday(suiteEpoch).Add(time.Hour))
	remaining, err = service.HasWeeklyFreeRemaining(ctx, userID)
	require.NoError(test, err)
	require.True(test, remaining)

	account, err = service.ConsumeWeeklyFree(ctx, userID)
	require.NoError(test, err)
	require.Equal(test, 1, account.WeeklyFreeUsed)
	require.True(test, account.WeeklyFreeReset.Equal(ledger.NextMonday(suiteEpoch).AddDate(0, 0, 7)))
}

func testHistory(test *testing.T, store ledger.Store) {
	ctx := context.Background()
	service, fakeClock := newService(test, store)
	userID := uniqueUser(test, "history")
	_, err := service.AddCredits(ctx, ledger.AddCreditsRequest{UserID: userID, Amount: 100, Type: ledger.TransactionPackPurchase})
	require.NoError(test, err)

	tokens := int64(1234)
	fakeClock.Advance(time.Second)
	usage, err := service.DeductCredits(ctx, ledger.DeductCreditsRequest{
		UserID:           userID,
		Amount:           40,
		RawCostEUR:       decimal.RequireFromString("1.50"),
		AIProvider:       "openai",
		AIModel:          "gpt-4o",
		RawTokenCount:    &tokens,
		TrailerProjectID: "project-1",
		TrailerTaskID:    "task-9",
		Description:      "trailer scene",
	})
	require.NoError(test, err)

	fakeClock.Advance(time.Second)
	_, err = service.RefundCredits(ctx, ledger.RefundCreditsRequest{
		UserID:                userID,
		Amount:                10,
		OriginalTransactionID: usage.ID.String(),
		Notes:                 map[string]string{"reason": "render failed"},
	})
	require.NoError(test, err)

	page, err := service.GetHistory(ctx, userID, ledger.HistoryQuery{Page: 1, PageSize: 10})
	require.NoError(test, err)
	require.Equal(test, int64(3), page.Total)
	require.Len(test, page.Transactions, 3)
	require.Equal(test, ledger.TransactionRefund, page.Transactions[0].Type)
	require.Equal(test, ledger.TransactionAIUsage, page.Transactions[1].Type)
	require.Equal(test, ledger.TransactionPackPurchase, page.Transactions[2].Type)

	refund := page.Transactions[0]
	require.NotNil(test, refund.Metadata.Refund)
	require.Equal(test, usage.ID.String(), refund.Metadata.Refund.OriginalTransactionID)
	require.Equal(test, "render failed", refund.Metadata.Notes["reason"])
	require.Nil(test, refund.Usage)

	stored := page.Transactions[1]
	require.Equal(test, usage.ID, stored.ID)
	require.Equal(test, ledger.Credits(-40), stored.Amount)
	require.Equal(test, ledger.Credits(100), stored.BalanceBefore)
	require.Equal(test, ledger.Credits(60), stored.BalanceAfter)
	require.NotNil(test, stored.Usage)
	require.Equal(test, "openai", stored.Usage.AIProvider)
	require.Equal(test, "gpt-4o", stored.Usage.AIModel)
	require.NotNil(test, stored.Usage.RawTokenCount)
	require.Equal(test, tokens, *stored.Usage.RawTokenCount)
	require.True(test, stored.Usage.RawCostEUR.Equal(decimal.RequireFromString("1.50")))
	require.True(test, stored.Usage.CommissionEUR.Equal(decimal.RequireFromString("0.30")))
	require.True(test, stored.Usage.TotalChargedEUR.Equal(decimal.RequireFromString("1.80")))
	require.Equal(test, "project-1", stored.Usage.TrailerProjectID)
	require.Equal(test, "task-9", stored.Usage.TrailerTaskID)
	require.True(test, stored.CreatedAt.Equal(suiteEpoch.Add(time.Second)))

	usageType := ledger.TransactionAIUsage
	filtered, err := service.GetHistory(ctx, userID, ledger.HistoryQuery{Type: &usageType})
	require.NoError(test, err)
	require.Equal(test, int64(1), filtered.Total)
	require.Equal(test, usage.ID, filtered.Transactions[0].ID)

	second, err := service.GetHistory(ctx, userID, ledger.HistoryQuery{Page: 2, PageSize: 2})
	require.NoError(test, err)
	require.Len(test, second.Transactions, 1)
	require.Equal(test, 2, second.TotalPages)
}

func testReconcile(test *testing.T, store ledger.Store) {
	ctx := context.Background()
	service, fakeClock := newService(test, store)
	userID := uniqueUser(test, "reconcile")
	for _, transactionType := range []ledger.TransactionType{ledger.TransactionPackPurchase, ledger.TransactionPromoCode, ledger.TransactionReferralBonus} {
		fakeClock.Advance(time.Second)
		_, err := service.AddCredits(ctx, ledger.AddCreditsRequest{UserID: userID, Amount: 20, Type: transactionType})
		require.NoError(test, err)
	}
	fakeClock.Advance(time.Second)
	_, err := service.DeductCredits(ctx, ledger.DeductCreditsRequest{UserID: userID, Amount: 15, RawCostEUR: decimal.RequireFromString("0.333333")})
	require.NoError(test, err)

	reconciliation, err := service.ReconcileAccount(ctx, userID)
	require.NoError(test, err)
	require.True(test, reconciliation.Balanced())
	require.Equal(test, ledger.Credits(45), reconciliation.LedgerSum)
	require.Equal(test, int64(4), reconciliation.TransactionCount)
	require.Equal(test, int64(0), reconciliation.InconsistentCount)
}

func testListAccounts(test *testing.T, store ledger.Store) {
	ctx := context.Background()
	prefix := "list-" + uuid.NewString() + "-"
	for _, suffix := range []string{"c", "a", "b"} {
		userID, err := ledger.NewUserID(prefix + suffix)
		require.NoError(test, err)
		_, err = store.GetOrCreateAccount(ctx, userID, ledger.NextMonday(suiteEpoch))
		require.NoError(test, err)
	}
	firstPage, err := store.ListAccounts(ctx, prefix, 2)
	require.NoError(test, err)
	require.Len(test, firstPage, 2)
	require.Equal(test, prefix+"a", firstPage[0].UserID.String())
	require.Equal(test, prefix+"b", firstPage[1].UserID.String())

	secondPage, err := store.ListAccounts(ctx, firstPage[1].UserID.String(), 2)
	require.NoError(test, err)
	require.NotEmpty(test, secondPage)
	require.Equal(test, prefix+"c", secondPage[0].UserID.String())
}

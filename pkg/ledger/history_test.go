package ledger

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNormalizeHistoryQuery(test *testing.T) {
	test.Parallel()
	testCases := []struct {
		name         string
		query        HistoryQuery
		wantPage     int
		wantPageSize int
	}{
		{name: "defaults", query: HistoryQuery{}, wantPage: 1, wantPageSize: defaultHistoryPageSize},
		{name: "clamps large page size", query: HistoryQuery{Page: 2, PageSize: 1000}, wantPage: 2, wantPageSize: maxHistoryPageSize},
		{name: "clamps negative values", query: HistoryQuery{Page: -3, PageSize: -1}, wantPage: 1, wantPageSize: 1},
		{name: "clamps page whose offset overflows", query: HistoryQuery{Page: math.MaxInt, PageSize: 50}, wantPage: math.MaxInt / 50, wantPageSize: 50},
		{name: "keeps largest page for single row pages", query: HistoryQuery{Page: math.MaxInt, PageSize: 1}, wantPage: math.MaxInt, wantPageSize: 1},
	}
	for _, testCase := range testCases {
		normalized := normalizeHistoryQuery(testCase.query)
		if normalized.Page != testCase.wantPage || normalized.PageSize != testCase.wantPageSize {
			test.Fatalf("%s: expected page=%d size=%d, got %+v", testCase.name, testCase.wantPage, testCase.wantPageSize, normalized)
		}
		if offset := (normalized.Page - 1) * normalized.PageSize; offset < 0 {
			test.Fatalf("%s: offset overflowed to %d", testCase.name, offset)
		}
	}
}

func TestGetHistoryNewestFirstWithFilter(test *testing.T) {
	test.Parallel()
	service, fakeClock := mustNewService(test, newMemoryStore())
	ctx := context.Background()
	userID := mustUserID(test, userAlice)
	mustAddCredits(test, service, userID, 100, TransactionPackPurchase)
	for index := 0; index < 4; index++ {
		fakeClock.Advance(time.Minute)
		if _, err := service.DeductCredits(ctx, DeductCreditsRequest{UserID: userID, Amount: 5, RawCostEUR: decimal.RequireFromString("0.20")}); err != nil {
			test.Fatalf("deduct: %v", err)
		}
	}

	page, err := service.GetHistory(ctx, userID, HistoryQuery{Page: 1, PageSize: 2})
	if err != nil {
		test.Fatalf("history: %v", err)
	}
	if page.Total != 5 || page.TotalPages != 3 || len(page.Transactions) != 2 {
		test.Fatalf("unexpected page %+v", page)
	}
	if page.Transactions[0].BalanceAfter != 80 || page.Transactions[1].BalanceAfter != 85 {
		test.Fatalf("expected newest first, got %d then %d", page.Transactions[0].BalanceAfter, page.Transactions[1].BalanceAfter)
	}

	lastPage, err := service.GetHistory(ctx, userID, HistoryQuery{Page: 3, PageSize: 2})
	if err != nil {
		test.Fatalf("history: %v", err)
	}
	if len(lastPage.Transactions) != 1 || lastPage.Transactions[0].Type != TransactionPackPurchase {
		test.Fatalf("expected purchase alone on the last page, got %+v", lastPage.Transactions)
	}

	purchases := TransactionPackPurchase
	filtered, err := service.GetHistory(ctx, userID, HistoryQuery{Type: &purchases})
	if err != nil {
		test.Fatalf("history: %v", err)
	}
	if filtered.Total != 1 || filtered.PageSize != defaultHistoryPageSize {
		test.Fatalf("unexpected filtered page %+v", filtered)
	}
}

func TestGetHistoryUnknownUser(test *testing.T) {
	test.Parallel()
	service, _ := mustNewService(test, newMemoryStore())
	page, err := service.GetHistory(context.Background(), mustUserID(test, userBob), HistoryQuery{PageSize: 500})
	if err != nil {
		test.Fatalf("history: %v", err)
	}
	if page.Total != 0 || page.TotalPages != 0 || page.Transactions == nil || len(page.Transactions) != 0 || page.PageSize != maxHistoryPageSize {
		test.Fatalf("unexpected empty page %+v", page)
	}
}

func TestGetHistoryPastLastPageIsEmpty(test *testing.T) {
	test.Parallel()
	service, _ := mustNewService(test, newMemoryStore())
	userID := mustUserID(test, userAlice)
	mustAddCredits(test, service, userID, 5, TransactionAdminGrant)

	page, err := service.GetHistory(context.Background(), userID, HistoryQuery{Page: math.MaxInt, PageSize: 20})
	if err != nil {
		test.Fatalf("history: %v", err)
	}
	if len(page.Transactions) != 0 || page.Total != 1 || page.TotalPages != 1 {
		test.Fatalf("expected empty page past the end, got %+v", page)
	}
	if page.Page != math.MaxInt/20 {
		test.Fatalf("expected clamped page %d, got %d", math.MaxInt/20, page.Page)
	}
}

package ledger

import (
	"context"
	"testing"
	"time"
)

func TestWeeklyFreeLifecycle(test *testing.T) {
	test.Parallel()
	service, fakeClock := mustNewService(test, newMemoryStore())
	ctx := context.Background()
	userID := mustUserID(test, userAlice)

	remaining, err := service.HasWeeklyFreeRemaining(ctx, userID)
	if err != nil || !remaining {
		test.Fatalf("expected unknown user to have weekly free remaining, got %v (%v)", remaining, err)
	}
	if balance := mustBalance(test, service, userID); balance != 0 {
		test.Fatalf("expected check to create nothing, got balance %d", balance)
	}

	account, err := service.ConsumeWeeklyFree(ctx, userID)
	if err != nil {
		test.Fatalf("consume: %v", err)
	}
	if account.WeeklyFreeUsed != 1 || !account.WeeklyFreeReset.Equal(NextMonday(testEpoch)) {
		test.Fatalf("unexpected account after consume %+v", account)
	}
	remaining, err = service.HasWeeklyFreeRemaining(ctx, userID)
	if err != nil || remaining {
		test.Fatalf("expected no weekly free remaining, got %v (%v)", remaining, err)
	}
	_, err = service.ConsumeWeeklyFree(ctx, userID)
	expectError(test, err, ErrWeeklyLimitReached)

	fakeClock.Set(NextMonday(testEpoch))
	remaining, err = service.HasWeeklyFreeRemaining(ctx, userID)
	if err != nil || !remaining {
		test.Fatalf("expected reset at monday midnight, got %v (%v)", remaining, err)
	}
	account, err = service.ConsumeWeeklyFree(ctx, userID)
	if err != nil {
		test.Fatalf("consume after reset: %v", err)
	}
	expectedReset := NextMonday(testEpoch).AddDate(0, 0, 7)
	if account.WeeklyFreeUsed != 1 || !account.WeeklyFreeReset.Equal(expectedReset) {
		test.Fatalf("expected used=1 reset=%v, got %+v", expectedReset, account)
	}
}

func TestWeeklyFreeResetAfterLongAbsence(test *testing.T) {
	test.Parallel()
	service, fakeClock := mustNewService(test, newMemoryStore())
	ctx := context.Background()
	userID := mustUserID(test, userAlice)
	if _, err := service.ConsumeWeeklyFree(ctx, userID); err != nil {
		test.Fatalf("consume: %v", err)
	}
	fakeClock.Advance(45 * 24 * time.Hour)
	account, err := service.ConsumeWeeklyFree(ctx, userID)
	if err != nil {
		test.Fatalf("consume after absence: %v", err)
	}
	if !account.WeeklyFreeReset.After(fakeClock.Now()) || account.WeeklyFreeReset.Weekday() != time.Monday {
		test.Fatalf("expected reset in the future on a monday, got %v", account.WeeklyFreeReset)
	}
}

func TestWeeklyFreeDoesNotTouchBalance(test *testing.T) {
	test.Parallel()
	service, _ := mustNewService(test, newMemoryStore())
	userID := mustUserID(test, userAlice)
	mustAddCredits(test, service, userID, 9, TransactionSubscriptionGrant)
	if _, err := service.ConsumeWeeklyFree(context.Background(), userID); err != nil {
		test.Fatalf("consume: %v", err)
	}
	if balance := mustBalance(test, service, userID); balance != 9 {
		test.Fatalf("expected balance unchanged, got %d", balance)
	}
}

package ledger

import (
	"context"
	"testing"
)

func TestReconcileAccountDetectsDrift(test *testing.T) {
	test.Parallel()
	store := newMemoryStore()
	service, _ := mustNewService(test, store)
	ctx := context.Background()
	userID := mustUserID(test, userAlice)
	mustAddCredits(test, service, userID, 40, TransactionAdminGrant)

	reconciliation, err := service.ReconcileAccount(ctx, userID)
	if err != nil || !reconciliation.Balanced() {
		test.Fatalf("expected balanced ledger, got %+v (%v)", reconciliation, err)
	}

	store.corruptBalance(userID, 41)
	reconciliation, err = service.ReconcileAccount(ctx, userID)
	expectError(test, err, ErrLedgerMismatch)
	if reconciliation.LedgerSum != 40 || reconciliation.Account.Balance != 41 {
		test.Fatalf("unexpected reconciliation %+v", reconciliation)
	}

	_, err = service.ReconcileAccount(ctx, mustUserID(test, userBob))
	expectError(test, err, ErrAccountNotFound)
}

func TestReconcileAllCollectsMismatches(test *testing.T) {
	test.Parallel()
	store := newMemoryStore()
	service, _ := mustNewService(test, store)
	userIDs := []string{"user-a", "user-b", "user-c", "user-d", "user-e"}
	for _, raw := range userIDs {
		mustAddCredits(test, service, mustUserID(test, raw), 10, TransactionPromoCode)
	}
	store.corruptBalance(mustUserID(test, "user-c"), 3)

	summary, err := service.ReconcileAll(context.Background(), 2)
	if err != nil {
		test.Fatalf("reconcile all: %v", err)
	}
	if summary.Checked != len(userIDs) {
		test.Fatalf("expected %d accounts checked, got %d", len(userIDs), summary.Checked)
	}
	if len(summary.Mismatches) != 1 || summary.Mismatches[0].Account.UserID.String() != "user-c" {
		test.Fatalf("expected user-c mismatch, got %+v", summary.Mismatches)
	}
}

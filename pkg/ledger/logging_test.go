package ledger

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
)

type recorderLogger struct {
	mutex   sync.Mutex
	entries []OperationLog
}

func (logger *recorderLogger) LogOperation(_ context.Context, entry OperationLog) {
	logger.mutex.Lock()
	defer logger.mutex.Unlock()
	logger.entries = append(logger.entries, entry)
}

func TestServiceLogsCommittedTransaction(test *testing.T) {
	test.Parallel()
	logger := &recorderLogger{}
	service, _ := mustNewService(test, newMemoryStore(), WithOperationLogger(logger))
	userID := mustUserID(test, userAlice)
	transaction := mustAddCredits(test, service, userID, 100, TransactionAdminGrant)
	if len(logger.entries) != 1 {
		test.Fatalf("expected one log entry, got %d", len(logger.entries))
	}
	entry := logger.entries[0]
	if entry.Operation != OperationAddCredits || entry.UserID != userID || entry.Amount != 100 || entry.Type != TransactionAdminGrant {
		test.Fatalf("unexpected log entry: %+v", entry)
	}
	if entry.Status != OperationStatusOK || entry.Error != nil || entry.Transaction == nil || entry.Transaction.ID != transaction.ID {
		test.Fatalf("expected successful entry with transaction, got %+v", entry)
	}
}

func TestServiceLogsErrorStatus(test *testing.T) {
	test.Parallel()
	logger := &recorderLogger{}
	service, _ := mustNewService(test, newMemoryStore(), WithOperationLogger(logger))
	userID := mustUserID(test, userAlice)
	_, err := service.DeductCredits(context.Background(), DeductCreditsRequest{UserID: userID, Amount: 5, RawCostEUR: decimal.Zero})
	if !errors.Is(err, ErrInsufficientCredits) {
		test.Fatalf("expected ErrInsufficientCredits, got %v", err)
	}
	if len(logger.entries) != 1 {
		test.Fatalf("expected one log entry, got %d", len(logger.entries))
	}
	entry := logger.entries[0]
	if entry.Status != OperationStatusError || entry.Error == nil || entry.Transaction != nil || entry.Type != TransactionAIUsage {
		test.Fatalf("expected error log entry without transaction, got %+v", entry)
	}
}

func TestServiceLogsWeeklyConsumption(test *testing.T) {
	test.Parallel()
	logger := &recorderLogger{}
	service, _ := mustNewService(test, newMemoryStore(), WithOperationLogger(logger))
	userID := mustUserID(test, userAlice)
	_, _ = service.ConsumeWeeklyFree(context.Background(), userID)
	_, _ = service.ConsumeWeeklyFree(context.Background(), userID)
	if len(logger.entries) != 2 {
		test.Fatalf("expected two entries, got %d", len(logger.entries))
	}
	if logger.entries[0].Status != OperationStatusOK || logger.entries[1].Status != OperationStatusError {
		test.Fatalf("unexpected statuses %q %q", logger.entries[0].Status, logger.entries[1].Status)
	}
}

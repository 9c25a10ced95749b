package oplog

import (
	"context"
	"errors"
	"testing"

	"github.com/MarkoPoloResearchLab/creditledger/pkg/ledger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerWritesCommittedOperation(test *testing.T) {
	test.Parallel()
	core, logs := observer.New(zapcore.InfoLevel)
	logger := NewZapLogger(zap.New(core))
	userID, _ := ledger.NewUserID("user-1")
	transactionID, err := ledger.GenerateTransactionID()
	if err != nil {
		test.Fatalf("transaction id: %v", err)
	}

	logger.LogOperation(context.Background(), ledger.OperationLog{
		Operation:   ledger.OperationAddCredits,
		UserID:      userID,
		Amount:      25,
		Type:        ledger.TransactionAdminGrant,
		Transaction: &ledger.CreditTransaction{ID: transactionID, BalanceAfter: 25},
		Status:      ledger.OperationStatusOK,
	})

	entries := logs.All()
	if len(entries) != 1 {
		test.Fatalf("expected one entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.Level != zapcore.InfoLevel || entry.LoggerName != "ledger" {
		test.Fatalf("unexpected entry header: %+v", entry.Entry)
	}
	fields := entry.ContextMap()
	if fields["operation"] != ledger.OperationAddCredits || fields["user_id"] != "user-1" {
		test.Fatalf("unexpected fields: %v", fields)
	}
	if fields["amount"] != int64(25) || fields["balance_after"] != int64(25) {
		test.Fatalf("unexpected amounts: %v", fields)
	}
	if fields["transaction_id"] != transactionID.String() || fields["type"] != "ADMIN_GRANT" {
		test.Fatalf("unexpected transaction fields: %v", fields)
	}
}

func TestZapLoggerWarnsOnFailure(test *testing.T) {
	test.Parallel()
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewZapLogger(zap.New(core))
	userID, _ := ledger.NewUserID("user-2")

	logger.LogOperation(context.Background(), ledger.OperationLog{
		Operation: ledger.OperationDeductCredits,
		UserID:    userID,
		Amount:    10,
		Status:    ledger.OperationStatusError,
		Error:     ledger.ErrInsufficientCredits,
	})

	failures := logs.FilterLevelExact(zapcore.WarnLevel).All()
	if len(failures) != 1 {
		test.Fatalf("expected one warning, got %d", len(failures))
	}
	if failures[0].ContextMap()["error"] != ledger.ErrInsufficientCredits.Error() {
		test.Fatalf("unexpected error field: %v", failures[0].ContextMap())
	}
	if _, ok := failures[0].ContextMap()["transaction_id"]; ok {
		test.Fatalf("failed operation must not carry a transaction id")
	}
}

type recordingLogger struct {
	entries []ledger.OperationLog
}

func (logger *recordingLogger) LogOperation(ctx context.Context, entry ledger.OperationLog) {
	logger.entries = append(logger.entries, entry)
}

func TestFanoutDeliversToEveryLogger(test *testing.T) {
	test.Parallel()
	first := &recordingLogger{}
	second := &recordingLogger{}
	fanout := NewFanout(first, nil, second)
	if len(fanout) != 2 {
		test.Fatalf("expected nil logger to be dropped, got %d", len(fanout))
	}

	entry := ledger.OperationLog{Operation: ledger.OperationRefundCredits, Error: errors.New("boom")}
	fanout.LogOperation(context.Background(), entry)

	for index, logger := range []*recordingLogger{first, second} {
		if len(logger.entries) != 1 || logger.entries[0].Operation != ledger.OperationRefundCredits {
			test.Fatalf("logger %d missed the entry: %+v", index, logger.entries)
		}
	}
}

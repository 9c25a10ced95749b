// Package oplog renders ledger operation logs through zap and fans them out
// to secondary sinks.
package oplog

import (
	"context"

	"github.com/MarkoPoloResearchLab/creditledger/pkg/ledger"
	"go.uber.org/zap"
)

// ZapLogger writes one structured entry per ledger operation.
type ZapLogger struct {
	logger *zap.Logger
}

// NewZapLogger returns a ZapLogger; a nil logger discards output.
func NewZapLogger(logger *zap.Logger) *ZapLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapLogger{logger: logger.Named("ledger")}
}

// LogOperation implements ledger.OperationLogger.
func (zapLogger *ZapLogger) LogOperation(ctx context.Context, entry ledger.OperationLog) {
	fields := []zap.Field{
		zap.String("operation", entry.Operation),
		zap.String("user_id", entry.UserID.String()),
		zap.Int64("amount", entry.Amount.Int64()),
		zap.String("status", entry.Status),
	}
	if entry.Type != "" {
		fields = append(fields, zap.String("type", entry.Type.String()))
	}
	if entry.Transaction != nil {
		fields = append(fields,
			zap.String("transaction_id", entry.Transaction.ID.String()),
			zap.Int64("balance_after", entry.Transaction.BalanceAfter.Int64()),
		)
	}
	if entry.Error != nil {
		zapLogger.logger.Warn("ledger operation failed", append(fields, zap.Error(entry.Error))...)
		return
	}
	zapLogger.logger.Info("ledger operation", fields...)
}

// Fanout delivers every operation to each wrapped logger in order.
type Fanout []ledger.OperationLogger

// NewFanout drops nil loggers.
func NewFanout(loggers ...ledger.OperationLogger) Fanout {
	fanout := make(Fanout, 0, len(loggers))
	for _, logger := range loggers {
		if logger != nil {
			fanout = append(fanout, logger)
		}
	}
	return fanout
}

// LogOperation implements ledger.OperationLogger.
func (fanout Fanout) LogOperation(ctx context.Context, entry ledger.OperationLog) {
	for _, logger := range fanout {
		logger.LogOperation(ctx, entry)
	}
}

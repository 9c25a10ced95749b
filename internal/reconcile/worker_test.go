package reconcile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MarkoPoloResearchLab/creditledger/pkg/ledger"
	"github.com/riverqueue/river"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stubReconciler struct {
	summary   ledger.ReconcileSummary
	err       error
	batchSize int
}

func (reconciler *stubReconciler) ReconcileAll(ctx context.Context, batchSize int) (ledger.ReconcileSummary, error) {
	reconciler.batchSize = batchSize
	return reconciler.summary, reconciler.err
}

type recordingRecorder struct {
	summaries []ledger.ReconcileSummary
}

func (recorder *recordingRecorder) RecordReconcile(summary ledger.ReconcileSummary) {
	recorder.summaries = append(recorder.summaries, summary)
}

func TestWorkLogsMismatches(test *testing.T) {
	test.Parallel()
	userID, _ := ledger.NewUserID("drifted")
	reconciler := &stubReconciler{summary: ledger.ReconcileSummary{
		Checked: 3,
		Mismatches: []ledger.Reconciliation{{
			Account:   ledger.CreditAccount{UserID: userID, Balance: 70},
			LedgerSum: 60,
		}},
	}}
	recorder := &recordingRecorder{}
	core, logs := observer.New(zapcore.InfoLevel)
	worker := NewWorker(reconciler, recorder, zap.New(core))

	if err := worker.Work(context.Background(), &river.Job[Args]{Args: NewArgs(25)}); err != nil {
		test.Fatalf("work: %v", err)
	}
	if reconciler.batchSize != 25 {
		test.Fatalf("batch size = %d", reconciler.batchSize)
	}
	mismatches := logs.FilterMessage("ledger mismatch").All()
	if len(mismatches) != 1 || mismatches[0].ContextMap()["user_id"] != "drifted" {
		test.Fatalf("unexpected mismatch logs: %v", logs.All())
	}
	if mismatches[0].ContextMap()["ledger_sum"] != int64(60) {
		test.Fatalf("unexpected ledger sum field: %v", mismatches[0].ContextMap())
	}
	if len(recorder.summaries) != 1 || recorder.summaries[0].Checked != 3 {
		test.Fatalf("summary not recorded: %+v", recorder.summaries)
	}
}

func TestWorkReturnsStoreFailures(test *testing.T) {
	test.Parallel()
	storeErr := errors.New("connection reset")
	worker := NewWorker(&stubReconciler{err: storeErr}, nil, nil)
	if err := worker.Work(context.Background(), &river.Job[Args]{Args: NewArgs(0)}); !errors.Is(err, storeErr) {
		test.Fatalf("expected store error, got %v", err)
	}
}

func TestArgsDefaults(test *testing.T) {
	test.Parallel()
	if args := NewArgs(0); args.BatchSize != defaultBatchSize {
		test.Fatalf("batch size = %d", args.BatchSize)
	}
	if (Args{}).Kind() != "credit_ledger_reconcile" {
		test.Fatalf("unexpected kind")
	}
	if PeriodicJob(0, 0) == nil || PeriodicJob(time.Minute, 10) == nil {
		test.Fatalf("periodic job not built")
	}
}

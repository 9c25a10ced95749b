// Package reconcile runs the ledger reconciliation sweep as a periodic river job.
package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/MarkoPoloResearchLab/creditledger/pkg/ledger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivermigrate"
	"go.uber.org/zap"
)

const (
	defaultInterval  = time.Hour
	defaultBatchSize = 100
	maxWorkers       = 1
)

// Args schedules one sweep over every account.
type Args struct {
	BatchSize int `json:"batch_size"`
}

// Kind implements river.JobArgs.
func (Args) Kind() string { return "credit_ledger_reconcile" }

// Reconciler is satisfied by *ledger.Service.
type Reconciler interface {
	ReconcileAll(ctx context.Context, batchSize int) (ledger.ReconcileSummary, error)
}

// SummaryRecorder receives the outcome of each sweep.
type SummaryRecorder interface {
	RecordReconcile(summary ledger.ReconcileSummary)
}

// Worker replays every account's log and reports mismatches.
type Worker struct {
	river.WorkerDefaults[Args]
	reconciler Reconciler
	recorder   SummaryRecorder
	logger     *zap.Logger
}

// NewWorker builds a Worker; recorder and logger are optional.
func NewWorker(reconciler Reconciler, recorder SummaryRecorder, logger *zap.Logger) *Worker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Worker{reconciler: reconciler, recorder: recorder, logger: logger}
}

// Work implements river.Worker.
func (worker *Worker) Work(ctx context.Context, job *river.Job[Args]) error {
	_, err := worker.Sweep(ctx, job.Args.BatchSize)
	return err
}

// Sweep reconciles every account once, logging and recording the outcome.
func (worker *Worker) Sweep(ctx context.Context, batchSize int) (ledger.ReconcileSummary, error) {
	summary, err := worker.reconciler.ReconcileAll(ctx, batchSize)
	if err != nil {
		return summary, fmt.Errorf("reconcile ledger: %w", err)
	}
	for _, mismatch := range summary.Mismatches {
		worker.logger.Error("ledger mismatch",
			zap.String("user_id", mismatch.Account.UserID.String()),
			zap.String("account_id", mismatch.Account.ID.String()),
			zap.Int64("balance", mismatch.Account.Balance.Int64()),
			zap.Int64("ledger_sum", mismatch.LedgerSum.Int64()),
			zap.Int64("inconsistent_rows", mismatch.InconsistentCount),
		)
	}
	if worker.recorder != nil {
		worker.recorder.RecordReconcile(summary)
	}
	worker.logger.Info("ledger reconciled",
		zap.Int("accounts_checked", summary.Checked),
		zap.Int("mismatches", len(summary.Mismatches)),
	)
	return summary, nil
}

// Migrate applies river's own schema to the database behind pool.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	migrator, err := rivermigrate.New(riverpgxv5.New(pool), nil)
	if err != nil {
		return fmt.Errorf("river migrator: %w", err)
	}
	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil); err != nil {
		return fmt.Errorf("river migrate: %w", err)
	}
	return nil
}

// NewClient returns a river client that runs worker every interval, starting
// with an immediate sweep.
func NewClient(pool *pgxpool.Pool, worker *Worker, interval time.Duration, batchSize int) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, worker)

	client, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers:      workers,
		PeriodicJobs: []*river.PeriodicJob{PeriodicJob(interval, batchSize)},
	})
	if err != nil {
		return nil, fmt.Errorf("river client: %w", err)
	}
	return client, nil
}

// PeriodicJob schedules Args every interval, falling back to hourly.
func PeriodicJob(interval time.Duration, batchSize int) *river.PeriodicJob {
	args := NewArgs(batchSize)
	if interval <= 0 {
		interval = defaultInterval
	}
	return river.NewPeriodicJob(
		river.PeriodicInterval(interval),
		func() (river.JobArgs, *river.InsertOpts) {
			return args, nil
		},
		&river.PeriodicJobOpts{RunOnStart: true},
	)
}

// NewArgs applies the default batch size.
func NewArgs(batchSize int) Args {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return Args{BatchSize: batchSize}
}

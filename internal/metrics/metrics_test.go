package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MarkoPoloResearchLab/creditledger/pkg/ledger"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
)

func TestLogOperationCountsCommittedUsage(test *testing.T) {
	test.Parallel()
	ledgerMetrics := New()
	ctx := context.Background()

	ledgerMetrics.LogOperation(ctx, ledger.OperationLog{
		Operation: ledger.OperationDeductCredits,
		Status:    ledger.OperationStatusOK,
		Transaction: &ledger.CreditTransaction{
			Type:   ledger.TransactionAIUsage,
			Amount: -40,
			Usage: &ledger.UsageCharge{
				CommissionEUR:   decimal.RequireFromString("0.30"),
				TotalChargedEUR: decimal.RequireFromString("1.80"),
			},
		},
	})
	ledgerMetrics.LogOperation(ctx, ledger.OperationLog{
		Operation: ledger.OperationDeductCredits,
		Status:    ledger.OperationStatusError,
		Error:     ledger.ErrInsufficientCredits,
	})

	if got := testutil.ToFloat64(ledgerMetrics.operations.WithLabelValues(ledger.OperationDeductCredits, ledger.OperationStatusOK)); got != 1 {
		test.Fatalf("ok deductions = %v", got)
	}
	if got := testutil.ToFloat64(ledgerMetrics.operations.WithLabelValues(ledger.OperationDeductCredits, ledger.OperationStatusError)); got != 1 {
		test.Fatalf("failed deductions = %v", got)
	}
	if got := testutil.ToFloat64(ledgerMetrics.creditsMoved.WithLabelValues("AI_USAGE")); got != 40 {
		test.Fatalf("credits moved = %v", got)
	}
	if got := testutil.ToFloat64(ledgerMetrics.chargedEUR); got != 1.8 {
		test.Fatalf("charged eur = %v", got)
	}
	if got := testutil.ToFloat64(ledgerMetrics.commissionEUR); got != 0.3 {
		test.Fatalf("commission eur = %v", got)
	}
}

func TestWeeklyFreeCounter(test *testing.T) {
	test.Parallel()
	ledgerMetrics := New()
	ctx := context.Background()
	ledgerMetrics.LogOperation(ctx, ledger.OperationLog{Operation: ledger.OperationConsumeWeekly, Status: ledger.OperationStatusOK})
	ledgerMetrics.LogOperation(ctx, ledger.OperationLog{Operation: ledger.OperationConsumeWeekly, Status: ledger.OperationStatusError, Error: ledger.ErrWeeklyLimitReached})
	if got := testutil.ToFloat64(ledgerMetrics.weeklyFreeUsed); got != 1 {
		test.Fatalf("weekly free consumed = %v", got)
	}
}

func TestHandlerExposesCounters(test *testing.T) {
	test.Parallel()
	ledgerMetrics := New()
	ledgerMetrics.LogOperation(context.Background(), ledger.OperationLog{Operation: ledger.OperationAddCredits, Status: ledger.OperationStatusOK})

	recorder := httptest.NewRecorder()
	ledgerMetrics.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if recorder.Code != http.StatusOK {
		test.Fatalf("status = %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), `creditledger_operations_total{operation="add_credits",status="ok"} 1`) {
		test.Fatalf("missing counter in exposition:\n%s", recorder.Body.String())
	}
}

func TestRecordReconcile(test *testing.T) {
	test.Parallel()
	ledgerMetrics := New()
	ledgerMetrics.RecordReconcile(ledger.ReconcileSummary{Checked: 12, Mismatches: make([]ledger.Reconciliation, 2)})
	if got := testutil.ToFloat64(ledgerMetrics.reconciled); got != 12 {
		test.Fatalf("checked = %v", got)
	}
	if got := testutil.ToFloat64(ledgerMetrics.mismatches); got != 2 {
		test.Fatalf("mismatches = %v", got)
	}
}

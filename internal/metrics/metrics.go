// Package metrics exports ledger operation counters to Prometheus.
package metrics

import (
	"context"
	"net/http"

	"github.com/MarkoPoloResearchLab/creditledger/pkg/ledger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "creditledger"

// LedgerMetrics counts ledger operations and the credits they move.
type LedgerMetrics struct {
	registry       *prometheus.Registry
	operations     *prometheus.CounterVec
	creditsMoved   *prometheus.CounterVec
	chargedEUR     prometheus.Counter
	commissionEUR  prometheus.Counter
	weeklyFreeUsed prometheus.Counter
	reconciled     prometheus.Gauge
	mismatches     prometheus.Gauge
}

// New registers the ledger collectors on a fresh registry.
func New() *LedgerMetrics {
	ledgerMetrics := &LedgerMetrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Ledger operations by operation and status.",
		}, []string{"operation", "status"}),
		creditsMoved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "credits_total",
			Help:      "Absolute credits moved by committed transactions, by transaction type.",
		}, []string{"type"}),
		chargedEUR: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "usage_charged_eur_total",
			Help:      "EUR charged for AI usage including commission.",
		}),
		commissionEUR: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "usage_commission_eur_total",
			Help:      "EUR commission earned on AI usage.",
		}),
		weeklyFreeUsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weekly_free_consumed_total",
			Help:      "Weekly free entitlements consumed.",
		}),
		reconciled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "reconcile_accounts_checked",
			Help:      "Accounts checked by the last reconciliation sweep.",
		}),
		mismatches: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "reconcile_mismatches",
			Help:      "Accounts whose balance disagreed with their log in the last sweep.",
		}),
	}
	ledgerMetrics.registry.MustRegister(
		ledgerMetrics.operations,
		ledgerMetrics.creditsMoved,
		ledgerMetrics.chargedEUR,
		ledgerMetrics.commissionEUR,
		ledgerMetrics.weeklyFreeUsed,
		ledgerMetrics.reconciled,
		ledgerMetrics.mismatches,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return ledgerMetrics
}

// Handler serves the registry in the Prometheus exposition format.
func (ledgerMetrics *LedgerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(ledgerMetrics.registry, promhttp.HandlerOpts{})
}

// LogOperation implements ledger.OperationLogger.
func (ledgerMetrics *LedgerMetrics) LogOperation(ctx context.Context, entry ledger.OperationLog) {
	ledgerMetrics.operations.WithLabelValues(entry.Operation, entry.Status).Inc()
	if entry.Operation == ledger.OperationConsumeWeekly && entry.Error == nil {
		ledgerMetrics.weeklyFreeUsed.Inc()
	}
	transaction := entry.Transaction
	if transaction == nil {
		return
	}
	amount := transaction.Amount.Int64()
	if amount < 0 {
		amount = -amount
	}
	ledgerMetrics.creditsMoved.WithLabelValues(transaction.Type.String()).Add(float64(amount))
	if usage := transaction.Usage; usage != nil {
		charged, _ := usage.TotalChargedEUR.Float64()
		commission, _ := usage.CommissionEUR.Float64()
		ledgerMetrics.chargedEUR.Add(charged)
		ledgerMetrics.commissionEUR.Add(commission)
	}
}

// RecordReconcile publishes the outcome of a reconciliation sweep.
func (ledgerMetrics *LedgerMetrics) RecordReconcile(summary ledger.ReconcileSummary) {
	ledgerMetrics.reconciled.Set(float64(summary.Checked))
	ledgerMetrics.mismatches.Set(float64(len(summary.Mismatches)))
}

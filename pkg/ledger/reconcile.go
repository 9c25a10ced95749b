package ledger

import (
	"context"
	"errors"
	"fmt"
)

// Reconciliation compares an account row against a replay of its log.
type Reconciliation struct {
	Account           CreditAccount
	LedgerSum         Credits
	TransactionCount  int64
	InconsistentCount int64
}

// Balanced reports whether the account matches its log.
func (reconciliation Reconciliation) Balanced() bool {
	return reconciliation.LedgerSum == reconciliation.Account.Balance && reconciliation.InconsistentCount == 0
}

// ReconcileSummary aggregates a reconciliation sweep over many accounts.
type ReconcileSummary struct {
	Checked    int
	Mismatches []Reconciliation
}

// ReconcileAccount replays the user's transaction log and fails with
// ErrLedgerMismatch when the sum or any row snapshot disagrees.
func (service *Service) ReconcileAccount(ctx context.Context, userID UserID) (Reconciliation, error) {
	if userID.IsZero() {
		return Reconciliation{}, ErrInvalidUserID
	}
	account, err := service.store.FindAccount(ctx, userID)
	if err != nil {
		return Reconciliation{}, WrapError("service", errorSubjectAccount, errorCodeStore, err)
	}
	reconciliation, err := service.reconcile(ctx, account)
	service.logOperation(ctx, OperationLog{
		Operation: OperationReconcile,
		UserID:    userID,
		Amount:    reconciliation.LedgerSum,
		Error:     err,
	})
	return reconciliation, err
}

func (service *Service) reconcile(ctx context.Context, account CreditAccount) (Reconciliation, error) {
	summary, err := service.store.SummarizeTransactions(ctx, account.ID)
	if err != nil {
		return Reconciliation{Account: account}, WrapError("service", errorSubjectTransaction, errorCodeStore, err)
	}
	reconciliation := Reconciliation{
		Account:           account,
		LedgerSum:         summary.AmountSum,
		TransactionCount:  summary.TransactionCount,
		InconsistentCount: summary.InconsistentCount,
	}
	if !reconciliation.Balanced() {
		return reconciliation, fmt.Errorf("%w: account %s balance %d, log sum %d, %d inconsistent rows",
			ErrLedgerMismatch, account.ID.String(), account.Balance, summary.AmountSum, summary.InconsistentCount)
	}
	return reconciliation, nil
}

// ReconcileAll sweeps every account in user id order, batchSize at a time.
// Mismatches are collected; store failures abort the sweep.
func (service *Service) ReconcileAll(ctx context.Context, batchSize int) (ReconcileSummary, error) {
	if batchSize < 1 {
		batchSize = maxHistoryPageSize
	}
	var summary ReconcileSummary
	cursor := ""
	for {
		accounts, err := service.store.ListAccounts(ctx, cursor, batchSize)
		if err != nil {
			return summary, WrapError("service", errorSubjectAccount, errorCodeStore, err)
		}
		for _, account := range accounts {
			reconciliation, err := service.reconcile(ctx, account)
			summary.Checked++
			if err != nil {
				if errors.Is(err, ErrLedgerMismatch) {
					summary.Mismatches = append(summary.Mismatches, reconciliation)
					service.logOperation(ctx, OperationLog{
						Operation: OperationReconcile,
						UserID:    account.UserID,
						Amount:    reconciliation.LedgerSum,
						Error:     err,
					})
					continue
				}
				return summary, err
			}
		}
		if len(accounts) < batchSize {
			return summary, nil
		}
		cursor = accounts[len(accounts)-1].UserID.String()
	}
}

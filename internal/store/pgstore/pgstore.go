package pgstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MarkoPoloResearchLab/creditledger/pkg/ledger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	constraintTransactionIdempotent = "idx_credit_transactions_account_idempotency"
	pgUniqueViolationCode           = "23505"
	errorOperationStore             = "store"
	errorSubjectAccount             = "account"
	errorSubjectBalance             = "balance"
	errorSubjectTransaction         = "transaction"
	errorSubjectWeeklyFree          = "weekly_free"
	errorCodeBegin                  = "begin"
	errorCodeCommit                 = "commit"
	errorCodeCredit                 = "credit"
	errorCodeDebit                  = "debit"
	errorCodeDuplicate              = "duplicate"
	errorCodeGet                    = "get"
	errorCodeIncrement              = "increment"
	errorCodeInsert                 = "insert"
	errorCodeInvalid                = "invalid"
	errorCodeList                   = "list"
	errorCodeLookup                 = "lookup"
	errorCodeReset                  = "reset"
	errorCodeSummarize              = "summarize"

	accountColumns = `id, user_id, balance, total_purchased, total_granted, total_used, total_refunded,
		weekly_free_used, weekly_free_reset_unix, created_at, updated_at`

	transactionColumns = `id, user_id, account_id, amount, balance_before, balance_after, type, description,
		ai_provider, ai_model, raw_token_count, raw_cost_eur::text, commission_eur::text, total_charged_eur::text,
		trailer_project_id, trailer_task_id, coalesce(metadata::text,'{}'), idempotency_key, created_at`

	sqlInsertAccountIfMissing = `
		insert into credit_accounts(id, user_id, balance, total_purchased, total_granted, total_used, total_refunded,
			weekly_free_used, weekly_free_reset_unix, created_at, updated_at)
		values ($1, $2, 0, 0, 0, 0, 0, 0, $3, now(), now())
		on conflict (user_id) do nothing
	`

	sqlSelectAccountByUser = `select ` + accountColumns + ` from credit_accounts where user_id = $1`

	sqlAccountExists = `select exists(select 1 from credit_accounts where id = $1)`

	sqlCreditAccount = `
		update credit_accounts
		set balance = balance + $2, %[1]s = %[1]s + $2, updated_at = now()
		where id = $1
		returning balance
	`

	sqlDebitAccount = `
		update credit_accounts
		set balance = balance - $2, total_used = total_used + $2, updated_at = now()
		where id = $1 and balance >= $2
		returning balance
	`

	sqlResetWeeklyFree = `
		update credit_accounts
		set weekly_free_used = 0, weekly_free_reset_unix = $3, updated_at = now()
		where id = $1 and weekly_free_reset_unix <= $2
	`

	sqlIncrementWeeklyFree = `
		update credit_accounts
		set weekly_free_used = weekly_free_used + 1, updated_at = now()
		where id = $1 and weekly_free_used < $2
		returning ` + accountColumns

	sqlInsertTransaction = `
		insert into credit_transactions(
			id, user_id, account_id, amount, balance_before, balance_after, type, description,
			ai_provider, ai_model, raw_token_count, raw_cost_eur, commission_eur, total_charged_eur,
			trailer_project_id, trailer_task_id, metadata, idempotency_key, created_at
		)
		values (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12::numeric, $13::numeric, $14::numeric,
			$15, $16, $17::jsonb, $18, $19
		)
	`

	sqlCountTransactions = `
		select count(*) from credit_transactions
		where user_id = $1 and ($2::text is null or type = $2)
	`

	sqlListTransactions = `
		select ` + transactionColumns + `
		from credit_transactions
		where user_id = $1 and ($2::text is null or type = $2)
		order by created_at desc, id desc
		offset $3 limit $4
	`

	sqlSummarizeTransactions = `
		select
			coalesce(sum(amount),0)::bigint,
			count(*),
			coalesce(sum(case when balance_after - balance_before <> amount then 1 else 0 end),0)::bigint
		from credit_transactions
		where account_id = $1
	`

	sqlListAccounts = `select ` + accountColumns + ` from credit_accounts where user_id > $1 order by user_id limit $2`
)

type database interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, arguments ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, arguments ...any) pgx.Row
}

// Store implements ledger.Store on a pgx pool or an open pgx transaction.
type Store struct {
	db database
}

// New returns a Store backed by a pgx pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{db: pool}
}

// WithTx runs fn in a transaction; nested calls use savepoints.
func (store *Store) WithTx(ctx context.Context, fn func(ctx context.Context, txStore ledger.Store) error) error {
	tx, err := store.db.Begin(ctx)
	if err != nil {
		return wrapStoreError(errorSubjectTransaction, errorCodeBegin, err)
	}
	if err := fn(ctx, &Store{db: tx}); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return wrapStoreError(errorSubjectTransaction, errorCodeCommit, err)
	}
	return nil
}

func (store *Store) GetOrCreateAccount(ctx context.Context, userID ledger.UserID, weeklyFreeReset time.Time) (ledger.CreditAccount, error) {
	accountID, err := ledger.GenerateAccountID()
	if err != nil {
		return ledger.CreditAccount{}, wrapStoreError(errorSubjectAccount, errorCodeInvalid, err)
	}
	if _, err := store.db.Exec(ctx, sqlInsertAccountIfMissing, accountID.String(), userID.String(), weeklyFreeReset.UTC().Unix()); err != nil {
		return ledger.CreditAccount{}, wrapStoreError(errorSubjectAccount, errorCodeLookup, err)
	}
	return store.FindAccount(ctx, userID)
}

func (store *Store) FindAccount(ctx context.Context, userID ledger.UserID) (ledger.CreditAccount, error) {
	account, err := scanAccount(store.db.QueryRow(ctx, sqlSelectAccountByUser, userID.String()))
	if errors.Is(err, pgx.ErrNoRows) {
		return ledger.CreditAccount{}, wrapStoreError(errorSubjectAccount, errorCodeGet, ledger.ErrAccountNotFound)
	}
	if err != nil {
		return ledger.CreditAccount{}, wrapStoreError(errorSubjectAccount, errorCodeGet, err)
	}
	return account, nil
}

func (store *Store) ApplyCredit(ctx context.Context, accountID ledger.AccountID, amount ledger.Credits, counter ledger.LifetimeCounter) (ledger.BalanceChange, error) {
	column, err := counterColumn(counter)
	if err != nil {
		return ledger.BalanceChange{}, wrapStoreError(errorSubjectBalance, errorCodeCredit, err)
	}
	var after int64
	err = store.db.QueryRow(ctx, fmt.Sprintf(sqlCreditAccount, column), accountID.String(), amount.Int64()).Scan(&after)
	if errors.Is(err, pgx.ErrNoRows) {
		return ledger.BalanceChange{}, wrapStoreError(errorSubjectBalance, errorCodeCredit, ledger.ErrAccountNotFound)
	}
	if err != nil {
		return ledger.BalanceChange{}, wrapStoreError(errorSubjectBalance, errorCodeCredit, err)
	}
	return ledger.BalanceChange{Before: ledger.Credits(after) - amount, After: ledger.Credits(after)}, nil
}

func (store *Store) ApplyDebit(ctx context.Context, accountID ledger.AccountID, amount ledger.Credits) (ledger.BalanceChange, error) {
	var after int64
	err := store.db.QueryRow(ctx, sqlDebitAccount, accountID.String(), amount.Int64()).Scan(&after)
	if errors.Is(err, pgx.ErrNoRows) {
		var exists bool
		if err := store.db.QueryRow(ctx, sqlAccountExists, accountID.String()).Scan(&exists); err != nil {
			return ledger.BalanceChange{}, wrapStoreError(errorSubjectBalance, errorCodeDebit, err)
		}
		if !exists {
			return ledger.BalanceChange{}, wrapStoreError(errorSubjectBalance, errorCodeDebit, ledger.ErrAccountNotFound)
		}
		return ledger.BalanceChange{}, wrapStoreError(errorSubjectBalance, errorCodeDebit, ledger.ErrInsufficientCredits)
	}
	if err != nil {
		return ledger.BalanceChange{}, wrapStoreError(errorSubjectBalance, errorCodeDebit, err)
	}
	return ledger.BalanceChange{Before: ledger.Credits(after) + amount, After: ledger.Credits(after)}, nil
}

func (store *Store) ResetWeeklyFreeIfDue(ctx context.Context, accountID ledger.AccountID, now time.Time, nextReset time.Time) error {
	if _, err := store.db.Exec(ctx, sqlResetWeeklyFree, accountID.String(), now.UTC().Unix(), nextReset.UTC().Unix()); err != nil {
		return wrapStoreError(errorSubjectWeeklyFree, errorCodeReset, err)
	}
	return nil
}

func (store *Store) IncrementWeeklyFree(ctx context.Context, accountID ledger.AccountID, limit int) (ledger.CreditAccount, error) {
	account, err := scanAccount(store.db.QueryRow(ctx, sqlIncrementWeeklyFree, accountID.String(), limit))
	if errors.Is(err, pgx.ErrNoRows) {
		return ledger.CreditAccount{}, wrapStoreError(errorSubjectWeeklyFree, errorCodeIncrement, ledger.ErrWeeklyLimitReached)
	}
	if err != nil {
		return ledger.CreditAccount{}, wrapStoreError(errorSubjectWeeklyFree, errorCodeIncrement, err)
	}
	return account, nil
}

func (store *Store) InsertTransaction(ctx context.Context, transaction ledger.CreditTransaction) error {
	metadata, err := ledger.MarshalMetadata(transaction.Metadata)
	if err != nil {
		return wrapStoreError(errorSubjectTransaction, errorCodeInvalid, err)
	}
	var (
		aiProvider, aiModel, trailerProjectID, trailerTaskID *string
		rawCost, commission, totalCharged                    *string
		rawTokenCount                                        *int64
	)
	if usage := transaction.Usage; usage != nil {
		aiProvider = optionalString(usage.AIProvider)
		aiModel = optionalString(usage.AIModel)
		rawTokenCount = usage.RawTokenCount
		rawCost = decimalText(usage.RawCostEUR)
		commission = decimalText(usage.CommissionEUR)
		totalCharged = decimalText(usage.TotalChargedEUR)
		trailerProjectID = optionalString(usage.TrailerProjectID)
		trailerTaskID = optionalString(usage.TrailerTaskID)
	}
	_, err = store.db.Exec(ctx, sqlInsertTransaction,
		transaction.ID.String(),
		transaction.UserID.String(),
		transaction.AccountID.String(),
		transaction.Amount.Int64(),
		transaction.BalanceBefore.Int64(),
		transaction.BalanceAfter.Int64(),
		transaction.Type.String(),
		transaction.Description,
		aiProvider,
		aiModel,
		rawTokenCount,
		rawCost,
		commission,
		totalCharged,
		trailerProjectID,
		trailerTaskID,
		string(metadata),
		optionalString(transaction.IdempotencyKey),
		transaction.CreatedAt.UTC(),
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode && pgErr.ConstraintName == constraintTransactionIdempotent {
		return wrapStoreError(errorSubjectTransaction, errorCodeDuplicate, ledger.ErrDuplicateIdempotencyKey)
	}
	if err != nil {
		return wrapStoreError(errorSubjectTransaction, errorCodeInsert, err)
	}
	return nil
}

func (store *Store) ListTransactions(ctx context.Context, userID ledger.UserID, filter ledger.TransactionFilter) ([]ledger.CreditTransaction, int64, error) {
	var typeFilter *string
	if filter.Type != nil {
		value := filter.Type.String()
		typeFilter = &value
	}
	var total int64
	if err := store.db.QueryRow(ctx, sqlCountTransactions, userID.String(), typeFilter).Scan(&total); err != nil {
		return nil, 0, wrapStoreError(errorSubjectTransaction, errorCodeList, err)
	}
	rows, err := store.db.Query(ctx, sqlListTransactions, userID.String(), typeFilter, filter.Offset, filter.Limit)
	if err != nil {
		return nil, 0, wrapStoreError(errorSubjectTransaction, errorCodeList, err)
	}
	defer rows.Close()

	transactions := make([]ledger.CreditTransaction, 0, filter.Limit)
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, wrapStoreError(errorSubjectTransaction, errorCodeInvalid, err)
		}
		transactions = append(transactions, transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrapStoreError(errorSubjectTransaction, errorCodeList, err)
	}
	return transactions, total, nil
}

func (store *Store) SummarizeTransactions(ctx context.Context, accountID ledger.AccountID) (ledger.LedgerSummary, error) {
	var amountSum, transactionCount, inconsistentCount int64
	err := store.db.QueryRow(ctx, sqlSummarizeTransactions, accountID.String()).Scan(&amountSum, &transactionCount, &inconsistentCount)
	if err != nil {
		return ledger.LedgerSummary{}, wrapStoreError(errorSubjectTransaction, errorCodeSummarize, err)
	}
	return ledger.LedgerSummary{
		AmountSum:         ledger.Credits(amountSum),
		TransactionCount:  transactionCount,
		InconsistentCount: inconsistentCount,
	}, nil
}

func (store *Store) ListAccounts(ctx context.Context, afterUserID string, limit int) ([]ledger.CreditAccount, error) {
	rows, err := store.db.Query(ctx, sqlListAccounts, afterUserID, limit)
	if err != nil {
		return nil, wrapStoreError(errorSubjectAccount, errorCodeList, err)
	}
	defer rows.Close()
	accounts := make([]ledger.CreditAccount, 0, limit)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, wrapStoreError(errorSubjectAccount, errorCodeInvalid, err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreError(errorSubjectAccount, errorCodeList, err)
	}
	return accounts, nil
}

func wrapStoreError(subject string, code string, err error) error {
	return ledger.WrapError(errorOperationStore, subject, code, err)
}

func counterColumn(counter ledger.LifetimeCounter) (string, error) {
	switch counter {
	case ledger.CounterPurchased:
		return "total_purchased", nil
	case ledger.CounterGranted:
		return "total_granted", nil
	case ledger.CounterRefunded:
		return "total_refunded", nil
	default:
		return "", fmt.Errorf("%w: counter %q cannot be credited", ledger.ErrInvalidTransactionType, string(counter))
	}
}

func scanAccount(row pgx.Row) (ledger.CreditAccount, error) {
	var (
		idValue, userIDValue                                            string
		balance, totalPurchased, totalGranted, totalUsed, totalRefunded int64
		weeklyFreeUsed                                                  int
		weeklyFreeResetUnix                                             int64
		createdAt, updatedAt                                            time.Time
	)
	err := row.Scan(&idValue, &userIDValue, &balance, &totalPurchased, &totalGranted, &totalUsed, &totalRefunded,
		&weeklyFreeUsed, &weeklyFreeResetUnix, &createdAt, &updatedAt)
	if err != nil {
		return ledger.CreditAccount{}, err
	}
	accountID, err := ledger.NewAccountID(idValue)
	if err != nil {
		return ledger.CreditAccount{}, err
	}
	userID, err := ledger.NewUserID(userIDValue)
	if err != nil {
		return ledger.CreditAccount{}, err
	}
	return ledger.CreditAccount{
		ID:              accountID,
		UserID:          userID,
		Balance:         ledger.Credits(balance),
		TotalPurchased:  ledger.Credits(totalPurchased),
		TotalGranted:    ledger.Credits(totalGranted),
		TotalUsed:       ledger.Credits(totalUsed),
		TotalRefunded:   ledger.Credits(totalRefunded),
		WeeklyFreeUsed:  weeklyFreeUsed,
		WeeklyFreeReset: time.Unix(weeklyFreeResetUnix, 0).UTC(),
		CreatedAt:       createdAt.UTC(),
		UpdatedAt:       updatedAt.UTC(),
	}, nil
}

func scanTransaction(row pgx.Row) (ledger.CreditTransaction, error) {
	var (
		idValue, userIDValue, accountIDValue, typeValue, description, metadataValue string
		amount, balanceBefore, balanceAfter                                         int64
		aiProvider, aiModel, trailerProjectID, trailerTaskID, idempotencyKey        *string
		rawCost, commission, totalCharged                                           *string
		rawTokenCount                                                               *int64
		createdAt                                                                   time.Time
	)
	err := row.Scan(&idValue, &userIDValue, &accountIDValue, &amount, &balanceBefore, &balanceAfter, &typeValue, &description,
		&aiProvider, &aiModel, &rawTokenCount, &rawCost, &commission, &totalCharged,
		&trailerProjectID, &trailerTaskID, &metadataValue, &idempotencyKey, &createdAt)
	if err != nil {
		return ledger.CreditTransaction{}, err
	}
	transactionID, err := ledger.NewTransactionID(idValue)
	if err != nil {
		return ledger.CreditTransaction{}, err
	}
	userID, err := ledger.NewUserID(userIDValue)
	if err != nil {
		return ledger.CreditTransaction{}, err
	}
	accountID, err := ledger.NewAccountID(accountIDValue)
	if err != nil {
		return ledger.CreditTransaction{}, err
	}
	transactionType, err := ledger.ParseTransactionType(typeValue)
	if err != nil {
		return ledger.CreditTransaction{}, err
	}
	metadata, err := ledger.UnmarshalMetadata([]byte(metadataValue))
	if err != nil {
		return ledger.CreditTransaction{}, err
	}
	transaction := ledger.CreditTransaction{
		ID:             transactionID,
		UserID:         userID,
		AccountID:      accountID,
		Amount:         ledger.Credits(amount),
		BalanceBefore:  ledger.Credits(balanceBefore),
		BalanceAfter:   ledger.Credits(balanceAfter),
		Type:           transactionType,
		Description:    description,
		Metadata:       metadata,
		IdempotencyKey: stringOrEmpty(idempotencyKey),
		CreatedAt:      createdAt.UTC(),
	}
	if transactionType == ledger.TransactionAIUsage {
		usage := ledger.UsageCharge{
			AIProvider:       stringOrEmpty(aiProvider),
			AIModel:          stringOrEmpty(aiModel),
			RawTokenCount:    rawTokenCount,
			TrailerProjectID: stringOrEmpty(trailerProjectID),
			TrailerTaskID:    stringOrEmpty(trailerTaskID),
		}
		if usage.RawCostEUR, err = parseDecimal(rawCost); err != nil {
			return ledger.CreditTransaction{}, err
		}
		if usage.CommissionEUR, err = parseDecimal(commission); err != nil {
			return ledger.CreditTransaction{}, err
		}
		if usage.TotalChargedEUR, err = parseDecimal(totalCharged); err != nil {
			return ledger.CreditTransaction{}, err
		}
		transaction.Usage = &usage
	}
	return transaction, nil
}

func parseDecimal(value *string) (decimal.Decimal, error) {
	if value == nil {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(*value)
}

func decimalText(value decimal.Decimal) *string {
	text := value.StringFixed(ledger.MoneyScale)
	return &text
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func stringOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

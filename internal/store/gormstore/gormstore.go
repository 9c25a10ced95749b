package gormstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MarkoPoloResearchLab/creditledger/pkg/ledger"
	gosqlite "github.com/glebarez/go-sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	constraintTransactionIdempotent = "idx_credit_transactions_account_idempotency"
	pgUniqueViolationCode           = "23505"
	sqliteConstraintUniqueCode      = 2067
	errorOperationStore             = "store"
	errorSubjectAccount             = "account"
	errorSubjectBalance             = "balance"
	errorSubjectTransaction         = "transaction"
	errorSubjectWeeklyFree          = "weekly_free"
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
)

// SQLite reports unique violations by column list rather than index name.
var sqliteUniqueColumns = map[string]string{
	constraintTransactionIdempotent: "credit_transactions.account_id, credit_transactions.idempotency_key",
}

// Store implements ledger.Store using GORM over PostgreSQL or SQLite.
type Store struct {
	db *gorm.DB
}

// New returns a Store backed by gorm.DB.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// AutoMigrate creates or updates the ledger tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// WithTx executes fn within a transaction.
func (store *Store) WithTx(ctx context.Context, fn func(ctx context.Context, txStore ledger.Store) error) error {
	return store.db.WithContext(ctx).Transaction(func(transaction *gorm.DB) error {
		return fn(ctx, &Store{db: transaction})
	})
}

func (store *Store) GetOrCreateAccount(ctx context.Context, userID ledger.UserID, weeklyFreeReset time.Time) (ledger.CreditAccount, error) {
	accountID, err := ledger.GenerateAccountID()
	if err != nil {
		return ledger.CreditAccount{}, wrapStoreError(errorSubjectAccount, errorCodeInvalid, err)
	}
	now := time.Now().UTC()
	candidate := Account{
		ID:                  accountID.String(),
		UserID:              userID.String(),
		WeeklyFreeResetUnix: weeklyFreeReset.UTC().Unix(),
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	err = store.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(&candidate).Error
	if err != nil {
		return ledger.CreditAccount{}, wrapStoreError(errorSubjectAccount, errorCodeLookup, err)
	}
	return store.FindAccount(ctx, userID)
}

func (store *Store) FindAccount(ctx context.Context, userID ledger.UserID) (ledger.CreditAccount, error) {
	var model Account
	err := store.db.WithContext(ctx).Where("user_id = ?", userID.String()).Take(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ledger.CreditAccount{}, wrapStoreError(errorSubjectAccount, errorCodeGet, ledger.ErrAccountNotFound)
	}
	if err != nil {
		return ledger.CreditAccount{}, wrapStoreError(errorSubjectAccount, errorCodeGet, err)
	}
	return mapAccount(model)
}

func (store *Store) ApplyCredit(ctx context.Context, accountID ledger.AccountID, amount ledger.Credits, counter ledger.LifetimeCounter) (ledger.BalanceChange, error) {
	column, err := counterColumn(counter)
	if err != nil {
		return ledger.BalanceChange{}, wrapStoreError(errorSubjectBalance, errorCodeCredit, err)
	}
	result := store.db.WithContext(ctx).
		Model(&Account{}).
		Where("id = ?", accountID.String()).
		Updates(map[string]any{
			"balance":    gorm.Expr("balance + ?", amount.Int64()),
			column:       gorm.Expr(column+" + ?", amount.Int64()),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return ledger.BalanceChange{}, wrapStoreError(errorSubjectBalance, errorCodeCredit, result.Error)
	}
	if result.RowsAffected == 0 {
		return ledger.BalanceChange{}, wrapStoreError(errorSubjectBalance, errorCodeCredit, ledger.ErrAccountNotFound)
	}
	after, err := store.balance(ctx, accountID)
	if err != nil {
		return ledger.BalanceChange{}, err
	}
	return ledger.BalanceChange{Before: after - amount, After: after}, nil
}

func (store *Store) ApplyDebit(ctx context.Context, accountID ledger.AccountID, amount ledger.Credits) (ledger.BalanceChange, error) {
	result := store.db.WithContext(ctx).
		Model(&Account{}).
		Where("id = ? AND balance >= ?", accountID.String(), amount.Int64()).
		Updates(map[string]any{
			"balance":    gorm.Expr("balance - ?", amount.Int64()),
			"total_used": gorm.Expr("total_used + ?", amount.Int64()),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return ledger.BalanceChange{}, wrapStoreError(errorSubjectBalance, errorCodeDebit, result.Error)
	}
	if result.RowsAffected == 0 {
		if _, err := store.balance(ctx, accountID); err != nil {
			return ledger.BalanceChange{}, err
		}
		return ledger.BalanceChange{}, wrapStoreError(errorSubjectBalance, errorCodeDebit, ledger.ErrInsufficientCredits)
	}
	after, err := store.balance(ctx, accountID)
	if err != nil {
		return ledger.BalanceChange{}, err
	}
	return ledger.BalanceChange{Before: after + amount, After: after}, nil
}

func (store *Store) balance(ctx context.Context, accountID ledger.AccountID) (ledger.Credits, error) {
	var model Account
	err := store.db.WithContext(ctx).Select("balance").Where("id = ?", accountID.String()).Take(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, wrapStoreError(errorSubjectBalance, errorCodeGet, ledger.ErrAccountNotFound)
	}
	if err != nil {
		return 0, wrapStoreError(errorSubjectBalance, errorCodeGet, err)
	}
	return ledger.Credits(model.Balance), nil
}

func (store *Store) ResetWeeklyFreeIfDue(ctx context.Context, accountID ledger.AccountID, now time.Time, nextReset time.Time) error {
	err := store.db.WithContext(ctx).
		Model(&Account{}).
		Where("id = ? AND weekly_free_reset_unix <= ?", accountID.String(), now.UTC().Unix()).
		Updates(map[string]any{
			"weekly_free_used":       0,
			"weekly_free_reset_unix": nextReset.UTC().Unix(),
			"updated_at":             time.Now().UTC(),
		}).Error
	if err != nil {
		return wrapStoreError(errorSubjectWeeklyFree, errorCodeReset, err)
	}
	return nil
}

func (store *Store) IncrementWeeklyFree(ctx context.Context, accountID ledger.AccountID, limit int) (ledger.CreditAccount, error) {
	result := store.db.WithContext(ctx).
		Model(&Account{}).
		Where("id = ? AND weekly_free_used < ?", accountID.String(), limit).
		Updates(map[string]any{
			"weekly_free_used": gorm.Expr("weekly_free_used + 1"),
			"updated_at":       time.Now().UTC(),
		})
	if result.Error != nil {
		return ledger.CreditAccount{}, wrapStoreError(errorSubjectWeeklyFree, errorCodeIncrement, result.Error)
	}
	if result.RowsAffected == 0 {
		return ledger.CreditAccount{}, wrapStoreError(errorSubjectWeeklyFree, errorCodeIncrement, ledger.ErrWeeklyLimitReached)
	}
	var model Account
	if err := store.db.WithContext(ctx).Where("id = ?", accountID.String()).Take(&model).Error; err != nil {
		return ledger.CreditAccount{}, wrapStoreError(errorSubjectWeeklyFree, errorCodeGet, err)
	}
	return mapAccount(model)
}

func (store *Store) InsertTransaction(ctx context.Context, transaction ledger.CreditTransaction) error {
	model, err := newTransactionModel(transaction)
	if err != nil {
		return wrapStoreError(errorSubjectTransaction, errorCodeInvalid, err)
	}
	err = store.db.WithContext(ctx).Create(&model).Error
	if isUniqueViolation(err, constraintTransactionIdempotent) {
		return wrapStoreError(errorSubjectTransaction, errorCodeDuplicate, ledger.ErrDuplicateIdempotencyKey)
	}
	if err != nil {
		return wrapStoreError(errorSubjectTransaction, errorCodeInsert, err)
	}
	return nil
}

func (store *Store) ListTransactions(ctx context.Context, userID ledger.UserID, filter ledger.TransactionFilter) ([]ledger.CreditTransaction, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		scoped := db.Where("user_id = ?", userID.String())
		if filter.Type != nil {
			scoped = scoped.Where("type = ?", filter.Type.String())
		}
		return scoped
	}
	var total int64
	if err := store.db.WithContext(ctx).Model(&Transaction{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, wrapStoreError(errorSubjectTransaction, errorCodeList, err)
	}
	var rows []Transaction
	err := store.db.WithContext(ctx).
		Scopes(scope).
		Order("created_at DESC").
		Order("id DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, wrapStoreError(errorSubjectTransaction, errorCodeList, err)
	}
	transactions := make([]ledger.CreditTransaction, 0, len(rows))
	for _, row := range rows {
		transaction, err := mapTransaction(row)
		if err != nil {
			return nil, 0, wrapStoreError(errorSubjectTransaction, errorCodeInvalid, err)
		}
		transactions = append(transactions, transaction)
	}
	return transactions, total, nil
}

func (store *Store) SummarizeTransactions(ctx context.Context, accountID ledger.AccountID) (ledger.LedgerSummary, error) {
	var row summaryRow
	err := store.db.WithContext(ctx).
		Model(&Transaction{}).
		Select("coalesce(sum(amount),0) as amount_sum, count(*) as transaction_count, "+
			"coalesce(sum(case when balance_after - balance_before <> amount then 1 else 0 end),0) as inconsistent_count").
		Where("account_id = ?", accountID.String()).
		Scan(&row).Error
	if err != nil {
		return ledger.LedgerSummary{}, wrapStoreError(errorSubjectTransaction, errorCodeSummarize, err)
	}
	return ledger.LedgerSummary{
		AmountSum:         ledger.Credits(row.AmountSum),
		TransactionCount:  row.TransactionCount,
		InconsistentCount: row.InconsistentCount,
	}, nil
}

func (store *Store) ListAccounts(ctx context.Context, afterUserID string, limit int) ([]ledger.CreditAccount, error) {
	var rows []Account
	err := store.db.WithContext(ctx).
		Where("user_id > ?", afterUserID).
		Order("user_id ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, wrapStoreError(errorSubjectAccount, errorCodeList, err)
	}
	accounts := make([]ledger.CreditAccount, 0, len(rows))
	for _, row := range rows {
		account, err := mapAccount(row)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

func wrapStoreError(subject string, code string, err error) error {
	return ledger.WrapError(errorOperationStore, subject, code, err)
}

type summaryRow struct {
	AmountSum         int64
	TransactionCount  int64
	InconsistentCount int64
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

func mapAccount(model Account) (ledger.CreditAccount, error) {
	accountID, err := ledger.NewAccountID(model.ID)
	if err != nil {
		return ledger.CreditAccount{}, wrapStoreError(errorSubjectAccount, errorCodeInvalid, err)
	}
	userID, err := ledger.NewUserID(model.UserID)
	if err != nil {
		return ledger.CreditAccount{}, wrapStoreError(errorSubjectAccount, errorCodeInvalid, err)
	}
	return ledger.CreditAccount{
		ID:              accountID,
		UserID:          userID,
		Balance:         ledger.Credits(model.Balance),
		TotalPurchased:  ledger.Credits(model.TotalPurchased),
		TotalGranted:    ledger.Credits(model.TotalGranted),
		TotalUsed:       ledger.Credits(model.TotalUsed),
		TotalRefunded:   ledger.Credits(model.TotalRefunded),
		WeeklyFreeUsed:  model.WeeklyFreeUsed,
		WeeklyFreeReset: time.Unix(model.WeeklyFreeResetUnix, 0).UTC(),
		CreatedAt:       model.CreatedAt.UTC(),
		UpdatedAt:       model.UpdatedAt.UTC(),
	}, nil
}

func newTransactionModel(transaction ledger.CreditTransaction) (Transaction, error) {
	metadata, err := ledger.MarshalMetadata(transaction.Metadata)
	if err != nil {
		return Transaction{}, err
	}
	model := Transaction{
		ID:             transaction.ID.String(),
		UserID:         transaction.UserID.String(),
		AccountID:      transaction.AccountID.String(),
		Amount:         transaction.Amount.Int64(),
		BalanceBefore:  transaction.BalanceBefore.Int64(),
		BalanceAfter:   transaction.BalanceAfter.Int64(),
		Type:           transaction.Type.String(),
		Description:    transaction.Description,
		Metadata:       datatypes.JSON(metadata),
		IdempotencyKey: optionalString(transaction.IdempotencyKey),
		CreatedAt:      transaction.CreatedAt.UTC(),
	}
	if usage := transaction.Usage; usage != nil {
		model.AIProvider = optionalString(usage.AIProvider)
		model.AIModel = optionalString(usage.AIModel)
		model.RawTokenCount = usage.RawTokenCount
		model.RawCostEUR = decimal.NewNullDecimal(usage.RawCostEUR)
		model.CommissionEUR = decimal.NewNullDecimal(usage.CommissionEUR)
		model.TotalChargedEUR = decimal.NewNullDecimal(usage.TotalChargedEUR)
		model.TrailerProjectID = optionalString(usage.TrailerProjectID)
		model.TrailerTaskID = optionalString(usage.TrailerTaskID)
	}
	return model, nil
}

func mapTransaction(row Transaction) (ledger.CreditTransaction, error) {
	transactionID, err := ledger.NewTransactionID(row.ID)
	if err != nil {
		return ledger.CreditTransaction{}, err
	}
	accountID, err := ledger.NewAccountID(row.AccountID)
	if err != nil {
		return ledger.CreditTransaction{}, err
	}
	userID, err := ledger.NewUserID(row.UserID)
	if err != nil {
		return ledger.CreditTransaction{}, err
	}
	transactionType, err := ledger.ParseTransactionType(row.Type)
	if err != nil {
		return ledger.CreditTransaction{}, err
	}
	metadata, err := ledger.UnmarshalMetadata(row.Metadata)
	if err != nil {
		return ledger.CreditTransaction{}, err
	}
	transaction := ledger.CreditTransaction{
		ID:             transactionID,
		UserID:         userID,
		AccountID:      accountID,
		Amount:         ledger.Credits(row.Amount),
		BalanceBefore:  ledger.Credits(row.BalanceBefore),
		BalanceAfter:   ledger.Credits(row.BalanceAfter),
		Type:           transactionType,
		Description:    row.Description,
		Metadata:       metadata,
		IdempotencyKey: stringOrEmpty(row.IdempotencyKey),
		CreatedAt:      row.CreatedAt.UTC(),
	}
	if transactionType == ledger.TransactionAIUsage {
		transaction.Usage = &ledger.UsageCharge{
			AIProvider:       stringOrEmpty(row.AIProvider),
			AIModel:          stringOrEmpty(row.AIModel),
			RawTokenCount:    row.RawTokenCount,
			RawCostEUR:       row.RawCostEUR.Decimal,
			CommissionEUR:    row.CommissionEUR.Decimal,
			TotalChargedEUR:  row.TotalChargedEUR.Decimal,
			TrailerProjectID: stringOrEmpty(row.TrailerProjectID),
			TrailerTaskID:    stringOrEmpty(row.TrailerTaskID),
		}
	}
	return transaction, nil
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

func isUniqueViolation(err error, constraint string) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolationCode && pgErr.ConstraintName == constraint
	}
	var sqliteErr *gosqlite.Error
	if errors.As(err, &sqliteErr) {
		columns, known := sqliteUniqueColumns[constraint]
		return known && sqliteErr.Code() == sqliteConstraintUniqueCode && strings.Contains(sqliteErr.Error(), columns)
	}
	return false
}

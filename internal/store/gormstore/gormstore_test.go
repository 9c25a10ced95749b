package gormstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MarkoPoloResearchLab/creditledger/internal/store/storetest"
	"github.com/MarkoPoloResearchLab/creditledger/pkg/ledger"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const postgresURLEnv = "CREDITLEDGER_TEST_POSTGRES_URL"

func TestSQLiteStoreConformance(test *testing.T) {
	storetest.Run(test, func(test *testing.T) ledger.Store {
		return New(mustOpenSQLite(test))
	})
}

func TestSQLiteConnectionPoolConformance(test *testing.T) {
	storetest.Run(test, func(test *testing.T) ledger.Store {
		return New(mustOpenPooledSQLite(test))
	})
}

func TestPostgresStoreConformance(test *testing.T) {
	dsn := os.Getenv(postgresURLEnv)
	if dsn == "" {
		test.Skipf("%s not set", postgresURLEnv)
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(test, err)
	require.NoError(test, AutoMigrate(db))
	storetest.Run(test, func(test *testing.T) ledger.Store {
		return New(db)
	})
}

func TestAutoMigrateCreatesIdempotencyIndex(test *testing.T) {
	test.Parallel()
	db := mustOpenSQLite(test)
	require.True(test, db.Migrator().HasIndex(&Transaction{}, constraintTransactionIdempotent))
	require.True(test, db.Migrator().HasIndex(&Account{}, "idx_credit_accounts_user"))
}

func TestWithTxRollsBackOnError(test *testing.T) {
	test.Parallel()
	ctx := context.Background()
	store := New(mustOpenSQLite(test))
	userID, err := ledger.NewUserID("rollback-user")
	require.NoError(test, err)
	account, err := store.GetOrCreateAccount(ctx, userID, time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC))
	require.NoError(test, err)

	err = store.WithTx(ctx, func(ctx context.Context, txStore ledger.Store) error {
		if _, err := txStore.ApplyCredit(ctx, account.ID, 50, ledger.CounterGranted); err != nil {
			return err
		}
		return ledger.ErrInvalidMetadata
	})
	require.ErrorIs(test, err, ledger.ErrInvalidMetadata)

	reloaded, err := store.FindAccount(ctx, userID)
	require.NoError(test, err)
	require.Equal(test, ledger.Credits(0), reloaded.Balance)
	require.Equal(test, ledger.Credits(0), reloaded.TotalGranted)
}

func TestInsertTransactionMapsOnlyIdempotencyViolations(test *testing.T) {
	test.Parallel()
	ctx := context.Background()
	store := New(mustOpenSQLite(test))
	userID, err := ledger.NewUserID("constraint-user")
	require.NoError(test, err)
	account, err := store.GetOrCreateAccount(ctx, userID, time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC))
	require.NoError(test, err)

	transactionID, err := ledger.GenerateTransactionID()
	require.NoError(test, err)
	first := ledger.CreditTransaction{
		ID:             transactionID,
		UserID:         userID,
		AccountID:      account.ID,
		Amount:         5,
		BalanceAfter:   5,
		Type:           ledger.TransactionAdminGrant,
		IdempotencyKey: "grant:1",
		CreatedAt:      time.Date(2024, time.March, 6, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(test, store.InsertTransaction(ctx, first))

	sameID := first
	sameID.IdempotencyKey = "grant:2"
	err = store.InsertTransaction(ctx, sameID)
	require.Error(test, err)
	require.NotErrorIs(test, err, ledger.ErrDuplicateIdempotencyKey)

	sameKey := first
	sameKey.ID, err = ledger.GenerateTransactionID()
	require.NoError(test, err)
	err = store.InsertTransaction(ctx, sameKey)
	require.ErrorIs(test, err, ledger.ErrDuplicateIdempotencyKey)
}

func mustOpenSQLite(test *testing.T) *gorm.DB {
	test.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(test.TempDir(), "ledger.db")), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(test, err)
	sqlDB, err := db.DB()
	require.NoError(test, err)
	sqlDB.SetMaxOpenConns(1)
	test.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(test, AutoMigrate(db))
	return db
}

func mustOpenPooledSQLite(test *testing.T) *gorm.DB {
	test.Helper()
	dsn := filepath.Join(test.TempDir(), "ledger.db") + "?_txlock=immediate&_pragma=busy_timeout(10000)&_pragma=journal_mode(WAL)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(test, err)
	sqlDB, err := db.DB()
	require.NoError(test, err)
	sqlDB.SetMaxOpenConns(8)
	test.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(test, AutoMigrate(db))
	return db
}

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCommand(test *testing.T, args ...string) (string, error) {
	test.Helper()
	cmd := newRootCommand()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return output.String(), err
}

func TestMigrateCreatesSQLiteDatabase(test *testing.T) {
	test.Parallel()
	databasePath := filepath.Join(test.TempDir(), "nested", "ledger.db")

	_, err := runCommand(test, "migrate", "--database-url", "sqlite://"+databasePath)
	require.NoError(test, err)

	_, statErr := os.Stat(databasePath)
	require.NoError(test, statErr)
}

func TestReconcileReportsEmptyLedger(test *testing.T) {
	test.Parallel()
	databaseURL := "sqlite://" + filepath.Join(test.TempDir(), "ledger.db")

	output, err := runCommand(test, "reconcile", "--database-url", databaseURL)
	require.NoError(test, err)
	require.Contains(test, output, "checked 0 accounts, 0 mismatches")
}

func TestEnvironmentConfiguresDatabase(test *testing.T) {
	databasePath := filepath.Join(test.TempDir(), "from-env.db")
	test.Setenv("CREDITD_DATABASE_URL", "sqlite://"+databasePath)

	_, err := runCommand(test, "migrate")
	require.NoError(test, err)

	_, statErr := os.Stat(databasePath)
	require.NoError(test, statErr)
}

func TestInvalidConfigurationFails(test *testing.T) {
	test.Parallel()
	databaseURL := "sqlite://" + filepath.Join(test.TempDir(), "ledger.db")

	_, err := runCommand(test, "migrate", "--database-url", databaseURL, "--store-backend", "pgx")
	require.Error(test, err)

	_, err = runCommand(test, "migrate", "--database-url", databaseURL, "--http-listen-addr", ":0")
	require.Error(test, err)
}

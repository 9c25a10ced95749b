package migrations

import (
	"io/fs"
	"strings"
	"testing"
)

func TestEmbeddedMigrationsArePaired(test *testing.T) {
	test.Parallel()
	entries, err := fs.ReadDir(embeddedMigrations, migrationsDir)
	if err != nil {
		test.Fatalf("read embedded migrations: %v", err)
	}
	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, entry := range entries {
		name := entry.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			test.Fatalf("unexpected migration file %q", name)
		}
	}
	if len(ups) == 0 {
		test.Fatalf("expected at least one migration")
	}
	for version := range ups {
		if !downs[version] {
			test.Fatalf("migration %s has no down script", version)
		}
	}
}

func TestSchemaDeclaresLedgerConstraints(test *testing.T) {
	test.Parallel()
	contents, err := fs.ReadFile(embeddedMigrations, migrationsDir+"/000001_create_credit_ledger.up.sql")
	if err != nil {
		test.Fatalf("read schema: %v", err)
	}
	schema := string(contents)
	for _, fragment := range []string{
		"CHECK (balance >= 0)",
		"idx_credit_accounts_user ON credit_accounts (user_id)",
		"idx_credit_transactions_account_idempotency",
	} {
		if !strings.Contains(schema, fragment) {
			test.Fatalf("schema is missing %q", fragment)
		}
	}
}

func TestUpRejectsNilHandle(test *testing.T) {
	test.Parallel()
	if err := Up(nil); err == nil {
		test.Fatalf("expected error for nil database handle")
	}
}

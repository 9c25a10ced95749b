package ledger

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDefaultCreditPacksSorted(test *testing.T) {
	test.Parallel()
	packs := DefaultCreditPacks()
	if len(packs) == 0 {
		test.Fatalf("expected catalog entries")
	}
	popular := 0
	for index, pack := range packs {
		if index > 0 && packs[index-1].SortOrder > pack.SortOrder {
			test.Fatalf("packs out of order at %d", index)
		}
		if pack.Popular {
			popular++
		}
		if !pack.PricePerCredit().IsPositive() {
			test.Fatalf("pack %s has non-positive unit price", pack.ID)
		}
	}
	if popular != 1 {
		test.Fatalf("expected exactly one popular pack, got %d", popular)
	}
}

func TestCreditPackDerivedValues(test *testing.T) {
	test.Parallel()
	pack, err := FindCreditPack(" Creator ")
	if err != nil {
		test.Fatalf("find: %v", err)
	}
	if pack.TotalCredits() != 550 {
		test.Fatalf("expected 550 credits, got %d", pack.TotalCredits())
	}
	if !pack.PricePerCredit().Equal(decimal.RequireFromString("0.0409")) {
		test.Fatalf("expected 0.0409 per credit, got %s", pack.PricePerCredit())
	}
	_, err = FindCreditPack("mega")
	expectError(test, err, ErrUnknownCreditPack)
}

func TestPurchasePackIsIdempotentPerPaymentReference(test *testing.T) {
	test.Parallel()
	service, _ := mustNewService(test, newMemoryStore())
	ctx := context.Background()
	userID := mustUserID(test, userAlice)
	transaction, err := service.PurchasePack(ctx, userID, "starter", "pi_123")
	if err != nil {
		test.Fatalf("purchase: %v", err)
	}
	if transaction.Amount != 100 || transaction.Metadata.Purchase == nil || transaction.Metadata.Purchase.PaymentReference != "pi_123" {
		test.Fatalf("unexpected purchase transaction %+v", transaction)
	}
	if transaction.IdempotencyKey != purchaseIdempotencyPrefix+"pi_123" {
		test.Fatalf("unexpected idempotency key %q", transaction.IdempotencyKey)
	}
	_, err = service.PurchasePack(ctx, userID, "starter", "pi_123")
	expectError(test, err, ErrDuplicateIdempotencyKey)
	_, err = service.PurchasePack(ctx, userID, "mega", "pi_456")
	expectError(test, err, ErrUnknownCreditPack)
	if balance := mustBalance(test, service, userID); balance != 100 {
		test.Fatalf("expected single credit of 100, got %d", balance)
	}
}

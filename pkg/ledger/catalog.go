package ledger

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// CreditPack is a purchasable bundle of credits.
type CreditPack struct {
	ID           string
	Name         string
	BaseCredits  Credits
	BonusCredits Credits
	PriceEUR     decimal.Decimal
	Features     []string
	Popular      bool
	SortOrder    int
}

// TotalCredits returns base plus bonus credits.
func (pack CreditPack) TotalCredits() Credits {
	return pack.BaseCredits + pack.BonusCredits
}

// PricePerCredit returns the effective EUR price of one credit.
func (pack CreditPack) PricePerCredit() decimal.Decimal {
	total := pack.TotalCredits()
	if total <= 0 {
		return decimal.Zero
	}
	return RoundMoney(pack.PriceEUR.Div(decimal.NewFromInt(total.Int64())))
}

func defaultCreditPacks() []CreditPack {
	return []CreditPack{
		{
			ID:          "starter",
			Name:        "Starter",
			BaseCredits: 100,
			PriceEUR:    decimal.RequireFromString("5.00"),
			Features:    []string{"About 20 trailer scenes", "Credits never expire"},
			SortOrder:   1,
		},
		{
			ID:           "creator",
			Name:         "Creator",
			BaseCredits:  500,
			BonusCredits: 50,
			PriceEUR:     decimal.RequireFromString("22.50"),
			Features:     []string{"About 110 trailer scenes", "10% bonus credits", "Credits never expire"},
			Popular:      true,
			SortOrder:    2,
		},
		{
			ID:           "studio",
			Name:         "Studio",
			BaseCredits:  1200,
			BonusCredits: 200,
			PriceEUR:     decimal.RequireFromString("49.00"),
			Features:     []string{"About 280 trailer scenes", "17% bonus credits", "Priority rendering queue"},
			SortOrder:    3,
		},
		{
			ID:           "agency",
			Name:         "Agency",
			BaseCredits:  3000,
			BonusCredits: 600,
			PriceEUR:     decimal.RequireFromString("110.00"),
			Features:     []string{"About 720 trailer scenes", "20% bonus credits", "Priority rendering queue", "Dedicated support"},
			SortOrder:    4,
		},
	}
}

// DefaultCreditPacks returns the storefront catalog ordered by SortOrder.
func DefaultCreditPacks() []CreditPack {
	packs := defaultCreditPacks()
	sort.SliceStable(packs, func(left, right int) bool {
		return packs[left].SortOrder < packs[right].SortOrder
	})
	return packs
}

// FindCreditPack looks up a catalog pack by id.
func FindCreditPack(packID string) (CreditPack, error) {
	normalized := strings.ToLower(strings.TrimSpace(packID))
	for _, pack := range defaultCreditPacks() {
		if pack.ID == normalized {
			return pack, nil
		}
	}
	return CreditPack{}, fmt.Errorf("%w: %q", ErrUnknownCreditPack, packID)
}

// PurchasePack credits a confirmed pack purchase. The payment reference doubles
// as idempotency key so a retried webhook never credits twice.
func (service *Service) PurchasePack(ctx context.Context, userID UserID, packID string, paymentReference string) (CreditTransaction, error) {
	pack, err := FindCreditPack(packID)
	if err != nil {
		service.logOperation(ctx, OperationLog{
			Operation: OperationPurchasePack,
			UserID:    userID,
			Type:      TransactionPackPurchase,
			Error:     err,
		})
		return CreditTransaction{}, err
	}
	reference := strings.TrimSpace(paymentReference)
	request := AddCreditsRequest{
		UserID:      userID,
		Amount:      pack.TotalCredits(),
		Type:        TransactionPackPurchase,
		Description: fmt.Sprintf("Purchased %s pack", pack.Name),
		Metadata: Metadata{
			Purchase: &PurchaseMetadata{PackID: pack.ID, PaymentReference: reference},
		},
	}
	if reference != "" {
		request.IdempotencyKey = purchaseIdempotencyPrefix + reference
	}
	return service.AddCredits(ctx, request)
}

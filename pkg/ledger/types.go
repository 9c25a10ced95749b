package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.jetify.com/typeid/v2"
)

const (
	accountIDPrefix     = "acct"
	transactionIDPrefix = "ctxn"
)

// Credits is an integer count of platform credits.
type Credits int64

// Int64 exposes the primitive value.
func (credits Credits) Int64() int64 {
	return int64(credits)
}

// NewPositiveCredits validates a strictly positive credit amount.
func NewPositiveCredits(raw int64) (Credits, error) {
	if raw <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidAmount, raw)
	}
	return Credits(raw), nil
}

// UserID identifies an account owner.
type UserID struct {
	value string
}

// NewUserID validates and normalizes a user id.
func NewUserID(raw string) (UserID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return UserID{}, fmt.Errorf("%w: empty value", ErrInvalidUserID)
	}
	return UserID{value: trimmed}, nil
}

// String returns the normalized identifier.
func (id UserID) String() string {
	return id.value
}

// IsZero reports whether the id was never initialized.
func (id UserID) IsZero() bool {
	return id.value == ""
}

// AccountID identifies a credit account.
type AccountID struct {
	value string
}

// NewAccountID parses a stored account id.
func NewAccountID(raw string) (AccountID, error) {
	value, err := parsePrefixedID(raw, accountIDPrefix)
	if err != nil {
		return AccountID{}, fmt.Errorf("%w: %v", ErrInvalidAccountID, err)
	}
	return AccountID{value: value}, nil
}

// GenerateAccountID returns a fresh K-sortable account id.
func GenerateAccountID() (AccountID, error) {
	generated, err := typeid.Generate(accountIDPrefix)
	if err != nil {
		return AccountID{}, err
	}
	return AccountID{value: generated.String()}, nil
}

// String returns the identifier.
func (id AccountID) String() string {
	return id.value
}

// TransactionID identifies a ledger transaction.
type TransactionID struct {
	value string
}

// NewTransactionID parses a stored transaction id.
func NewTransactionID(raw string) (TransactionID, error) {
	value, err := parsePrefixedID(raw, transactionIDPrefix)
	if err != nil {
		return TransactionID{}, fmt.Errorf("%w: %v", ErrInvalidTransactionID, err)
	}
	return TransactionID{value: value}, nil
}

// GenerateTransactionID returns a fresh K-sortable transaction id.
func GenerateTransactionID() (TransactionID, error) {
	generated, err := typeid.Generate(transactionIDPrefix)
	if err != nil {
		return TransactionID{}, err
	}
	return TransactionID{value: generated.String()}, nil
}

// String returns the identifier.
func (id TransactionID) String() string {
	return id.value
}

// IsZero reports whether the id was never initialized.
func (id TransactionID) IsZero() bool {
	return id.value == ""
}

func parsePrefixedID(raw string, prefix string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("empty value")
	}
	parsed, err := typeid.Parse(trimmed)
	if err != nil {
		return "", err
	}
	if parsed.Prefix() != prefix {
		return "", fmt.Errorf("expected prefix %q, got %q", prefix, parsed.Prefix())
	}
	return parsed.String(), nil
}

// TransactionType classifies a ledger transaction.
type TransactionType string

const (
	TransactionPackPurchase      TransactionType = "PACK_PURCHASE"
	TransactionAdminGrant        TransactionType = "ADMIN_GRANT"
	TransactionSubscriptionGrant TransactionType = "SUBSCRIPTION_GRANT"
	TransactionContestPrize      TransactionType = "CONTEST_PRIZE"
	TransactionReferralBonus     TransactionType = "REFERRAL_BONUS"
	TransactionPromoCode         TransactionType = "PROMO_CODE"
	TransactionAIUsage           TransactionType = "AI_USAGE"
	TransactionRefund            TransactionType = "REFUND"
)

var transactionTypes = []TransactionType{
	TransactionPackPurchase,
	TransactionAdminGrant,
	TransactionSubscriptionGrant,
	TransactionContestPrize,
	TransactionReferralBonus,
	TransactionPromoCode,
	TransactionAIUsage,
	TransactionRefund,
}

// TransactionTypes lists every known transaction type.
func TransactionTypes() []TransactionType {
	return append([]TransactionType(nil), transactionTypes...)
}

// ParseTransactionType validates a raw transaction type.
func ParseTransactionType(raw string) (TransactionType, error) {
	candidate := TransactionType(strings.ToUpper(strings.TrimSpace(raw)))
	for _, known := range transactionTypes {
		if candidate == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTransactionType, raw)
}

// String returns the wire representation.
func (transactionType TransactionType) String() string {
	return string(transactionType)
}

// LifetimeCounter names one of the monotonically increasing account totals.
type LifetimeCounter string

const (
	CounterPurchased LifetimeCounter = "total_purchased"
	CounterGranted   LifetimeCounter = "total_granted"
	CounterUsed      LifetimeCounter = "total_used"
	CounterRefunded  LifetimeCounter = "total_refunded"
)

// creditCounter selects the lifetime counter a credit of this type increments.
func (transactionType TransactionType) creditCounter() (LifetimeCounter, error) {
	switch transactionType {
	case TransactionPackPurchase:
		return CounterPurchased, nil
	case TransactionAdminGrant, TransactionSubscriptionGrant, TransactionContestPrize, TransactionReferralBonus, TransactionPromoCode:
		return CounterGranted, nil
	case TransactionRefund:
		return CounterRefunded, nil
	case TransactionAIUsage:
		return "", fmt.Errorf("%w: %s is a debit", ErrInvalidTransactionType, transactionType)
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTransactionType, string(transactionType))
	}
}

// CreditAccount is the per-user balance record.
type CreditAccount struct {
	ID              AccountID
	UserID          UserID
	Balance         Credits
	TotalPurchased  Credits
	TotalGranted    Credits
	TotalUsed       Credits
	TotalRefunded   Credits
	WeeklyFreeUsed  int
	WeeklyFreeReset time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// BalanceChange captures the balance around a single mutation.
type BalanceChange struct {
	Before Credits
	After  Credits
}

// UsageCharge records the AI billing breakdown of an AI_USAGE transaction.
type UsageCharge struct {
	AIProvider       string
	AIModel          string
	RawTokenCount    *int64
	RawCostEUR       decimal.Decimal
	CommissionEUR    decimal.Decimal
	TotalChargedEUR  decimal.Decimal
	TrailerProjectID string
	TrailerTaskID    string
}

// CreditTransaction is an immutable ledger row.
type CreditTransaction struct {
	ID             TransactionID
	UserID         UserID
	AccountID      AccountID
	Amount         Credits
	BalanceBefore  Credits
	BalanceAfter   Credits
	Type           TransactionType
	Description    string
	Usage          *UsageCharge
	Metadata       Metadata
	IdempotencyKey string
	CreatedAt      time.Time
}

// Consistent reports whether the balance snapshots agree with the amount.
func (transaction CreditTransaction) Consistent() bool {
	return transaction.BalanceAfter == transaction.BalanceBefore+transaction.Amount
}

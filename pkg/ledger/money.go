package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places kept for EUR amounts.
const MoneyScale int32 = 4

// MaxRawCostEUR is the largest accepted provider cost. Its total charge fits
// the numeric(14,4) EUR columns and its credit estimate fits an int64.
var MaxRawCostEUR = decimal.RequireFromString("1000000000")

var (
	commissionRate       = decimal.RequireFromString("0.20")
	commissionMultiplier = decimal.RequireFromString("1.20")
	creditPriceEUR       = decimal.RequireFromString("0.05")
)

// RoundMoney rounds to four decimal places, half away from zero.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyScale)
}

// ComputeUsageCharge applies the 20% commission to a raw provider cost.
func ComputeUsageCharge(rawCostEUR decimal.Decimal) UsageCharge {
	raw := RoundMoney(rawCostEUR)
	commission := RoundMoney(rawCostEUR.Mul(commissionRate))
	total := RoundMoney(rawCostEUR.Add(commission))
	return UsageCharge{
		RawCostEUR:      raw,
		CommissionEUR:   commission,
		TotalChargedEUR: total,
	}
}

// ValidateRawCost rejects negative costs and costs above MaxRawCostEUR.
func ValidateRawCost(rawCostEUR decimal.Decimal) error {
	if rawCostEUR.IsNegative() {
		return fmt.Errorf("%w: raw cost %s is negative", ErrInvalidCost, rawCostEUR.String())
	}
	if rawCostEUR.GreaterThan(MaxRawCostEUR) {
		return fmt.Errorf("%w: raw cost %s exceeds %s", ErrInvalidCost, rawCostEUR.String(), MaxRawCostEUR.String())
	}
	return nil
}

// EstimateCreditCost converts a raw EUR cost to credits, commission included,
// rounding up to the next whole credit. Non-positive costs estimate to zero.
func EstimateCreditCost(rawCostEUR decimal.Decimal) (Credits, error) {
	if !rawCostEUR.IsPositive() {
		return 0, nil
	}
	if err := ValidateRawCost(rawCostEUR); err != nil {
		return 0, err
	}
	credits := rawCostEUR.Mul(commissionMultiplier).Div(creditPriceEUR).Ceil()
	return Credits(credits.IntPart()), nil
}

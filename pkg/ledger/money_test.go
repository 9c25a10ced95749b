package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestEstimateCreditCost(test *testing.T) {
	test.Parallel()
	testCases := []struct {
		name    string
		raw     string
		credits Credits
	}{
		{name: "ten euros", raw: "10.00", credits: 240},
		{name: "zero", raw: "0", credits: 0},
		{name: "negative", raw: "-3.50", credits: 0},
		{name: "rounds up partial credit", raw: "0.01", credits: 1},
		{name: "exact boundary", raw: "0.125", credits: 3},
		{name: "one and a half", raw: "1.50", credits: 36},
		{name: "largest accepted cost", raw: "1000000000", credits: 24000000000},
	}
	for _, testCase := range testCases {
		testCase := testCase
		test.Run(testCase.name, func(test *testing.T) {
			test.Parallel()
			got, err := EstimateCreditCost(decimal.RequireFromString(testCase.raw))
			if err != nil {
				test.Fatalf("estimate: %v", err)
			}
			if got != testCase.credits {
				test.Fatalf("expected %d credits, got %d", testCase.credits, got)
			}
		})
	}
}

func TestEstimateCreditCostRejectsCostAboveMaximum(test *testing.T) {
	test.Parallel()
	for _, raw := range []string{"1000000000.0001", "100000000000000000000000"} {
		credits, err := EstimateCreditCost(decimal.RequireFromString(raw))
		expectError(test, err, ErrInvalidCost)
		if credits != 0 {
			test.Fatalf("%s: expected 0 credits on error, got %d", raw, credits)
		}
	}
}

func TestComputeUsageCharge(test *testing.T) {
	test.Parallel()
	testCases := []struct {
		raw        string
		commission string
		total      string
	}{
		{raw: "1.50", commission: "0.30", total: "1.80"},
		{raw: "0.333333", commission: "0.0667", total: "0.4000"},
		{raw: "0", commission: "0", total: "0"},
		{raw: "0.00025", commission: "0.0001", total: "0.0004"},
	}
	for _, testCase := range testCases {
		charge := ComputeUsageCharge(decimal.RequireFromString(testCase.raw))
		if !charge.CommissionEUR.Equal(decimal.RequireFromString(testCase.commission)) {
			test.Fatalf("raw %s: expected commission %s, got %s", testCase.raw, testCase.commission, charge.CommissionEUR)
		}
		if !charge.TotalChargedEUR.Equal(decimal.RequireFromString(testCase.total)) {
			test.Fatalf("raw %s: expected total %s, got %s", testCase.raw, testCase.total, charge.TotalChargedEUR)
		}
	}
}

func TestRoundMoneyHalfAwayFromZero(test *testing.T) {
	test.Parallel()
	if got := RoundMoney(decimal.RequireFromString("0.00005")); !got.Equal(decimal.RequireFromString("0.0001")) {
		test.Fatalf("expected 0.0001, got %s", got)
	}
	if got := RoundMoney(decimal.RequireFromString("-0.00005")); !got.Equal(decimal.RequireFromString("-0.0001")) {
		test.Fatalf("expected -0.0001, got %s", got)
	}
}

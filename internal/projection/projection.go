// Package projection computes compound-interest future values for investment accounts.
package projection

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/morningmoney/internal/money"
)

// precision is the number of fractional digits kept for intermediate rates and powers.
const precision = 28

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// Inputs are the stored fields of an investment that drive its projection.
type Inputs struct {
	CurrentValue         decimal.Decimal
	MonthlyContribution  decimal.Decimal
	ExpectedAnnualReturn decimal.Decimal // percent, 11.00 means 11%/year
	TargetYear           int
}

// MonthsUntil counts whole years from now until targetYear, times 12. Never negative.
func MonthsUntil(targetYear int, now time.Time) int {
	months := 12 * (targetYear - now.Year())
	if months < 0 {
		return 0
	}
	return months
}

// MonthlyRate converts an annual percentage into a monthly fraction.
func MonthlyRate(annualPercent decimal.Decimal) decimal.Decimal {
	return annualPercent.DivRound(hundred, precision).DivRound(twelve, precision)
}

// FutureValue projects inv to the end of its target year with monthly compounding.
//
// A target year at or before now's year returns CurrentValue unchanged. A zero or
// negative rate grows linearly. The result is rounded half-up to cents.
func FutureValue(inv Inputs, extraMonthly decimal.Decimal, now time.Time) decimal.Decimal {
	months := MonthsUntil(inv.TargetYear, now)
	if months == 0 {
		return inv.CurrentValue
	}

	rate := MonthlyRate(inv.ExpectedAnnualReturn)
	payment := inv.MonthlyContribution.Add(extraMonthly)
	n := decimal.NewFromInt(int64(months))

	if rate.Sign() <= 0 {
		return money.Round(inv.CurrentValue.Add(payment.Mul(n)))
	}

	growth := pow(decimal.NewFromInt(1).Add(rate), months)
	principal := inv.CurrentValue.Mul(growth)
	contributions := payment.Mul(growth.Sub(decimal.NewFromInt(1)).DivRound(rate, precision))

	return money.Round(principal.Add(contributions))
}

// TotalProjectedWealth sums FutureValue over invs. When targetYear is set only
// investments with exactly that target year are included; others are not
// re-projected to it.
func TotalProjectedWealth(invs []Inputs, targetYear *int, now time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range invs {
		if targetYear != nil && inv.TargetYear != *targetYear {
			continue
		}
		total = total.Add(FutureValue(inv, decimal.Zero, now))
	}
	return total
}

// pow raises base to a non-negative integer power by squaring, rounding each
// step to precision fractional digits.
func pow(base decimal.Decimal, exp int) decimal.Decimal {
	result := decimal.NewFromInt(1)
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base).Round(precision)
		}
		base = base.Mul(base).Round(precision)
		exp >>= 1
	}
	return result
}

// Projector binds the projection functions to a clock.
type Projector struct {
	Now func() time.Time
}

// NewProjector returns a Projector using the wall clock.
func NewProjector() *Projector {
	return &Projector{Now: time.Now}
}

// FutureValue projects inv relative to the projector's clock.
func (p *Projector) FutureValue(inv Inputs, extraMonthly decimal.Decimal) decimal.Decimal {
	return FutureValue(inv, extraMonthly, p.Now())
}

// TotalProjectedWealth sums projections relative to the projector's clock.
func (p *Projector) TotalProjectedWealth(invs []Inputs, targetYear *int) decimal.Decimal {
	return TotalProjectedWealth(invs, targetYear, p.Now())
}

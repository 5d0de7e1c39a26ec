/*
formula.go - Per-category violation formulas

PURPOSE:
  Computes the monetary shortfall for one period under one statutory
  category. Pure function of its inputs; no state, no I/O.

FORMULAS (n = daysOrHours, rate = rateToUse unless noted):
  Basic Wage                max(minimum - actual, 0) x n
  Overtime Pay              (rate / 8) x 0.25|0.30 x n   (by sub-type)
  Night Shift Differential  (rate / 8) x 0.10 x n
  Special Day               rate x 0.30 x n
  Rest Day                  rate x 0.30 x n
  Holiday Pay               rate x n
  13th Month Pay            (rate x n) / 12, received deducted at category level

BREAKDOWNS:
  Exported reports print the arithmetic, not just the result, so every
  period result carries its terms: base, divisor, multiplier, count. A term
  renders as "395.00 / 8 x 0.30 x 10 = 148.13".
*/
package wage

import "github.com/shopspring/decimal"

// =============================================================================
// FORMULA COMPONENTS
// =============================================================================

var (
	eight  = decimal.NewFromInt(8)
	twelve = decimal.NewFromInt(12)

	multOvertimeNormal  = decimal.RequireFromString("0.25")
	multOvertimeRestDay = decimal.RequireFromString("0.30")
	multNightShift      = decimal.RequireFromString("0.10")
	multPremiumDay      = decimal.RequireFromString("0.30")
)

// Term is one multiplicative component of a period amount:
// Amount = Base / Divisor x Multiplier x Count.
type Term struct {
	Label      string
	Base       decimal.Decimal
	Divisor    decimal.Decimal
	Multiplier decimal.Decimal
	Count      decimal.Decimal
	Amount     decimal.Decimal
}

func newTerm(label string, base, divisor, multiplier, count decimal.Decimal) Term {
	return Term{
		Label:      label,
		Base:       base,
		Divisor:    divisor,
		Multiplier: multiplier,
		Count:      count,
		Amount:     base.Div(divisor).Mul(multiplier).Mul(count),
	}
}

// PeriodResult is the computed outcome for one period, with the
// intermediate values report rendering needs.
type PeriodResult struct {
	Period   Period
	Category Category
	Valid    bool

	Minimum    decimal.Decimal // statutory minimum resolved for the start date
	ActualRate decimal.Decimal // rate captured on the period
	RateUsed   decimal.Decimal // rate the formula multiplied off

	Terms  []Term
	Amount decimal.Decimal
}

// =============================================================================
// FORMULA ENGINE
// =============================================================================

// ComputePeriod evaluates one statutory category period. Periods failing
// the validity invariant come back with Valid=false and a zero amount.
// Custom periods go through ComputeCustomPeriod instead.
func ComputePeriod(c Category, p Period, resolver RateResolver) PeriodResult {
	result := PeriodResult{Period: p, Category: c, Amount: decimal.Zero}
	if c == CategoryCustom {
		return ComputeCustomPeriod(p, resolver)
	}
	if !p.Valid(c) {
		return result
	}

	start := p.Start()
	actual := parseDecimal(p.Rate)
	n := parseDecimal(p.DaysOrHours)

	result.Valid = true
	result.Minimum = resolver.MinimumOn(start)
	result.ActualRate = actual
	result.RateUsed = resolver.RateToUse(actual, start)

	one := decimal.NewFromInt(1)

	switch c {
	case CategoryBasicWage:
		// Underpayment of the basic wage compares minimum against actual
		// directly. Actual at or above minimum is a zero violation, never
		// a negative refund.
		shortfall := result.Minimum.Sub(actual)
		if shortfall.IsNegative() {
			shortfall = decimal.Zero
		}
		result.RateUsed = result.Minimum
		result.Terms = []Term{newTerm("wage differential", shortfall, one, one, n)}

	case CategoryOvertimePay:
		multiplier := multOvertimeRestDay
		if p.Type == SubTypeNormalDay {
			multiplier = multOvertimeNormal
		}
		result.Terms = []Term{newTerm("overtime premium", result.RateUsed, eight, multiplier, n)}

	case CategoryNightShiftDiff:
		result.Terms = []Term{newTerm("night shift differential", result.RateUsed, eight, multNightShift, n)}

	case CategorySpecialDay:
		result.Terms = []Term{newTerm("special day premium", result.RateUsed, one, multPremiumDay, n)}

	case CategoryRestDay:
		result.Terms = []Term{newTerm("rest day premium", result.RateUsed, one, multPremiumDay, n)}

	case CategoryHolidayPay:
		result.Terms = []Term{newTerm("holiday pay", result.RateUsed, one, one, n)}

	case CategoryThirteenthMonth:
		result.Terms = []Term{newTerm("13th month pay", result.RateUsed, twelve, one, n)}

	default:
		result.Valid = false
		return result
	}

	for _, term := range result.Terms {
		result.Amount = result.Amount.Add(term.Amount)
	}
	return result
}

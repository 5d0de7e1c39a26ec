/*
custom.go - Multiplier inference for the Custom category

PURPOSE:
  Custom periods carry a free-text compound label describing the violation,
  e.g. "Rest Day + Special (Non-Working) Day, Double" or "Holiday, OT,
  Night Shift". This file infers three premium multipliers from the label
  by lower-cased substring matching:

    day type     what the day itself pays (1.0 ordinary .. 3.9 double
                 holiday falling on a rest day)
    night shift  1.10 per hour worked between 10pm and 6am
    overtime     1.25 ordinary-day / 1.30 otherwise, per hour

  Total = rate x dayType x days
        + (rate/8) x nightShift x nightShiftHours
        + (rate/8) x overtime x overtimeHours

RULE TABLE, NOT CONTROL FLOW:
  The inference is an ordered table of (required substrings, multiplier)
  rules; the first rule whose substrings all appear wins. Ordering encodes
  precedence: compound labels match before their components, so
  "rest day, holiday, double" resolves to 3.9, never 3.0 or 2.6.

NO MATCH IS NOT AN ERROR:
  An unrecognized label yields all-zero multipliers and a zero total. The
  screen surfaces that as a zero amount next to the label.
*/
package wage

import (
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// RULE TABLE
// =============================================================================

// labelRule matches when every substring in all appears in the
// lower-cased label.
type labelRule struct {
	all        []string
	multiplier decimal.Decimal
}

func mult(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// dayTypeRules, in precedence order. Compound rules precede their
// components so that first-match-wins implements the documented hierarchy:
// ordinary day, then rest-day-plus-special combinations, then holiday
// combinations, then lone rest day / special day.
var dayTypeRules = []labelRule{
	{all: []string{"ordinary day"}, multiplier: mult("1.0")},

	{all: []string{"rest day", "special (non-working) day", "double"}, multiplier: mult("1.95")},
	{all: []string{"rest day", "special (non-working) day"}, multiplier: mult("1.5")},

	{all: []string{"holiday", "double", "rest day"}, multiplier: mult("3.9")},
	{all: []string{"holiday", "double"}, multiplier: mult("3.0")},
	{all: []string{"holiday", "rest day"}, multiplier: mult("2.6")},
	{all: []string{"holiday"}, multiplier: mult("2.0")},

	{all: []string{"rest day", "double"}, multiplier: mult("1.5")},
	{all: []string{"special (non-working) day", "double"}, multiplier: mult("1.5")},
	{all: []string{"rest day"}, multiplier: mult("1.3")},
	{all: []string{"special (non-working) day"}, multiplier: mult("1.3")},
}

var nightShiftRules = []labelRule{
	{all: []string{"night shift"}, multiplier: mult("1.10")},
}

var overtimeRules = []labelRule{
	{all: []string{"ot", "ordinary day"}, multiplier: mult("1.25")},
	{all: []string{"ot"}, multiplier: mult("1.30")},
}

func matchFirst(label string, rules []labelRule) decimal.Decimal {
	for _, r := range rules {
		matched := true
		for _, sub := range r.all {
			if !strings.Contains(label, sub) {
				matched = false
				break
			}
		}
		if matched {
			return r.multiplier
		}
	}
	return decimal.Zero
}

// =============================================================================
// CUSTOM RULE PARSER
// =============================================================================

// Multipliers is the inferred premium triple for a custom label.
type Multipliers struct {
	DayType    decimal.Decimal
	NightShift decimal.Decimal
	Overtime   decimal.Decimal
}

// IsZero reports whether no rule recognized any part of the label.
func (m Multipliers) IsZero() bool {
	return m.DayType.IsZero() && m.NightShift.IsZero() && m.Overtime.IsZero()
}

// InferMultipliers runs the rule tables over the lower-cased label.
func InferMultipliers(label string) Multipliers {
	lowered := strings.ToLower(label)
	return Multipliers{
		DayType:    matchFirst(lowered, dayTypeRules),
		NightShift: matchFirst(lowered, nightShiftRules),
		Overtime:   matchFirst(lowered, overtimeRules),
	}
}

// ComputeCustomPeriod evaluates one Custom period. The rate basis is
// max(entered rate, resolved minimum), exactly as for the statutory
// premium formulas.
func ComputeCustomPeriod(p Period, resolver RateResolver) PeriodResult {
	result := PeriodResult{Period: p, Category: CategoryCustom, Amount: decimal.Zero}
	if !p.Valid(CategoryCustom) {
		return result
	}

	start := p.Start()
	actual := parseDecimal(p.Rate)

	result.Valid = true
	result.Minimum = resolver.MinimumOn(start)
	result.ActualRate = actual
	result.RateUsed = resolver.RateToUse(actual, start)

	m := InferMultipliers(p.Type)
	one := decimal.NewFromInt(1)

	days := parseDecimal(p.DaysOrHours)
	if !m.DayType.IsZero() && !days.IsZero() {
		result.Terms = append(result.Terms,
			newTerm("day premium", result.RateUsed, one, m.DayType, days))
	}

	nsHours := parseDecimal(p.NightShiftHours)
	if !m.NightShift.IsZero() && !nsHours.IsZero() {
		result.Terms = append(result.Terms,
			newTerm("night shift", result.RateUsed, eight, m.NightShift, nsHours))
	}

	otHours := parseDecimal(p.OvertimeHours)
	if !m.Overtime.IsZero() && !otHours.IsZero() {
		result.Terms = append(result.Terms,
			newTerm("overtime", result.RateUsed, eight, m.Overtime, otHours))
	}

	for _, term := range result.Terms {
		result.Amount = result.Amount.Add(term.Amount)
	}
	return result
}

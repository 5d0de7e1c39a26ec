/*
orders.go - Effective-dated minimum wage resolution

PURPOSE:
  Wage orders form a sorted effective-dated timeline: each order carries the
  minimum daily rates that apply from its date until the next order takes
  effect. This file answers "what was the statutory minimum on this date,
  for this establishment size?" and "which rate governs the formula?".

KEY RULES:
  - The applicable order for a date is the latest order whose effective
    date is on or before it.
  - Dates before the earliest order have no applicable minimum: resolve
    to zero, not an error.
  - A period spanning a rate change resolves on its START date only. Wage
    orders are not re-applied mid-period. This mirrors how inspectors fill
    the forms today and is kept deliberately.
  - rateToUse = max(period rate, resolved minimum): whichever is higher
    governs the premium formulas, because they quantify the shortfall
    against what should have been paid.
*/
package wage

import (
	"sort"

	"github.com/shopspring/decimal"
)

// =============================================================================
// WAGE ORDER TABLE
// =============================================================================

// WageOrderTable is an immutable, date-sorted registry of wage orders.
type WageOrderTable struct {
	orders []WageOrder // ascending by effective date
}

// NewWageOrderTable copies and sorts the given orders by effective date.
// Input order does not matter; storage may return them however it likes.
func NewWageOrderTable(orders []WageOrder) WageOrderTable {
	sorted := make([]WageOrder, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return WageOrderTable{orders: sorted}
}

// OrderFor returns the latest order effective on or before the date.
// The boolean is false when the date precedes the whole timeline.
func (t WageOrderTable) OrderFor(d Date) (WageOrder, bool) {
	for i := len(t.orders) - 1; i >= 0; i-- {
		if t.orders[i].Date.BeforeOrEqual(d) {
			return t.orders[i], true
		}
	}
	return WageOrder{}, false
}

// MinimumRate resolves the statutory minimum daily rate for a date and
// establishment size. Dates before the earliest order resolve to zero.
func (t WageOrderTable) MinimumRate(d Date, size Size) decimal.Decimal {
	order, ok := t.OrderFor(d)
	if !ok {
		return decimal.Zero
	}
	return order.RateFor(size)
}

// Orders returns the sorted timeline (for listings and exports).
func (t WageOrderTable) Orders() []WageOrder {
	out := make([]WageOrder, len(t.orders))
	copy(out, t.orders)
	return out
}

// =============================================================================
// RATE RESOLVER
// =============================================================================

// RateResolver binds a wage-order timeline to one establishment's size.
type RateResolver struct {
	Table WageOrderTable
	Size  Size
}

// MinimumOn returns the statutory minimum daily rate on the given date.
func (r RateResolver) MinimumOn(d Date) decimal.Decimal {
	return r.Table.MinimumRate(d, r.Size)
}

// MinimumForPeriod resolves the minimum for a date range. Resolution uses
// the start date only, even when a new order takes effect before the end
// date (documented source behavior).
func (r RateResolver) MinimumForPeriod(start, end Date) decimal.Decimal {
	return r.MinimumOn(start)
}

// RateToUse returns the rate that governs a premium formula: the higher of
// the employee's actual rate and the resolved minimum.
func (r RateResolver) RateToUse(actual decimal.Decimal, d Date) decimal.Decimal {
	minimum := r.MinimumOn(d)
	if actual.GreaterThan(minimum) {
		return actual
	}
	return minimum
}

// BelowMinimum reports whether the actual rate falls short of the minimum
// applicable on the date.
func (r RateResolver) BelowMinimum(actual decimal.Decimal, d Date) bool {
	return actual.LessThan(r.MinimumOn(d))
}

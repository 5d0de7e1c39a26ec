/*
aggregate.go - Subtotals, received deductions, and grand totals

PURPOSE:
  Rolls per-period results up into the figures screens and reports show:
  per-category subtotals, received-amount deductions, the employee grand
  total, and the establishment-wide roll-up. Also the home of Engine, the
  single entry point every caller computes through.

RECEIVED AMOUNTS:
  13th Month Pay and Custom underpayment record what the employee already
  got. The deduction happens ONCE per category, after summing the periods,
  and the result may go negative: a true overpayment, displayed as-is.
*/
package wage

import "github.com/shopspring/decimal"

// =============================================================================
// ENGINE - The canonical computation entry point
// =============================================================================

// Engine binds the snapshots a computation needs. It is immutable once
// built; callers rebuild it when wage orders or holidays change.
type Engine struct {
	Table    WageOrderTable
	Calendar Calendar
}

func NewEngine(orders []WageOrder, holidays []Holiday) *Engine {
	return &Engine{
		Table:    NewWageOrderTable(orders),
		Calendar: NewCalendar(holidays),
	}
}

// Resolver returns the rate resolver for an establishment size.
func (e *Engine) Resolver(size Size) RateResolver {
	return RateResolver{Table: e.Table, Size: size}
}

// Classifier returns the day classifier for an employee's work week.
func (e *Engine) Classifier(emp Employee) DayClassifier {
	return DayClassifier{Week: WorkWeekFor(emp), Calendar: e.Calendar}
}

// SuggestCount returns the auto-fill daysOrHours suggestion for a period's
// date range. Zero when the range is blank, inverted, or the category has
// no derivable count.
func (e *Engine) SuggestCount(emp Employee, c Category, startDate, endDate string) int {
	start, okStart := ParseDate(startDate)
	end, okEnd := ParseDate(endDate)
	if !okStart || !okEnd {
		return 0
	}
	return e.Classifier(emp).Suggest(start, end, c)
}

// =============================================================================
// CATEGORY AND EMPLOYEE RESULTS
// =============================================================================

// CategoryResult carries one category's periods and totals.
type CategoryResult struct {
	Category Category
	Periods  []PeriodResult

	// Subtotal is the sum of valid period amounts, before any deduction.
	Subtotal decimal.Decimal

	// Received is the amount already paid, deducted once from Subtotal.
	// Zero for categories that do not track received amounts.
	Received decimal.Decimal

	// Total = Subtotal - Received. May be negative (overpayment).
	Total decimal.Decimal
}

// ComputeCategory evaluates every period under one category and applies
// the received deduction where the category tracks one.
func (e *Engine) ComputeCategory(c Category, size Size, values CategoryValues) CategoryResult {
	resolver := e.Resolver(size)
	result := CategoryResult{
		Category: c,
		Subtotal: decimal.Zero,
		Received: decimal.Zero,
	}

	for _, p := range values.Periods {
		pr := ComputePeriod(c, p, resolver)
		result.Periods = append(result.Periods, pr)
		if pr.Valid {
			result.Subtotal = result.Subtotal.Add(pr.Amount)
		}
	}

	if c.UsesReceived() {
		result.Received = parseDecimal(values.Received)
	}
	result.Total = result.Subtotal.Sub(result.Received)
	return result
}

// Summary is the full computed outcome for one employee.
type Summary struct {
	Employee      Employee
	Establishment Establishment
	Categories    []CategoryResult // in Categories order
	GrandTotal    decimal.Decimal
}

// Summarize computes every category of the employee's violation document.
func (e *Engine) Summarize(emp Employee, est Establishment, values ViolationValues) Summary {
	summary := Summary{
		Employee:      emp,
		Establishment: est,
		GrandTotal:    decimal.Zero,
	}
	for _, c := range Categories {
		cr := e.ComputeCategory(c, est.Size, values[c])
		summary.Categories = append(summary.Categories, cr)
		summary.GrandTotal = summary.GrandTotal.Add(cr.Total)
	}
	return summary
}

// HasReportableViolation reports whether the employee appears in exported
// reports: at least one category holds a valid period with a nonzero
// contribution.
func (s Summary) HasReportableViolation() bool {
	for _, cr := range s.Categories {
		for _, pr := range cr.Periods {
			if pr.Valid && !pr.Amount.IsZero() {
				return true
			}
		}
	}
	return false
}

// Category returns the result for one category (zero value when absent).
func (s Summary) Category(c Category) CategoryResult {
	for _, cr := range s.Categories {
		if cr.Category == c {
			return cr
		}
	}
	return CategoryResult{Category: c, Subtotal: decimal.Zero, Received: decimal.Zero, Total: decimal.Zero}
}

// =============================================================================
// ESTABLISHMENT ROLL-UP
// =============================================================================

// EstablishmentSummary aggregates every employee of an establishment.
type EstablishmentSummary struct {
	Establishment Establishment
	Employees     []Summary
	GrandTotal    decimal.Decimal
}

// SummarizeEstablishment computes each employee's summary and the
// establishment grand total. Documents are looked up by employee ID;
// employees without a document contribute nothing.
func (e *Engine) SummarizeEstablishment(est Establishment, employees []Employee, docs map[string]ViolationValues) EstablishmentSummary {
	out := EstablishmentSummary{
		Establishment: est,
		GrandTotal:    decimal.Zero,
	}
	for _, emp := range employees {
		values, ok := docs[emp.ID]
		if !ok {
			continue
		}
		s := e.Summarize(emp, est, values)
		out.Employees = append(out.Employees, s)
		out.GrandTotal = out.GrandTotal.Add(s.GrandTotal)
	}
	return out
}

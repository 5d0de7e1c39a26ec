/*
Package wage computes labor-standards wage-violation amounts for employees
of a covered establishment.

PURPOSE:
  This package is the canonical computation engine. Given an employee, the
  establishment that employs them, a snapshot of government wage orders and
  holidays, and the violation periods entered for the employee, it computes
  the monetary shortfall per period, per category, and in total. Every
  screen and every exported report consumes this one engine; there are no
  per-screen copies of the arithmetic.

KEY CONCEPTS IN THIS FILE (types.go):
  - Date: a day-granularity point in time (all wage math is per-day)
  - Category: the seven statutory violation categories plus Custom
  - Period: one date range + quantity + rate, as typed by the user
  - ViolationValues: the per-employee JSON document of all periods

DESIGN PRINCIPLES:
  1. Purity: the engine is stateless and performs no I/O. Callers hand it
     immutable snapshots; concurrent use needs no locking.
  2. Precision: decimal.Decimal everywhere, never float64 money.
  3. Permissiveness: half-filled input contributes zero, it never errors.
     Users type into these periods live; the engine recomputes on every
     keystroke and must tolerate anything.

SEE ALSO:
  - orders.go: effective-dated minimum wage resolution
  - calendar.go: holiday calendar and day classification
  - formula.go: per-category amount formulas
  - custom.go: free-text multiplier inference for the Custom category
  - aggregate.go: subtotals, received deductions, grand totals
*/
package wage

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// DATE - Day-granularity time point
// =============================================================================

// DateLayout is the wire format for all dates in violation documents.
const DateLayout = "2006-01-02"

type Date struct {
	Time time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a wire-format date. The boolean reports whether the
// input was a usable date; the zero Date is returned otherwise.
func ParseDate(s string) (Date, bool) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, false
	}
	return Date{Time: t}, true
}

func (d Date) Before(other Date) bool        { return d.normalize().Before(other.normalize()) }
func (d Date) After(other Date) bool         { return d.normalize().After(other.normalize()) }
func (d Date) Equal(other Date) bool         { return d.normalize().Equal(other.normalize()) }
func (d Date) BeforeOrEqual(other Date) bool { return d.Before(other) || d.Equal(other) }
func (d Date) AfterOrEqual(other Date) bool  { return d.After(other) || d.Equal(other) }
func (d Date) AddDays(n int) Date            { return Date{Time: d.Time.AddDate(0, 0, n)} }
func (d Date) Weekday() time.Weekday         { return d.Time.Weekday() }
func (d Date) IsZero() bool                  { return d.Time.IsZero() }
func (d Date) String() string                { return d.Time.Format(DateLayout) }

func (d Date) normalize() time.Time {
	return time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), 0, 0, 0, 0, time.UTC)
}

// =============================================================================
// ESTABLISHMENT SIZE - Which wage-order column applies
// =============================================================================

// Size selects the wage-order rate column. Wage orders publish two minimum
// daily rates: one for establishments employing fewer than ten workers and
// one for those employing ten or more.
type Size string

const (
	SizeLessThanTen Size = "less_than_ten"
	SizeTenOrMore   Size = "ten_or_more"
)

// =============================================================================
// VIOLATION CATEGORIES
// =============================================================================

type Category string

const (
	CategoryBasicWage       Category = "Basic Wage"
	CategoryOvertimePay     Category = "Overtime Pay"
	CategoryNightShiftDiff  Category = "Night Shift Differential"
	CategorySpecialDay      Category = "Special Day"
	CategoryRestDay         Category = "Rest Day"
	CategoryHolidayPay      Category = "Holiday Pay"
	CategoryThirteenthMonth Category = "13th Month Pay"
	CategoryCustom          Category = "Custom"
)

// Categories lists every category in the order summaries and reports
// present them.
var Categories = []Category{
	CategoryBasicWage,
	CategoryOvertimePay,
	CategoryNightShiftDiff,
	CategorySpecialDay,
	CategoryRestDay,
	CategoryHolidayPay,
	CategoryThirteenthMonth,
	CategoryCustom,
}

// CountsHours reports whether the category's daysOrHours field holds hours
// rather than days.
func (c Category) CountsHours() bool {
	return c == CategoryOvertimePay || c == CategoryNightShiftDiff
}

// UsesSubType reports whether the category's type field participates in the
// formula (Overtime Pay: "Normal Day" vs "Rest Day"; Custom: the free-text
// compound label).
func (c Category) UsesSubType() bool {
	return c == CategoryOvertimePay || c == CategoryCustom
}

// UsesReceived reports whether an already-received amount is deducted from
// the category total.
func (c Category) UsesReceived() bool {
	return c == CategoryThirteenthMonth || c == CategoryCustom
}

// Overtime sub-types.
const (
	SubTypeNormalDay = "Normal Day"
	SubTypeRestDay   = "Rest Day"
)

// =============================================================================
// DOMAIN ENTITIES
// =============================================================================

type Establishment struct {
	ID   string
	Name string
	Size Size
}

type Employee struct {
	ID              string
	EstablishmentID string
	FirstName       string
	LastName        string

	// Rate is the actual daily basic wage currently on record. Periods
	// capture their own copy of the rate at creation time; editing this
	// field does not rewrite existing periods.
	Rate decimal.Decimal

	// StartDay/EndDay delimit the contractual work week, inclusive,
	// wrapping through the 7-day cycle ("Saturday".."Wednesday" is legal).
	StartDay string
	EndDay   string
}

func (e Employee) FullName() string {
	if e.FirstName == "" {
		return e.LastName
	}
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

type WageOrder struct {
	ID          string
	Name        string // e.g. "RB-MIMAROPA-12"
	Date        Date   // effective date, inclusive
	LessThanTen decimal.Decimal
	TenOrMore   decimal.Decimal
}

// RateFor returns the column applicable to the establishment size.
func (w WageOrder) RateFor(size Size) decimal.Decimal {
	if size == SizeTenOrMore {
		return w.TenOrMore
	}
	return w.LessThanTen
}

type HolidayType string

const (
	HolidayRegular HolidayType = "Regular Holiday"
	HolidaySpecial HolidayType = "Special (Non-Working) Holiday"
)

type Holiday struct {
	ID   string
	Name string
	Date Date
	Type HolidayType
}

// =============================================================================
// PERIOD - One violation instance, exactly as typed
// =============================================================================

// Period is the wire representation of a single violation period. Fields are
// strings because they mirror form inputs: a period under construction holds
// empty strings and must round-trip through storage untouched.
type Period struct {
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	DaysOrHours string `json:"daysOrHours"`
	Rate        string `json:"rate"`
	Type        string `json:"type,omitempty"`
	Received    string `json:"received,omitempty"`

	// Custom-category hour counts for the night-shift and overtime terms.
	NightShiftHours string `json:"nightShiftHours,omitempty"`
	OvertimeHours   string `json:"overtimeHours,omitempty"`
}

// TemplatePeriod returns the blank period a screen starts from, with the
// employee's current rate copied in.
func TemplatePeriod(rate decimal.Decimal) Period {
	return Period{Rate: rate.String()}
}

// Valid reports whether the period carries every field the category's
// formula reads. Invalid periods contribute zero; they are never an error.
func (p Period) Valid(c Category) bool {
	if _, ok := ParseDate(p.StartDate); !ok {
		return false
	}
	if _, ok := ParseDate(p.EndDate); !ok {
		return false
	}
	if p.DaysOrHours == "" || p.Rate == "" {
		return false
	}
	if c.UsesSubType() && p.Type == "" {
		return false
	}
	return true
}

// Start returns the parsed start date. Call Valid first; the zero Date is
// returned for blank or malformed input.
func (p Period) Start() Date {
	d, _ := ParseDate(p.StartDate)
	return d
}

func (p Period) End() Date {
	d, _ := ParseDate(p.EndDate)
	return d
}

// =============================================================================
// VIOLATION VALUES - The per-employee document
// =============================================================================

// CategoryValues holds one category's entry in the violation document.
// Received is meaningful for 13th Month Pay and Custom underpayment only;
// it is deducted once from the category subtotal, after summation.
type CategoryValues struct {
	Periods  []Period `json:"periods"`
	Received string   `json:"received,omitempty"`
}

// ViolationValues maps each category to its periods. It serializes as one
// JSON document per employee and is replaced wholesale in storage, never
// patched field by field.
type ViolationValues map[Category]CategoryValues

// NewViolationValues returns a document with one template period per
// category, matching what a freshly opened violations screen shows.
func NewViolationValues(rate decimal.Decimal) ViolationValues {
	v := make(ViolationValues, len(Categories))
	for _, c := range Categories {
		v[c] = CategoryValues{Periods: []Period{TemplatePeriod(rate)}}
	}
	return v
}

// =============================================================================
// NUMERIC PARSING
// =============================================================================

// parseDecimal converts user input to a decimal, treating anything
// unparsable as zero. Half-typed numbers degrade to a zero contribution
// rather than an error.
func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

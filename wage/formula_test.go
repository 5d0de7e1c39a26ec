package wage_test

import (
	"testing"

	"github.com/mosesalcantara/wagecalc/wage"
)

// =============================================================================
// STATUTORY FORMULA TESTS
// =============================================================================
// Timeline for all cases: mimaropaOrders(), ten-or-more column
// (355 until 2023-12-07, then 395, then 430 from 2024-12-23).

func TestBasicWage_UnderpaymentTimesDays(t *testing.T) {
	// GIVEN: January 2024 period, actual 380 against the 395 minimum
	// WHEN: computing Basic Wage over 26 days
	// THEN: (395 - 380) x 26 = 390.00

	p := wage.Period{
		StartDate:   "2024-01-01",
		EndDate:     "2024-01-31",
		DaysOrHours: "26",
		Rate:        "380",
	}
	result := wage.ComputePeriod(wage.CategoryBasicWage, p, tenOrMoreResolver())

	if !result.Valid {
		t.Fatal("period should be valid")
	}
	if !result.Minimum.Equal(dec("395")) {
		t.Errorf("resolved minimum = %s, want 395", result.Minimum)
	}
	if !result.Amount.Equal(dec("390")) {
		t.Errorf("amount = %s, want 390", result.Amount)
	}
}

func TestBasicWage_ActualAtOrAboveMinimum_ZeroNotNegative(t *testing.T) {
	for _, rate := range []string{"395", "500"} {
		p := wage.Period{
			StartDate:   "2024-01-01",
			EndDate:     "2024-01-31",
			DaysOrHours: "26",
			Rate:        rate,
		}
		result := wage.ComputePeriod(wage.CategoryBasicWage, p, tenOrMoreResolver())

		if !result.Amount.IsZero() {
			t.Errorf("rate %s: amount = %s, want exactly 0", rate, result.Amount)
		}
		if result.Amount.IsNegative() {
			t.Errorf("rate %s: basic wage must never go negative", rate)
		}
	}
}

func TestOvertime_RestDaySubType(t *testing.T) {
	// GIVEN: rate 380, below the 395 minimum, so the minimum governs
	// WHEN: computing Overtime Pay, sub-type "Rest Day", over 10 hours
	// THEN: (395/8) x 0.30 x 10 = 148.125

	p := wage.Period{
		StartDate:   "2024-01-01",
		EndDate:     "2024-01-31",
		DaysOrHours: "10",
		Rate:        "380",
		Type:        wage.SubTypeRestDay,
	}
	result := wage.ComputePeriod(wage.CategoryOvertimePay, p, tenOrMoreResolver())

	if !result.RateUsed.Equal(dec("395")) {
		t.Errorf("rateUsed = %s, want 395", result.RateUsed)
	}
	if !result.Amount.Equal(dec("148.125")) {
		t.Errorf("amount = %s, want 148.125", result.Amount)
	}
}

func TestOvertime_NormalDaySubType(t *testing.T) {
	p := wage.Period{
		StartDate:   "2024-01-01",
		EndDate:     "2024-01-31",
		DaysOrHours: "8",
		Rate:        "400",
		Type:        wage.SubTypeNormalDay,
	}
	result := wage.ComputePeriod(wage.CategoryOvertimePay, p, tenOrMoreResolver())

	// (400/8) x 0.25 x 8 = 100
	if !result.Amount.Equal(dec("100")) {
		t.Errorf("amount = %s, want 100", result.Amount)
	}
}

func TestNightShiftDifferential(t *testing.T) {
	p := wage.Period{
		StartDate:   "2024-01-01",
		EndDate:     "2024-01-31",
		DaysOrHours: "40",
		Rate:        "400",
	}
	result := wage.ComputePeriod(wage.CategoryNightShiftDiff, p, tenOrMoreResolver())

	// (400/8) x 0.10 x 40 = 200
	if !result.Amount.Equal(dec("200")) {
		t.Errorf("amount = %s, want 200", result.Amount)
	}
}

func TestSpecialDayAndRestDay_ThirtyPercentPremium(t *testing.T) {
	p := wage.Period{
		StartDate:   "2024-01-01",
		EndDate:     "2024-01-31",
		DaysOrHours: "3",
		Rate:        "400",
	}

	for _, c := range []wage.Category{wage.CategorySpecialDay, wage.CategoryRestDay} {
		result := wage.ComputePeriod(c, p, tenOrMoreResolver())
		// 400 x 0.30 x 3 = 360
		if !result.Amount.Equal(dec("360")) {
			t.Errorf("%s: amount = %s, want 360", c, result.Amount)
		}
	}
}

func TestHolidayPay_FullRatePerDay(t *testing.T) {
	p := wage.Period{
		StartDate:   "2024-01-01",
		EndDate:     "2024-12-31",
		DaysOrHours: "4",
		Rate:        "380", // minimum 395 governs
	}
	result := wage.ComputePeriod(wage.CategoryHolidayPay, p, tenOrMoreResolver())

	// 395 x 4 = 1580
	if !result.Amount.Equal(dec("1580")) {
		t.Errorf("amount = %s, want 1580", result.Amount)
	}
}

func TestThirteenthMonth_TwelfthOfAnnualBasic(t *testing.T) {
	p := wage.Period{
		StartDate:   "2024-01-01",
		EndDate:     "2024-12-31",
		DaysOrHours: "300",
		Rate:        "400",
	}
	result := wage.ComputePeriod(wage.CategoryThirteenthMonth, p, tenOrMoreResolver())

	// (400 x 300) / 12 = 10000
	if !result.Amount.Equal(dec("10000")) {
		t.Errorf("amount = %s, want 10000", result.Amount)
	}
}

// =============================================================================
// DEGRADED INPUT TESTS
// =============================================================================

func TestComputePeriod_InvalidPeriodContributesZero(t *testing.T) {
	cases := map[string]wage.Period{
		"empty":            {},
		"missing end":      {StartDate: "2024-01-01", DaysOrHours: "26", Rate: "380"},
		"missing count":    {StartDate: "2024-01-01", EndDate: "2024-01-31", Rate: "380"},
		"missing rate":     {StartDate: "2024-01-01", EndDate: "2024-01-31", DaysOrHours: "26"},
		"malformed date":   {StartDate: "January 1", EndDate: "2024-01-31", DaysOrHours: "26", Rate: "380"},
	}

	for name, p := range cases {
		result := wage.ComputePeriod(wage.CategoryBasicWage, p, tenOrMoreResolver())
		if result.Valid {
			t.Errorf("%s: period should be invalid", name)
		}
		if !result.Amount.IsZero() {
			t.Errorf("%s: amount = %s, want 0", name, result.Amount)
		}
	}
}

func TestComputePeriod_OvertimeRequiresSubType(t *testing.T) {
	p := wage.Period{
		StartDate:   "2024-01-01",
		EndDate:     "2024-01-31",
		DaysOrHours: "10",
		Rate:        "380",
		// Type intentionally empty
	}
	result := wage.ComputePeriod(wage.CategoryOvertimePay, p, tenOrMoreResolver())
	if result.Valid {
		t.Error("overtime period without a sub-type should be invalid")
	}
}

func TestComputePeriod_UnparsableCountDefaultsToZero(t *testing.T) {
	p := wage.Period{
		StartDate:   "2024-01-01",
		EndDate:     "2024-01-31",
		DaysOrHours: "twenty-six",
		Rate:        "380",
	}
	result := wage.ComputePeriod(wage.CategoryBasicWage, p, tenOrMoreResolver())

	if !result.Valid {
		t.Error("non-empty fields satisfy the validity invariant")
	}
	if !result.Amount.IsZero() {
		t.Errorf("amount = %s, want 0 (count degraded to zero)", result.Amount)
	}
}

func TestComputePeriod_DateBeforeTimeline_ZeroMinimum(t *testing.T) {
	// GIVEN: a period starting before the first wage order
	// WHEN: computing Basic Wage
	// THEN: minimum resolves to 0, shortfall clamps at 0, no error

	p := wage.Period{
		StartDate:   "2021-01-01",
		EndDate:     "2021-01-31",
		DaysOrHours: "26",
		Rate:        "300",
	}
	result := wage.ComputePeriod(wage.CategoryBasicWage, p, tenOrMoreResolver())

	if !result.Minimum.IsZero() {
		t.Errorf("minimum = %s, want 0", result.Minimum)
	}
	if !result.Amount.IsZero() {
		t.Errorf("amount = %s, want 0", result.Amount)
	}
}

func TestComputePeriod_BreakdownCarriesFormulaComponents(t *testing.T) {
	p := wage.Period{
		StartDate:   "2024-01-01",
		EndDate:     "2024-01-31",
		DaysOrHours: "10",
		Rate:        "380",
		Type:        wage.SubTypeRestDay,
	}
	result := wage.ComputePeriod(wage.CategoryOvertimePay, p, tenOrMoreResolver())

	if len(result.Terms) != 1 {
		t.Fatalf("expected 1 term, got %d", len(result.Terms))
	}
	term := result.Terms[0]
	if !term.Base.Equal(dec("395")) || !term.Divisor.Equal(dec("8")) ||
		!term.Multiplier.Equal(dec("0.30")) || !term.Count.Equal(dec("10")) {
		t.Errorf("term components = %s/%s x %s x %s, want 395/8 x 0.30 x 10",
			term.Base, term.Divisor, term.Multiplier, term.Count)
	}
}

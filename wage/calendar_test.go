package wage_test

import (
	"testing"
	"time"

	"github.com/mosesalcantara/wagecalc/wage"
	"github.com/stretchr/testify/assert"
)

func januaryHolidays() []wage.Holiday {
	return []wage.Holiday{
		{ID: "h1", Name: "New Year's Day", Date: wage.NewDate(2024, time.January, 1), Type: wage.HolidayRegular},
		{ID: "h2", Name: "Chinese New Year", Date: wage.NewDate(2024, time.February, 10), Type: wage.HolidaySpecial},
	}
}

func classifier(holidays []wage.Holiday) wage.DayClassifier {
	return wage.DayClassifier{
		Week:     wage.NewWorkWeek("Monday", "Friday"),
		Calendar: wage.NewCalendar(holidays),
	}
}

// =============================================================================
// CALENDAR LOOKUP TESTS
// =============================================================================

func TestCalendar_TypeOn(t *testing.T) {
	cal := wage.NewCalendar(januaryHolidays())

	typ, ok := cal.TypeOn(wage.NewDate(2024, time.January, 1))
	assert.True(t, ok)
	assert.Equal(t, wage.HolidayRegular, typ)

	_, ok = cal.TypeOn(wage.NewDate(2024, time.January, 2))
	assert.False(t, ok)
}

func TestCalendar_DuplicateDateKeepsFirst(t *testing.T) {
	cal := wage.NewCalendar([]wage.Holiday{
		{ID: "h1", Name: "First", Date: wage.NewDate(2024, time.May, 1), Type: wage.HolidayRegular},
		{ID: "h2", Name: "Second", Date: wage.NewDate(2024, time.May, 1), Type: wage.HolidaySpecial},
	})

	h, ok := cal.HolidayOn(wage.NewDate(2024, time.May, 1))
	assert.True(t, ok)
	assert.Equal(t, "First", h.Name)
}

// =============================================================================
// DAY CLASSIFICATION TESTS
// =============================================================================

func TestClassify_WeekWithTwoRestDays(t *testing.T) {
	// GIVEN: employee works Monday..Friday
	// WHEN: classifying 2024-01-01 (Mon) .. 2024-01-07 (Sun)
	// THEN: 5 working days, 2 rest days (Sat + Sun)

	counts := classifier(nil).Count(wage.NewDate(2024, time.January, 1), wage.NewDate(2024, time.January, 7))

	assert.Equal(t, 7, counts.Total)
	assert.Equal(t, 5, counts.Working)
	assert.Equal(t, 2, counts.Rest)
}

func TestClassify_CountsHolidaysByType(t *testing.T) {
	counts := classifier(januaryHolidays()).Count(
		wage.NewDate(2024, time.January, 1), wage.NewDate(2024, time.February, 29))

	assert.Equal(t, 1, counts.Regular) // Jan 1
	assert.Equal(t, 1, counts.Special) // Feb 10
}

func TestClassify_InvertedRangeYieldsZeroCounts(t *testing.T) {
	counts := classifier(januaryHolidays()).Count(
		wage.NewDate(2024, time.March, 31), wage.NewDate(2024, time.March, 1))

	assert.Equal(t, wage.DayCounts{}, counts)
}

func TestClassify_ZeroDatesYieldZeroCounts(t *testing.T) {
	counts := classifier(nil).Count(wage.Date{}, wage.Date{})
	assert.Equal(t, wage.DayCounts{}, counts)
}

func TestClassify_SingleDayRange(t *testing.T) {
	counts := classifier(nil).Count(wage.NewDate(2024, time.January, 6), wage.NewDate(2024, time.January, 6))

	assert.Equal(t, 1, counts.Total)
	assert.Equal(t, 1, counts.Rest) // Saturday
}

// =============================================================================
// SUGGESTION TESTS
// =============================================================================

func TestSuggest_PerCategoryMapping(t *testing.T) {
	dc := classifier(januaryHolidays())
	start := wage.NewDate(2024, time.January, 1)
	end := wage.NewDate(2024, time.February, 29) // 60 days: 44 weekdays, 16 weekend days

	assert.Equal(t, 44, dc.Suggest(start, end, wage.CategoryBasicWage))
	assert.Equal(t, 44, dc.Suggest(start, end, wage.CategoryThirteenthMonth))
	assert.Equal(t, 16, dc.Suggest(start, end, wage.CategoryRestDay))
	assert.Equal(t, 1, dc.Suggest(start, end, wage.CategorySpecialDay))
	assert.Equal(t, 1, dc.Suggest(start, end, wage.CategoryHolidayPay))

	// Hour-based categories and Custom have no derivable suggestion.
	assert.Equal(t, 0, dc.Suggest(start, end, wage.CategoryOvertimePay))
	assert.Equal(t, 0, dc.Suggest(start, end, wage.CategoryNightShiftDiff))
	assert.Equal(t, 0, dc.Suggest(start, end, wage.CategoryCustom))
}

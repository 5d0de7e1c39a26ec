/*
calendar.go - Holiday calendar and day classification

PURPOSE:
  Classifies every date in a range as working day or rest day (per the
  employee's work week) and as regular holiday, special non-working day, or
  neither (per the holiday calendar). The resulting counts drive the
  auto-fill suggestion for a period's daysOrHours field.

SUGGESTION, NOT VALUE OF RECORD:
  Classification output is offered to the user as an editable suggestion.
  The daysOrHours the user actually entered is what the formula engine
  reads; the classifier never force-writes it.

EDGE CASES:
  - At most one holiday per date; later duplicates in the input are ignored.
  - An inverted range (end before start) yields zero counts, not an error
    and not an endless walk.
*/
package wage

// =============================================================================
// HOLIDAY CALENDAR
// =============================================================================

// Calendar answers holiday lookups by exact date.
type Calendar struct {
	byDate map[string]Holiday
}

func NewCalendar(holidays []Holiday) Calendar {
	byDate := make(map[string]Holiday, len(holidays))
	for _, h := range holidays {
		key := h.Date.String()
		if _, exists := byDate[key]; exists {
			continue
		}
		byDate[key] = h
	}
	return Calendar{byDate: byDate}
}

// HolidayOn returns the holiday falling on the date, if any.
func (c Calendar) HolidayOn(d Date) (Holiday, bool) {
	h, ok := c.byDate[d.String()]
	return h, ok
}

// TypeOn returns the holiday type for the date; the boolean is false for
// ordinary dates.
func (c Calendar) TypeOn(d Date) (HolidayType, bool) {
	h, ok := c.byDate[d.String()]
	return h.Type, ok
}

// =============================================================================
// DAY CLASSIFIER
// =============================================================================

// DayCounts is the classification of a date range.
type DayCounts struct {
	Total   int // calendar days in the range
	Working int // dates whose weekday is in the work week
	Rest    int // Total - Working
	Special int // dates carrying a Special (Non-Working) Holiday
	Regular int // dates carrying a Regular Holiday
}

// DayClassifier combines a work week with a holiday calendar.
type DayClassifier struct {
	Week     WorkWeek
	Calendar Calendar
}

// Count classifies every date in [start, end] inclusive. Inverted or
// zero-valued ranges return zero counts.
func (dc DayClassifier) Count(start, end Date) DayCounts {
	var counts DayCounts
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return counts
	}

	for d := start; d.BeforeOrEqual(end); d = d.AddDays(1) {
		counts.Total++
		if dc.Week.IsWorkingDay(d) {
			counts.Working++
		} else {
			counts.Rest++
		}
		switch t, ok := dc.Calendar.TypeOn(d); {
		case ok && t == HolidaySpecial:
			counts.Special++
		case ok && t == HolidayRegular:
			counts.Regular++
		}
	}
	return counts
}

// Suggest returns the auto-fill day count for a category over a range:
// working days for Basic Wage and 13th Month Pay, rest days for Rest Day,
// special non-working days for Special Day, regular holidays for Holiday
// Pay. Hour-based categories and Custom have no derivable count.
func (dc DayClassifier) Suggest(start, end Date, c Category) int {
	counts := dc.Count(start, end)
	switch c {
	case CategoryBasicWage, CategoryThirteenthMonth:
		return counts.Working
	case CategoryRestDay:
		return counts.Rest
	case CategorySpecialDay:
		return counts.Special
	case CategoryHolidayPay:
		return counts.Regular
	default:
		return 0
	}
}

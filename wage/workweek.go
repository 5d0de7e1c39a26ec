/*
workweek.go - Contractual work-week derivation

PURPOSE:
  An employee's work week is declared as two weekday names, start and end,
  inclusive, wrapping through the 7-day cycle. "Monday".."Friday" is the
  usual five-day week; "Saturday".."Wednesday" wraps through Sunday. Any
  weekday outside the derived set is a rest day.
*/
package wage

import "time"

// =============================================================================
// WORK WEEK RESOLVER
// =============================================================================

var weekdayNames = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

// WorkWeek is the set of weekdays an employee is contracted to work.
type WorkWeek struct {
	working [7]bool
}

// NewWorkWeek walks forward from startDay through the wrapping 7-day cycle
// until endDay, inclusive. Unknown weekday names yield an empty set: every
// day classifies as a rest day until the employee record is fixed.
func NewWorkWeek(startDay, endDay string) WorkWeek {
	start, okStart := weekdayNames[startDay]
	end, okEnd := weekdayNames[endDay]

	var w WorkWeek
	if !okStart || !okEnd {
		return w
	}

	for d := start; ; d = (d + 1) % 7 {
		w.working[d] = true
		if d == end {
			break
		}
	}
	return w
}

// WorkWeekFor derives the work week from an employee record.
func WorkWeekFor(e Employee) WorkWeek {
	return NewWorkWeek(e.StartDay, e.EndDay)
}

func (w WorkWeek) IsWorkingDay(d Date) bool { return w.working[d.Weekday()] }
func (w WorkWeek) IsRestDay(d Date) bool    { return !w.working[d.Weekday()] }

// Weekdays returns the working weekdays in Sunday-first order.
func (w WorkWeek) Weekdays() []time.Weekday {
	var days []time.Weekday
	for d := time.Sunday; d <= time.Saturday; d++ {
		if w.working[d] {
			days = append(days, d)
		}
	}
	return days
}

// Len returns how many weekdays are working days.
func (w WorkWeek) Len() int {
	n := 0
	for _, working := range w.working {
		if working {
			n++
		}
	}
	return n
}

package wage_test

import (
	"testing"
	"time"

	"github.com/mosesalcantara/wagecalc/wage"
	"github.com/stretchr/testify/assert"
)

func TestWorkWeek_MondayToFriday(t *testing.T) {
	w := wage.NewWorkWeek("Monday", "Friday")

	assert.Equal(t, []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
	}, w.Weekdays())
	assert.Equal(t, 5, w.Len())

	assert.True(t, w.IsWorkingDay(wage.NewDate(2024, time.January, 1)))  // Monday
	assert.True(t, w.IsRestDay(wage.NewDate(2024, time.January, 6)))    // Saturday
	assert.True(t, w.IsRestDay(wage.NewDate(2024, time.January, 7)))    // Sunday
}

func TestWorkWeek_WrapsThroughSunday(t *testing.T) {
	// Saturday..Wednesday wraps: Sat, Sun, Mon, Tue, Wed work; Thu, Fri rest.
	w := wage.NewWorkWeek("Saturday", "Wednesday")

	assert.Equal(t, []time.Weekday{
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Saturday,
	}, w.Weekdays())

	assert.True(t, w.IsRestDay(wage.NewDate(2024, time.January, 4)))    // Thursday
	assert.True(t, w.IsRestDay(wage.NewDate(2024, time.January, 5)))    // Friday
	assert.True(t, w.IsWorkingDay(wage.NewDate(2024, time.January, 6))) // Saturday
}

func TestWorkWeek_SingleDay(t *testing.T) {
	w := wage.NewWorkWeek("Sunday", "Sunday")

	assert.Equal(t, 1, w.Len())
	assert.True(t, w.IsWorkingDay(wage.NewDate(2024, time.January, 7))) // Sunday
}

func TestWorkWeek_FullWeek(t *testing.T) {
	// End one step behind start covers all seven days.
	w := wage.NewWorkWeek("Monday", "Sunday")
	assert.Equal(t, 7, w.Len())
}

func TestWorkWeek_UnknownNamesYieldEmptySet(t *testing.T) {
	for _, w := range []wage.WorkWeek{
		wage.NewWorkWeek("", ""),
		wage.NewWorkWeek("Mon", "Friday"),
		wage.NewWorkWeek("Monday", "someday"),
	} {
		assert.Equal(t, 0, w.Len())
		assert.True(t, w.IsRestDay(wage.NewDate(2024, time.January, 1)))
	}
}

// Package calendar provides the Gregorian calendar arithmetic the façade
// needs to apply a weekday-only result (spec 4.G): leap-year and
// days-in-month helpers, and the default RelativeAdjust reference
// implementation. It completes the retrieval pack's gregorian package, whose
// exported DaysInMonth table had been stripped down to an unexported,
// unused slice.
package calendar

import "time"

var daysInMonth = [...]int{
	0,
	31, // January
	28,
	31, // March
	30,
	31, // May
	30,
	31, // July
	31,
	30, // September
	31,
	30, // November
	31,
}

// IsLeap reports whether year is a leap year in the proleptic Gregorian
// calendar.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month (1-12) of year,
// accounting for February in leap years.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeap(year) {
		return 29
	}
	return daysInMonth[month]
}

// RelativeAdjust is the spec 4.G external collaborator: given an instant and
// a target weekday (0-6, Monday=0), move the instant to the nearest day
// matching that weekday without otherwise changing the time of day.
//
// "Nearest" ties toward the future, matching the common convention that a
// bare weekday name in a date string ("next" implied) points forward rather
// than back.
func RelativeAdjust(t time.Time, weekday int) time.Time {
	current := mondayZero(t.Weekday())
	if current == weekday {
		return t
	}

	forward := (weekday - current + 7) % 7
	backward := (current - weekday + 7) % 7

	if forward <= backward {
		return t.AddDate(0, 0, forward)
	}
	return t.AddDate(0, 0, -backward)
}

func mondayZero(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

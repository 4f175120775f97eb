package calendar

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestIsLeap(t *testing.T) {
	is := is.New(t)
	is.True(IsLeap(2000))
	is.True(IsLeap(2004))
	is.True(!IsLeap(1900))
	is.True(!IsLeap(2001))
}

func TestDaysInMonth(t *testing.T) {
	is := is.New(t)
	is.Equal(DaysInMonth(2003, 2), 28)
	is.Equal(DaysInMonth(2004, 2), 29)
	is.Equal(DaysInMonth(2003, 9), 30)
	is.Equal(DaysInMonth(2003, 12), 31)
}

func TestRelativeAdjustSameWeekday(t *testing.T) {
	is := is.New(t)
	// 2003-09-25 is a Thursday (weekday index 3, Monday=0).
	base := time.Date(2003, 9, 25, 10, 0, 0, 0, time.UTC)
	adjusted := RelativeAdjust(base, 3)
	is.Equal(adjusted, base)
}

func TestRelativeAdjustNearestForward(t *testing.T) {
	is := is.New(t)
	base := time.Date(2003, 9, 25, 10, 0, 0, 0, time.UTC) // Thursday
	adjusted := RelativeAdjust(base, 4)                    // Friday, one day forward
	is.Equal(adjusted.Day(), 26)
	is.Equal(adjusted.Hour(), 10)
}

func TestRelativeAdjustNearestBackward(t *testing.T) {
	is := is.New(t)
	base := time.Date(2003, 9, 25, 10, 0, 0, 0, time.UTC) // Thursday
	adjusted := RelativeAdjust(base, 0)                    // Monday, 3 days back beats 4 forward
	is.Equal(adjusted.Day(), 22)
}

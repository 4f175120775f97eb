package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/imarsman/dateparse/internal/vocab"
	"github.com/imarsman/dateparse/internal/ymd"
)

func infoFor(dayfirst bool) *vocab.Info {
	return vocab.New(dayfirst, false, nil)
}

func TestParseWeekdayMonthDayTimeZoneYear(t *testing.T) {
	out, err := Parse("Thu Sep 25 10:36:28 BRST 2003", infoFor(false), false)
	assert.NoError(t, err)

	assert.Equal(t, 3, *out.Partial.Weekday)
	assert.Equal(t, 10, *out.Partial.Hour)
	assert.Equal(t, 36, *out.Partial.Minute)
	assert.Equal(t, 28, *out.Partial.Second)
	assert.Equal(t, "BRST", *out.Partial.TZName)

	r, err := ymd.Resolve(out.YMD, out.Mstridx, infoFor(false))
	assert.NoError(t, err)
	assert.Equal(t, 9, *r.Month)
	assert.Equal(t, 25, *r.Day)
	assert.Equal(t, 2003, *r.Year)
}

func TestParseISO8601WithFractionAndOffset(t *testing.T) {
	out, err := Parse("1997-07-16T19:20:30.45+01:00", infoFor(false), false)
	assert.NoError(t, err)

	assert.Equal(t, 19, *out.Partial.Hour)
	assert.Equal(t, 20, *out.Partial.Minute)
	assert.Equal(t, 30, *out.Partial.Second)
	assert.Equal(t, 450000, *out.Partial.Microsecond)
	assert.Equal(t, 3600, *out.Partial.TZOffset)

	r, err := ymd.Resolve(out.YMD, out.Mstridx, infoFor(false))
	assert.NoError(t, err)
	assert.Equal(t, 1997, *r.Year)
	assert.Equal(t, 7, *r.Month)
	assert.Equal(t, 16, *r.Day)
}

func TestParseSlashDateDayfirstTrue(t *testing.T) {
	out, err := Parse("10/09/1998", infoFor(true), false)
	assert.NoError(t, err)

	r, err := ymd.Resolve(out.YMD, out.Mstridx, infoFor(true))
	assert.NoError(t, err)
	assert.Equal(t, 1998, *r.Year)
	assert.Equal(t, 9, *r.Month)
	assert.Equal(t, 10, *r.Day)
}

func TestParseSlashDateDayfirstFalse(t *testing.T) {
	out, err := Parse("10/09/1998", infoFor(false), false)
	assert.NoError(t, err)

	r, err := ymd.Resolve(out.YMD, out.Mstridx, infoFor(false))
	assert.NoError(t, err)
	assert.Equal(t, 1998, *r.Year)
	assert.Equal(t, 10, *r.Month)
	assert.Equal(t, 9, *r.Day)
}

func TestParseCompactDateTimeWithFraction(t *testing.T) {
	out, err := Parse("19991231T235959.5", infoFor(false), false)
	assert.NoError(t, err)

	r, err := ymd.Resolve(out.YMD, out.Mstridx, infoFor(false))
	assert.NoError(t, err)
	assert.Equal(t, 1999, *r.Year)
	assert.Equal(t, 12, *r.Month)
	assert.Equal(t, 31, *r.Day)

	assert.Equal(t, 23, *out.Partial.Hour)
	assert.Equal(t, 59, *out.Partial.Minute)
	assert.Equal(t, 59, *out.Partial.Second)
	assert.Equal(t, 500000, *out.Partial.Microsecond)
}

func TestParseMonthPertainYear(t *testing.T) {
	info := infoFor(false)
	out, err := Parse("Jan of 99", info, false)
	assert.NoError(t, err)

	r, err := ymd.Resolve(out.YMD, out.Mstridx, info)
	assert.NoError(t, err)
	assert.Equal(t, 1, *r.Month)
	// The exact four-digit year depends on the current year at test time
	// (convert_year pivots on it); just confirm it expanded past the
	// two-digit form.
	assert.Greater(t, *r.Year, 99)
}

func TestParseDecimalHourPM(t *testing.T) {
	out, err := Parse("3.14 pm", infoFor(false), false)
	assert.NoError(t, err)

	assert.Equal(t, 15, *out.Partial.Hour)
	assert.Equal(t, 8, *out.Partial.Minute)
}

func TestParseBareTimezoneNameSignInversion(t *testing.T) {
	out, err := Parse("10:00 GMT+3", infoFor(false), false)
	assert.NoError(t, err)

	assert.Nil(t, out.Partial.TZName)
	assert.Equal(t, -10800, *out.Partial.TZOffset)
}

func TestParseHMSUnitCascade(t *testing.T) {
	out, err := Parse("3h25m45s", infoFor(false), false)
	assert.NoError(t, err)

	assert.Equal(t, 3, *out.Partial.Hour)
	assert.Equal(t, 25, *out.Partial.Minute)
	assert.Equal(t, 45, *out.Partial.Second)
}

func TestParseSeparatorEquivalence(t *testing.T) {
	info := infoFor(false)
	for _, s := range []string{"2020-01-15", "2020/01/15", "2020.01.15"} {
		out, err := Parse(s, info, false)
		assert.NoError(t, err, s)
		r, err := ymd.Resolve(out.YMD, out.Mstridx, info)
		assert.NoError(t, err, s)
		assert.Equal(t, 2020, *r.Year, s)
		assert.Equal(t, 1, *r.Month, s)
		assert.Equal(t, 15, *r.Day, s)
	}
}

func TestParseFuzzySkipsUnknownWords(t *testing.T) {
	strict := infoFor(false)
	_, err := Parse("25 December 2019 blahblah", strict, false)
	assert.Error(t, err)

	fuzzy, err := Parse("25 December 2019 blahblah", strict, true)
	assert.NoError(t, err)
	r, err := ymd.Resolve(fuzzy.YMD, fuzzy.Mstridx, strict)
	assert.NoError(t, err)
	assert.Equal(t, 2019, *r.Year)
	assert.Equal(t, 12, *r.Month)
	assert.Equal(t, 25, *r.Day)
}

func TestParseNumericTimezoneOffsetCompact(t *testing.T) {
	out, err := Parse("12:00+0530", infoFor(false), false)
	assert.NoError(t, err)
	assert.Equal(t, 5*3600+30*60, *out.Partial.TZOffset)
}

func TestParseWeekdayAlone(t *testing.T) {
	out, err := Parse("Monday", infoFor(false), false)
	assert.NoError(t, err)
	assert.Equal(t, 0, *out.Partial.Weekday)
}

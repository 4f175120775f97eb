package posixtz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUSEasternRule(t *testing.T) {
	r, err := Parse("EST5EDT,M3.2.0/2,M11.1.0/2")
	assert.NoError(t, err)
	assert.Equal(t, "EST", r.StdAbbr)
	assert.Equal(t, -18000, r.StdOffset)
	assert.Equal(t, "EDT", r.DstAbbr)
	assert.Equal(t, -14400, r.DstOffset)

	assert.Equal(t, 3, *r.Start.Month)
	assert.Equal(t, 2, *r.Start.Week)
	assert.Equal(t, 0, *r.Start.Weekday)
	assert.Equal(t, 7200, *r.Start.TimeSeconds)

	assert.Equal(t, 11, *r.End.Month)
	assert.Equal(t, 1, *r.End.Week)
	assert.Equal(t, 0, *r.End.Weekday)
	assert.Equal(t, 7200, *r.End.TimeSeconds)
}

func TestParseStdOnly(t *testing.T) {
	r, err := Parse("UTC0")
	assert.NoError(t, err)
	assert.Equal(t, "UTC", r.StdAbbr)
	assert.Equal(t, 0, r.StdOffset)
	assert.False(t, r.HasDst)
}

func TestParseJYday(t *testing.T) {
	r, err := Parse("CET-1CEST,J60/3,J300/2")
	assert.NoError(t, err)
	assert.Equal(t, 1*3600, r.StdOffset)
	assert.Equal(t, 60, *r.Start.Jyday)
	assert.Equal(t, 3*3600, *r.Start.TimeSeconds)
	assert.Equal(t, 300, *r.End.Jyday)
}

func TestParseLastWeekSentinel(t *testing.T) {
	r, err := Parse("CET-1CEST,M3.5.0,M10.5.0/3")
	assert.NoError(t, err)
	assert.Equal(t, -1, *r.Start.Week)
	assert.Equal(t, -1, *r.End.Week)
}

func TestParseSemicolonsNormalized(t *testing.T) {
	r, err := Parse("EST5EDT;M3.2.0/2;M11.1.0/2")
	assert.NoError(t, err)
	assert.Equal(t, 3, *r.Start.Month)
}

func TestParseNumericTableForm(t *testing.T) {
	r, err := Parse("EST5EDT,3,2,0,7200,11,1,0,7200")
	assert.NoError(t, err)
	assert.Equal(t, 3, *r.Start.Month)
	assert.Equal(t, 2, *r.Start.Week)
	assert.Equal(t, 0, *r.Start.Weekday)
	assert.Equal(t, 7200, *r.Start.TimeSeconds)
}

func TestParseBadFormat(t *testing.T) {
	_, err := Parse("")
	assert.ErrorIs(t, err, ErrBadFormat)

	_, err = Parse("EST")
	assert.ErrorIs(t, err, ErrBadFormat)

	_, err = Parse("EST5EDT,a,b,c")
	assert.ErrorIs(t, err, ErrBadFormat)
}

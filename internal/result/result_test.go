package result

import (
	"testing"

	"github.com/matryer/is"

	"github.com/imarsman/dateparse/internal/vocab"
)

func TestValidateExpandsTwoDigitYear(t *testing.T) {
	is := is.New(t)
	info := vocab.New(false, false, nil)

	p := &Partial{}
	p.SetYear(3)
	p.Validate(info)
	is.True(*p.Year > 1900)
}

func TestValidateIdempotent(t *testing.T) {
	is := is.New(t)
	info := vocab.New(false, false, nil)

	p := &Partial{}
	p.SetYear(99)
	p.Validate(info)
	first := *p.Year
	p.Validate(info)
	is.Equal(*p.Year, first)
}

func TestValidateZeroOffsetBecomesUTC(t *testing.T) {
	is := is.New(t)
	info := vocab.New(false, false, nil)

	p := &Partial{}
	p.SetTZOffset(0)
	p.Validate(info)
	is.True(p.TZName != nil)
	is.Equal(*p.TZName, "UTC")
}

func TestValidateZOffsetBecomesUTC(t *testing.T) {
	is := is.New(t)
	info := vocab.New(false, false, nil)

	p := &Partial{}
	p.SetTZOffset(0)
	p.SetTZName("Z")
	p.Validate(info)
	is.Equal(*p.TZName, "UTC")
}

func TestValidateUTCNameOverridesNonzeroOffset(t *testing.T) {
	is := is.New(t)
	info := vocab.New(false, false, nil)

	p := &Partial{}
	p.SetTZName("UTC")
	p.SetTZOffset(3600)
	p.Validate(info)
	is.Equal(*p.TZOffset, 0)
}

func TestConvertYearPivot(t *testing.T) {
	is := is.New(t)
	info := vocab.New(false, false, nil)
	currentYear := info.CurrentYear()

	for y := 0; y <= 99; y++ {
		out := ConvertYear(y, info)
		is.True(out >= currentYear-49)
		is.True(out <= currentYear+50)
	}
}

func TestDescribeCountsSetFields(t *testing.T) {
	is := is.New(t)
	p := &Partial{}
	is.Equal(p.Describe(), "no fields set")

	p.SetYear(2020)
	is.Equal(p.Describe(), "1 field set")

	p.SetMonth(1)
	is.Equal(p.Describe(), "2 fields set")
}

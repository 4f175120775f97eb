// Package result holds the mutable accumulator the assembly engine fills in
// while it walks the token stream, plus the post-pass normalization spec
// 4.C calls validate.
package result

import (
	"github.com/JohnCGriffin/overflow"
	"github.com/rickb777/plural"

	"github.com/imarsman/dateparse/internal/vocab"
)

// fieldCountNames pluralizes the Describe() diagnostic the way
// period/format.go pluralizes period components.
var fieldCountNames = plural.FromZero("no fields set", "%v field set", "%v fields set")

// Partial is the mutable, per-call accumulator of parsed date/time fields.
// Every field is optional; nil/zero-value pointers mean "not present in the
// input". It is owned by a single parse call and handed back by pointer in
// the engine's Output.
type Partial struct {
	Year    *int
	Month   *int
	Day     *int
	Weekday *int // 0-6, Monday=0

	Hour        *int
	Minute      *int
	Second      *int
	Microsecond *int

	TZName   *string
	TZOffset *int // seconds, signed
}

// SetYear records a parsed year, overwriting any previous value.
func (p *Partial) SetYear(v int) { p.Year = &v }

// SetMonth records a parsed month (1-12).
func (p *Partial) SetMonth(v int) { p.Month = &v }

// SetDay records a parsed day of month.
func (p *Partial) SetDay(v int) { p.Day = &v }

// SetWeekday records a parsed weekday (0-6, Monday=0).
func (p *Partial) SetWeekday(v int) { p.Weekday = &v }

// SetHour records a parsed hour-of-day.
func (p *Partial) SetHour(v int) { p.Hour = &v }

// SetMinute records a parsed minute.
func (p *Partial) SetMinute(v int) { p.Minute = &v }

// SetSecond records a parsed second.
func (p *Partial) SetSecond(v int) { p.Second = &v }

// SetMicrosecond records a parsed fractional-second remainder in
// microseconds.
func (p *Partial) SetMicrosecond(v int) { p.Microsecond = &v }

// SetTZName records a parsed timezone abbreviation or name.
func (p *Partial) SetTZName(v string) { p.TZName = &v }

// SetTZOffset records a parsed fixed UTC offset, in seconds.
func (p *Partial) SetTZOffset(v int) { p.TZOffset = &v }

// ClearTZName drops a previously recorded zone name, used when a bare
// timezone name turns out to have been the UTC zone expressed instead via
// a following numeric offset (spec 4.D rule 5).
func (p *Partial) ClearTZName() { p.TZName = nil }

// ClearTZOffset drops a previously recorded numeric offset.
func (p *Partial) ClearTZOffset() { p.TZOffset = nil }

// ConvertYear expands a two-digit year into a four-digit one: round to the
// current century, then slide by +/-100 if that lands the result 50 years
// or more from the current year, picking whichever century is closer.
func ConvertYear(y int, info *vocab.Info) int {
	if y >= 100 {
		return y
	}
	year, ok := overflow.Add(info.CurrentCentury(), y)
	if !ok {
		return y
	}
	diff := year - info.CurrentYear()
	if diff < 0 {
		diff = -diff
	}
	if diff >= 50 {
		if year < info.CurrentYear() {
			if shifted, ok := overflow.Add(year, 100); ok {
				year = shifted
			}
		} else {
			if shifted, ok := overflow.Sub(year, 100); ok {
				year = shifted
			}
		}
	}
	return year
}

// Validate applies the spec 4.C normalizations: two-digit-year expansion
// and the tzname/tzoffset UTC reconciliation. It always returns true for
// the base contract; a future extension may detect a genuine contradiction.
func (p *Partial) Validate(info *vocab.Info) bool {
	if p.Year != nil && *p.Year < 100 {
		p.SetYear(ConvertYear(*p.Year, info))
	}

	switch {
	case p.TZOffset != nil && *p.TZOffset == 0 && (p.TZName == nil || *p.TZName == "Z"):
		p.SetTZName("UTC")
	case p.TZOffset != nil && *p.TZOffset != 0 && p.TZName != nil && info.IsUTCZone(*p.TZName):
		p.SetTZOffset(0)
	}

	return true
}

// Describe renders a short diagnostic summary of which fields are set,
// useful for logging a partially-resolved parse.
func (p *Partial) Describe() string {
	n := 0
	for _, set := range []bool{
		p.Year != nil, p.Month != nil, p.Day != nil, p.Weekday != nil,
		p.Hour != nil, p.Minute != nil, p.Second != nil, p.Microsecond != nil,
		p.TZName != nil, p.TZOffset != nil,
	} {
		if set {
			n++
		}
	}
	return fieldCountNames.FormatInt(n)
}

package dateparse

import (
	"errors"
	"time"

	"github.com/imarsman/dateparse/internal/calendar"
	"github.com/imarsman/dateparse/internal/engine"
	"github.com/imarsman/dateparse/internal/posixtz"
	"github.com/imarsman/dateparse/internal/result"
	"github.com/imarsman/dateparse/internal/tzcache"
	"github.com/imarsman/dateparse/internal/ymd"
)

// Parse reads a human-written date/time string and returns the instant it
// describes, merging whatever fields it finds into opts.Default (spec
// "top-level parse façade", 5% of the original budget: merge PartialResult
// into a caller's default instant, consult TzResolver, return a final
// instant).
func Parse(timestr string, opts *ParseOptions) (time.Time, error) {
	if opts == nil {
		opts = &ParseOptions{}
	}

	info := opts.Info
	if info == nil {
		info = NewParserInfo(opts.Dayfirst, opts.Yearfirst, nil)
	}

	out, err := engine.Parse(timestr, info, opts.Fuzzy)
	if err != nil {
		if errors.Is(err, engine.ErrBadFormat) {
			return time.Time{}, ErrBadFormat
		}
		return time.Time{}, err
	}

	resolved, err := ymd.Resolve(out.YMD, out.Mstridx, info)
	if err != nil {
		if errors.Is(err, ymd.ErrTooManyComponents) {
			return time.Time{}, ErrBadFormat
		}
		return time.Time{}, err
	}
	if resolved.Year != nil {
		out.Partial.SetYear(*resolved.Year)
	}
	if resolved.Month != nil {
		out.Partial.SetMonth(*resolved.Month)
	}
	if resolved.Day != nil {
		out.Partial.SetDay(*resolved.Day)
	}

	out.Partial.Validate(info)

	base := opts.Default
	if base.IsZero() {
		base = time.Now()
	}

	year, month, day := base.Year(), int(base.Month()), base.Day()
	if out.Partial.Year != nil {
		year = *out.Partial.Year
	}
	if out.Partial.Month != nil {
		month = *out.Partial.Month
	}
	if out.Partial.Day != nil {
		day = *out.Partial.Day
	}

	hour, minute, second := base.Hour(), base.Minute(), base.Second()
	nsec := base.Nanosecond()
	if out.Partial.Hour != nil {
		hour = *out.Partial.Hour
	}
	if out.Partial.Minute != nil {
		minute = *out.Partial.Minute
	}
	if out.Partial.Second != nil {
		second = *out.Partial.Second
	}
	if out.Partial.Microsecond != nil {
		nsec = *out.Partial.Microsecond * 1000
	}

	loc := resolveLocation(opts, info, out.Partial, base)

	instant := time.Date(year, time.Month(month), day, hour, minute, second, nsec, loc)

	if out.Partial.Weekday != nil && out.Partial.Day == nil {
		adjust := opts.Adjust
		if adjust == nil {
			adjust = calendar.RelativeAdjust
		}
		instant = adjust(instant, *out.Partial.Weekday)
	}

	return instant, nil
}

func resolveLocation(opts *ParseOptions, info *ParserInfo, p *result.Partial, base time.Time) *time.Location {
	if opts.IgnoreTZ {
		return base.Location()
	}

	resolver := opts.Resolver
	if resolver == nil {
		resolver = tzcache.New(0)
	}

	switch {
	case p.TZOffset != nil:
		name := "FixedZone"
		if p.TZName != nil {
			name = *p.TZName
		}
		return resolver.TzOffset(name, *p.TZOffset)
	case p.TZName != nil:
		if val, ok := opts.lookupTzMap(*p.TZName); ok {
			return resolveTzMapValue(val, resolver, *p.TZName)
		}
		if off, ok := info.TzOffset(*p.TZName); ok {
			return resolver.TzOffset(*p.TZName, off)
		}
		if zone, err := resolver.GetTz(*p.TZName); err == nil && zone != nil {
			return zone
		}
		// Unknown abbreviation: keep the name for display, with no known
		// offset to apply, so the zone gets a zero offset.
		return resolver.TzOffset(*p.TZName, 0)
	default:
		return base.Location()
	}
}

func resolveTzMapValue(v TzMapValue, resolver TzResolver, name string) *time.Location {
	switch {
	case v.FixedOffsetSeconds != nil:
		return resolver.TzOffset(name, *v.FixedOffsetSeconds)
	case v.PosixTzString != nil:
		if loc, err := resolver.TzString(*v.PosixTzString); err == nil {
			return loc
		}
	case v.Zone != nil:
		return v.Zone
	}
	return time.UTC
}

// ParseTZ decodes a POSIX TZ rule string (spec 4.F), reusing only the
// lexer, never the assembly engine -- the mutual-dependency note in spec 9
// calls for exactly this one-way layering.
func ParseTZ(tzstr string) (posixtz.Result, error) {
	r, err := posixtz.Parse(tzstr)
	if err != nil {
		return posixtz.Result{}, ErrBadFormat
	}
	return r, nil
}

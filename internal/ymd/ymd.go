// Package ymd disambiguates the unordered list of 1-3 numeric date
// components the assembly engine collected, in order of appearance, into
// year/month/day using dayfirst/yearfirst hints and magnitude heuristics
// (spec 4.E).
package ymd

import (
	"errors"

	"github.com/imarsman/dateparse/internal/vocab"
)

// ErrTooManyComponents is returned when more than 3 numeric date
// components were collected; the input is not a single date.
var ErrTooManyComponents = errors.New("ymd: more than three date components")

// Resolved holds the disambiguated year/month/day, each nil if the input
// ymd slice did not determine it.
type Resolved struct {
	Year  *int
	Month *int
	Day   *int
}

func ip(v int) *int { return &v }

// Resolve assigns roles to the 0-3 numeric components in ymd (in the order
// they appeared in the input) using mstridx (the index of a component that
// came from a month name, or -1) and the dayfirst/yearfirst hints in info.
func Resolve(ymdVals []int, mstridx int, info *vocab.Info) (Resolved, error) {
	switch len(ymdVals) {
	case 0:
		return Resolved{}, nil
	case 1:
		return resolveOne(ymdVals, mstridx), nil
	case 2:
		return resolveTwo(ymdVals, mstridx, info), nil
	case 3:
		return resolveThree(ymdVals, mstridx, info), nil
	default:
		return Resolved{}, ErrTooManyComponents
	}
}

func resolveOne(ymdVals []int, mstridx int) Resolved {
	if mstridx == 0 {
		return Resolved{Month: ip(ymdVals[0])}
	}
	v := ymdVals[0]
	if v > 31 {
		return Resolved{Year: ip(v)}
	}
	return Resolved{Day: ip(v)}
}

func resolveTwo(ymdVals []int, mstridx int, info *vocab.Info) Resolved {
	if mstridx != -1 {
		// One of the two components is a month name; the other is either a
		// year (if > 31) or a day.
		other := ymdVals[0]
		if mstridx == 0 {
			other = ymdVals[1]
		}
		month := ymdVals[mstridx]
		if other > 31 {
			return Resolved{Month: ip(month), Year: ip(other)}
		}
		return Resolved{Month: ip(month), Day: ip(other)}
	}

	a, b := ymdVals[0], ymdVals[1]
	switch {
	case a > 31:
		return Resolved{Year: ip(a), Month: ip(b)}
	case b > 31:
		return Resolved{Month: ip(a), Year: ip(b)}
	case info.Dayfirst && b <= 12:
		return Resolved{Day: ip(a), Month: ip(b)}
	default:
		return Resolved{Month: ip(a), Day: ip(b)}
	}
}

func resolveThree(ymdVals []int, mstridx int, info *vocab.Info) Resolved {
	switch mstridx {
	case 0:
		return Resolved{Month: ip(ymdVals[0]), Day: ip(ymdVals[1]), Year: ip(ymdVals[2])}
	case 1:
		// Leading 3+-digit numbers must be years; two digits surrounding a
		// central month name are usually day-first.
		if ymdVals[0] > 31 || (info.Yearfirst && ymdVals[2] <= 31) {
			return Resolved{Year: ip(ymdVals[0]), Month: ip(ymdVals[1]), Day: ip(ymdVals[2])}
		}
		return Resolved{Day: ip(ymdVals[0]), Month: ip(ymdVals[1]), Year: ip(ymdVals[2])}
	case 2:
		// The order keys on whether the middle component exceeds 31, not on
		// the dayfirst/yearfirst hints. Idiosyncratic but matches the source
		// this is ported from; see DESIGN.md.
		if ymdVals[1] > 31 {
			return Resolved{Day: ip(ymdVals[0]), Year: ip(ymdVals[1]), Month: ip(ymdVals[2])}
		}
		return Resolved{Year: ip(ymdVals[0]), Day: ip(ymdVals[1]), Month: ip(ymdVals[2])}
	default:
		return resolveThreeNoMonth(ymdVals, info)
	}
}

func resolveThreeNoMonth(ymdVals []int, info *vocab.Info) Resolved {
	a, b, c := ymdVals[0], ymdVals[1], ymdVals[2]
	switch {
	case a > 31 || (info.Yearfirst && b <= 12 && c <= 31):
		return Resolved{Year: ip(a), Month: ip(b), Day: ip(c)}
	case a > 12 || (info.Dayfirst && b <= 12):
		return Resolved{Day: ip(a), Month: ip(b), Year: ip(c)}
	default:
		return Resolved{Month: ip(a), Day: ip(b), Year: ip(c)}
	}
}

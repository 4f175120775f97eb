// Package posixtz decodes POSIX TZ rule strings such as
// "EST5EDT,M3.2.0/2,M11.1.0/2", describing a zone's standard/DST
// abbreviations, their UTC offsets, and the two yearly DST transition
// rules. It shares the hand-written lexer with the date/time engine (spec
// 4.F) but has no dependency on the vocabulary or assembly engine.
package posixtz

import (
	"errors"
	"strconv"
	"strings"

	"github.com/JohnCGriffin/overflow"

	"github.com/imarsman/dateparse/internal/lex"
)

// ErrBadFormat is returned for any unparseable POSIX TZ string.
var ErrBadFormat = errors.New("posixtz: bad format")

// Transition describes one yearly DST transition. At most one of
// {Yday, Jyday, (Month,Week,Weekday), (Month,Day)} is populated.
type Transition struct {
	Month   *int // 1-12
	Week    *int // 1-4, or -1 for "last"
	Weekday *int // 0-6 as written in the rule (POSIX numbering, 0=Sunday), not the Monday=0 convention used elsewhere
	Yday    *int // 1-based day of year (the rule's 0-based n plus one), leap days counted
	Jyday   *int // 1-based day of year, Feb 29 never counted
	Day     *int // explicit day-of-month, legacy numeric-table form only

	TimeSeconds *int // seconds after local midnight the transition occurs, default 7200 (02:00)
}

// Result is the decoded POSIX TZ rule.
type Result struct {
	StdAbbr   string
	StdOffset int // seconds, standard sign (east positive)

	DstAbbr   string
	HasDst    bool
	DstOffset int

	Start Transition
	End   Transition
}

func ip(v int) *int { return &v }

// Parse decodes a POSIX TZ string. Semicolons are normalized to commas
// before parsing, matching common real-world laxness in these strings.
func Parse(tzstr string) (Result, error) {
	normalized := strings.ReplaceAll(tzstr, ";", ",")
	commaIdx := strings.Index(normalized, ",")

	head := normalized
	var rest string
	hasRule := commaIdx >= 0
	if hasRule {
		head = normalized[:commaIdx]
		rest = normalized[commaIdx+1:]
	}

	result, err := parseHead(head)
	if err != nil {
		return Result{}, err
	}
	if !hasRule {
		return result, nil
	}

	fields := strings.Split(rest, ",")
	switch {
	case len(fields) == 2:
		start, err := parseRule(fields[0])
		if err != nil {
			return Result{}, err
		}
		end, err := parseRule(fields[1])
		if err != nil {
			return Result{}, err
		}
		result.Start, result.End = start, end
	case len(fields) == 8 || len(fields) == 9:
		if err := parseNumericTable(fields, &result); err != nil {
			return Result{}, err
		}
	default:
		return Result{}, ErrBadFormat
	}

	return result, nil
}

func parseHead(head string) (Result, error) {
	toks := filterSpace(lex.Tokenize(head))
	i := 0

	readAbbr := func() (string, bool) {
		if i >= len(toks) || toks[i].Kind != lex.WORD {
			return "", false
		}
		name := toks[i].Text
		i++
		return name, true
	}

	readOffset := func() (int, bool) {
		sign := 1
		if i < len(toks) && toks[i].Kind == lex.PUNCT && (toks[i].Text == "+" || toks[i].Text == "-") {
			if toks[i].Text == "-" {
				sign = -1
			}
			i++
		}
		if i >= len(toks) || toks[i].Kind != lex.NUMBER {
			return 0, false
		}
		hh, err := strconv.Atoi(toks[i].Text)
		if err != nil {
			return 0, false
		}
		i++
		mm, ss := 0, 0
		for colons := 0; colons < 2 && i+1 < len(toks) && toks[i].Kind == lex.PUNCT && toks[i].Text == ":"; colons++ {
			i++
			if toks[i].Kind != lex.NUMBER {
				return 0, false
			}
			v, err := strconv.Atoi(toks[i].Text)
			if err != nil {
				return 0, false
			}
			if colons == 0 {
				mm = v
			} else {
				ss = v
			}
			i++
		}
		secs, _ := overflow.Mul(hh, 3600)
		msecs, _ := overflow.Mul(mm, 60)
		total, _ := overflow.Add(secs, msecs)
		total, _ = overflow.Add(total, ss)
		// POSIX offsets are "seconds west of UTC"; standard sign is east
		// positive, so negate.
		return -sign * total, true
	}

	var result Result
	stdAbbr, ok := readAbbr()
	if !ok {
		return Result{}, ErrBadFormat
	}
	result.StdAbbr = stdAbbr

	stdOffset, ok := readOffset()
	if !ok {
		return Result{}, ErrBadFormat
	}
	result.StdOffset = stdOffset

	if dstAbbr, ok := readAbbr(); ok {
		result.DstAbbr = dstAbbr
		result.HasDst = true
		if dstOffset, ok := readOffset(); ok {
			result.DstOffset = dstOffset
		} else {
			result.DstOffset = stdOffset + 3600
		}
	}

	return result, nil
}

func filterSpace(toks []lex.Token) []lex.Token {
	out := toks[:0:0]
	for _, t := range toks {
		if t.Kind != lex.SPACE {
			out = append(out, t)
		}
	}
	return out
}

// parseRule parses one POSIX start/end transition rule: "Jn", "n",
// "Mm.w.d", each with an optional "/time" suffix.
func parseRule(field string) (Transition, error) {
	rulePart, timePart, hasTime := strings.Cut(field, "/")

	var tr Transition
	switch {
	case rulePart == "":
		return Transition{}, ErrBadFormat
	case rulePart[0] == 'J':
		n, err := strconv.Atoi(rulePart[1:])
		if err != nil {
			return Transition{}, ErrBadFormat
		}
		tr.Jyday = ip(n)
	case rulePart[0] == 'M':
		parts := strings.Split(rulePart[1:], ".")
		if len(parts) != 3 {
			return Transition{}, ErrBadFormat
		}
		month, err1 := strconv.Atoi(parts[0])
		week, err2 := strconv.Atoi(parts[1])
		day, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return Transition{}, ErrBadFormat
		}
		if week == 5 {
			week = -1
		}
		// d keeps POSIX's own 0=Sunday..6=Saturday numbering; it is not
		// reconciled with the Monday=0 weekday convention used elsewhere
		// in this module, matching the documented test scenarios.
		weekday := ((day % 7) + 7) % 7
		tr.Month, tr.Week, tr.Weekday = ip(month), ip(week), ip(weekday)
	default:
		n, err := strconv.Atoi(rulePart)
		if err != nil {
			return Transition{}, ErrBadFormat
		}
		tr.Yday = ip(n + 1)
	}

	if hasTime {
		secs, err := parseTimeOfDay(timePart)
		if err != nil {
			return Transition{}, err
		}
		tr.TimeSeconds = ip(secs)
	} else {
		tr.TimeSeconds = ip(7200) // POSIX default: 02:00 local standard time
	}

	return tr, nil
}

// parseTimeOfDay parses HH, HH:MM, HH:MM:SS, or compact HHMM into seconds.
func parseTimeOfDay(s string) (int, error) {
	if strings.Contains(s, ":") {
		parts := strings.Split(s, ":")
		if len(parts) > 3 {
			return 0, ErrBadFormat
		}
		vals := make([]int, len(parts))
		for i, p := range parts {
			v, err := strconv.Atoi(p)
			if err != nil {
				return 0, ErrBadFormat
			}
			vals[i] = v
		}
		secs := vals[0] * 3600
		if len(vals) > 1 {
			secs += vals[1] * 60
		}
		if len(vals) > 2 {
			secs += vals[2]
		}
		return secs, nil
	}
	if len(s) == 4 {
		hh, err1 := strconv.Atoi(s[:2])
		mm, err2 := strconv.Atoi(s[2:])
		if err1 != nil || err2 != nil {
			return 0, ErrBadFormat
		}
		return hh*3600 + mm*60, nil
	}
	hh, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrBadFormat
	}
	return hh * 3600, nil
}

// parseNumericTable supports the legacy 8-9 comma-separated numeric field
// form inherited from the original implementation this parser descends
// from: month, signed week, weekday, time for start, then the same four
// for end, with an optional 9th field giving an alternate DST offset.
func parseNumericTable(fields []string, result *Result) error {
	nums := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return ErrBadFormat
		}
		nums[i] = v
	}

	result.Start = Transition{
		Month:       ip(nums[0]),
		Week:        ip(nums[1]),
		Weekday:     ip(((nums[2] % 7) + 7) % 7),
		TimeSeconds: ip(nums[3]),
	}
	result.End = Transition{
		Month:       ip(nums[4]),
		Week:        ip(nums[5]),
		Weekday:     ip(((nums[6] % 7) + 7) % 7),
		TimeSeconds: ip(nums[7]),
	}
	if result.Start.Week != nil && *result.Start.Week == 0 {
		result.Start.Day, result.Start.Week, result.Start.Weekday = ip(nums[2]), nil, nil
	}
	if result.End.Week != nil && *result.End.Week == 0 {
		result.End.Day, result.End.Week, result.End.Weekday = ip(nums[6]), nil, nil
	}

	if len(nums) == 9 {
		alt, _ := overflow.Add(result.StdOffset, nums[8])
		result.DstOffset = alt
	}

	return nil
}

// Package vocab holds the configurable lookup tables the assembly engine
// consults to classify WORD tokens: month and weekday names, AM/PM markers,
// HMS unit spellings, UTC zone names, jump/filler words, pertain words, and
// fixed-offset timezone abbreviations. It is the Go analogue of dateutil's
// parserinfo class.
package vocab

import (
	"time"

	"golang.org/x/text/cases"
)

// fold is locale-independent by construction (case folding, unlike
// upper/lower-casing, does not need a language tag).
var fold = cases.Fold()

// foldWord lowercases/case-folds a word for vocabulary lookup. Case folding
// via golang.org/x/text/cases handles non-ASCII letters (the accented
// Latin-1 range the lexer accepts as WORD characters) correctly, unlike a
// bare strings.ToLower on arbitrary Unicode.
func foldWord(s string) string {
	return fold.String(s)
}

// Info is the immutable, per-configuration vocabulary and ambiguity-hint
// bundle. A zero Info is not usable; build one with New.
type Info struct {
	Dayfirst  bool
	Yearfirst bool

	currentYear    int
	currentCentury int

	weekdays map[string]int // 0-6, Monday=0
	months   map[string]int // 1-12
	hms      map[string]int // 0=h,1=m,2=s
	ampm     map[string]int // 0=am,1=pm

	utczone map[string]struct{}
	pertain map[string]struct{}
	jump    map[string]struct{}

	tzoffsets map[string]int // fixed name -> seconds offset
}

// Overrides lets a caller replace any of the default vocabularies. A nil
// field keeps the default.
type Overrides struct {
	Weekdays  [][]string // 7 slices, index 0 = Monday
	Months    [][]string // 12 slices, index 0 = January
	HMS       [][]string // 3 slices: hour, minute, second
	AMPM      [][]string // 2 slices: am, pm
	UTCZones  []string
	Pertain   []string
	Jump      []string
	TzOffsets map[string]int
}

var defaultWeekdays = [][]string{
	{"mon", "monday"},
	{"tue", "tuesday"},
	{"wed", "wednesday"},
	{"thu", "thursday"},
	{"fri", "friday"},
	{"sat", "saturday"},
	{"sun", "sunday"},
}

var defaultMonths = [][]string{
	{"jan", "january"},
	{"feb", "february"},
	{"mar", "march"},
	{"apr", "april"},
	{"may"},
	{"jun", "june"},
	{"jul", "july"},
	{"aug", "august"},
	{"sep", "sept", "september"},
	{"oct", "october"},
	{"nov", "november"},
	{"dec", "december"},
}

var defaultHMS = [][]string{
	{"h", "hour", "hours"},
	{"m", "minute", "minutes"},
	{"s", "second", "seconds"},
}

var defaultAMPM = [][]string{
	{"am", "a"},
	{"pm", "p"},
}

var defaultUTCZones = []string{"utc", "gmt", "z", "zulu"}

// defaultPertain binds a month name to a following year, as in "Jan of 99".
var defaultPertain = []string{"of"}

// defaultJump are filler words with no date/time semantics of their own.
var defaultJump = []string{
	"at", "on", "and", "ad", "m", "t", "of", "st", "nd", "rd", "th",
	",", "the",
}

// New builds an Info, capturing the current year/century at construction
// time the way the original parserinfo does at import time.
func New(dayfirst, yearfirst bool, overrides *Overrides) *Info {
	now := time.Now()
	info := &Info{
		Dayfirst:       dayfirst,
		Yearfirst:      yearfirst,
		currentYear:    now.Year(),
		currentCentury: (now.Year() / 100) * 100,
		weekdays:       map[string]int{},
		months:         map[string]int{},
		hms:            map[string]int{},
		ampm:           map[string]int{},
		utczone:        map[string]struct{}{},
		pertain:        map[string]struct{}{},
		jump:           map[string]struct{}{},
		tzoffsets:      map[string]int{},
	}

	weekdays, months, hms, ampm := defaultWeekdays, defaultMonths, defaultHMS, defaultAMPM
	utczones, pertain, jump := defaultUTCZones, defaultPertain, defaultJump
	var tzoffsets map[string]int

	if overrides != nil {
		if overrides.Weekdays != nil {
			weekdays = overrides.Weekdays
		}
		if overrides.Months != nil {
			months = overrides.Months
		}
		if overrides.HMS != nil {
			hms = overrides.HMS
		}
		if overrides.AMPM != nil {
			ampm = overrides.AMPM
		}
		if overrides.UTCZones != nil {
			utczones = overrides.UTCZones
		}
		if overrides.Pertain != nil {
			pertain = overrides.Pertain
		}
		if overrides.Jump != nil {
			jump = overrides.Jump
		}
		tzoffsets = overrides.TzOffsets
	}

	for idx, names := range weekdays {
		for _, n := range names {
			info.weekdays[foldWord(n)] = idx
		}
	}
	for idx, names := range months {
		for _, n := range names {
			info.months[foldWord(n)] = idx + 1
		}
	}
	for idx, names := range hms {
		for _, n := range names {
			info.hms[foldWord(n)] = idx
		}
	}
	for idx, names := range ampm {
		for _, n := range names {
			info.ampm[foldWord(n)] = idx
		}
	}
	for _, n := range utczones {
		info.utczone[foldWord(n)] = struct{}{}
	}
	for _, n := range pertain {
		info.pertain[foldWord(n)] = struct{}{}
	}
	for _, n := range jump {
		info.jump[foldWord(n)] = struct{}{}
	}
	for k, v := range tzoffsets {
		info.tzoffsets[foldWord(k)] = v
	}

	return info
}

// CurrentYear returns the year captured when Info was built.
func (i *Info) CurrentYear() int { return i.currentYear }

// CurrentCentury returns the century (e.g. 2000) captured when Info was built.
func (i *Info) CurrentCentury() int { return i.currentCentury }

// Weekday returns the 0-6 (Monday=0) index for name, or false if unknown.
// Names shorter than 3 characters never match, preventing e.g. "ma" from
// ambiguously matching a month.
func (i *Info) Weekday(name string) (int, bool) {
	if len([]rune(name)) < 3 {
		return 0, false
	}
	v, ok := i.weekdays[foldWord(name)]
	return v, ok
}

// Month returns the 1-12 index for name, or false if unknown.
func (i *Info) Month(name string) (int, bool) {
	if len([]rune(name)) < 3 {
		return 0, false
	}
	v, ok := i.months[foldWord(name)]
	return v, ok
}

// HMSIndex returns 0 (hour), 1 (minute), or 2 (second) for an HMS unit
// spelling, or false if name isn't one.
func (i *Info) HMSIndex(name string) (int, bool) {
	v, ok := i.hms[foldWord(name)]
	return v, ok
}

// AMPM returns 0 for am, 1 for pm, or false if name isn't an AM/PM marker.
func (i *Info) AMPM(name string) (int, bool) {
	v, ok := i.ampm[foldWord(name)]
	return v, ok
}

// IsUTCZone reports whether name is a configured UTC-equivalent zone name.
func (i *Info) IsUTCZone(name string) bool {
	_, ok := i.utczone[foldWord(name)]
	return ok
}

// IsPertain reports whether name is a pertain word ("of" by default).
func (i *Info) IsPertain(name string) bool {
	_, ok := i.pertain[foldWord(name)]
	return ok
}

// IsJump reports whether name is a filler word with no date semantics.
func (i *Info) IsJump(name string) bool {
	_, ok := i.jump[foldWord(name)]
	return ok
}

// TzOffset returns 0 if name is a UTC-zone name, the fixed offset in
// seconds if name is a known fixed-offset abbreviation, or false if name
// is not recognized at all.
func (i *Info) TzOffset(name string) (int, bool) {
	if i.IsUTCZone(name) {
		return 0, true
	}
	v, ok := i.tzoffsets[foldWord(name)]
	return v, ok
}

// IsASCIIUpper reports whether s consists solely of ASCII uppercase
// letters, used by the engine's candidate-timezone-name classification
// (spec 4.D rule 5).
func IsASCIIUpper(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

package dateparse

import (
	"time"

	"github.com/imarsman/dateparse/internal/vocab"
)

// ParserInfo is the public name for the vocabulary/ambiguity-hint bundle
// (spec 6's ParserInfo). It is an alias of internal/vocab.Info so the
// assembly engine and the façade share one type without internal/vocab
// being importable from outside the module.
type ParserInfo = vocab.Info

// VocabOverrides lets a caller replace any default vocabulary table
// (month/weekday names, AM/PM markers, and so on).
type VocabOverrides = vocab.Overrides

// NewParserInfo builds a ParserInfo with internal/vocab.New; it
// is exposed so a caller can build one once and share it across many Parse
// calls instead of paying vocabulary-table construction on every call.
func NewParserInfo(dayfirst, yearfirst bool, overrides *VocabOverrides) *ParserInfo {
	return vocab.New(dayfirst, yearfirst, overrides)
}

// TzMapValue is the tagged variant spec 9 calls for: a TzOffsets map entry
// is a fixed offset, a POSIX TZ string, or an already-built zone, never
// more than one at a time.
type TzMapValue struct {
	FixedOffsetSeconds *int
	PosixTzString      *string
	Zone               *time.Location
}

// FixedOffset builds a TzMapValue carrying a fixed UTC offset in seconds.
func FixedOffset(seconds int) TzMapValue {
	return TzMapValue{FixedOffsetSeconds: &seconds}
}

// PosixTZ builds a TzMapValue carrying a POSIX TZ rule string.
func PosixTZ(s string) TzMapValue {
	return TzMapValue{PosixTzString: &s}
}

// TzMap is the static form of ParseOptions.TzOffsets: a fixed table of
// timezone-name overrides.
type TzMap map[string]TzMapValue

// TzMapFunc is the callable form of ParseOptions.TzOffsets (spec 9's
// "separate callable variant"), consulted instead of a static TzMap when
// set.
type TzMapFunc func(name string) (TzMapValue, bool)

// ParseOptions configures a single Parse call (spec 6).
type ParseOptions struct {
	// Default supplies the date/time fields the input doesn't mention. The
	// zero value means "now".
	Default time.Time

	Dayfirst  bool
	Yearfirst bool
	Fuzzy     bool
	IgnoreTZ  bool

	// TzOffsets and TzOffsetsFunc override how a bare timezone name (e.g.
	// "EST") resolves to a zone; TzOffsetsFunc takes precedence if both are
	// set. Neither is consulted for a numeric offset already present in the
	// input.
	TzOffsets     TzMap
	TzOffsetsFunc TzMapFunc

	// Info supplies a custom vocabulary; nil builds a default one from
	// Dayfirst/Yearfirst.
	Info *ParserInfo

	// Resolver and Adjust override the TzResolver/RelativeAdjust
	// collaborators; nil uses the internal/tzcache and internal/calendar
	// reference implementations.
	Resolver TzResolver
	Adjust   RelativeAdjust
}

func (o *ParseOptions) lookupTzMap(name string) (TzMapValue, bool) {
	if o.TzOffsetsFunc != nil {
		return o.TzOffsetsFunc(name)
	}
	if o.TzOffsets != nil {
		v, ok := o.TzOffsets[name]
		return v, ok
	}
	return TzMapValue{}, false
}

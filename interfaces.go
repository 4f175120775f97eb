package dateparse

import "time"

// RelativeAdjust is the external collaborator spec 4.G leans on to turn a
// bare weekday result into a concrete date: move t to the nearest instance
// of weekday (0-6, Monday=0) without otherwise changing the time of day.
// internal/calendar.RelativeAdjust is the reference implementation used
// when a ParseOptions doesn't supply its own.
type RelativeAdjust func(t time.Time, weekday int) time.Time

// TzResolver is the external collaborator for turning a parsed timezone
// name, numeric offset, or POSIX TZ string into a usable *time.Location
// (spec 6). internal/tzcache.Resolver is the reference implementation.
type TzResolver interface {
	// TzUTC returns the UTC zone.
	TzUTC() *time.Location
	// TzLocal returns the system's local zone.
	TzLocal() *time.Location
	// TzOffset returns a fixed-offset zone, named after name.
	TzOffset(name string, seconds int) *time.Location
	// TzString decodes a POSIX TZ rule string into a zone.
	TzString(posixTZ string) (*time.Location, error)
	// GetTz looks up an IANA zone by name, returning (nil, nil) if the
	// local tzdata doesn't have it.
	GetTz(name string) (*time.Location, error)
}

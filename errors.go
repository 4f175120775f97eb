package dateparse

import "errors"

// ErrBadFormat is returned when the input cannot be classified into a
// date/time at all (spec 7).
var ErrBadFormat = errors.New("dateparse: bad format")

// ErrAmbiguousTimezone is reserved for a future contradiction check (a
// timezone name and a numeric offset that disagree about which zone is
// meant). The current engine folds that case into ErrBadFormat instead of
// raising this distinctly, matching spec 7's documented simplification.
var ErrAmbiguousTimezone = errors.New("dateparse: ambiguous timezone")

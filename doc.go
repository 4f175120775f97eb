// Package dateparse parses fuzzy, human-written date/time strings the way
// a person writes them -- "Thu Sep 25 10:36:28 BRST 2003", "10/09/1998",
// "Jan of 99", "3.14 pm" -- rather than requiring a caller to know a
// layout string in advance.
//
// Parse walks the input through a hand-written lexer (internal/lex), a
// vocabulary of month/weekday/AM-PM/timezone names (internal/vocab), an
// assembly engine that classifies each token in context (internal/engine),
// and a year/month/day disambiguator for the numeric components that are
// still ambiguous after that pass (internal/ymd). ParseTZ separately
// decodes POSIX TZ rule strings such as "EST5EDT,M3.2.0/2,M11.1.0/2"
// (internal/posixtz).
//
// Timezone name resolution and "move to the nearest matching weekday"
// relative-date adjustment are pluggable via the TzResolver and
// RelativeAdjust interfaces; internal/tzcache and internal/calendar supply
// the default implementations.
package dateparse

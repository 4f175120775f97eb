package engine

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/apd"
)

// ctx is the arbitrary-precision context used for the fractional carry-down
// in the HMS unit cascade (spec 4.D) -- "3.14 pm" needs 0.14*60 computed
// exactly, not through float64 rounding. Grounded on period/period.go's use
// of apd.BaseContext.WithPrecision for the same class of problem.
var ctx = apd.BaseContext.WithPrecision(40)

// numLit is a NUMBER token broken into the pieces the engine's
// classification rules key off: digit width before any decimal point, and
// the fractional digits (if any) for sub-unit carry.
type numLit struct {
	raw        string
	intDigits  string
	fracDigits string
	width      int // len(intDigits); what the spec calls "w"
}

func parseNumLit(text string) numLit {
	if dot := strings.IndexByte(text, '.'); dot >= 0 {
		return numLit{raw: text, intDigits: text[:dot], fracDigits: text[dot+1:], width: dot}
	}
	return numLit{raw: text, intDigits: text, fracDigits: "", width: len(text)}
}

func (n numLit) intValue() (int, error) {
	if n.intDigits == "" {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(n.intDigits)
}

// fracDecimal renders the fractional digits as an exact apd.Decimal, e.g.
// "14" -> 0.14.
func (n numLit) fracDecimal() *apd.Decimal {
	if n.fracDigits == "" {
		return apd.New(0, 0)
	}
	v, err := strconv.ParseInt(n.fracDigits, 10, 64)
	if err != nil {
		return apd.New(0, 0)
	}
	return apd.New(v, -int32(len(n.fracDigits)))
}

// carryFraction multiplies the fractional remainder by multiplier and
// truncates to an integer (e.g. the .14 of "3.14" hours carried into
// minutes: 0.14*60 truncated to 8).
func carryFraction(frac *apd.Decimal, multiplier int64) int {
	product := new(apd.Decimal)
	if _, err := ctx.Mul(product, frac, apd.New(multiplier, 0)); err != nil {
		return 0
	}
	truncated := new(apd.Decimal)
	if _, err := ctx.QuoInteger(truncated, product, apd.New(1, 0)); err != nil {
		return 0
	}
	v, err := truncated.Int64()
	if err != nil {
		return 0
	}
	return int(v)
}

// fracDigitsToMicros interprets fracDigits as the fractional part of a
// seconds value and scales it to microseconds, e.g. "5" -> 500000,
// "123456789" -> 123456 (truncated, not rounded, past microsecond
// resolution).
func fracDigitsToMicros(fracDigits string) int {
	if fracDigits == "" {
		return 0
	}
	frac := numLit{fracDigits: fracDigits}.fracDecimal()
	return carryFraction(frac, 1_000_000)
}

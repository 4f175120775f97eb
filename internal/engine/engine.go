// Package engine implements the DateTime Assembly Engine (spec 4.D): the
// state machine that walks a lexed token stream, classifies each token in
// context, and accumulates a result.Partial plus an ordered list of
// still-ambiguous numeric date components for the YMD resolver.
package engine

import (
	"errors"
	"unicode/utf8"

	"github.com/imarsman/dateparse/internal/lex"
	"github.com/imarsman/dateparse/internal/result"
	"github.com/imarsman/dateparse/internal/vocab"
)

// ErrBadFormat is returned when the token stream cannot be classified and
// fuzzy mode is off.
var ErrBadFormat = errors.New("engine: bad format")

// Output bundles the accumulated Partial with the still-unresolved YMD
// triplet; the caller runs internal/ymd on it to fill in Year/Month/Day.
type Output struct {
	Partial *result.Partial
	YMD     []int
	Mstridx int
}

type Engine struct {
	toks    []lex.Token
	i       int
	info    *vocab.Info
	fuzzy   bool
	res     *result.Partial
	ymdVals []int
	mstridx int
}

// Parse tokenizes s and runs the assembly engine over it.
func Parse(s string, info *vocab.Info, fuzzy bool) (Output, error) {
	e := &Engine{
		toks:    lex.Tokenize(s),
		info:    info,
		fuzzy:   fuzzy,
		res:     &result.Partial{},
		mstridx: -1,
	}
	return e.run()
}

func (e *Engine) run() (Output, error) {
	for e.i < len(e.toks) {
		t := e.toks[e.i]
		var err error
		switch t.Kind {
		case lex.SPACE:
			e.i++
			continue
		case lex.NUMBER:
			err = e.classifyNumber()
		case lex.WORD:
			err = e.classifyWord()
		case lex.PUNCT:
			err = e.classifyPunct()
		}
		if err != nil {
			return Output{}, err
		}
	}
	if len(e.ymdVals) > 3 {
		return Output{}, ErrBadFormat
	}
	return Output{Partial: e.res, YMD: e.ymdVals, Mstridx: e.mstridx}, nil
}

func (e *Engine) fail() error {
	if e.fuzzy {
		return nil
	}
	return ErrBadFormat
}

func (e *Engine) at(idx int) (lex.Token, bool) {
	if idx < 0 || idx >= len(e.toks) {
		return lex.Token{}, false
	}
	return e.toks[idx], true
}

// nextSignificant returns the first non-SPACE token at or after from,
// without consuming it.
func (e *Engine) nextSignificant(from int) (lex.Token, int, bool) {
	idx := from
	for idx < len(e.toks) && e.toks[idx].Kind == lex.SPACE {
		idx++
	}
	if idx >= len(e.toks) {
		return lex.Token{}, idx, false
	}
	return e.toks[idx], idx, true
}

func (e *Engine) pushYMD(v int) {
	e.ymdVals = append(e.ymdVals, v)
}

func (e *Engine) applyAMPM(hour int, ampmIdx int, fracDigits string) {
	if ampmIdx == 1 && hour < 12 {
		hour += 12
	}
	if ampmIdx == 0 && hour == 12 {
		hour = 0
	}
	e.res.SetHour(hour)
	if fracDigits != "" {
		e.res.SetMinute(carryFraction(numLit{fracDigits: fracDigits}.fracDecimal(), 60))
	}
}

// ---- NUMBER classification (spec 4.D rule 1) ----

func (e *Engine) classifyNumber() error {
	tok := e.toks[e.i]
	lit := parseNumLit(tok.Text)
	v, convErr := lit.intValue()
	e.i++ // NUMBER token is always consumed immediately
	if convErr != nil {
		if e.fuzzy {
			return nil
		}
		return ErrBadFormat
	}
	w := lit.width

	// Compact time after a full date: "20030925 1036" style.
	if len(e.ymdVals) == 3 && (w == 2 || w == 4) {
		if nt, _, ok := e.nextSignificant(e.i); !ok || !(nt.Kind == lex.PUNCT && nt.Text == ":") {
			if w == 4 {
				e.res.SetHour(v / 100)
				e.res.SetMinute(v % 100)
			} else {
				e.res.SetHour(v)
			}
			return nil
		}
	}

	// 6 or 6+.frac run: YYMMDD or HHMMSS[.fff].
	if w == 6 {
		if len(e.ymdVals) == 0 && lit.fracDigits == "" {
			yy, mm, dd := v/10000, (v/100)%100, v%100
			e.pushYMD(result.ConvertYear(yy, e.info))
			e.pushYMD(mm)
			e.pushYMD(dd)
			return nil
		}
		e.res.SetHour(v / 10000)
		e.res.SetMinute((v / 100) % 100)
		e.res.SetSecond(v % 100)
		if lit.fracDigits != "" {
			e.res.SetMicrosecond(fracDigitsToMicros(lit.fracDigits))
		}
		return nil
	}

	// 8-digit compact date: YYYYMMDD.
	if w == 8 {
		e.pushYMD(v / 10000)
		e.pushYMD((v / 100) % 100)
		e.pushYMD(v % 100)
		return nil
	}

	// HMS unit suffix: "3h25m", "2 hours 15 minutes".
	if nt, nidx, ok := e.nextSignificant(e.i); ok && nt.Kind == lex.WORD {
		if idx, isHMS := e.info.HMSIndex(nt.Text); isHMS {
			e.hmsCascade(lit, v, idx, nidx)
			return nil
		}
	}

	// HH:MM[:SS[.fff]]
	if nt, _, ok := e.nextSignificant(e.i); ok && nt.Kind == lex.PUNCT && nt.Text == ":" {
		return e.classifyClockTime(v)
	}

	// Date separator: "10/09/1998", "10-09-1998", "10.09.1998".
	if nt, ok := e.at(e.i); ok && nt.Kind == lex.PUNCT && (nt.Text == "-" || nt.Text == "/" || nt.Text == ".") {
		return e.classifyDateSeparator(v, nt.Text)
	}

	// Immediate AM/PM: "3.14 pm", "10am".
	if nt, nidx, ok := e.nextSignificant(e.i); ok && nt.Kind == lex.WORD {
		if ampmIdx, isAMPM := e.info.AMPM(nt.Text); isAMPM {
			e.applyAMPM(v, ampmIdx, lit.fracDigits)
			e.i = nidx + 1
			return nil
		}
	}

	// A jump word then AM/PM: "10 at pm"-shaped input where a word from the
	// jump list sits between the hour and the marker.
	if nt, nidx, ok := e.nextSignificant(e.i); ok && nt.Kind == lex.WORD && e.info.IsJump(nt.Text) {
		if nt2, nidx2, ok2 := e.nextSignificant(nidx + 1); ok2 && nt2.Kind == lex.WORD {
			if ampmIdx, isAMPM := e.info.AMPM(nt2.Text); isAMPM {
				e.applyAMPM(v, ampmIdx, lit.fracDigits)
				e.i = nidx2 + 1
				return nil
			}
		}
	}

	// Trailing/standalone number: push as a date component if there is
	// still room for one.
	if len(e.ymdVals) < 3 {
		e.pushYMD(v)
		return nil
	}

	return e.fail()
}

// hmsCascade implements the HMS unit cascade: starting at hms index idx,
// assign v to the matching field, carrying any fractional remainder into
// the next smaller unit, then keep consuming NUMBER+unit pairs until
// seconds are reached or no number follows.
func (e *Engine) hmsCascade(lit numLit, v int, idx int, unitIdx int) {
	setByIdx := func(i, val int) {
		switch i {
		case 0:
			e.res.SetHour(val)
		case 1:
			e.res.SetMinute(val)
		case 2:
			e.res.SetSecond(val)
		}
	}

	setByIdx(idx, v)
	if lit.fracDigits != "" {
		frac := lit.fracDecimal()
		switch idx {
		case 0:
			setByIdx(1, carryFraction(frac, 60))
		case 1:
			setByIdx(2, carryFraction(frac, 60))
		case 2:
			e.res.SetMicrosecond(carryFraction(frac, 1_000_000))
		}
	}
	e.i = unitIdx + 1

	for idx < 2 {
		nt, nidx, ok := e.nextSignificant(e.i)
		if !ok || nt.Kind != lex.NUMBER {
			break
		}
		lit2 := parseNumLit(nt.Text)
		v2, err := lit2.intValue()
		if err != nil {
			break
		}
		idx++
		consumeUpTo := nidx + 1
		if nt3, nidx3, ok3 := e.nextSignificant(nidx + 1); ok3 && nt3.Kind == lex.WORD {
			if snapIdx, isHMS := e.info.HMSIndex(nt3.Text); isHMS {
				idx = snapIdx
				consumeUpTo = nidx3 + 1
			}
		}
		if idx > 2 {
			break
		}
		setByIdx(idx, v2)
		if lit2.fracDigits != "" {
			frac := lit2.fracDecimal()
			switch idx {
			case 0:
				setByIdx(1, carryFraction(frac, 60))
			case 1:
				setByIdx(2, carryFraction(frac, 60))
			case 2:
				e.res.SetMicrosecond(carryFraction(frac, 1_000_000))
			}
		}
		e.i = consumeUpTo
	}
}

func (e *Engine) classifyClockTime(hour int) error {
	// Caller already confirmed the next significant token is ':'.
	_, nidx, _ := e.nextSignificant(e.i)
	pos := nidx + 1

	nt2, ok2 := e.at(pos)
	if !ok2 || nt2.Kind != lex.NUMBER {
		return e.fail()
	}
	lit2 := parseNumLit(nt2.Text)
	v2, err2 := lit2.intValue()
	if err2 != nil {
		return e.fail()
	}
	e.res.SetHour(hour)
	e.res.SetMinute(v2)
	if lit2.fracDigits != "" {
		e.res.SetSecond(carryFraction(lit2.fracDecimal(), 60))
	}
	pos++

	if nt3, nidx3, ok3 := e.nextSignificant(pos); ok3 && nt3.Kind == lex.PUNCT && nt3.Text == ":" {
		innerPos := nidx3 + 1
		if nt4, ok4 := e.at(innerPos); ok4 && nt4.Kind == lex.NUMBER {
			lit4 := parseNumLit(nt4.Text)
			if v4, err4 := lit4.intValue(); err4 == nil {
				e.res.SetSecond(v4)
				if lit4.fracDigits != "" {
					e.res.SetMicrosecond(fracDigitsToMicros(lit4.fracDigits))
				}
				pos = innerPos + 1
			}
		}
	}

	e.i = pos
	return nil
}

func (e *Engine) classifyDateSeparator(v int, sep string) error {
	e.pushYMD(v)
	pos := e.i + 1

	nt, ok := e.at(pos)
	if !ok {
		return e.fail()
	}
	switch {
	case nt.Kind == lex.NUMBER:
		lit := parseNumLit(nt.Text)
		v2, err := lit.intValue()
		if err != nil {
			return e.fail()
		}
		e.pushYMD(v2)
		pos++
	case nt.Kind == lex.WORD:
		if mi, ok := e.info.Month(nt.Text); ok {
			if e.mstridx != -1 {
				return e.fail()
			}
			e.mstridx = len(e.ymdVals)
			e.pushYMD(mi)
			pos++
		} else {
			return e.fail()
		}
	default:
		return e.fail()
	}

	if nt2, ok := e.at(pos); ok && nt2.Kind == lex.PUNCT && nt2.Text == sep {
		pos++
		if nt3, ok := e.at(pos); ok && nt3.Kind == lex.NUMBER {
			lit3 := parseNumLit(nt3.Text)
			if v3, err := lit3.intValue(); err == nil {
				e.pushYMD(v3)
				pos++
			}
		}
	}

	e.i = pos
	return nil
}

// ---- WORD classification (spec 4.D rules 2-5) ----

func (e *Engine) classifyWord() error {
	tok := e.toks[e.i]
	e.i++

	if widx, ok := e.info.Weekday(tok.Text); ok {
		e.res.SetWeekday(widx)
		return nil
	}

	if midx, ok := e.info.Month(tok.Text); ok {
		return e.classifyMonthWord(midx)
	}

	if ampmIdx, ok := e.info.AMPM(tok.Text); ok && e.res.Hour != nil {
		h := *e.res.Hour
		if ampmIdx == 1 && h < 12 {
			h += 12
		}
		if ampmIdx == 0 && h == 12 {
			h = 0
		}
		e.res.SetHour(h)
		return nil
	}

	if e.isCandidateTZName(tok.Text) {
		return e.classifyTZNameWord(tok.Text)
	}

	if e.info.IsJump(tok.Text) || e.fuzzy {
		return nil
	}
	return ErrBadFormat
}

func (e *Engine) classifyMonthWord(monthIdx int) error {
	if e.mstridx != -1 {
		return e.fail()
	}
	e.mstridx = len(e.ymdVals)
	e.pushYMD(monthIdx)

	if nt, ok := e.at(e.i); ok && nt.Kind == lex.PUNCT && (nt.Text == "-" || nt.Text == "/") {
		sep := nt.Text
		pos := e.i + 1
		if nt2, ok := e.at(pos); ok && nt2.Kind == lex.NUMBER {
			lit2 := parseNumLit(nt2.Text)
			if v2, err := lit2.intValue(); err == nil {
				e.pushYMD(v2)
				pos++
			}
		}
		if nt3, ok := e.at(pos); ok && nt3.Kind == lex.PUNCT && nt3.Text == sep {
			pos++
			if nt4, ok := e.at(pos); ok && nt4.Kind == lex.NUMBER {
				lit4 := parseNumLit(nt4.Text)
				if v4, err := lit4.intValue(); err == nil {
					e.pushYMD(v4)
					pos++
				}
			}
		}
		e.i = pos
		return nil
	}

	if nt1, idx1, ok1 := e.nextSignificant(e.i); ok1 && nt1.Kind == lex.WORD && e.info.IsPertain(nt1.Text) {
		if nt2, idx2, ok2 := e.nextSignificant(idx1 + 1); ok2 && nt2.Kind == lex.NUMBER {
			lit2 := parseNumLit(nt2.Text)
			if v2, err := lit2.intValue(); err == nil {
				e.pushYMD(result.ConvertYear(v2, e.info))
				e.i = idx2 + 1
			}
		}
	}
	return nil
}

// isCandidateTZName implements spec 4.D rule 5's guard: hour already set,
// no tzname/tzoffset yet, short all-uppercase-ASCII word.
func (e *Engine) isCandidateTZName(word string) bool {
	return e.res.Hour != nil && e.res.TZName == nil && e.res.TZOffset == nil &&
		utf8.RuneCountInString(word) <= 5 && vocab.IsASCIIUpper(word)
}

func (e *Engine) classifyTZNameWord(word string) error {
	e.res.SetTZName(word)
	if off, ok := e.info.TzOffset(word); ok {
		e.res.SetTZOffset(off)
	}

	nt, idx, ok := e.nextSignificant(e.i)
	if !ok || nt.Kind != lex.PUNCT || (nt.Text != "+" && nt.Text != "-") {
		return nil
	}

	// "GMT+3" means 3 hours east of the bearer IS GMT, i.e. -3 in the
	// standard sign convention: invert the sign before parsing the
	// numeric offset, and discard the bare name (the real zone is the one
	// the offset expresses).
	e.res.ClearTZOffset()
	if e.info.IsUTCZone(word) {
		e.res.ClearTZName()
	}
	inverted := "-"
	if nt.Text == "-" {
		inverted = "+"
	}
	pos, err := e.applyNumericTZOffset(inverted, idx+1)
	if err != nil {
		return err
	}
	e.i = pos
	return nil
}

// ---- PUNCT classification (spec 4.D rules 6-7) ----

func (e *Engine) classifyPunct() error {
	tok := e.toks[e.i]

	if (tok.Text == "+" || tok.Text == "-") && e.res.Hour != nil {
		pos, err := e.applyNumericTZOffset(tok.Text, e.i+1)
		if err != nil {
			e.i++
			return e.fail()
		}
		e.i = pos
		return nil
	}

	e.i++
	if e.info.IsJump(tok.Text) || e.fuzzy {
		return nil
	}
	return ErrBadFormat
}

// applyNumericTZOffset parses a signed numeric UTC offset starting at pos
// (spec 4.D rule 6), shared by the bare-PUNCT entry point and the
// bare-timezone-name sign-inversion path.
func (e *Engine) applyNumericTZOffset(signText string, pos int) (int, error) {
	sign := 1
	if signText == "-" {
		sign = -1
	}

	nt, ok := e.at(pos)
	if !ok || nt.Kind != lex.NUMBER {
		return pos, e.fail()
	}
	lit := parseNumLit(nt.Text)
	v, err := lit.intValue()
	if err != nil {
		return pos, e.fail()
	}

	var offset int
	next := pos + 1
	switch {
	case lit.width == 4:
		offset = (v/100)*3600 + (v%100)*60
	default:
		if nt2, ok := e.at(next); ok && nt2.Kind == lex.PUNCT && nt2.Text == ":" {
			mmPos := next + 1
			nt3, ok3 := e.at(mmPos)
			if !ok3 || nt3.Kind != lex.NUMBER {
				return pos, e.fail()
			}
			lit3 := parseNumLit(nt3.Text)
			mm, err3 := lit3.intValue()
			if err3 != nil {
				return pos, e.fail()
			}
			offset = v*3600 + mm*60
			next = mmPos + 1
		} else if lit.width <= 2 {
			offset = v * 3600
		} else {
			return pos, e.fail()
		}
	}
	offset *= sign
	e.res.SetTZOffset(offset)

	if nt4, idx4, ok4 := e.nextSignificant(next); ok4 && nt4.Kind == lex.WORD && e.info.IsJump(nt4.Text) {
		if nt5, idx5, ok5 := e.nextSignificant(idx4 + 1); ok5 && nt5.Kind == lex.PUNCT && nt5.Text == "(" {
			if nt6, idx6, ok6 := e.nextSignificant(idx5 + 1); ok6 && nt6.Kind == lex.WORD {
				rc := utf8.RuneCountInString(nt6.Text)
				if rc >= 3 && rc <= 5 && vocab.IsASCIIUpper(nt6.Text) {
					if nt7, idx7, ok7 := e.nextSignificant(idx6 + 1); ok7 && nt7.Kind == lex.PUNCT && nt7.Text == ")" {
						e.res.SetTZName(nt6.Text)
						next = idx7 + 1
					}
				}
			}
		}
	}

	return next, nil
}

// Package lex turns a human-written date/time string into a flat stream of
// semantic tokens. It is a hand-written character scanner, not a
// regular-expression lexer: the decimal-point handling in numeric runs and
// the am/pm word-merge pre-pass both need lookahead and back-tracking that a
// generated DFA does not give us cheaply.
package lex

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind identifies the lexical class of a Token.
type Kind int

// Token kinds produced by the scanner.
const (
	WORD Kind = iota
	NUMBER
	PUNCT
	SPACE
)

func (k Kind) String() string {
	switch k {
	case WORD:
		return "WORD"
	case NUMBER:
		return "NUMBER"
	case PUNCT:
		return "PUNCT"
	case SPACE:
		return "SPACE"
	default:
		return "UNKNOWN"
	}
}

// Token is one lexical unit. NUMBER tokens keep their original textual
// width, which the assembly engine needs to tell "04" from "2004".
type Token struct {
	Kind Kind
	Text string
}

func isWordRune(r rune) bool {
	if r == '_' {
		return true
	}
	// ASCII letters, plus the ISO-8859-1 accented range the original
	// vocabulary treats as letters. Accept any Unicode letter so
	// non-Latin-1 locales still tokenize sanely.
	return unicode.IsLetter(r)
}

func isNumRune(r rune) bool {
	return r >= '0' && r <= '9'
}

func isSpaceRune(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

type scanState int

const (
	stateStart scanState = iota
	stateWord
	stateNum
)

// Tokenize scans s into a finite token sequence. It never fails: malformed
// input simply produces PUNCT runs that a downstream consumer may reject.
func Tokenize(s string) []Token {
	runes := []rune(s)
	n := len(runes)

	var toks []Token
	var buf []rune
	state := stateStart

	flushWord := func() {
		if len(buf) == 0 {
			return
		}
		toks = append(toks, Token{Kind: WORD, Text: string(buf)})
		buf = buf[:0]
	}

	flushNum := func() {
		if len(buf) == 0 {
			return
		}
		toks = append(toks, numericTokens(string(buf))...)
		buf = buf[:0]
	}

	i := 0
	for i < n {
		r := runes[i]
		switch state {
		case stateStart:
			switch {
			case isWordRune(r):
				state = stateWord
				buf = append(buf, r)
				i++
			case isNumRune(r):
				state = stateNum
				buf = append(buf, r)
				i++
			case isSpaceRune(r):
				j := i
				for j < n && isSpaceRune(runes[j]) {
					j++
				}
				toks = append(toks, Token{Kind: SPACE, Text: " "})
				i = j
			default:
				toks = append(toks, Token{Kind: PUNCT, Text: string(r)})
				i++
			}
		case stateWord:
			if isWordRune(r) {
				buf = append(buf, r)
				i++
				continue
			}
			flushWord()
			state = stateStart
		case stateNum:
			if isNumRune(r) || r == '.' {
				buf = append(buf, r)
				i++
				continue
			}
			flushNum()
			state = stateStart
		}
	}
	// Flush whatever is left in the accumulator at end of input.
	switch state {
	case stateWord:
		flushWord()
	case stateNum:
		flushNum()
	}

	return mergeAbbreviatedWords(toks)
}

// numericTokens applies the decimal-point disambiguation rule from the
// spec: a single interior dot stays part of the NUMBER ("3.14"); more than
// one dot splits the run into NUMBER/PUNCT('.')/NUMBER/... pairs, and a
// trailing dot is always split off as its own PUNCT so sentence punctuation
// doesn't get glued onto a date component ("25.").
func numericTokens(s string) []Token {
	trailingDot := false
	if strings.HasSuffix(s, ".") {
		trailingDot = true
		s = s[:len(s)-1]
	}

	k := strings.Count(s, ".")

	var toks []Token
	switch {
	case k == 0:
		toks = append(toks, Token{Kind: NUMBER, Text: s})
	case k == 1 && !trailingDot:
		toks = append(toks, Token{Kind: NUMBER, Text: s})
	default:
		parts := strings.Split(s, ".")
		toks = append(toks, Token{Kind: NUMBER, Text: parts[0]})
		for _, p := range parts[1:] {
			toks = append(toks, Token{Kind: PUNCT, Text: "."})
			if p != "" {
				toks = append(toks, Token{Kind: NUMBER, Text: p})
			}
		}
	}
	if trailingDot {
		toks = append(toks, Token{Kind: PUNCT, Text: "."})
	}
	return toks
}

// mergeAbbreviatedWords folds a dotted single-letter abbreviation such as
// "p.m." (WORD"p" PUNCT"." WORD"m" PUNCT".") into one WORD token "pm" so the
// assembly engine's AM/PM classification in spec 4.D(4) sees a single token,
// matching the original parser's am/pm pre-pass. Only am/pm spellings are
// folded; this is a narrow normalization, not a general abbreviation merger.
func mergeAbbreviatedWords(toks []Token) []Token {
	isSingleLetter := func(t Token) bool {
		return t.Kind == WORD && utf8.RuneCountInString(t.Text) == 1
	}
	isDot := func(t Token) bool {
		return t.Kind == PUNCT && t.Text == "."
	}

	out := make([]Token, 0, len(toks))
	i := 0
	for i < len(toks) {
		if i+3 < len(toks) &&
			isSingleLetter(toks[i]) && isDot(toks[i+1]) &&
			isSingleLetter(toks[i+2]) && isDot(toks[i+3]) {
			combined := strings.ToLower(toks[i].Text + toks[i+2].Text)
			if combined == "am" || combined == "pm" {
				out = append(out, Token{Kind: WORD, Text: combined})
				i += 4
				continue
			}
		}
		out = append(out, toks[i])
		i++
	}
	return out
}

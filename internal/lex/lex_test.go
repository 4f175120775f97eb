package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func kinds(toks []Token) []Kind {
	ks := make([]Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func texts(toks []Token) []string {
	ts := make([]string, len(toks))
	for i, t := range toks {
		ts[i] = t.Text
	}
	return ts
}

func TestTokenizeSimpleDate(t *testing.T) {
	toks := Tokenize("10/09/1998")
	assert.Equal(t, []Kind{NUMBER, PUNCT, NUMBER, PUNCT, NUMBER}, kinds(toks))
	assert.Equal(t, []string{"10", "/", "09", "/", "1998"}, texts(toks))
}

func TestTokenizeCollapsesWhitespace(t *testing.T) {
	toks := Tokenize("Thu   Sep 25")
	assert.Equal(t, []Kind{WORD, SPACE, WORD, SPACE, NUMBER}, kinds(toks))
	for _, tok := range toks {
		if tok.Kind == SPACE {
			assert.Equal(t, " ", tok.Text)
		}
	}
}

func TestTokenizeSingleDotStaysInNumber(t *testing.T) {
	toks := Tokenize("3.14")
	assert.Equal(t, []Kind{NUMBER}, kinds(toks))
	assert.Equal(t, "3.14", toks[0].Text)
}

func TestTokenizeMultiDotSplits(t *testing.T) {
	toks := Tokenize("1.2.3")
	assert.Equal(t, []Kind{NUMBER, PUNCT, NUMBER, PUNCT, NUMBER}, kinds(toks))
	assert.Equal(t, []string{"1", ".", "2", ".", "3"}, texts(toks))
}

func TestTokenizeTrailingDotSplitsOff(t *testing.T) {
	toks := Tokenize("25.")
	assert.Equal(t, []Kind{NUMBER, PUNCT}, kinds(toks))
	assert.Equal(t, []string{"25", "."}, texts(toks))
}

func TestTokenizePreservesNumericWidth(t *testing.T) {
	toks := Tokenize("04 2004")
	assert.Equal(t, "04", toks[0].Text)
	assert.Equal(t, "2004", toks[2].Text)
}

func TestTokenizeMergesAMPM(t *testing.T) {
	toks := Tokenize("4:30 p.m.")
	assert.Equal(t, WORD, toks[len(toks)-1].Kind)
	assert.Equal(t, "pm", toks[len(toks)-1].Text)
}

func TestTokenizeNeverFails(t *testing.T) {
	for _, in := range []string{"", "   ", "???", "!@#$%^&*()", "\t\n"} {
		assert.NotPanics(t, func() { Tokenize(in) })
	}
}

func TestTokenizePunctRun(t *testing.T) {
	toks := Tokenize("--")
	assert.Equal(t, []Kind{PUNCT, PUNCT}, kinds(toks))
}

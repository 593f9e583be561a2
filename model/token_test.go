package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenAccessors(t *testing.T) {
	tok := Token{
		Surface: "走っ",
		Features: []string{
			"動詞", "自立", "*", "*", "五段・ラ行", "連用タ接続", "走る", "ハシッ", "ハシッ",
		},
	}

	assert.Equal(t, POSVerb, tok.POS())

	d1, ok := tok.POSDetail1()
	assert.True(t, ok)
	assert.Equal(t, "自立", d1)

	d2, ok := tok.POSDetail2()
	assert.True(t, ok)
	assert.Equal(t, "*", d2, "the * placeholder is a present value, not an absence")

	ct, ok := tok.ConjugationType()
	assert.True(t, ok)
	assert.Equal(t, "五段・ラ行", ct)

	cf, ok := tok.ConjugationForm()
	assert.True(t, ok)
	assert.Equal(t, ConjugationForm("連用タ接続"), cf)

	base, ok := tok.BaseForm()
	assert.True(t, ok)
	assert.Equal(t, "走る", base)

	reading, ok := tok.Reading()
	assert.True(t, ok)
	assert.Equal(t, "ハシッ", reading)

	pron, ok := tok.Pronunciation()
	assert.True(t, ok)
	assert.Equal(t, "ハシッ", pron)
}

func TestTokenAccessorsDegradeWhenAbsent(t *testing.T) {
	tok := Token{Surface: "xyzzy"}

	assert.Equal(t, POSUnknown, tok.POS())

	_, ok := tok.POSDetail1()
	assert.False(t, ok)
	_, ok = tok.ConjugationForm()
	assert.False(t, ok)
	_, ok = tok.BaseForm()
	assert.False(t, ok)
	_, ok = tok.Reading()
	assert.False(t, ok)
	_, ok = tok.Pronunciation()
	assert.False(t, ok)
}

func TestTokenShortFeatureVector(t *testing.T) {
	tok := Token{Surface: "ー", Features: []string{"記号", "一般"}}

	assert.Equal(t, POSSymbol, tok.POS())

	d1, ok := tok.POSDetail1()
	assert.True(t, ok)
	assert.Equal(t, "一般", d1)

	_, ok = tok.POSDetail2()
	assert.False(t, ok)
	_, ok = tok.ConjugationForm()
	assert.False(t, ok)
}

func TestIsPredicate(t *testing.T) {
	assert.True(t, POSVerb.IsPredicate())
	assert.True(t, POSAdjective.IsPredicate())
	assert.True(t, POSAdjectivalNoun.IsPredicate())
	assert.False(t, POSNoun.IsPredicate())
	assert.False(t, POSParticle.IsPredicate())
	assert.False(t, POSUnknown.IsPredicate())
}

func TestParticleKindOf(t *testing.T) {
	kind, ok := ParticleKindOf(Token{Surface: "が", Features: []string{"助詞", "格助詞", "一般"}})
	assert.True(t, ok)
	assert.Equal(t, ParticleCase, kind)

	_, ok = ParticleKindOf(Token{Surface: "が", Features: []string{"助詞"}})
	assert.False(t, ok)
}

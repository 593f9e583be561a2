package model

// Token represents a token / morpheme produced by the tokenizer.
// Features is the raw IPAdic-style feature vector; any index may be absent
// for unknown words, so all accessors degrade silently. Note that the
// dictionary uses "*" as an explicit empty value: accessors report it as
// present, matching how the rule table treats it.
type Token struct {
	Surface  string   `json:"surface"`
	Features []string `json:"features,omitempty"`
	Start    int      `json:"start"`
	End      int      `json:"end"`
}

// Feature vector positions (IPAdic layout).
const (
	featPOS             = 0
	featPOSDetail1      = 1
	featPOSDetail2      = 2
	featConjugationType = 4
	featConjugationForm = 5
	featBaseForm        = 6
	featReading         = 7
	featPronunciation   = 8
)

func (t Token) feature(i int) (string, bool) {
	if i < 0 || i >= len(t.Features) {
		return "", false
	}
	return t.Features[i], true
}

// POS returns the major part-of-speech category, or POSUnknown if the
// tokenizer produced no features for this token.
func (t Token) POS() PartOfSpeech {
	s, ok := t.feature(featPOS)
	if !ok {
		return POSUnknown
	}
	return PartOfSpeech(s)
}

// POSDetail1 returns the first POS sub-detail (e.g. 格助詞, 固有名詞, 非自立).
func (t Token) POSDetail1() (string, bool) {
	return t.feature(featPOSDetail1)
}

// POSDetail2 returns the second POS sub-detail.
func (t Token) POSDetail2() (string, bool) {
	return t.feature(featPOSDetail2)
}

// ConjugationType returns the conjugation paradigm (e.g. 五段・ラ行).
func (t Token) ConjugationType() (string, bool) {
	return t.feature(featConjugationType)
}

// ConjugationForm returns the inflection form of the token.
func (t Token) ConjugationForm() (ConjugationForm, bool) {
	s, ok := t.feature(featConjugationForm)
	return ConjugationForm(s), ok
}

// BaseForm returns the dictionary form (lemma).
func (t Token) BaseForm() (string, bool) {
	return t.feature(featBaseForm)
}

// Reading returns the katakana reading.
func (t Token) Reading() (string, bool) {
	return t.feature(featReading)
}

// Pronunciation returns the pronunciation, which can differ from the reading
// for long vowels (e.g. オウ vs オー).
func (t Token) Pronunciation() (string, bool) {
	return t.feature(featPronunciation)
}

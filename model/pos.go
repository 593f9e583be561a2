package model

// PartOfSpeech is the major POS category assigned by the analyzer, using the
// IPAdic category names. Values outside the listed constants are possible
// (dictionaries evolve); rule dispatch must treat them via its default arm.
type PartOfSpeech string

const (
	POSNoun           PartOfSpeech = "名詞"
	POSVerb           PartOfSpeech = "動詞"
	POSAdjective      PartOfSpeech = "形容詞"
	POSAdjectivalNoun PartOfSpeech = "形容動詞"
	POSParticle       PartOfSpeech = "助詞"
	POSAuxiliary      PartOfSpeech = "助動詞"
	POSConjunction    PartOfSpeech = "接続詞"
	POSInterjection   PartOfSpeech = "感動詞"
	POSPrefix         PartOfSpeech = "接頭詞"
	POSSuffix         PartOfSpeech = "接尾詞"
	POSAdverb         PartOfSpeech = "副詞"
	POSAdnominal      PartOfSpeech = "連体詞"
	POSSymbol         PartOfSpeech = "記号"

	// POSUnknown is the sentinel for tokens with no feature vector.
	POSUnknown PartOfSpeech = "未知語"
)

// IsPredicate reports whether the category inflects (用言).
func (p PartOfSpeech) IsPredicate() bool {
	return p == POSVerb || p == POSAdjective || p == POSAdjectivalNoun
}

// ParticleKind is the POS sub-detail of a particle (助詞).
type ParticleKind string

const (
	ParticleCase         ParticleKind = "格助詞"
	ParticleBinding      ParticleKind = "係助詞"
	ParticleAdverbial    ParticleKind = "副助詞"
	ParticleConjunctive  ParticleKind = "接続助詞"
	ParticleSentenceEnd  ParticleKind = "終助詞"
	ParticleNominalizer  ParticleKind = "連体化"
	ParticleCoordinating ParticleKind = "並立助詞"
)

// ParticleKindOf returns the particle kind of a particle token. The second
// return is false when the token carries no sub-detail.
func ParticleKindOf(t Token) (ParticleKind, bool) {
	d, ok := t.POSDetail1()
	return ParticleKind(d), ok
}

// ConjugationForm is the inflection form of a verb, adjective or adjectival
// noun. The constants cover the forms the boundary rules dispatch on;
// IPAdic variants such as 連用タ接続 fall outside them on purpose and take
// the conservative default.
type ConjugationForm string

const (
	FormBase        ConjugationForm = "基本形"
	FormTerminal    ConjugationForm = "終止形"
	FormAttributive ConjugationForm = "連体形"
	FormContinuous  ConjugationForm = "連用形"
	FormConditional ConjugationForm = "仮定形"
	FormImperative  ConjugationForm = "命令形"
)

// NonIndependent is the POS sub-detail marking dependent (auxiliary-like)
// verbs and nouns, e.g. the いる in 読んでいる.
const NonIndependent = "非自立"

// ProperNoun is the POS sub-detail for proper nouns (固有名詞).
const ProperNoun = "固有名詞"

// SuffixDetail is the POS sub-detail for suffix nouns (名詞,接尾).
const SuffixDetail = "接尾"

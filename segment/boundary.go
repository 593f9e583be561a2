// Package segment splits morphologically-tagged Japanese text into bunsetsu,
// the minimal phrase units pairing one content word with its attached
// function words.
//
// The boundary rules are a documented heuristic, not a grammar: function
// words attach to the preceding content word, inflected predicates end a
// phrase only in terminal or imperative form, and punctuation and closing
// brackets are hard boundaries. Merging is the default because an over-long
// phrase reads better than a spurious split.
package segment

import (
	"unicode/utf8"

	"bunsetsu/model"
)

// Hard-boundary punctuation: a phrase always ends after these.
var sentencePunct = map[string]bool{
	"、": true, "。": true, "！": true, "？": true, "…": true,
}

var closingBrackets = map[string]bool{
	"」": true, "』": true, "）": true, "】": true,
}

// Opening brackets stay attached to the content that follows them.
var openingBrackets = map[string]bool{
	"「": true, "『": true, "（": true, "【": true,
}

// Quotation-pattern verbs: と directly before one of these base forms is the
// quotative と and does not end the phrase (〜という, 〜と思う, …).
var quotationVerbs = map[string]bool{
	"いう": true, "言う": true, "思う": true, "考える": true, "する": true, "なる": true,
}

// IsBoundary reports whether a phrase boundary falls between cur and next.
// It is a pure function of the two tokens' surface and feature data.
func IsBoundary(cur, next model.Token) bool {
	if cur.POS() == model.POSSymbol {
		switch {
		case sentencePunct[cur.Surface]:
			return true
		case closingBrackets[cur.Surface]:
			return true
		case openingBrackets[cur.Surface]:
			return false
		}
	}

	switch cur.POS() {
	case model.POSParticle:
		return particleBoundary(cur, next)
	case model.POSVerb, model.POSAdjective, model.POSAdjectivalNoun:
		return predicateBoundary(cur, next)
	case model.POSAuxiliary:
		return auxiliaryBoundary(cur, next)
	case model.POSConjunction, model.POSInterjection:
		// Each forms a phrase of its own.
		return true
	case model.POSPrefix:
		return false
	case model.POSNoun:
		return nounBoundary(cur, next)
	case model.POSAdverb:
		return next.POS() != model.POSParticle
	case model.POSAdnominal:
		return false
	default:
		// Symbols without a literal rule, unknown words, anything the
		// dictionary invents later: merge.
		return false
	}
}

func particleBoundary(cur, next model.Token) bool {
	kind, _ := model.ParticleKindOf(cur)
	switch kind {
	case model.ParticleCase:
		return caseParticleBoundary(cur, next)
	case model.ParticleBinding, model.ParticleAdverbial:
		// は、も、こそ、さえ…
		return true
	case model.ParticleConjunctive:
		return conjunctiveParticleBoundary(cur, next)
	case model.ParticleSentenceEnd:
		// か、ね、よ、な… sentence-final, always a boundary.
		return true
	case model.ParticleNominalizer:
		// の as a formal noun.
		return false
	case model.ParticleCoordinating:
		return true
	default:
		// Runs of adjacent function words stay together.
		np := next.POS()
		return np != model.POSParticle && np != model.POSAuxiliary
	}
}

func caseParticleBoundary(cur, next model.Token) bool {
	switch cur.Surface {
	case "の":
		// Adnominal の keeps modifying the next noun; only split when a
		// predicate follows.
		np := next.POS()
		return np.IsPredicate() || np == model.POSAuxiliary
	case "と":
		if base, ok := next.BaseForm(); ok && quotationVerbs[base] {
			return false
		}
		return true
	default:
		// が、を、に、で、へ、から、まで、より
		return true
	}
}

func conjunctiveParticleBoundary(cur, next model.Token) bool {
	switch cur.Surface {
	case "て", "で":
		// 読んで + いる: a dependent verb or auxiliary continues the phrase.
		if next.POS() == model.POSVerb {
			if detail, ok := next.POSDetail1(); ok {
				return detail != model.NonIndependent
			}
			return true
		}
		return next.POS() != model.POSAuxiliary
	default:
		// ので、のに、から、たり、ながら…
		return true
	}
}

func predicateBoundary(cur, next model.Token) bool {
	form, _ := cur.ConjugationForm()
	switch form {
	case model.FormTerminal, model.FormBase:
		np := next.POS()
		return np != model.POSAuxiliary && np != model.POSParticle
	case model.FormAttributive:
		return false
	case model.FormContinuous:
		switch next.POS() {
		case model.POSAuxiliary:
			// 〜している、〜してある
			return false
		case model.POSVerb:
			// Compound verb: only a dependent continuation merges.
			if detail, ok := next.POSDetail1(); ok {
				return detail != model.NonIndependent
			}
			return true
		default:
			return true
		}
	case model.FormConditional:
		// 〜ば、〜たら
		return next.POS() == model.POSParticle
	case model.FormImperative:
		return true
	default:
		// Covers IPAdic variants like 連用タ接続 and absent forms.
		return false
	}
}

func auxiliaryBoundary(cur, next model.Token) bool {
	np := next.POS()
	switch cur.Surface {
	case "いる", "ある", "おる":
		return np == model.POSParticle || np == model.POSSymbol
	case "ない", "ぬ", "ん":
		// Negation: 〜ないで / 〜ないから / 〜ないの continue into the
		// particle, anything else only breaks before a symbol.
		if np == model.POSParticle {
			r, _ := utf8.DecodeRuneInString(next.Surface)
			return r == 'で' || r == 'か' || r == 'の'
		}
		return np == model.POSSymbol
	case "たい", "たがる":
		return np == model.POSParticle || np == model.POSSymbol
	case "れる", "られる", "せる", "させる":
		// Passive/causative chains onto further auxiliaries (〜されます).
		return np != model.POSAuxiliary
	default:
		return np == model.POSParticle || np == model.POSSymbol
	}
}

func nounBoundary(cur, next model.Token) bool {
	switch next.POS() {
	case model.POSParticle, model.POSSuffix:
		return false
	case model.POSNoun:
		// Compound nouns merge; a proper noun usually ends its phrase
		// unless a suffix-like noun follows.
		detail, ok := cur.POSDetail1()
		if !ok || detail != model.ProperNoun {
			return false
		}
		if nextDetail, ok := next.POSDetail1(); ok {
			return nextDetail != model.SuffixDetail && nextDetail != model.NonIndependent
		}
		return true
	default:
		return false
	}
}

// Package stats computes summary statistics for a piece of Japanese text:
// character and token counts, POS tallies, phrase count, and a rough
// reading-time estimate.
package stats

import (
	"context"
	"time"
	"unicode/utf8"

	"bunsetsu/model"
	"bunsetsu/segment"
	"bunsetsu/tokenize"
)

// charsPerMinute is an average silent-reading speed for Japanese prose.
const charsPerMinute = 500

// TextStats summarizes one text.
type TextStats struct {
	CharCount      int     `json:"char_count"`
	TokenCount     int     `json:"token_count"`
	NounCount      int     `json:"noun_count"`
	VerbCount      int     `json:"verb_count"`
	AdjectiveCount int     `json:"adj_count"`
	ParticleCount  int     `json:"particle_count"`
	PhraseCount    int     `json:"phrase_count"`
	ReadingSeconds float64 `json:"reading_seconds"`
}

// ReadingTime estimates how long a text of charCount characters takes to
// read.
func ReadingTime(charCount int) time.Duration {
	if charCount <= 0 {
		return 0
	}
	return time.Duration(float64(charCount) / charsPerMinute * float64(time.Minute))
}

// Collect tokenizes and splits text and returns its statistics. Empty text
// yields zero stats and no error.
func Collect(ctx context.Context, analyzer *tokenize.Analyzer, sp segment.Splitter, text string) (TextStats, error) {
	tokens, err := analyzer.Tokenize(ctx, text)
	if err != nil {
		return TextStats{}, err
	}
	phrases, err := sp.SplitIntoPhrases(ctx, text)
	if err != nil {
		return TextStats{}, err
	}

	st := TextStats{
		CharCount:   utf8.RuneCountInString(text),
		TokenCount:  len(tokens),
		PhraseCount: len(phrases),
	}
	for _, t := range tokens {
		switch t.POS() {
		case model.POSNoun:
			st.NounCount++
		case model.POSVerb:
			st.VerbCount++
		case model.POSAdjective:
			st.AdjectiveCount++
		case model.POSParticle:
			st.ParticleCount++
		}
	}
	st.ReadingSeconds = ReadingTime(st.CharCount).Seconds()
	return st, nil
}

package segment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"bunsetsu/model"
	"bunsetsu/tokenize"
)

// Splitter turns raw text into an ordered list of bunsetsu phrases.
// Concatenating the phrases in order reproduces the input text of the
// analyzed tokens exactly.
type Splitter interface {
	SplitIntoPhrases(ctx context.Context, text string) ([]string, error)
}

// Strategy names accepted by NewSplitter.
const (
	StrategyMorph = "morph"
	StrategyRunes = "runes"
)

// NewSplitter selects a splitting strategy by name. StrategyMorph is the
// canonical rule engine; StrategyRunes is the degraded per-character mode
// and must be asked for explicitly.
func NewSplitter(strategy string, analyzer *tokenize.Analyzer, log *slog.Logger) (Splitter, error) {
	switch strategy {
	case StrategyMorph, "":
		return NewPhraseSplitter(analyzer, log), nil
	case StrategyRunes:
		return RuneSplitter{}, nil
	default:
		return nil, fmt.Errorf("unknown splitter strategy %q", strategy)
	}
}

// PhraseSplitter is the morphological splitter: analyze, then assemble
// phrases from pairwise boundary decisions.
type PhraseSplitter struct {
	analyzer *tokenize.Analyzer
	log      *slog.Logger
}

// NewPhraseSplitter wires a splitter to an analyzer. A nil logger falls back
// to slog.Default.
func NewPhraseSplitter(analyzer *tokenize.Analyzer, log *slog.Logger) *PhraseSplitter {
	if log == nil {
		log = slog.Default()
	}
	return &PhraseSplitter{analyzer: analyzer, log: log}
}

// SplitIntoPhrases implements Splitter. Empty text yields an empty list and
// no error; analyzer failures surface as tokenize.ErrAnalysisFailed.
func (s *PhraseSplitter) SplitIntoPhrases(ctx context.Context, text string) ([]string, error) {
	tokens, err := s.analyzer.Tokenize(ctx, text)
	if err != nil {
		return nil, err
	}
	if s.log.Enabled(ctx, slog.LevelDebug) {
		for i := 0; i+1 < len(tokens); i++ {
			s.log.Debug("boundary decision",
				"current", tokens[i].Surface,
				"next", tokens[i+1].Surface,
				"boundary", IsBoundary(tokens[i], tokens[i+1]))
		}
	}
	phrases := Assemble(tokens)
	s.log.Debug("split text", "tokens", len(tokens), "phrases", len(phrases))
	return phrases, nil
}

// Assemble walks the token sequence once, accumulating surface text and
// flushing a phrase whenever the classifier reports a boundary. For n > 0
// tokens it returns between 1 and n phrases.
func Assemble(tokens []model.Token) []string {
	if len(tokens) == 0 {
		return nil
	}
	phrases := make([]string, 0, len(tokens))
	var current strings.Builder
	for i, tok := range tokens {
		current.WriteString(tok.Surface)
		if i+1 < len(tokens) && IsBoundary(tok, tokens[i+1]) && current.Len() > 0 {
			phrases = append(phrases, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		phrases = append(phrases, current.String())
	}
	return phrases
}

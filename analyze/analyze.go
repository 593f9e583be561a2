// Package analyze produces per-token word reports for display, the
// companion view to phrase splitting.
package analyze

import (
	"context"

	"bunsetsu/model"
	"bunsetsu/tokenize"
)

// WordInfo describes one analyzed token.
type WordInfo struct {
	Surface       string `json:"surface"`
	POS           string `json:"pos"`
	POSDetail     string `json:"pos_detail,omitempty"`
	BaseForm      string `json:"base_form,omitempty"`
	Pronunciation string `json:"pronunciation,omitempty"`
}

// Text tokenizes text and returns word info in input order.
func Text(ctx context.Context, analyzer *tokenize.Analyzer, text string) ([]WordInfo, error) {
	tokens, err := analyzer.Tokenize(ctx, text)
	if err != nil {
		return nil, err
	}
	out := make([]WordInfo, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, FromToken(t))
	}
	return out, nil
}

// FromToken projects a token into its display view. The "*" placeholder the
// dictionary uses for empty slots is dropped here; it means nothing to a
// reader.
func FromToken(t model.Token) WordInfo {
	w := WordInfo{
		Surface: t.Surface,
		POS:     string(t.POS()),
	}
	if d, ok := t.POSDetail1(); ok && d != "*" {
		w.POSDetail = d
	}
	if b, ok := t.BaseForm(); ok && b != "*" {
		w.BaseForm = b
	}
	if p, ok := t.Pronunciation(); ok && p != "*" {
		w.Pronunciation = p
	}
	return w
}

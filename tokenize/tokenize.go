package tokenize

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"bunsetsu/model"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// ErrAnalysisFailed wraps any failure of the underlying morphological
// analyzer. It is the only error kind this package produces.
var ErrAnalysisFailed = errors.New("morphological analysis failed")

// DictKind selects the system dictionary for the analyzer.
type DictKind string

const (
	DictIPA DictKind = "ipa"
	DictUni DictKind = "uni"
)

func dictFor(kind DictKind) (*dict.Dict, error) {
	switch kind {
	case DictIPA, "":
		return ipa.Dict(), nil
	case DictUni:
		return uni.Dict(), nil
	default:
		return nil, fmt.Errorf("unknown dictionary kind %q", kind)
	}
}

// Analyzer wraps a kagome tokenizer. It is safe for concurrent use once
// constructed; the tokenizer is read-only after New.
type Analyzer struct {
	kg   *tokenizer.Tokenizer
	kind DictKind
}

// New builds an analyzer with the given dictionary. The boundary rules are
// written against IPAdic feature names, so DictIPA is the kind to use for
// phrase splitting; DictUni exists for callers that only need raw tokens.
func New(kind DictKind) (*Analyzer, error) {
	d, err := dictFor(kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}
	kg, err := tokenizer.New(d, tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}
	return &Analyzer{kg: kg, kind: kind}, nil
}

// Dict returns the dictionary kind the analyzer was built with.
func (a *Analyzer) Dict() DictKind { return a.kind }

// Tokenize runs morphological analysis on text and returns the tokens in
// input order. Empty text yields no tokens and no error.
func (a *Analyzer) Tokenize(ctx context.Context, text string) ([]model.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	if a == nil || a.kg == nil {
		return nil, fmt.Errorf("%w: analyzer not initialized", ErrAnalysisFailed)
	}
	return convert(a.kg.Tokenize(text)), nil
}

func convert(ktoks []tokenizer.Token) []model.Token {
	out := make([]model.Token, 0, len(ktoks))
	for _, kt := range ktoks {
		if kt.Class == tokenizer.DUMMY {
			continue
		}
		out = append(out, model.Token{
			Surface:  kt.Surface,
			Features: kt.Features(),
			Start:    kt.Start,
			End:      kt.End,
		})
	}
	return out
}

var (
	shared     *Analyzer
	sharedErr  error
	sharedOnce sync.Once
)

// Shared returns the process-wide analyzer, constructing it on first use.
// Racing callers all observe the same completed handle. The shared analyzer
// always uses the IPA dictionary; use New for anything else.
func Shared() (*Analyzer, error) {
	sharedOnce.Do(func() {
		shared, sharedErr = New(DictIPA)
	})
	return shared, sharedErr
}

package segment

import (
	"context"

	"bunsetsu/ingest"
)

// Result pairs a sentence with its phrases. Err is set when analysis of
// that sentence failed; later sentences are still processed.
type Result struct {
	Sentence ingest.Sentence
	Phrases  []string
	Err      error
}

// Pipeline launches a goroutine that consumes sentences from in, splits
// each one, and emits results in input order. The output channel is closed
// when in is drained or ctx is cancelled.
func Pipeline(ctx context.Context, sp Splitter, in <-chan ingest.Sentence) <-chan Result {
	out := make(chan Result, 8)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case s, ok := <-in:
				if !ok {
					return
				}
				phrases, err := sp.SplitIntoPhrases(ctx, s.Text)
				select {
				case <-ctx.Done():
					return
				case out <- Result{Sentence: s, Phrases: phrases, Err: err}:
				}
			}
		}
	}()
	return out
}

// Feed copies a sentence slice onto a fresh channel suitable for Pipeline,
// closing it when done or when ctx is cancelled.
func Feed(ctx context.Context, sentences []ingest.Sentence) <-chan ingest.Sentence {
	ch := make(chan ingest.Sentence, len(sentences))
	go func() {
		defer close(ch)
		for _, s := range sentences {
			select {
			case <-ctx.Done():
				return
			case ch <- s:
			}
		}
	}()
	return ch
}

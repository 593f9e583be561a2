package segment

import "context"

// RuneSplitter is the degraded splitting strategy for environments where the
// analyzer dictionary is unavailable: every rune becomes its own phrase.
// It satisfies the same reconstruction guarantee as the rule engine and is
// only ever selected by explicit configuration.
type RuneSplitter struct{}

// SplitIntoPhrases implements Splitter.
func (RuneSplitter) SplitIntoPhrases(ctx context.Context, text string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	phrases := make([]string, 0, len(text))
	for _, r := range text {
		phrases = append(phrases, string(r))
	}
	return phrases, nil
}

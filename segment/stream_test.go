package segment

import (
	"context"
	"errors"
	"testing"
	"time"

	"bunsetsu/ingest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSplitter splits on spaces, failing for texts in the broken set.
type stubSplitter struct {
	broken map[string]bool
}

var errStub = errors.New("stub failure")

func (s stubSplitter) SplitIntoPhrases(ctx context.Context, text string) ([]string, error) {
	if s.broken[text] {
		return nil, errStub
	}
	return []string{text}, nil
}

func mustSentence(t *testing.T, text string) ingest.Sentence {
	t.Helper()
	s, err := ingest.New(text)
	require.NoError(t, err)
	return s
}

func TestPipelinePreservesOrder(t *testing.T) {
	ctx := context.Background()
	sentences := []ingest.Sentence{
		mustSentence(t, "一つ目"),
		mustSentence(t, "二つ目"),
		mustSentence(t, "三つ目"),
	}

	var got []string
	for r := range Pipeline(ctx, stubSplitter{}, Feed(ctx, sentences)) {
		require.NoError(t, r.Err)
		require.Len(t, r.Phrases, 1)
		got = append(got, r.Phrases[0])
	}
	assert.Equal(t, []string{"一つ目", "二つ目", "三つ目"}, got)
}

func TestPipelineCarriesErrorsAndContinues(t *testing.T) {
	ctx := context.Background()
	sentences := []ingest.Sentence{
		mustSentence(t, "正常"),
		mustSentence(t, "壊れた"),
		mustSentence(t, "最後"),
	}
	sp := stubSplitter{broken: map[string]bool{"壊れた": true}}

	var results []Result
	for r := range Pipeline(ctx, sp, Feed(ctx, sentences)) {
		results = append(results, r)
	}
	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, errStub)
	assert.NoError(t, results[2].Err)
	assert.Equal(t, []string{"最後"}, results[2].Phrases)
}

func TestPipelineStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := make(chan ingest.Sentence)
	out := Pipeline(ctx, stubSplitter{}, in)

	select {
	case _, open := <-out:
		assert.False(t, open, "output channel should close after cancellation")
	case <-time.After(time.Second):
		t.Fatal("pipeline did not shut down after cancellation")
	}
}

package stats

import (
	"context"
	"testing"
	"time"

	"bunsetsu/segment"
	"bunsetsu/tokenize"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadingTime(t *testing.T) {
	assert.Equal(t, time.Duration(0), ReadingTime(0))
	assert.Equal(t, time.Duration(0), ReadingTime(-5))
	assert.Equal(t, time.Minute, ReadingTime(500))
	assert.Equal(t, 30*time.Second, ReadingTime(250))
}

func TestCollect(t *testing.T) {
	analyzer, err := tokenize.Shared()
	require.NoError(t, err)
	sp := segment.NewPhraseSplitter(analyzer, nil)
	ctx := context.Background()

	st, err := Collect(ctx, analyzer, sp, "猫が走る。")
	require.NoError(t, err)
	assert.Equal(t, 5, st.CharCount)
	assert.Equal(t, 4, st.TokenCount)
	assert.Equal(t, 1, st.NounCount)
	assert.Equal(t, 1, st.VerbCount)
	assert.Equal(t, 1, st.ParticleCount)
	assert.Equal(t, 0, st.AdjectiveCount)
	assert.Equal(t, 3, st.PhraseCount)
	assert.InDelta(t, 0.6, st.ReadingSeconds, 0.01)
}

func TestCollectEmptyText(t *testing.T) {
	analyzer, err := tokenize.Shared()
	require.NoError(t, err)
	sp := segment.NewPhraseSplitter(analyzer, nil)

	st, err := Collect(context.Background(), analyzer, sp, "")
	require.NoError(t, err)
	assert.Equal(t, TextStats{}, st)
}

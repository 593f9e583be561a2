package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrimsAndAssignsID(t *testing.T) {
	s, err := New("  猫が走る。\n")
	require.NoError(t, err)
	assert.Equal(t, "猫が走る。", s.Text)
	assert.NotEmpty(t, s.ID)
	assert.False(t, s.CreatedAt.IsZero())

	other, err := New("猫が走る。")
	require.NoError(t, err)
	assert.NotEqual(t, s.ID, other.ID)
}

func TestNewRejectsEmptyText(t *testing.T) {
	_, err := New("   \t\n")
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestLinesSkipsBlanks(t *testing.T) {
	in := strings.NewReader("一行目\n\n  \n二行目\n")
	sentences, err := Lines(in)
	require.NoError(t, err)
	require.Len(t, sentences, 2)
	assert.Equal(t, "一行目", sentences[0].Text)
	assert.Equal(t, "二行目", sentences[1].Text)
}

func TestLinesEmptyInput(t *testing.T) {
	sentences, err := Lines(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, sentences)
}

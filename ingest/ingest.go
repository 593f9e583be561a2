// Package ingest turns raw caller input into Sentence values ready for the
// segmentation pipeline.
package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sentence represents an ingested piece of Japanese text and metadata.
type Sentence struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ErrEmpty is returned when the input contains no text after trimming.
var ErrEmpty = errors.New("empty sentence")

// New trims and validates text and wraps it in a Sentence with a fresh id.
func New(text string) (Sentence, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Sentence{}, ErrEmpty
	}
	return Sentence{
		ID:        uuid.NewString(),
		Text:      trimmed,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Lines reads one sentence per line, skipping blank lines. Used for batch
// input (files, stdin).
func Lines(r io.Reader) ([]Sentence, error) {
	var out []Sentence
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		s, err := New(sc.Text())
		if errors.Is(err, ErrEmpty) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read sentences: %w", err)
	}
	return out, nil
}

package domain

import (
	"regexp"
	"unicode/utf8"

	"github.com/mouse-blink/gowc/internal/adapter"
	m "github.com/mouse-blink/gowc/internal/model"
)

var wordPattern = regexp.MustCompile(`[A-Za-z0-9_-]+`)

// Counter measures a single source.
type Counter interface {
	Count(source m.Source, metrics m.Metrics) (m.Counts, error)
}

type counter struct {
	fsAdapter adapter.SourceFSAdapter
}

// NewCounter creates a Counter that streams files through fsAdapter.
func NewCounter(fsAdapter adapter.SourceFSAdapter) Counter {
	return &counter{fsAdapter: fsAdapter}
}

// Count makes a single pass over the fragments of source and returns the
// selected metrics. Unselected metrics are reported as zero.
func (c *counter) Count(source m.Source, metrics m.Metrics) (m.Counts, error) {
	t := newTally(metrics)

	if source.IsBuffered() {
		for _, fragment := range source.Fragments {
			t.add(fragment)
		}

		return t.counts(), nil
	}

	if err := c.fsAdapter.StreamFragments(source.Path, t.add); err != nil {
		return m.Counts{}, err
	}

	return t.counts(), nil
}

type tally struct {
	metrics    m.Metrics
	fragments  int
	terminated bool
	words      int
	bytes      int
}

func newTally(metrics m.Metrics) *tally {
	return &tally{metrics: metrics}
}

func (t *tally) add(fragment string) {
	t.fragments++
	t.terminated = endsWithLineBreak(fragment)
	t.bytes += len(fragment)

	if t.metrics.Has(m.MetricWords) {
		t.words += countWords(fragment)
	}
}

func (t *tally) counts() m.Counts {
	var c m.Counts

	if t.metrics.Has(m.MetricLines) {
		c.Lines = t.lines()
	}

	if t.metrics.Has(m.MetricWords) {
		c.Words = t.words
	}

	if t.metrics.Has(m.MetricBytes) {
		c.Bytes = t.bytes
	}

	return c
}

func (t *tally) lines() int {
	if t.fragments == 0 {
		return 0
	}

	if t.terminated {
		return t.fragments
	}

	return t.fragments - 1
}

func countWords(fragment string) int {
	return len(wordPattern.FindAllStringIndex(fragment, -1))
}

// endsWithLineBreak accepts every linebreak convention, not only '\n'.
func endsWithLineBreak(fragment string) bool {
	r, size := utf8.DecodeLastRuneInString(fragment)
	if size == 0 {
		return false
	}

	switch r {
	case '\n', '\r', '\v', '\f', '\u0085', '\u2028', '\u2029':
		return true
	default:
		return false
	}
}

package domain

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mouse-blink/gowc/internal/adapter"
	adaptermocks "github.com/mouse-blink/gowc/internal/adapter/mocks"
	m "github.com/mouse-blink/gowc/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCounter_Count_Lines(t *testing.T) {
	tests := []struct {
		name      string
		fragments []string
		want      int
	}{
		{"empty input", nil, 0},
		{"single unterminated fragment", []string{"abc"}, 0},
		{"single terminated line", []string{"hello world\n"}, 1},
		{"last line unterminated", []string{"one\n", "two\n", "three"}, 2},
		{"blank lines count", []string{"\n", "\n"}, 2},
		{"crlf terminator", []string{"a\r\n", "b\r\n"}, 2},
		{"bare carriage return ends the input", []string{"a\n", "b\r"}, 2},
		{"unicode line separator", []string{"a\n", "b\u2028"}, 2},
		{"form feed", []string{"a\f"}, 1},
		{"next line character", []string{"x\u0085"}, 1},
		{"invalid utf-8 byte is not a terminator", []string{"\x85"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, countBuffered(t, tt.fragments, m.NewMetrics(true, false, false)).Lines)
		})
	}
}

func TestCounter_Count_Words(t *testing.T) {
	tests := []struct {
		name      string
		fragments []string
		want      int
	}{
		{"empty input", nil, 0},
		{"two words", []string{"hello world\n"}, 2},
		{"hyphenated word", []string{"one two-three\n"}, 2},
		{"lone hyphen run", []string{"a -- b\n"}, 3},
		{"underscore and digits", []string{"snake_case 42 x1\n"}, 3},
		{"punctuation separates", []string{"foo,bar.baz!qux\n"}, 4},
		{"non ascii letters separate", []string{"naïve au lait\n"}, 4},
		{"summed across fragments", []string{"a b\n", "c\n", "\n", "d"}, 4},
		{"only separators", []string{"  ...  \n"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, countBuffered(t, tt.fragments, m.NewMetrics(false, true, false)).Words)
		})
	}
}

func TestCounter_Count_Bytes(t *testing.T) {
	tests := []struct {
		name      string
		fragments []string
		want      int
	}{
		{"empty input", nil, 0},
		{"ascii", []string{"hello world\n"}, 12},
		{"multi byte text counts encoded length", []string{"héllo\n"}, 7},
		{"sum of fragments", []string{"foo\n", "abc"}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := countBuffered(t, tt.fragments, m.NewMetrics(false, false, true)).Bytes
			assert.Equal(t, tt.want, got)

			sum := 0
			for _, fragment := range tt.fragments {
				sum += len([]byte(fragment))
			}
			assert.Equal(t, sum, got)
		})
	}
}

func TestCounter_Count_BufferedSource(t *testing.T) {
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	c := NewCounter(fsAdapter)

	source := m.BufferedSource([]string{"one two-three\n"})

	got, err := c.Count(source, m.AllMetrics)
	require.NoError(t, err)
	assert.Equal(t, m.Counts{Lines: 1, Words: 2, Bytes: 14}, got)

	got, err = c.Count(source, m.NewMetrics(false, true, false))
	require.NoError(t, err)
	assert.Equal(t, m.Counts{Words: 2}, got, "unselected metrics stay zero")
}

func TestCounter_Count_StreamsFile(t *testing.T) {
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	fsAdapter.On("StreamFragments", m.Path("a.txt"), mock.AnythingOfType("adapter.FragmentFunc")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(adapter.FragmentFunc)
			fn("hello world\n")
			fn("bye")
		}).
		Return(nil)

	got, err := NewCounter(fsAdapter).Count(m.FileSource("a.txt"), m.AllMetrics)
	require.NoError(t, err)
	assert.Equal(t, m.Counts{Lines: 1, Words: 3, Bytes: 15}, got)
}

func TestCounter_Count_FileAccessError(t *testing.T) {
	accessErr := &m.FileAccessError{Path: "missing.txt", Op: "open", Err: os.ErrNotExist}

	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	fsAdapter.On("StreamFragments", m.Path("missing.txt"), mock.Anything).Return(accessErr)

	got, err := NewCounter(fsAdapter).Count(m.FileSource("missing.txt"), m.AllMetrics)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Equal(t, m.Counts{}, got)
}

func TestCounter_Count_LocalFiles(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		want     m.Counts
	}{
		{"no trailing newline", "abc", m.Counts{Lines: 0, Words: 1, Bytes: 3}},
		{"empty file", "", m.Counts{}},
		{"two lines", "hello world\nfoo\n", m.Counts{Lines: 2, Words: 3, Bytes: 16}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "input.txt")
			require.NoError(t, os.WriteFile(path, []byte(tt.contents), 0o644))

			c := NewCounter(adapter.NewLocalSourceFSAdapter())

			first, err := c.Count(m.FileSource(m.Path(path)), m.AllMetrics)
			require.NoError(t, err)
			assert.Equal(t, tt.want, first)

			second, err := c.Count(m.FileSource(m.Path(path)), m.AllMetrics)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func countBuffered(t *testing.T, fragments []string, metrics m.Metrics) m.Counts {
	t.Helper()

	got, err := NewCounter(adaptermocks.NewMockSourceFSAdapter(t)).Count(m.BufferedSource(fragments), metrics)
	require.NoError(t, err)

	return got
}

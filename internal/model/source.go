package model

// Path represents a file system path.
type Path string

// Source is one counted input: either a named file or standard input that has
// already been read into memory.
type Source struct {
	// Path is empty for standard input.
	Path Path
	// Fragments holds the buffered standard input lines, each with its
	// terminator if one was present. Nil for files, which are streamed.
	Fragments []string

	buffered bool
}

// FileSource returns a Source that is streamed from the file at path.
func FileSource(path Path) Source {
	return Source{Path: path}
}

// BufferedSource returns a Source backed by fragments that were read eagerly.
func BufferedSource(fragments []string) Source {
	return Source{Fragments: fragments, buffered: true}
}

// IsBuffered reports whether the source was read into memory up front.
func (s Source) IsBuffered() bool {
	return s.buffered
}

// Label is the text printed after the counts of a row.
func (s Source) Label() string {
	return string(s.Path)
}

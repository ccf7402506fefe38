// Package adapter contains the infrastructure adapters that feed input into the counter.
package adapter

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"

	m "github.com/mouse-blink/gowc/internal/model"
)

// SourceFSAdapter hides how fragments are pulled out of files and streams so
// the counting workflow can be tested without touching the disk.
type SourceFSAdapter interface {
	// StreamFragments reads the file at path in order and calls fn once per
	// fragment. Failures are reported as *model.FileAccessError.
	StreamFragments(path m.Path, fn FragmentFunc) error

	// ReadFragments consumes r completely and returns its fragments.
	ReadFragments(r io.Reader) ([]string, error)
}

// FragmentFunc receives one line of input, including its trailing newline
// when the line had one.
type FragmentFunc func(fragment string)

// LocalSourceFSAdapter reads fragments from the local filesystem.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// StreamFragments streams the fragments of a file lazily.
func (a *LocalSourceFSAdapter) StreamFragments(path m.Path, fn FragmentFunc) error {
	// #nosec G304 - path is an explicit command-line argument
	f, err := os.Open(string(path))
	if err != nil {
		return &m.FileAccessError{Path: path, Op: "open", Err: unwrapPathError(err)}
	}

	defer func() {
		_ = f.Close()
	}()

	if err := scanFragments(f, fn); err != nil {
		return &m.FileAccessError{Path: path, Op: "read", Err: unwrapPathError(err)}
	}

	return nil
}

// ReadFragments buffers every fragment of r.
func (a *LocalSourceFSAdapter) ReadFragments(r io.Reader) ([]string, error) {
	var fragments []string

	err := scanFragments(r, func(fragment string) {
		fragments = append(fragments, fragment)
	})
	if err != nil {
		return nil, err
	}

	return fragments, nil
}

// scanFragments splits on '\n' only. bufio.Scanner is avoided because it
// drops terminators and caps the token size.
func scanFragments(r io.Reader, fn FragmentFunc) error {
	br := bufio.NewReader(r)

	for {
		fragment, err := br.ReadString('\n')
		if len(fragment) > 0 {
			fn(fragment)
		}

		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}
	}
}

func unwrapPathError(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}

	return err
}

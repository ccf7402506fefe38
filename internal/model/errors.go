package model

import "fmt"

// FileAccessError reports that a named input could not be opened or read.
type FileAccessError struct {
	Path Path
	Op   string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

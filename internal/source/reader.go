// Package source loads the text that is searched.
package source

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// Content errors
var (
	ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")
	ErrTooLarge    = errors.New("file exceeds the maximum size")
	ErrIsDirectory = errors.New("is a directory")
)

// ReadError reports a file that could not be loaded as text
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ReadContent reads the whole file at path as UTF-8 text.
// maxSize limits the file size in bytes; zero or less means no limit.
func ReadContent(path string, maxSize int64) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	if info.IsDir() {
		return "", &ReadError{Path: path, Err: ErrIsDirectory}
	}
	if maxSize > 0 && info.Size() > maxSize {
		return "", &ReadError{Path: path, Err: fmt.Errorf("%w (%d > %d bytes)", ErrTooLarge, info.Size(), maxSize)}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &ReadError{Path: path, Err: ErrInvalidUTF8}
	}

	return string(data), nil
}

// file: internal/library/errors.go
// version: 1.0.0
// guid: f97a2c42-7365-446d-a464-5a6667b5f2e5

package library

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine is returned when a text record does not have exactly three fields.
	ErrMalformedLine = errors.New("malformed line: expected title,author,year")

	// ErrInvalidYear is returned when the year field is not an integer.
	ErrInvalidYear = errors.New("year is not an integer")

	// ErrUnknownFormat is returned for a file format other than text or yaml.
	ErrUnknownFormat = errors.New("unknown library file format")

	// ErrFileManagerClosed is returned when a FileManager is used after Close.
	ErrFileManagerClosed = errors.New("file manager is closed")
)

// ParseError locates a decoding failure within a library file.
type ParseError struct {
	Line int    // 1-based line number
	Text string // the offending line as read
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

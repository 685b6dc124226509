// core/sam/errors.go
package sam

import (
	"errors"
	"fmt"
)

var (
	// ErrReaderClosed is returned for any operation that needs the stream
	// after Close has released it.
	ErrReaderClosed = errors.New("sam: reader is closed")
	// ErrIterationInProgress is returned by Iterator while another iterator
	// is still live on the same reader.
	ErrIterationInProgress = errors.New("sam: iteration in progress")
	// ErrIteratorExhausted is returned by Next once the stream has no more
	// record lines.
	ErrIteratorExhausted = errors.New("sam: next called on exhausted iterator")
	// ErrNotSupported marks operations that require an index or a seekable
	// source. A text stream never supports them, in any state.
	ErrNotSupported = errors.New("sam: not supported for text streams")
)

// FormatError reports one unparsable or invalid line with its position.
type FormatError struct {
	Source string // file identity, may be empty for anonymous streams
	Line   int    // 1-based physical line in the stream
	Err    error
}

func (e *FormatError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("sam: %s:%d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("sam: line %d: %v", e.Line, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

func formatErrf(source string, line int, format string, args ...any) error {
	return &FormatError{Source: source, Line: line, Err: fmt.Errorf(format, args...)}
}

func errNotSupported(op string) error {
	return fmt.Errorf("%w: %s", ErrNotSupported, op)
}

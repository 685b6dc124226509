// core/snappy/loader.go

// Package snappy answers "is optional snappy block compression available"
// and, when it is, wraps byte streams for transparent compress/decompress.
//
// The gate ships disabled (see Disabled); readers must treat "no
// compression available" as a normal configuration, not an error.
package snappy

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	ksnappy "github.com/klauspost/compress/snappy"
)

// Disabled turns the gate off for the whole process. The IGB deployment
// keeps it true; flip before constructing a Loader to opt in.
var Disabled = true

// ErrUnavailable is wrapped by every forced-wrap failure.
var ErrUnavailable = errors.New("snappy: compression unavailable")

// Loader probes snappy support once and wraps streams on demand.
type Loader struct {
	available bool
	disabled  bool // unavailable because of explicit configuration
}

// NewLoader builds a loader honoring the package-level Disabled switch.
func NewLoader() *Loader { return newLoader(Disabled) }

func newLoader(disabled bool) *Loader {
	l := &Loader{disabled: disabled}
	if !disabled {
		l.available = probe()
	}
	return l
}

// probe round-trips a small block through the codec so a broken build of
// the library is reported as "unavailable" rather than failing mid-stream.
func probe() bool {
	const sample = "snappy probe"
	var buf bytes.Buffer
	w := ksnappy.NewBufferedWriter(&buf)
	if _, err := io.WriteString(w, sample); err != nil {
		return false
	}
	if err := w.Close(); err != nil {
		return false
	}
	out, err := io.ReadAll(ksnappy.NewReader(&buf))
	return err == nil && string(out) == sample
}

// Available reports whether streams can be wrapped.
func (l *Loader) Available() bool { return l.available }

// WrapInput wraps r for transparent decompression, or returns nil ("no
// wrapping") when snappy is unavailable.
func (l *Loader) WrapInput(r io.Reader) io.Reader {
	if !l.available {
		return nil
	}
	return ksnappy.NewReader(r)
}

// WrapOutput wraps w for transparent compression, or returns nil when
// snappy is unavailable. The returned writer must be closed to flush.
func (l *Loader) WrapOutput(w io.Writer) io.WriteCloser {
	if !l.available {
		return nil
	}
	return ksnappy.NewBufferedWriter(w)
}

// MustWrapInput is the forcing variant of WrapInput: when snappy is
// unavailable it fails with a capability error naming the cause.
func (l *Loader) MustWrapInput(r io.Reader) (io.Reader, error) {
	if err := l.unavailableErr(); err != nil {
		return nil, err
	}
	return ksnappy.NewReader(r), nil
}

// MustWrapOutput is the forcing variant of WrapOutput.
func (l *Loader) MustWrapOutput(w io.Writer) (io.WriteCloser, error) {
	if err := l.unavailableErr(); err != nil {
		return nil, err
	}
	return ksnappy.NewBufferedWriter(w), nil
}

func (l *Loader) unavailableErr() error {
	if l.available {
		return nil
	}
	if l.disabled {
		return fmt.Errorf("%w: explicitly disabled via configuration", ErrUnavailable)
	}
	return fmt.Errorf("%w: could not load the snappy codec", ErrUnavailable)
}

// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"github.com/lorainelab/htsjdk-igb/core/sam"
)

// Options control rendering shared by all formats.
type Options struct {
	// WithHeader emits the header block (sam) or column header (tsv).
	WithHeader bool
}

// StreamFunc renders records arriving on in until the channel closes.
type StreamFunc func(w io.Writer, h *sam.Header, opt Options, in <-chan *sam.Record) error

// RecordWriters maps format name to handler. Writer files register in
// init(); registration is idempotent last-wins.
var RecordWriters = map[string]StreamFunc{}

// Register adds or replaces the handler for a format.
func Register(format string, fn StreamFunc) { RecordWriters[format] = fn }

// Formats lists the registered format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(RecordWriters))
	for name := range RecordWriters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StartRecordWriter spins up a writer goroutine for the given format.
// Broken-pipe failures are suppressed so `head`-style consumers exit
// cleanly. The error channel yields exactly once, after in is closed
// and drained.
func StartRecordWriter(out io.Writer, format string, h *sam.Header, opt Options, bufSize int) (chan<- *sam.Record, <-chan error, error) {
	fn, ok := RecordWriters[format]
	if !ok {
		return nil, nil, fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan *sam.Record, bufSize)
	errCh := make(chan error, 1)
	go func() {
		err := fn(out, h, opt, in)
		// Drain so a failed writer never blocks the producer.
		for range in {
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()
	return in, errCh, nil
}

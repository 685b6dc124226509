// core/sam/linereader.go
package sam

import (
	"bufio"
	"io"
)

const lineBufSize = 64 << 10

// LineReader extracts newline-delimited lines from a forward-only byte
// stream and tracks 1-based line numbers. Callers must not share one
// across goroutines.
type LineReader struct {
	src io.Reader
	br  *bufio.Reader

	peeked bool
	peek   string
	line   int // ordinal of the last line returned by ReadLine
	sticky error
}

// NewLineReader adopts r. The stream need not be buffered; buffering
// happens here. If r is an io.Closer, Close releases it.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{src: r, br: bufio.NewReaderSize(r, lineBufSize)}
}

// ReadLine returns the next line without its terminator ("\n" or "\r\n").
// io.EOF signals that the stream is drained; a final line without a
// terminator is still returned.
func (lr *LineReader) ReadLine() (string, error) {
	if lr.peeked {
		lr.peeked = false
		lr.line++
		return lr.peek, nil
	}
	text, err := lr.fetch()
	if err != nil {
		return "", err
	}
	lr.line++
	return text, nil
}

// Peek returns the next line without consuming it. A subsequent ReadLine
// returns the same line and only then advances the line number.
func (lr *LineReader) Peek() (string, error) {
	if !lr.peeked {
		text, err := lr.fetch()
		if err != nil {
			return "", err
		}
		lr.peek = text
		lr.peeked = true
	}
	return lr.peek, nil
}

// LineNumber reports the 1-based ordinal of the last line returned by
// ReadLine, 0 before the first read. Header and record lines share one
// continuous numbering.
func (lr *LineReader) LineNumber() int { return lr.line }

func (lr *LineReader) fetch() (string, error) {
	if lr.sticky != nil {
		return "", lr.sticky
	}
	s, err := lr.br.ReadString('\n')
	if err != nil {
		if err != io.EOF || len(s) == 0 {
			lr.sticky = err
			return "", err
		}
		// Last line had no terminator; deliver it and report EOF next time.
		lr.sticky = io.EOF
	}
	if n := len(s); n > 0 && s[n-1] == '\n' {
		s = s[:n-1]
		if n := len(s); n > 0 && s[n-1] == '\r' {
			s = s[:n-1]
		}
	}
	return s, nil
}

// Close releases the underlying stream when it owns one.
func (lr *LineReader) Close() error {
	if c, ok := lr.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// core/sam/reader.go
package sam

import (
	"io"
)

// Config parametrizes NewReader.
type Config struct {
	// Stringency applied to header decoding and, until changed, to
	// iterators created later. Zero value is strict.
	Stringency ValidationStringency
	// Factory instantiates records; nil means DefaultRecordFactory.
	Factory RecordFactory
	// Filename is used only in diagnostics and provenance tags.
	Filename string
	// AttachSource tags every produced record with (file, line).
	AttachSource bool
	// Codec decodes the header block; nil means NewTextHeaderCodec.
	Codec HeaderDecoder
}

// Reader is a sequential, single-pass reader for SAM text streams.
//
// The header is decoded during construction; records are then consumed
// through a single forward-only iterator with one line of lookahead. The
// source is not seekable, so there is no rewind and no index: coordinate
// queries always fail with ErrNotSupported.
//
// A Reader and its iterator are not safe for concurrent use; callers
// serialize access externally.
type Reader struct {
	lr      *LineReader // nil once closed
	header  *Header
	factory RecordFactory

	stringency   ValidationStringency
	filename     string
	attachSource bool

	// Lookahead slot: always the next unconsumed record line, established
	// right after header decode and after every produced record. The slot
	// is single-valued shared state, which is why at most one iterator may
	// be live at a time.
	cur     string
	curLine int
	hasCur  bool

	it *RecordIterator // live iterator, nil when none
}

// NewReader adopts stream, decodes the header synchronously and positions
// the lookahead at the first record line. The stream need not be buffered.
// On error the stream is released if it is an io.Closer.
func NewReader(stream io.Reader, cfg Config) (*Reader, error) {
	lr := NewLineReader(stream)
	codec := cfg.Codec
	if codec == nil {
		codec = NewTextHeaderCodec()
	}
	factory := cfg.Factory
	if factory == nil {
		factory = DefaultRecordFactory
	}

	header, err := codec.DecodeHeader(lr, cfg.Stringency, cfg.Filename)
	if err != nil {
		_ = lr.Close()
		return nil, err
	}
	r := &Reader{
		lr:           lr,
		header:       header,
		factory:      factory,
		stringency:   cfg.Stringency,
		filename:     cfg.Filename,
		attachSource: cfg.AttachSource,
	}
	if err := r.advance(); err != nil {
		_ = r.Close()
		return nil, err
	}
	return r, nil
}

// Header returns the decoded header. It is immutable after construction
// and remains available until Close.
func (r *Reader) Header() *Header { return r.header }

// Stringency returns the stringency that iterators created now would
// capture.
func (r *Reader) Stringency() ValidationStringency { return r.stringency }

// SetStringency changes the stringency captured by subsequently created
// iterators. A live iterator keeps the value it was built with.
func (r *Reader) SetStringency(v ValidationStringency) { r.stringency = v }

// Filename reports the diagnostic file identity, if any.
func (r *Reader) Filename() string { return r.filename }

// SetAttachSource toggles provenance tagging for subsequently created
// iterators.
func (r *Reader) SetAttachSource(enabled bool) { r.attachSource = enabled }

// Iterator returns the single live iterator over the remaining records.
// It fails with ErrReaderClosed after Close and with
// ErrIterationInProgress while a previous iterator has not been closed.
// A fresh iterator resumes from the next unconsumed line, never from the
// start of the stream.
func (r *Reader) Iterator() (*RecordIterator, error) {
	if r.lr == nil {
		return nil, ErrReaderClosed
	}
	if r.it != nil {
		return nil, ErrIterationInProgress
	}
	it := &RecordIterator{
		r:      r,
		parser: NewLineParser(r.factory, r.stringency, r.header, r.filename, r.attachSource),
	}
	r.it = it
	return it, nil
}

// Close releases the underlying stream exactly once. Calling it again is
// a no-op, and it is always safe after any prior error. A live iterator
// stops producing once the reader is closed.
func (r *Reader) Close() error {
	if r.lr == nil {
		return nil
	}
	lr := r.lr
	r.lr = nil
	r.hasCur = false
	r.cur = ""
	r.it = nil
	return lr.Close()
}

// HasIndex reports false: text streams carry no index.
func (r *Reader) HasIndex() bool { return false }

// Index is implemented by coordinate indexes of binary containers. A text
// stream never has one.
type Index interface {
	Spans(ref string, start, end int) []Span
}

// Span identifies a byte region of an indexed container.
type Span struct {
	Start, End int64
}

// Index always fails: this reader never builds an in-memory index.
func (r *Reader) Index() (Index, error) {
	return nil, errNotSupported("no index for a SAM text stream")
}

// Query always fails: coordinate queries need an index.
func (r *Reader) Query(ref string, start, end int, contained bool) (*RecordIterator, error) {
	return nil, errNotSupported("cannot query a SAM text stream by coordinate")
}

// QueryAlignmentStart always fails: name/position lookup needs an index.
func (r *Reader) QueryAlignmentStart(ref string, start int) (*RecordIterator, error) {
	return nil, errNotSupported("cannot query a SAM text stream by alignment start")
}

// QueryUnmapped always fails: the unmapped partition needs an index.
func (r *Reader) QueryUnmapped() (*RecordIterator, error) {
	return nil, errNotSupported("cannot query unmapped records of a SAM text stream")
}

// SpanIterator always fails: file spans have no meaning for text streams.
func (r *Reader) SpanIterator(span Span) (*RecordIterator, error) {
	return nil, errNotSupported("cannot iterate a span of a SAM text stream")
}

// PointerSpanningRecords always fails: there are no file pointers here.
func (r *Reader) PointerSpanningRecords() (Span, error) {
	return Span{}, errNotSupported("cannot retrieve file pointers of a SAM text stream")
}

// advance refills the lookahead slot with the next unconsumed line.
// An empty slot means end of stream.
func (r *Reader) advance() error {
	text, err := r.lr.ReadLine()
	if err == io.EOF {
		r.hasCur = false
		r.cur = ""
		return nil
	}
	if err != nil {
		r.hasCur = false
		return err
	}
	r.cur = text
	r.curLine = r.lr.LineNumber()
	r.hasCur = true
	return nil
}

// RecordIterator yields the remaining records in stream order. It borrows
// the Reader's lookahead slot instead of owning state of its own; that is
// what makes a second concurrent iterator unsafe and why the Reader
// refuses to create one.
type RecordIterator struct {
	r      *Reader
	parser RecordParser
	closed bool
}

// HasNext reports whether a record line is waiting in the lookahead slot.
func (it *RecordIterator) HasNext() bool {
	return !it.closed && it.r.hasCur
}

// Next parses the lookahead line into a record and then advances the
// lookahead by one line. Calling Next past the end fails with
// ErrIteratorExhausted; it never returns a sentinel record. Parse
// failures surface as *FormatError with the offending line number and do
// not stop the underlying advance, so a tolerant caller may keep going.
func (it *RecordIterator) Next() (*Record, error) {
	r := it.r
	if it.closed || r.lr == nil {
		return nil, ErrReaderClosed
	}
	if !r.hasCur {
		return nil, ErrIteratorExhausted
	}
	text, line := r.cur, r.curLine
	rec, perr := it.parser.ParseLine(text, line)
	if aerr := r.advance(); aerr != nil && perr == nil {
		return nil, aerr
	}
	if perr != nil {
		return nil, perr
	}
	return rec, nil
}

// Close releases the single-iterator slot so the Reader can hand out a
// fresh iterator that resumes from the next unconsumed line. The stream
// itself stays open; closing it is the Reader's job.
func (it *RecordIterator) Close() error {
	if it.closed {
		return nil
	}
	it.closed = true
	if it.r.it == it {
		it.r.it = nil
	}
	return nil
}

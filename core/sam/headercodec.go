// core/sam/headercodec.go
package sam

import (
	"io"
	"strconv"
	"strings"
)

// HeaderDecoder consumes a LineReader through the header block and leaves
// it positioned at the first record line. Implementations exist per text
// dialect; the Reader state machine never depends on a concrete one.
type HeaderDecoder interface {
	DecodeHeader(lr *LineReader, stringency ValidationStringency, source string) (*Header, error)
}

// TextHeaderCodec decodes the standard '@'-prefixed SAM header syntax.
type TextHeaderCodec struct{}

// NewTextHeaderCodec returns the default header codec.
func NewTextHeaderCodec() *TextHeaderCodec { return &TextHeaderCodec{} }

// DecodeHeader reads '@' lines until the first non-header line (which stays
// unconsumed, via one-line lookahead) or the end of the stream. Under
// strict stringency any defective header line fails the decode; under
// lenient or silent the defective piece is dropped.
func (c *TextHeaderCodec) DecodeHeader(lr *LineReader, stringency ValidationStringency, source string) (*Header, error) {
	h := &Header{SortOrder: SortUnknown}
	for {
		text, err := lr.Peek()
		if err == io.EOF {
			return h, nil
		}
		if err != nil {
			return nil, err
		}
		if !strings.HasPrefix(text, "@") {
			return h, nil
		}
		if _, err := lr.ReadLine(); err != nil {
			return nil, err
		}
		if err := c.decodeLine(h, text, lr.LineNumber(), stringency, source); err != nil {
			return nil, err
		}
	}
}

func (c *TextHeaderCodec) decodeLine(h *Header, text string, line int, stringency ValidationStringency, source string) error {
	strict := stringency == StringencyStrict
	fields := strings.Split(text, "\t")
	kind := fields[0]

	if kind == "@CO" {
		comment := ""
		if i := strings.IndexByte(text, '\t'); i >= 0 {
			comment = text[i+1:]
		}
		h.Comments = append(h.Comments, comment)
		return nil
	}

	attrs, err := parseHeaderAttrs(fields[1:])
	if err != nil {
		if strict {
			return formatErrf(source, line, "%s header: %v", kind, err)
		}
		return nil
	}

	switch kind {
	case "@HD":
		if vn, ok := attrs["VN"]; ok {
			h.Version = vn
		} else if strict {
			return formatErrf(source, line, "@HD header missing VN")
		}
		if so, ok := attrs["SO"]; ok {
			h.SortOrder = so
		}
		if gorder, ok := attrs["GO"]; ok {
			h.GroupOrder = gorder
		}
	case "@SQ":
		sn, okName := attrs["SN"]
		ln, okLen := attrs["LN"]
		if !okName || !okLen {
			if strict {
				return formatErrf(source, line, "@SQ header missing SN or LN")
			}
			return nil
		}
		length, err := strconv.Atoi(ln)
		if err != nil || length < 0 {
			if strict {
				return formatErrf(source, line, "@SQ header has non-numeric LN %q", ln)
			}
			return nil
		}
		if h.HasRef(sn) {
			if strict {
				return formatErrf(source, line, "duplicate @SQ sequence name %q", sn)
			}
			return nil
		}
		h.addRef(ReferenceSequence{Name: sn, Length: length, Attrs: attrs})
	case "@RG":
		id, ok := attrs["ID"]
		if !ok {
			if strict {
				return formatErrf(source, line, "@RG header missing ID")
			}
			return nil
		}
		h.ReadGroups = append(h.ReadGroups, ReadGroup{ID: id, Attrs: attrs})
	case "@PG":
		id, ok := attrs["ID"]
		if !ok {
			if strict {
				return formatErrf(source, line, "@PG header missing ID")
			}
			return nil
		}
		h.Programs = append(h.Programs, Program{ID: id, Attrs: attrs})
	default:
		if strict {
			return formatErrf(source, line, "unrecognized header record type %q", kind)
		}
	}
	return nil
}

// parseHeaderAttrs splits "TG:value" fields into a map. Tags are two
// characters; values may contain further colons.
func parseHeaderAttrs(fields []string) (map[string]string, error) {
	attrs := make(map[string]string, len(fields))
	for _, f := range fields {
		if len(f) < 4 || f[2] != ':' {
			return nil, &tagSyntaxError{f}
		}
		attrs[f[:2]] = f[3:]
	}
	return attrs, nil
}

type tagSyntaxError struct{ field string }

func (e *tagSyntaxError) Error() string {
	return "malformed tag:value field " + strconv.Quote(e.field)
}

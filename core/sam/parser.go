// core/sam/parser.go
package sam

import (
	"strconv"
	"strings"
)

const numMandatoryFields = 11

// RecordParser turns one text line into a record. Implementations carry
// their own context (header, stringency, provenance), captured when the
// parser is built.
type RecordParser interface {
	ParseLine(text string, lineNumber int) (*Record, error)
}

// LineParser parses tab-delimited alignment lines against a decoded
// header. Structural defects (wrong field count, non-numeric fields,
// malformed tags) always fail; semantic validation honors the captured
// stringency.
type LineParser struct {
	factory      RecordFactory
	stringency   ValidationStringency
	header       *Header
	source       string
	attachSource bool
}

// NewLineParser captures the parsing context. factory may be nil for the
// default record factory.
func NewLineParser(factory RecordFactory, stringency ValidationStringency, header *Header, source string, attachSource bool) *LineParser {
	if factory == nil {
		factory = DefaultRecordFactory
	}
	return &LineParser{
		factory:      factory,
		stringency:   stringency,
		header:       header,
		source:       source,
		attachSource: attachSource,
	}
}

// ParseLine decodes one record line. lineNumber is the 1-based physical
// position used for diagnostics and provenance.
func (p *LineParser) ParseLine(text string, lineNumber int) (*Record, error) {
	fields := strings.Split(text, "\t")
	if len(fields) < numMandatoryFields {
		return nil, formatErrf(p.source, lineNumber,
			"not enough fields (%d, expected at least %d)", len(fields), numMandatoryFields)
	}

	rec := p.factory.NewRecord()
	rec.QName = fields[0]

	flags, err := strconv.ParseUint(fields[1], 10, 16)
	if err != nil {
		return nil, formatErrf(p.source, lineNumber, "non-numeric FLAG %q", fields[1])
	}
	rec.Flags = uint16(flags)

	rec.Ref = fields[2]
	if rec.Pos, err = strconv.Atoi(fields[3]); err != nil || rec.Pos < 0 {
		return nil, formatErrf(p.source, lineNumber, "bad POS %q", fields[3])
	}

	mapq, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, formatErrf(p.source, lineNumber, "non-numeric MAPQ %q", fields[4])
	}
	if mapq < 0 || mapq > 255 {
		if p.stringency == StringencyStrict {
			return nil, formatErrf(p.source, lineNumber, "MAPQ %d out of range", mapq)
		}
		if mapq < 0 {
			mapq = 0
		} else {
			mapq = 255
		}
	}
	rec.MapQ = uint8(mapq)

	rec.Cigar = fields[5]
	rec.MateRef = fields[6]
	if rec.MatePos, err = strconv.Atoi(fields[7]); err != nil || rec.MatePos < 0 {
		return nil, formatErrf(p.source, lineNumber, "bad PNEXT %q", fields[7])
	}
	if rec.TemplateLen, err = strconv.Atoi(fields[8]); err != nil {
		return nil, formatErrf(p.source, lineNumber, "non-numeric TLEN %q", fields[8])
	}
	rec.Seq = fields[9]
	rec.Qual = fields[10]

	for _, f := range fields[numMandatoryFields:] {
		tag, err := parseTag(f)
		if err != nil {
			return nil, formatErrf(p.source, lineNumber, "%v", err)
		}
		rec.Tags = append(rec.Tags, tag)
	}

	if p.stringency == StringencyStrict {
		if err := p.validate(rec); err != nil {
			return nil, formatErrf(p.source, lineNumber, "%v", err)
		}
	}

	if p.attachSource {
		rec.Source = &SourceInfo{File: p.source, Line: lineNumber}
	}
	return rec, nil
}

// validate applies the semantic checks skipped under lenient and silent
// stringency.
func (p *LineParser) validate(rec *Record) error {
	if p.header != nil && len(p.header.Refs) > 0 {
		if rec.Ref != NoReference && !p.header.HasRef(rec.Ref) {
			return &validationError{"RNAME " + strconv.Quote(rec.Ref) + " not found in header dictionary"}
		}
		if rec.MateRef != NoReference && rec.MateRef != MateSameRef && !p.header.HasRef(rec.MateRef) {
			return &validationError{"RNEXT " + strconv.Quote(rec.MateRef) + " not found in header dictionary"}
		}
	}
	if rec.Seq != NoData && rec.Qual != NoData && len(rec.Seq) != len(rec.Qual) {
		return &validationError{"SEQ and QUAL length mismatch"}
	}
	if rec.Ref == NoReference && rec.Pos != 0 && !rec.IsUnmapped() {
		return &validationError{"mapped record without reference name"}
	}
	return nil
}

type validationError struct{ msg string }

func (e *validationError) Error() string { return e.msg }

var tagTypes = "AifZHB"

func parseTag(field string) (Tag, error) {
	parts := strings.SplitN(field, ":", 3)
	if len(parts) != 3 || len(parts[0]) != 2 || len(parts[1]) != 1 {
		return Tag{}, &tagSyntaxError{field}
	}
	typ := parts[1][0]
	if !strings.ContainsRune(tagTypes, rune(typ)) {
		return Tag{}, &tagSyntaxError{field}
	}
	return Tag{Name: parts[0], Type: typ, Value: parts[2]}, nil
}

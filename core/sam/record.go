// core/sam/record.go
package sam

import (
	"fmt"
	"strings"
)

// Placeholder values from the text format.
const (
	NoReference = "*" // unmapped RNAME/RNEXT
	MateSameRef = "=" // RNEXT equal to RNAME
	NoData      = "*" // absent SEQ/QUAL
)

// FLAG bits.
const (
	FlagPaired        uint16 = 0x1
	FlagProperPair    uint16 = 0x2
	FlagUnmapped      uint16 = 0x4
	FlagMateUnmapped  uint16 = 0x8
	FlagReverse       uint16 = 0x10
	FlagMateReverse   uint16 = 0x20
	FlagFirstOfPair   uint16 = 0x40
	FlagSecondOfPair  uint16 = 0x80
	FlagSecondary     uint16 = 0x100
	FlagQCFail        uint16 = 0x200
	FlagDuplicate     uint16 = 0x400
	FlagSupplementary uint16 = 0x800
)

// Record is one decoded alignment line. Ownership transfers to the caller
// on each Next; records never reference the Reader that produced them
// beyond the optional Source tag.
type Record struct {
	QName       string
	Flags       uint16
	Ref         string // "*" when unmapped
	Pos         int    // 1-based, 0 when unset
	MapQ        uint8
	Cigar       string
	MateRef     string // "*", "=" or a reference name
	MatePos     int
	TemplateLen int
	Seq         string // "*" when absent
	Qual        string // "*" when absent
	Tags        []Tag

	// Source carries (file, line) provenance; nil unless the reader was
	// configured to attach it.
	Source *SourceInfo
}

// Tag is one optional TAG:TYPE:VALUE attribute. Value keeps the textual
// form; B arrays and H byte strings are not decoded further.
type Tag struct {
	Name  string
	Type  byte
	Value string
}

// SourceInfo tags a record with where it came from.
type SourceInfo struct {
	File string // may be empty for anonymous streams
	Line int    // 1-based physical line
}

// Attr looks up an optional attribute by its two-letter tag.
func (r *Record) Attr(name string) (Tag, bool) {
	for _, t := range r.Tags {
		if t.Name == name {
			return t, true
		}
	}
	return Tag{}, false
}

func (r *Record) IsPaired() bool        { return r.Flags&FlagPaired != 0 }
func (r *Record) IsProperPair() bool    { return r.Flags&FlagProperPair != 0 }
func (r *Record) IsUnmapped() bool      { return r.Flags&FlagUnmapped != 0 }
func (r *Record) IsMateUnmapped() bool  { return r.Flags&FlagMateUnmapped != 0 }
func (r *Record) IsReverseStrand() bool { return r.Flags&FlagReverse != 0 }
func (r *Record) IsSecondary() bool     { return r.Flags&FlagSecondary != 0 }
func (r *Record) IsQCFail() bool        { return r.Flags&FlagQCFail != 0 }
func (r *Record) IsDuplicate() bool     { return r.Flags&FlagDuplicate != 0 }
func (r *Record) IsSupplementary() bool { return r.Flags&FlagSupplementary != 0 }

// IsPrimary reports a primary, non-supplementary alignment line.
func (r *Record) IsPrimary() bool {
	return r.Flags&(FlagSecondary|FlagSupplementary) == 0
}

// Text re-emits the record as one tab-delimited line without terminator.
func (r *Record) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\t%d\t%s\t%d\t%d\t%s\t%s\t%d\t%d\t%s\t%s",
		r.QName, r.Flags, orStar(r.Ref), r.Pos, r.MapQ, orStar(r.Cigar),
		orStar(r.MateRef), r.MatePos, r.TemplateLen, orStar(r.Seq), orStar(r.Qual))
	for _, t := range r.Tags {
		fmt.Fprintf(&b, "\t%s:%c:%s", t.Name, t.Type, t.Value)
	}
	return b.String()
}

func orStar(s string) string {
	if s == "" {
		return "*"
	}
	return s
}

// RecordFactory controls how record values are instantiated, so callers
// can substitute richer record types.
type RecordFactory interface {
	NewRecord() *Record
}

type defaultFactory struct{}

func (defaultFactory) NewRecord() *Record { return &Record{} }

// DefaultRecordFactory allocates plain Records.
var DefaultRecordFactory RecordFactory = defaultFactory{}

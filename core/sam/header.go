// core/sam/header.go
package sam

import (
	"fmt"
	"sort"
	"strings"
)

// Header is the decoded metadata block preceding the alignment records.
// It is built once per Reader and must be treated as read-only afterwards.
type Header struct {
	Version    string // @HD VN
	SortOrder  string // @HD SO ("unknown" when absent)
	GroupOrder string // @HD GO

	Refs       []ReferenceSequence
	ReadGroups []ReadGroup
	Programs   []Program
	Comments   []string

	refIndex map[string]int
}

// Well-known sort orders from the @HD SO tag.
const (
	SortUnknown    = "unknown"
	SortUnsorted   = "unsorted"
	SortQueryName  = "queryname"
	SortCoordinate = "coordinate"
)

// ReferenceSequence is one @SQ entry of the reference dictionary.
type ReferenceSequence struct {
	Name   string // SN
	Length int    // LN
	Attrs  map[string]string
}

// ReadGroup is one @RG entry.
type ReadGroup struct {
	ID    string
	Attrs map[string]string
}

// Program is one @PG entry.
type Program struct {
	ID    string
	Attrs map[string]string
}

// Ref looks up a reference sequence by name.
func (h *Header) Ref(name string) (ReferenceSequence, bool) {
	i, ok := h.refIndex[name]
	if !ok {
		return ReferenceSequence{}, false
	}
	return h.Refs[i], true
}

// HasRef reports whether name is in the reference dictionary.
func (h *Header) HasRef(name string) bool {
	_, ok := h.refIndex[name]
	return ok
}

// Text re-emits the header block in tag order, one line per entry,
// each line terminated by '\n'. An empty header yields "".
func (h *Header) Text() string {
	var b strings.Builder
	if h.Version != "" || h.SortOrder != "" || h.GroupOrder != "" {
		b.WriteString("@HD")
		if h.Version != "" {
			fmt.Fprintf(&b, "\tVN:%s", h.Version)
		}
		if h.SortOrder != "" && h.SortOrder != SortUnknown {
			fmt.Fprintf(&b, "\tSO:%s", h.SortOrder)
		}
		if h.GroupOrder != "" {
			fmt.Fprintf(&b, "\tGO:%s", h.GroupOrder)
		}
		b.WriteByte('\n')
	}
	for _, sq := range h.Refs {
		fmt.Fprintf(&b, "@SQ\tSN:%s\tLN:%d", sq.Name, sq.Length)
		writeAttrs(&b, sq.Attrs, "SN", "LN")
		b.WriteByte('\n')
	}
	for _, rg := range h.ReadGroups {
		fmt.Fprintf(&b, "@RG\tID:%s", rg.ID)
		writeAttrs(&b, rg.Attrs, "ID")
		b.WriteByte('\n')
	}
	for _, pg := range h.Programs {
		fmt.Fprintf(&b, "@PG\tID:%s", pg.ID)
		writeAttrs(&b, pg.Attrs, "ID")
		b.WriteByte('\n')
	}
	for _, co := range h.Comments {
		fmt.Fprintf(&b, "@CO\t%s\n", co)
	}
	return b.String()
}

// writeAttrs appends remaining attributes in a stable order, skipping the
// tags already emitted explicitly.
func writeAttrs(b *strings.Builder, attrs map[string]string, skip ...string) {
	if len(attrs) == 0 {
		return
	}
	keys := make([]string, 0, len(attrs))
outer:
	for k := range attrs {
		for _, s := range skip {
			if k == s {
				continue outer
			}
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, "\t%s:%s", k, attrs[k])
	}
}

func (h *Header) addRef(sq ReferenceSequence) {
	if h.refIndex == nil {
		h.refIndex = map[string]int{}
	}
	h.refIndex[sq.Name] = len(h.Refs)
	h.Refs = append(h.Refs, sq)
}

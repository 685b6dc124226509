// internal/output/convert.go
package output

import (
	"github.com/lorainelab/htsjdk-igb/core/sam"
	"github.com/lorainelab/htsjdk-igb/pkg/api"
)

// ToAPIRecord maps a parsed record onto the stable v1 wire schema.
func ToAPIRecord(r *sam.Record) api.RecordV1 {
	v := api.RecordV1{
		QName:       r.QName,
		Flags:       r.Flags,
		Ref:         r.Ref,
		Pos:         r.Pos,
		MapQ:        r.MapQ,
		Cigar:       r.Cigar,
		MateRef:     r.MateRef,
		MatePos:     r.MatePos,
		TemplateLen: r.TemplateLen,
	}
	if r.Seq != sam.NoData {
		v.Seq = r.Seq
	}
	if r.Qual != sam.NoData {
		v.Qual = r.Qual
	}
	for _, t := range r.Tags {
		v.Tags = append(v.Tags, api.TagV1{Name: t.Name, Type: string(t.Type), Value: t.Value})
	}
	if r.Source != nil {
		v.SourceFile = r.Source.File
		v.SourceLine = r.Source.Line
	}
	return v
}

// ToAPIHeader maps a decoded header onto the stable v1 wire schema.
func ToAPIHeader(h *sam.Header) api.HeaderV1 {
	v := api.HeaderV1{
		Version:    h.Version,
		GroupOrder: h.GroupOrder,
		Comments:   h.Comments,
	}
	if h.SortOrder != sam.SortUnknown {
		v.SortOrder = h.SortOrder
	}
	for _, sq := range h.Refs {
		v.Refs = append(v.Refs, api.RefV1{Name: sq.Name, Length: sq.Length})
	}
	for _, rg := range h.ReadGroups {
		v.ReadGroups = append(v.ReadGroups, api.ReadGroupV1{ID: rg.ID, Attrs: rg.Attrs})
	}
	for _, pg := range h.Programs {
		v.Programs = append(v.Programs, api.ProgramV1{ID: pg.ID, Attrs: pg.Attrs})
	}
	return v
}

// pkg/api/records_v1.go
package api

// RecordV1 is the stable JSON/JSONL schema for alignment records.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RecordV1 struct {
	QName       string  `json:"qname"`
	Flags       uint16  `json:"flags"`
	Ref         string  `json:"ref"`
	Pos         int     `json:"pos"`
	MapQ        uint8   `json:"mapq"`
	Cigar       string  `json:"cigar"`
	MateRef     string  `json:"mate_ref"`
	MatePos     int     `json:"mate_pos"`
	TemplateLen int     `json:"tlen"`
	Seq         string  `json:"seq,omitempty"`
	Qual        string  `json:"qual,omitempty"`
	Tags        []TagV1 `json:"tags,omitempty"`
	SourceFile  string  `json:"source_file,omitempty"`
	SourceLine  int     `json:"source_line,omitempty"`
}

// TagV1 is one optional attribute in the stable schema.
type TagV1 struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

// HeaderV1 is the stable schema for the decoded header block.
type HeaderV1 struct {
	Version    string        `json:"version,omitempty"`
	SortOrder  string        `json:"sort_order,omitempty"`
	GroupOrder string        `json:"group_order,omitempty"`
	Refs       []RefV1       `json:"refs,omitempty"`
	ReadGroups []ReadGroupV1 `json:"read_groups,omitempty"`
	Programs   []ProgramV1   `json:"programs,omitempty"`
	Comments   []string      `json:"comments,omitempty"`
}

// RefV1 is one reference-dictionary entry.
type RefV1 struct {
	Name   string `json:"name"`
	Length int    `json:"length"`
}

// ReadGroupV1 is one read group.
type ReadGroupV1 struct {
	ID    string            `json:"id"`
	Attrs map[string]string `json:"attrs,omitempty"`
}

// ProgramV1 is one program record.
type ProgramV1 struct {
	ID    string            `json:"id"`
	Attrs map[string]string `json:"attrs,omitempty"`
}

// DocumentV1 bundles a header with its records for buffered JSON output.
type DocumentV1 struct {
	Header  HeaderV1   `json:"header"`
	Records []RecordV1 `json:"records"`
}

// internal/output/rows.go
package output

import (
	"fmt"

	"github.com/lorainelab/htsjdk-igb/core/sam"
)

// TSVHeader is the column header matching FormatRecordTSV.
const TSVHeader = "qname\tflags\tref\tpos\tmapq\tcigar\tmate_ref\tmate_pos\ttlen\tseq_len"

// FormatRecordTSV returns the summary columns for one record
// (no trailing newline).
func FormatRecordTSV(r *sam.Record) string {
	seqLen := 0
	if r.Seq != sam.NoData {
		seqLen = len(r.Seq)
	}
	return fmt.Sprintf("%s\t%d\t%s\t%d\t%d\t%s\t%s\t%d\t%d\t%d",
		r.QName, r.Flags, r.Ref, r.Pos, r.MapQ, r.Cigar,
		r.MateRef, r.MatePos, r.TemplateLen, seqLen)
}

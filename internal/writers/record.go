// internal/writers/record.go
package writers

import (
	"bufio"
	"io"

	"github.com/lorainelab/htsjdk-igb/core/sam"
	"github.com/lorainelab/htsjdk-igb/internal/jsonutil"
	"github.com/lorainelab/htsjdk-igb/internal/output"
	"github.com/lorainelab/htsjdk-igb/pkg/api"
)

func init() {
	Register("sam", writeSAM)
	Register("tsv", writeTSV)
	Register("json", writeJSON)
}

// writeSAM re-emits the stream as SAM text: header block first (when
// requested), then one tab-delimited line per record.
func writeSAM(w io.Writer, h *sam.Header, opt Options, in <-chan *sam.Record) error {
	bw := bufio.NewWriter(w)
	if opt.WithHeader && h != nil {
		if _, err := bw.WriteString(h.Text()); err != nil {
			return err
		}
	}
	for rec := range in {
		if _, err := bw.WriteString(rec.Text()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// writeTSV emits the summary columns, one row per record.
func writeTSV(w io.Writer, _ *sam.Header, opt Options, in <-chan *sam.Record) error {
	bw := bufio.NewWriter(w)
	if opt.WithHeader {
		if _, err := bw.WriteString(output.TSVHeader + "\n"); err != nil {
			return err
		}
	}
	for rec := range in {
		if _, err := bw.WriteString(output.FormatRecordTSV(rec) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// writeJSON buffers the whole stream into a v1 document and emits it as
// indented JSON.
func writeJSON(w io.Writer, h *sam.Header, _ Options, in <-chan *sam.Record) error {
	doc := api.DocumentV1{Records: []api.RecordV1{}}
	if h != nil {
		doc.Header = output.ToAPIHeader(h)
	}
	for rec := range in {
		doc.Records = append(doc.Records, output.ToAPIRecord(rec))
	}
	return jsonutil.EncodePretty(w, doc)
}

// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"github.com/lorainelab/htsjdk-igb/core/sam"
	"github.com/lorainelab/htsjdk-igb/internal/jsonlutil"
	"github.com/lorainelab/htsjdk-igb/internal/output"
)

func init() {
	Register("jsonl", writeJSONL)
}

// writeJSONL streams each record as one JSON line (v1 schema).
func writeJSONL(w io.Writer, _ *sam.Header, _ Options, in <-chan *sam.Record) error {
	ch, done := jsonlutil.Start[*sam.Record](w, 64,
		func(enc *json.Encoder, rec *sam.Record) error {
			return enc.Encode(output.ToAPIRecord(rec))
		},
		IsBrokenPipe,
	)
	for rec := range in {
		ch <- rec
	}
	close(ch)
	return <-done
}

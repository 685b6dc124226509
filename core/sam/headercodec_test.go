package sam

import (
	"strings"
	"testing"
)

const sampleHeader = "@HD\tVN:1.6\tSO:coordinate\n" +
	"@SQ\tSN:chr1\tLN:248956422\n" +
	"@SQ\tSN:chr2\tLN:242193529\tAS:GRCh38\n" +
	"@RG\tID:rg1\tSM:sample1\n" +
	"@PG\tID:aln\tPN:aligner\n" +
	"@CO\tfree text comment\n"

func decode(t *testing.T, input string, v ValidationStringency) (*Header, *LineReader, error) {
	t.Helper()
	lr := NewLineReader(strings.NewReader(input))
	h, err := NewTextHeaderCodec().DecodeHeader(lr, v, "test.sam")
	return h, lr, err
}

func TestDecodeHeader(t *testing.T) {
	h, lr, err := decode(t, sampleHeader+"r1\t0\tchr1\t100\t60\t4M\t*\t0\t0\tACGT\tFFFF\n", StringencyStrict)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if h.Version != "1.6" || h.SortOrder != SortCoordinate {
		t.Errorf("@HD parsed wrong: %+v", h)
	}
	if len(h.Refs) != 2 || h.Refs[0].Name != "chr1" || h.Refs[0].Length != 248956422 {
		t.Errorf("@SQ parsed wrong: %+v", h.Refs)
	}
	if !h.HasRef("chr2") {
		t.Errorf("chr2 missing from dictionary")
	}
	if h.Refs[1].Attrs["AS"] != "GRCh38" {
		t.Errorf("extra @SQ attr lost: %+v", h.Refs[1])
	}
	if len(h.ReadGroups) != 1 || h.ReadGroups[0].ID != "rg1" {
		t.Errorf("@RG parsed wrong: %+v", h.ReadGroups)
	}
	if len(h.Programs) != 1 || h.Programs[0].ID != "aln" {
		t.Errorf("@PG parsed wrong: %+v", h.Programs)
	}
	if len(h.Comments) != 1 || h.Comments[0] != "free text comment" {
		t.Errorf("@CO parsed wrong: %+v", h.Comments)
	}

	// Codec must leave the source at the first record line.
	next, err := lr.ReadLine()
	if err != nil {
		t.Fatalf("read first record line: %v", err)
	}
	if !strings.HasPrefix(next, "r1\t") {
		t.Fatalf("positioned at %q, want record line", next)
	}
	if lr.LineNumber() != 7 {
		t.Fatalf("record line number got %d want 7", lr.LineNumber())
	}
}

func TestDecodeHeaderOnlyInput(t *testing.T) {
	h, _, err := decode(t, "@HD\tVN:1.6\n", StringencyStrict)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if h.Version != "1.6" {
		t.Fatalf("version lost: %+v", h)
	}
}

func TestDecodeHeaderStrictFailures(t *testing.T) {
	cases := map[string]string{
		"missing LN":     "@SQ\tSN:chr1\n",
		"non-numeric LN": "@SQ\tSN:chr1\tLN:abc\n",
		"duplicate SQ":   "@SQ\tSN:chr1\tLN:10\n@SQ\tSN:chr1\tLN:10\n",
		"bad tag syntax": "@SQ\tSN:chr1\tLN\n",
		"missing RG ID":  "@RG\tSM:s\n",
		"unknown type":   "@XX\tAB:cd\n",
	}
	for name, input := range cases {
		if _, _, err := decode(t, input, StringencyStrict); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestDecodeHeaderLenientSkips(t *testing.T) {
	input := "@SQ\tSN:chr1\tLN:abc\n@SQ\tSN:chr2\tLN:50\n"
	h, _, err := decode(t, input, StringencyLenient)
	if err != nil {
		t.Fatalf("lenient decode: %v", err)
	}
	if len(h.Refs) != 1 || h.Refs[0].Name != "chr2" {
		t.Fatalf("lenient should keep only chr2, got %+v", h.Refs)
	}
}

func TestDecodeHeaderErrorHasPosition(t *testing.T) {
	_, _, err := decode(t, "@HD\tVN:1.6\n@SQ\tSN:chr1\tLN:x\n", StringencyStrict)
	fe, ok := err.(*FormatError)
	if !ok {
		t.Fatalf("want *FormatError, got %T (%v)", err, err)
	}
	if fe.Source != "test.sam" || fe.Line != 2 {
		t.Fatalf("bad position %s:%d", fe.Source, fe.Line)
	}
}

func TestHeaderTextRoundTrip(t *testing.T) {
	h, _, err := decode(t, sampleHeader, StringencyStrict)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	h2, _, err := decode(t, h.Text(), StringencyStrict)
	if err != nil {
		t.Fatalf("re-decode emitted header: %v", err)
	}
	if len(h2.Refs) != len(h.Refs) || h2.Version != h.Version || len(h2.Comments) != len(h.Comments) {
		t.Fatalf("round trip lost data:\n%s\nvs\n%s", h.Text(), h2.Text())
	}
}

package sam

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

// writeGz creates a gzipped SAM file with provided data, returns the path.
func writeGz(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.sam.gz")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
	return path
}

func TestOpenGzip(t *testing.T) {
	path := writeGz(t, sampleDoc)

	r, err := Open(path, Config{})
	if err != nil {
		t.Fatalf("open gz: %v", err)
	}
	defer func() { _ = r.Close() }()

	if r.Filename() != path {
		t.Errorf("filename not recorded: %q", r.Filename())
	}
	it, err := r.Iterator()
	if err != nil {
		t.Fatalf("iterator: %v", err)
	}
	recs := drain(t, it)
	if len(recs) != 3 {
		t.Fatalf("gzip parse failed, got %d records", len(recs))
	}
}

func TestOpenPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.sam")
	if err := os.WriteFile(path, []byte(sampleDoc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	r, err := Open(path, Config{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = r.Close() }()

	if !r.Header().HasRef("chr1") {
		t.Fatalf("header not decoded")
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.sam"), Config{}); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lorainelab/htsjdk-igb/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSAM = "@HD\tVN:1.6\tSO:coordinate\n" +
	"@SQ\tSN:chr1\tLN:1000\n" +
	"r1\t0\tchr1\t100\t60\t4M\t*\t0\t0\tACGT\tFFFF\n" +
	"r2\t16\tchr1\t200\t60\t4M\t*\t0\t0\tCCCC\tFFFF\n"

func writeSample(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.sam")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errb bytes.Buffer
	code := app.Run(args, &out, &errb)
	return code, out.String(), errb.String()
}

func TestViewRoundTrip(t *testing.T) {
	path := writeSample(t, sampleSAM)
	code, out, errOut := run(t, path)
	require.Equal(t, 0, code, "stderr: %s", errOut)
	assert.Equal(t, sampleSAM, out, "sam output must round-trip the input")
}

func TestViewNoHeader(t *testing.T) {
	path := writeSample(t, sampleSAM)
	code, out, _ := run(t, "--no-header", path)
	require.Equal(t, 0, code)
	assert.False(t, strings.HasPrefix(out, "@"))
	assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 2)
}

func TestHeaderOnly(t *testing.T) {
	path := writeSample(t, sampleSAM)
	code, out, _ := run(t, "--header-only", path)
	require.Equal(t, 0, code)
	assert.Equal(t, "@HD\tVN:1.6\tSO:coordinate\n@SQ\tSN:chr1\tLN:1000\n", out)
}

func TestCount(t *testing.T) {
	path := writeSample(t, sampleSAM)
	code, out, _ := run(t, "--count", path)
	require.Equal(t, 0, code)
	assert.Equal(t, "2\n", out)
}

func TestCountMultipleInputs(t *testing.T) {
	path := writeSample(t, sampleSAM)
	code, out, _ := run(t, "--count", path, path)
	require.Equal(t, 0, code)
	assert.Equal(t, "2\n2\n", out)
}

func TestJSONLOutput(t *testing.T) {
	path := writeSample(t, sampleSAM)
	code, out, _ := run(t, "--output", "jsonl", "--with-source", path)
	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"qname":"r1"`)
	assert.Contains(t, lines[0], `"source_line":3`)
}

func TestStrictRejectsBadRecord(t *testing.T) {
	bad := sampleSAM + "r3\t0\tchrX\t1\t0\t*\t*\t0\t0\t*\t*\n" // undeclared ref
	path := writeSample(t, bad)

	code, _, errOut := run(t, path)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "in.sam:5")

	code, out, _ := run(t, "--stringency", "lenient", path)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "r3\t")
}

func TestUsageErrors(t *testing.T) {
	code, _, errOut := run(t, "--output", "xml")
	assert.Equal(t, 2, code)
	assert.NotEmpty(t, errOut)
}

func TestMissingInputFile(t *testing.T) {
	code, _, errOut := run(t, filepath.Join(t.TempDir(), "absent.sam"))
	assert.Equal(t, 1, code)
	assert.NotEmpty(t, errOut)
}

func TestSnappyGateDisabled(t *testing.T) {
	path := writeSample(t, sampleSAM)
	code, _, errOut := run(t, "--snappy", path)
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "explicitly disabled")
}

func TestVersionFlag(t *testing.T) {
	code, out, _ := run(t, "--version")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "samview version "))
}

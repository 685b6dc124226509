// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/lorainelab/htsjdk-igb/core/sam"
	"github.com/lorainelab/htsjdk-igb/internal/cliutil"
	"github.com/lorainelab/htsjdk-igb/internal/version"
	"github.com/lorainelab/htsjdk-igb/internal/writers"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Inputs are SAM text files, gzip-transparent, '-' for stdin.
	Inputs []string

	// Parsing
	Stringency sam.ValidationStringency
	WithSource bool // tag records with (file, line) provenance
	Snappy     bool // force snappy-wrapped input (requires the gate)

	// Output
	Output     string
	Header     bool // true unless --no-header
	HeaderOnly bool
	Count      bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: stream SAM text alignments

Version: %s

Usage: %s [options] [file.sam[.gz] ...]
       ('-' reads from stdin; no files also means stdin)

`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Positional arguments (with glob expansion) are additional input files.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	opt := Options{Output: "sam"}
	var help bool
	var stringency string

	var inputs stringSlice
	fs.Var(&inputs, "input", "SAM file(s) (repeatable or '-') []")
	fs.StringVar(&stringency, "stringency", "strict", "validation stringency: strict | lenient | silent [strict]")
	fs.BoolVar(&opt.WithSource, "with-source", false, "attach (file,line) provenance to each record [false]")
	fs.BoolVar(&opt.Snappy, "snappy", false, "treat input as snappy-compressed (requires snappy support) [false]")

	fs.StringVar(&opt.Output, "output", "sam", "output format: "+strings.Join(writers.Formats(), " | ")+" [sam]")
	fs.BoolVar(&opt.HeaderOnly, "header-only", false, "emit only the decoded header [false]")
	fs.BoolVar(&opt.Count, "count", false, "print the record count instead of records [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header block / column header [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	pos, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	opt.Inputs = append([]string(inputs), pos...)
	if len(opt.Inputs) == 0 {
		opt.Inputs = []string{"-"}
	}

	if opt.Stringency, err = sam.ParseStringency(stringency); err != nil {
		return opt, err
	}

	// Validation
	if _, ok := writers.RecordWriters[opt.Output]; !ok {
		return opt, fmt.Errorf("invalid --output %q (known: %s)", opt.Output, strings.Join(writers.Formats(), ", "))
	}
	if opt.HeaderOnly && opt.Count {
		return opt, errors.New("--header-only conflicts with --count")
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }

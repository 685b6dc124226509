// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/lorainelab/htsjdk-igb/core/sam"
	"github.com/lorainelab/htsjdk-igb/core/snappy"
	"github.com/lorainelab/htsjdk-igb/internal/cli"
	"github.com/lorainelab/htsjdk-igb/internal/version"
	"github.com/lorainelab/htsjdk-igb/internal/writers"
)

// RunContext drives samview: parse options, stream each input through a
// Reader, hand records to the selected writer. Exit codes: 0 ok,
// 1 runtime error, 2 usage error, 130 cancellation.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("samview")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushExit(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "samview version %s\n", version.Version)
		return flushExit(outw, stderr, 0)
	}

	for _, path := range opts.Inputs {
		if code := runOne(parent, path, opts, outw, stderr); code != 0 {
			return code
		}
		if parent.Err() != nil {
			return 130
		}
	}
	return flushExit(outw, stderr, 0)
}

// Run is the background-context entry point used by tests.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func runOne(ctx context.Context, path string, opts cli.Options, outw *bufio.Writer, stderr io.Writer) int {
	rc, err := sam.OpenPath(path)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	defer func() { _ = rc.Close() }()

	var stream io.Reader = rc
	if opts.Snappy {
		wrapped, err := snappy.NewLoader().MustWrapInput(rc)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		stream = wrapped
	}

	filename := path
	if path == "-" {
		filename = ""
	}
	r, err := sam.NewReader(stream, sam.Config{
		Stringency:   opts.Stringency,
		Filename:     filename,
		AttachSource: opts.WithSource,
	})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	defer func() { _ = r.Close() }()

	switch {
	case opts.HeaderOnly:
		if _, err := outw.WriteString(r.Header().Text()); err != nil {
			if writers.IsBrokenPipe(err) {
				return 0
			}
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	case opts.Count:
		n, err := countRecords(ctx, r)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
		_, _ = fmt.Fprintf(outw, "%d\n", n)
		return 0
	}

	in, errCh, err := writers.StartRecordWriter(outw, opts.Output, r.Header(),
		writers.Options{WithHeader: opts.Header}, 64)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	it, err := r.Iterator()
	if err != nil {
		close(in)
		<-errCh
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	var iterErr error
	for it.HasNext() {
		if ctx.Err() != nil {
			break
		}
		rec, err := it.Next()
		if err != nil {
			iterErr = err
			break
		}
		in <- rec
	}
	close(in)
	if werr := <-errCh; werr != nil && iterErr == nil {
		iterErr = werr
	}
	if iterErr != nil {
		_, _ = fmt.Fprintln(stderr, iterErr)
		return 1
	}
	return 0
}

func countRecords(ctx context.Context, r *sam.Reader) (int, error) {
	it, err := r.Iterator()
	if err != nil {
		return 0, err
	}
	n := 0
	for it.HasNext() {
		if ctx.Err() != nil {
			break
		}
		if _, err := it.Next(); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func flushExit(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return code
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}

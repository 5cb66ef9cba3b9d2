// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"pdbreorder-core/pdbio"
	"pdbreorder-core/reorder"
	"pdbreorder/internal/cli"
	"pdbreorder/internal/cmdutil"
	"pdbreorder/internal/version"
	"pdbreorder/internal/writers"
)

// Exit codes: 0 success (a broken pipe downstream counts as success, so
// `pdbreorder ... | head` stays quiet), 1 I/O failure, 2 usage error,
// 3 output-flush failure, 130 cancellation (normalized by appshell).
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("pdbreorder")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); e != nil && !writers.IsBrokenPipe(e) {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "pdbreorder version %s\n", version.Version)
		if e := outw.Flush(); e != nil && !writers.IsBrokenPipe(e) {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	set := reorder.NewResidueSet(opts.Residues)

	lineCh, wErr := writers.StartLineWriter(outw, 0)
	emit := func(line string) error {
		select {
		case lineCh <- line:
			return nil
		case <-parent.Done():
			return parent.Err()
		}
	}

	// Each input gets a fresh engine: learned atom orders never leak from
	// one file into the next.
	learned := make(map[string]struct{})
	var runErr error
	for _, path := range opts.Files {
		rc, err := pdbio.Open(path)
		if err != nil {
			runErr = err
			break
		}
		eng := reorder.New(set, emit)
		err = pdbio.ScanLinesCtx(parent, rc, eng.Push)
		if err == nil {
			err = eng.Flush()
		}
		for _, n := range eng.LearnedNames() {
			learned[n] = struct{}{}
		}
		if cerr := rc.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			runErr = err
			break
		}
	}
	close(lineCh)
	if werr := <-wErr; werr != nil && runErr == nil {
		runErr = werr
	}
	if ferr := outw.Flush(); ferr != nil && runErr == nil {
		runErr = ferr
	}

	if runErr != nil {
		if writers.IsBrokenPipe(runErr) {
			return 0
		}
		if parent.Err() != nil {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, runErr)
		return 1
	}

	for _, r := range opts.Residues {
		if _, ok := learned[r]; !ok {
			cmdutil.Warnf(stderr, opts.Quiet,
				"no reference atom order learned for residue %s; its records were left untouched", r)
		}
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

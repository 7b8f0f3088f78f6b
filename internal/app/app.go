// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"primefact-core/factor"
	"primefact/internal/cli"
	"primefact/internal/cmdutil"
	"primefact/internal/input"
	"primefact/internal/output"
	"primefact/internal/version"
)

// Stdin is the default source for value streaming; tests may swap it.
var Stdin io.Reader = os.Stdin

// RunContext parses argv, factors every input value, and writes the
// results to stdout. It returns the process exit code:
//
//	0   success
//	2   usage, parse, or domain error
//	3   write/flush failure
//	130 cancelled by signal (normalized in appshell)
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("primefact")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); output.IsBrokenPipe(e) {
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
		if e := outw.Flush(); !output.IsBrokenPipe(e) && e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "primefact version %s\n", version.Version)
		if e := outw.Flush(); output.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	if opts.Exponents && opts.Output == cli.FormatTSV {
		cmdutil.Warnf(stderr, opts.Quiet, "--exponents has no effect on tsv output")
	}

	w, err := output.New(opts.Output, outw, output.Config{
		Exponents: opts.Exponents,
		Header:    opts.Header,
	})
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return 2
	}

	emit := func(n int64) error {
		f, err := factor.New(n)
		if err != nil {
			return err
		}
		return w.Write(f)
	}

	if len(opts.Args) > 0 {
		err = input.ForEachArg(parent, opts.Args, emit)
	} else {
		err = input.ForEachValue(parent, Stdin, emit)
	}
	if err == nil {
		err = w.Close()
	}

	if output.IsBrokenPipe(err) {
		return 0
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		cmdutil.Errorf(stderr, "%v", err)
		return 2
	}

	if e := outw.Flush(); output.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return 0
}

// Run is RunContext with a background context, for tests and callers
// that do not care about signals.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// internal/cli/options_test.go
package cli

import (
	"flag"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t)
	if o.Output != FormatText || o.Exponents || !o.Header || len(o.Args) != 0 {
		t.Errorf("unexpected defaults %+v", o)
	}
}

func TestPositionalArgs(t *testing.T) {
	o := mustParse(t, "--output", "json", "12", "17")
	if o.Output != FormatJSON || len(o.Args) != 2 || o.Args[0] != "12" {
		t.Errorf("bad parse %+v", o)
	}
}

func TestNoHeader(t *testing.T) {
	o := mustParse(t, "--output", "tsv", "--no-header", "100")
	if o.Header {
		t.Errorf("--no-header ignored: %+v", o)
	}
}

func TestErrorInvalidOutput(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--output", "xml", "5"}); err == nil {
		t.Fatalf("expected error for invalid --output")
	}
}

func TestHelpReturnsErrHelp(t *testing.T) {
	fs := newFS()
	fs.Usage = func() {}
	if _, err := ParseArgs(fs, []string{"-h"}); err != flag.ErrHelp {
		t.Fatalf("want flag.ErrHelp, got %v", err)
	}
}

func TestVersionShortAndLong(t *testing.T) {
	for _, args := range [][]string{{"-v"}, {"--version"}} {
		o := mustParse(t, args...)
		if !o.Version {
			t.Errorf("%v did not set Version", args)
		}
	}
}
